package domain

import "time"

// DataPoint representa os contadores brutos do funil de um dashboard em um
// único dia. Os pontos de um dashboard são substituídos em bloco a cada
// importação de planilha, nunca alterados campo a campo.
type DataPoint struct {
	ID             int64     `json:"id,omitempty"`
	DashboardID    int       `json:"dashboard_id"`
	Date           time.Time `json:"date"`
	Investment     float64   `json:"investment"`
	Impressions    int       `json:"impressions"`
	Clicks         int       `json:"clicks"`
	PageViews      int       `json:"page_views"`
	Leads          int       `json:"leads"`
	Conversations  int       `json:"conversations"`
	Meetings       int       `json:"meetings"`
	Negotiations   int       `json:"negotiations"`
	SalesPageViews int       `json:"sales_page_views"`
	Checkouts      int       `json:"checkouts"`
	Sales          int       `json:"sales"`
	Revenue        float64   `json:"revenue"`
}

// OperationalCost é um custo avulso do dashboard com um intervalo de vigência
// [DateFrom, DateTo]. Tem ciclo de vida independente dos DataPoints.
type OperationalCost struct {
	ID          int64     `json:"id"`
	DashboardID int       `json:"dashboard_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	DateFrom    time.Time `json:"date_from"`
	DateTo      time.Time `json:"date_to"`
	CreatedAt   time.Time `json:"created_at"`
}

// OverlapsRange indica se a vigência do custo intersecta o intervalo
// informado. A regra é interseção, não contenção: um custo que vigora além da
// janela consultada ainda se aplica a ela.
func (c *OperationalCost) OverlapsRange(r DateRange) bool {
	if r.From == nil && r.To == nil {
		return true
	}
	if r.To != nil && c.DateFrom.After(*r.To) {
		return false
	}
	if r.From != nil && c.DateTo.Before(*r.From) {
		return false
	}
	return true
}
