package domain

import "time"

// BusinessModel define qual sequência de etapas do funil faz sentido para o
// dashboard. É imutável após a criação.
type BusinessModel string

const (
	BusinessModelLeadParaVendedor BusinessModel = "lead_para_vendedor"
	BusinessModelVendaDireta      BusinessModel = "venda_direta"
	BusinessModelQuiz             BusinessModel = "quiz"
)

func (m BusinessModel) IsValid() bool {
	switch m {
	case BusinessModelLeadParaVendedor, BusinessModelVendaDireta, BusinessModelQuiz:
		return true
	}
	return false
}

type Dashboard struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	BusinessModel      BusinessModel `json:"business_model"`
	SheetsURL          *string       `json:"sheets_url,omitempty"`
	ClientPasswordHash string        `json:"-"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// PublicView retorna a projeção do dashboard sem informações sensíveis,
// usada nas respostas para clientes.
func (d *Dashboard) PublicView() *PublicDashboard {
	return &PublicDashboard{
		ID:            d.ID,
		Name:          d.Name,
		BusinessModel: d.BusinessModel,
		CreatedAt:     d.CreatedAt,
	}
}

type PublicDashboard struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	BusinessModel BusinessModel `json:"business_model"`
	CreatedAt     time.Time     `json:"created_at"`
}
