package domain

import (
	"time"

	"github.com/dashfy/client-dashboard-api/pkg/utils"
)

// DateRange delimita a janela de agregação. Extremidades nulas significam
// janela aberta daquele lado.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Contains verifica se a data cai dentro da janela (inclusiva nas duas pontas)
func (r DateRange) Contains(date time.Time) bool {
	if r.From != nil && date.Before(*r.From) {
		return false
	}
	if r.To != nil && date.After(*r.To) {
		return false
	}
	return true
}

// AggregateSnapshot é a soma campo a campo dos DataPoints filtrados mais o
// total de custos operacionais cuja vigência intersecta a janela. Nunca é
// persistido; é recalculado a cada requisição.
type AggregateSnapshot struct {
	Investment       float64 `json:"investment"`
	Impressions      int     `json:"impressions"`
	Clicks           int     `json:"clicks"`
	PageViews        int     `json:"page_views"`
	Leads            int     `json:"leads"`
	Conversations    int     `json:"conversations"`
	Meetings         int     `json:"meetings"`
	Negotiations     int     `json:"negotiations"`
	SalesPageViews   int     `json:"sales_page_views"`
	Checkouts        int     `json:"checkouts"`
	Sales            int     `json:"sales"`
	Revenue          float64 `json:"revenue"`
	OperationalCosts float64 `json:"operational_costs"`
}

// DerivedMetrics são as métricas de marketing derivadas do snapshot. Toda
// divisão é protegida: denominador zero resulta em métrica zero. ROI e
// CloseRate são ponteiros porque nem toda resposta os carrega: ROI é omitido
// para clientes e CloseRate só existe no modelo lead_para_vendedor.
type DerivedMetrics struct {
	CTR         float64  `json:"ctr"`
	CPM         float64  `json:"cpm"`
	CPC         float64  `json:"cpc"`
	CPL         float64  `json:"cpl"`
	CPA         float64  `json:"cpa"`
	ConnectRate float64  `json:"connect_rate"`
	ROAS        float64  `json:"roas"`
	ROI         *float64 `json:"roi,omitempty"`
	CloseRate   *float64 `json:"close_rate,omitempty"`
}

// FunnelStage é uma etapa do funil com a taxa de conversão para a etapa
// seguinte. A última etapa não tem conversão.
type FunnelStage struct {
	Name             string   `json:"name"`
	Value            int      `json:"value"`
	ConversionToNext *float64 `json:"conversion_to_next,omitempty"`
}

// Metrics agrupa tudo que a agregação produz para uma janela de datas
type Metrics struct {
	Totals            AggregateSnapshot `json:"totals"`
	Derived           DerivedMetrics    `json:"derived"`
	Funnel            []FunnelStage     `json:"funnel"`
	OverallConversion float64           `json:"overall_conversion"`
}

// FilterDataPoints retorna os pontos cuja data cai dentro da janela
func FilterDataPoints(points []*DataPoint, r DateRange) []*DataPoint {
	filtered := make([]*DataPoint, 0, len(points))
	for _, p := range points {
		if r.Contains(p.Date) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterCosts retorna os custos cuja vigência intersecta a janela. O valor
// integral do custo é incluído em qualquer interseção, sem rateio por dia.
func FilterCosts(costs []*OperationalCost, r DateRange) []*OperationalCost {
	filtered := make([]*OperationalCost, 0, len(costs))
	for _, c := range costs {
		if c.OverlapsRange(r) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Aggregate reduz os pontos e custos já filtrados para o snapshot somado, as
// métricas derivadas e o funil do modelo de negócio. Zero pontos produz somas
// e métricas zeradas, nunca um erro.
func Aggregate(points []*DataPoint, costs []*OperationalCost, model BusinessModel) *Metrics {
	totals := AggregateSnapshot{}
	for _, p := range points {
		totals.Investment += p.Investment
		totals.Impressions += p.Impressions
		totals.Clicks += p.Clicks
		totals.PageViews += p.PageViews
		totals.Leads += p.Leads
		totals.Conversations += p.Conversations
		totals.Meetings += p.Meetings
		totals.Negotiations += p.Negotiations
		totals.SalesPageViews += p.SalesPageViews
		totals.Checkouts += p.Checkouts
		totals.Sales += p.Sales
		totals.Revenue += p.Revenue
	}
	for _, c := range costs {
		totals.OperationalCosts += c.Amount
	}

	derived := deriveMetrics(totals, model)
	funnel := buildFunnel(totals, model)

	overall := safeRate(float64(totals.Sales), float64(totals.Clicks)) * 100

	return &Metrics{
		Totals:            totals,
		Derived:           derived,
		Funnel:            funnel,
		OverallConversion: utils.RoundWithTwoDecimalPlace(overall),
	}
}

func deriveMetrics(t AggregateSnapshot, model BusinessModel) DerivedMetrics {
	m := DerivedMetrics{
		CTR:         round(safeRate(float64(t.Clicks), float64(t.Impressions)) * 100),
		CPM:         round(safeRate(t.Investment, float64(t.Impressions)) * 1000),
		CPC:         round(safeRate(t.Investment, float64(t.Clicks))),
		CPL:         round(safeRate(t.Investment, float64(t.Leads))),
		CPA:         round(safeRate(t.Investment, float64(t.Sales))),
		ConnectRate: round(safeRate(float64(t.Conversations), float64(t.Leads)) * 100),
		ROAS:        round(safeRate(t.Revenue, t.Investment)),
	}

	totalCost := t.Investment + t.OperationalCosts
	roi := round(safeRate(t.Revenue-totalCost, totalCost) * 100)
	m.ROI = &roi

	if model == BusinessModelLeadParaVendedor {
		closeRate := round(safeRate(float64(t.Sales), float64(t.Negotiations)) * 100)
		m.CloseRate = &closeRate
	}

	return m
}

// funnelStages define as etapas ordenadas de cada modelo de negócio. A
// primeira etapa é sempre clicks e a última sempre sales.
func funnelStages(model BusinessModel) []string {
	switch model {
	case BusinessModelVendaDireta:
		return []string{"clicks", "page_views", "checkouts", "sales"}
	case BusinessModelQuiz:
		return []string{"clicks", "page_views", "sales_page_views", "checkouts", "sales"}
	default:
		return []string{"clicks", "leads", "conversations", "meetings", "negotiations", "sales"}
	}
}

func stageValue(t AggregateSnapshot, name string) int {
	switch name {
	case "clicks":
		return t.Clicks
	case "page_views":
		return t.PageViews
	case "sales_page_views":
		return t.SalesPageViews
	case "checkouts":
		return t.Checkouts
	case "leads":
		return t.Leads
	case "conversations":
		return t.Conversations
	case "meetings":
		return t.Meetings
	case "negotiations":
		return t.Negotiations
	case "sales":
		return t.Sales
	}
	return 0
}

func buildFunnel(t AggregateSnapshot, model BusinessModel) []FunnelStage {
	names := funnelStages(model)
	stages := make([]FunnelStage, len(names))

	for i, name := range names {
		stages[i] = FunnelStage{Name: name, Value: stageValue(t, name)}
	}

	// Conversão apenas entre etapas adjacentes
	for i := 0; i < len(stages)-1; i++ {
		rate := round(safeRate(float64(stages[i+1].Value), float64(stages[i].Value)) * 100)
		stages[i].ConversionToNext = &rate
	}

	return stages
}

func safeRate(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func round(f float64) float64 {
	return utils.RoundWithTwoDecimalPlace(f)
}
