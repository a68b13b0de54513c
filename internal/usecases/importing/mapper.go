package importing

import (
	"fmt"
	"strings"

	"github.com/dashfy/client-dashboard-api/internal/domain"
	"github.com/dashfy/client-dashboard-api/pkg/utils"
)

// Campos canônicos de um DataPoint, indexados pelos cabeçalhos aceitos nas
// planilhas. Cabeçalhos em português são aceitos com e sem acento, porque
// exports reais aparecem das duas formas.
const (
	fieldDate           = "date"
	fieldInvestment     = "investment"
	fieldImpressions    = "impressions"
	fieldClicks         = "clicks"
	fieldPageViews      = "page_views"
	fieldLeads          = "leads"
	fieldConversations  = "conversations"
	fieldMeetings       = "meetings"
	fieldNegotiations   = "negotiations"
	fieldSalesPageViews = "sales_page_views"
	fieldCheckouts      = "checkouts"
	fieldSales          = "sales"
	fieldRevenue        = "revenue"
)

var headerDictionary = map[string]string{
	"data":             fieldDate,
	"investimento":     fieldInvestment,
	"impressões":       fieldImpressions,
	"impressoes":       fieldImpressions,
	"cliques":          fieldClicks,
	"visualizações":    fieldPageViews,
	"visualizacoes":    fieldPageViews,
	"page_views":       fieldPageViews,
	"leads":            fieldLeads,
	"conversas":        fieldConversations,
	"reuniões":         fieldMeetings,
	"reunioes":         fieldMeetings,
	"negociações":      fieldNegotiations,
	"negociacoes":      fieldNegotiations,
	"vendas":           fieldSales,
	"receita":          fieldRevenue,
	"checkouts":        fieldCheckouts,
	"sales_page_views": fieldSalesPageViews,
}

// MapRow converte uma linha de planilha em um DataPoint canônico usando a
// linha de cabeçalho para resolver a ordem das colunas. Cabeçalhos
// desconhecidos são ignorados. Retorna ok=false quando a linha não tem uma
// data resolvível — a data é o único campo obrigatório. A lista de warnings
// nomeia células reconhecidas mas ilegíveis que foram assumidas como 0.
func MapRow(headers []string, record []string) (*domain.DataPoint, []string, bool) {
	point := &domain.DataPoint{}
	var warnings []string
	hasDate := false

	for i, header := range headers {
		field, known := headerDictionary[strings.ToLower(strings.TrimSpace(header))]
		if !known {
			continue
		}

		var value string
		if i < len(record) {
			value = strings.TrimSpace(record[i])
		}

		switch field {
		case fieldDate:
			date, ok := utils.ParseSheetDate(value)
			if ok {
				point.Date = date
				hasDate = true
			}

		case fieldInvestment:
			point.Investment = parseCurrency(value, field, &warnings)

		case fieldRevenue:
			point.Revenue = parseCurrency(value, field, &warnings)

		default:
			count := utils.ParseCount(value)
			if count == 0 && !looksLikeZero(value) {
				warnings = append(warnings, fmt.Sprintf("%s: valor ilegível %q assumido como 0", field, value))
			}
			setCount(point, field, count)
		}
	}

	if !hasDate {
		return nil, warnings, false
	}

	return point, warnings, true
}

func parseCurrency(value, field string, warnings *[]string) float64 {
	parsed := utils.ParseLocaleNumber(value)
	if parsed == 0 && !looksLikeZero(value) {
		*warnings = append(*warnings, fmt.Sprintf("%s: valor ilegível %q assumido como 0", field, value))
	}
	return parsed
}

// looksLikeZero indica se a célula representa zero legitimamente (vazia ou
// apenas zeros com separadores/símbolo de moeda), distinguindo o fallback
// silencioso de um zero real.
func looksLikeZero(value string) bool {
	cleaned := strings.NewReplacer("R$", "", "$", "", " ", "").Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return true
	}

	for _, r := range cleaned {
		if r != '0' && r != '.' && r != ',' {
			return false
		}
	}

	return true
}

func setCount(point *domain.DataPoint, field string, value int) {
	switch field {
	case fieldImpressions:
		point.Impressions = value
	case fieldClicks:
		point.Clicks = value
	case fieldPageViews:
		point.PageViews = value
	case fieldLeads:
		point.Leads = value
	case fieldConversations:
		point.Conversations = value
	case fieldMeetings:
		point.Meetings = value
	case fieldNegotiations:
		point.Negotiations = value
	case fieldSalesPageViews:
		point.SalesPageViews = value
	case fieldCheckouts:
		point.Checkouts = value
	case fieldSales:
		point.Sales = value
	}
}
