package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ParseLocaleNumber converte valores numéricos vindos de planilhas brasileiras
// (ex: "R$ 1.234,56") para float64. Células vazias ou ilegíveis resultam em 0,
// para que uma célula mal formatada não aborte a importação inteira.
func ParseLocaleNumber(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}

	cleaned = strings.NewReplacer("R$", "", "$", "", " ", "", "\t", "", " ", "").Replace(cleaned)

	hasDot := strings.Contains(cleaned, ".")
	hasComma := strings.Contains(cleaned, ",")

	switch {
	case hasDot && hasComma:
		// Formato brasileiro: ponto é separador de milhar, vírgula é decimal
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case hasComma:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return value
}

// groupedCountPattern reconhece contadores com ponto como separador de milhar
// ("1.234", "15.000"), que não podem passar pelo parser de moeda: lá um ponto
// sozinho é decimal.
var groupedCountPattern = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// ParseCount converte contadores inteiros de planilha. Valores vazios, não
// numéricos ou negativos resultam em 0, seguindo a mesma política permissiva
// do parser de moeda.
func ParseCount(raw string) int {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}

	// Planilhas às vezes formatam contadores como "1.234"
	if groupedCountPattern.MatchString(cleaned) {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	value, err := strconv.Atoi(cleaned)
	if err != nil {
		value = int(ParseLocaleNumber(cleaned))
	}

	if value < 0 {
		return 0
	}

	return value
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
