package utils

import "time"

// ParseDate interpreta datas ISO (2006-01-02) vindas de query strings.
// String vazia retorna nil, indicando ausência de filtro.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseSheetDate interpreta a coluna de data de uma planilha, aceitando tanto
// o formato ISO quanto o formato brasileiro (02/01/2006).
func ParseSheetDate(dateStr string) (time.Time, bool) {
	layouts := []string{time.DateOnly, "02/01/2006", "2/1/2006"}
	for _, layout := range layouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}
