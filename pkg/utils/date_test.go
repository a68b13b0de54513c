package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *time.Time
		hasError bool
	}{
		{
			name:     "Data ISO válida",
			input:    "2024-01-15",
			expected: timePtr(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "String vazia significa ausência de filtro",
			input:    "",
			expected: nil,
		},
		{
			name:     "Formato brasileiro não é aceito em query string",
			input:    "15/01/2024",
			hasError: true,
		},
		{
			name:     "Data inválida",
			input:    "2024-13-45",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, *tt.expected, *result)
			}
		})
	}
}

func TestParseSheetDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{
			name:     "Formato ISO",
			input:    "2024-01-15",
			expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Formato brasileiro com zeros",
			input:    "15/01/2024",
			expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Formato brasileiro sem zeros à esquerda",
			input:    "5/1/2024",
			expected: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:  "Célula vazia não tem data",
			input: "",
			ok:    false,
		},
		{
			name:  "Texto não é data",
			input: "total",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ParseSheetDate(tt.input)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
