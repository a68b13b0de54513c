package importing

import "errors"

var (
	ErrDashboardNotFound = errors.New("dashboard não encontrado")

	// ErrNoSheetsURL indica que o dashboard não tem planilha configurada
	ErrNoSheetsURL = errors.New("dashboard sem planilha configurada")

	// ErrEmptySheet indica uma planilha sem linha de cabeçalho
	ErrEmptySheet = errors.New("planilha vazia")
)
