package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"regexp"

	"github.com/pkg/errors"

	"github.com/dashfy/client-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
)

var (
	// ErrInvalidSheetsURL indica que a referência não tem o formato esperado
	// de URL do Google Sheets
	ErrInvalidSheetsURL = errors.New("URL do Google Sheets inválida")

	// ErrSheetUnavailable indica falha de rede ou resposta não-2xx ao buscar o
	// export da planilha
	ErrSheetUnavailable = errors.New("planilha indisponível")
)

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

type SheetsIntegrator interface {
	// FetchRows resolve a URL da planilha para o export CSV, baixa e divide em
	// registros. A primeira linha retornada é o cabeçalho.
	FetchRows(ctx context.Context, sheetsURL string) ([][]string, error)
}

type Integrator struct {
	client sheetsclient.Client
}

func New(client sheetsclient.Client) SheetsIntegrator {
	return &Integrator{
		client: client,
	}
}

// ResolveExportURL converte uma URL de visualização do Google Sheets na URL de
// export CSV correspondente.
func ResolveExportURL(sheetsURL string) (string, error) {
	match := spreadsheetIDPattern.FindStringSubmatch(sheetsURL)
	if match == nil {
		return "", ErrInvalidSheetsURL
	}

	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=0", match[1]), nil
}

func (i *Integrator) FetchRows(ctx context.Context, sheetsURL string) ([][]string, error) {
	exportURL, err := ResolveExportURL(sheetsURL)
	if err != nil {
		return nil, err
	}

	data, err := i.client.FetchCSV(ctx, exportURL)
	if err != nil {
		return nil, errors.Wrap(ErrSheetUnavailable, err.Error())
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // planilhas reais têm linhas com colunas faltando

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(ErrSheetUnavailable, err.Error())
	}

	return records, nil
}
