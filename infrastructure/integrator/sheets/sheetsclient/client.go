package sheetsclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dashfy/client-dashboard-api/internal/config"
)

type Client interface {
	// FetchCSV baixa o export CSV da planilha. A requisição é limitada pelo
	// timeout do cliente HTTP; não há retry automático.
	FetchCSV(ctx context.Context, exportURL string) ([]byte, error)
}

type SheetsClient struct {
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Sheets.FetchTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *SheetsClient) FetchCSV(ctx context.Context, exportURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resposta inesperada da planilha: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
