package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dashfy/client-dashboard-api/internal/domain"
	"github.com/dashfy/client-dashboard-api/internal/usecases/authenticating"
)

// fakeAuthenticator aceita apenas os tokens literais "admin-ok" e "client-ok"
type fakeAuthenticator struct{}

func (f *fakeAuthenticator) LoginAdmin(username, password string) (string, error) {
	return "", nil
}

func (f *fakeAuthenticator) AuthenticateClient(dashboardID int, password string) (string, error) {
	return "", nil
}

func (f *fakeAuthenticator) ValidateAdminToken(token string) (*domain.AdminClaims, error) {
	if token != "admin-ok" {
		return nil, authenticating.ErrInvalidToken
	}
	return &domain.AdminClaims{UserID: 1, Username: "admin", Role: "admin"}, nil
}

func (f *fakeAuthenticator) ValidateClientToken(token string) (*domain.ClientClaims, error) {
	if token != "client-ok" {
		return nil, authenticating.ErrInvalidToken
	}
	return &domain.ClientClaims{DashboardID: 7, Type: domain.ClientTokenType}, nil
}

func (f *fakeAuthenticator) EnsureAdminUser(username, password string) error {
	return nil
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "Token válido passa e carrega as claims",
			authHeader:     "Bearer admin-ok",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Cabeçalho ausente falha fechado",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Cabeçalho sem o prefixo Bearer",
			authHeader:     "admin-ok",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token inválido",
			authHeader:     "Bearer qualquer-coisa",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token de cliente não abre rota administrativa",
			authHeader:     "Bearer client-ok",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true

				claims, ok := AdminClaimsFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, "admin", claims.Username)

				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/dashboards", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			AdminAuth(&fakeAuthenticator{})(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, handlerCalled)

			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, recorder.Body.String(), "AUTH_002")
			}
		})
	}
}

func TestClientAuth(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "Token de cliente válido passa",
			authHeader:     "Bearer client-ok",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Token de admin não abre rota de cliente",
			authHeader:     "Bearer admin-ok",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Cabeçalho ausente",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true

				claims, ok := ClientClaimsFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, 7, claims.DashboardID)

				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/public/dashboards/7", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			ClientAuth(&fakeAuthenticator{})(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, handlerCalled)
		})
	}
}
