package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dashfy/client-dashboard-api/internal/domain"
	"github.com/dashfy/client-dashboard-api/internal/usecases/authenticating"
	"github.com/dashfy/client-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	// ContextKeyAdmin guarda as claims de admin verificadas no contexto da
	// requisição
	ContextKeyAdmin contextKey = "admin_claims"

	// ContextKeyClient guarda as claims de cliente verificadas no contexto da
	// requisição
	ContextKeyClient contextKey = "client_claims"
)

// AdminClaimsFromContext recupera as claims de admin colocadas pelo
// middleware. Handlers repassam as claims explicitamente para os serviços.
func AdminClaimsFromContext(ctx context.Context) (*domain.AdminClaims, bool) {
	claims, ok := ctx.Value(ContextKeyAdmin).(*domain.AdminClaims)
	return claims, ok
}

// ClientClaimsFromContext recupera as claims de cliente colocadas pelo
// middleware.
func ClientClaimsFromContext(ctx context.Context) (*domain.ClientClaims, bool) {
	claims, ok := ctx.Value(ContextKeyClient).(*domain.ClientClaims)
	return claims, ok
}

// bearerToken extrai o token do cabeçalho Authorization. Retorna ok=false
// quando o cabeçalho está ausente ou não segue o formato Bearer.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", false
	}

	return token, true
}

// AdminAuth valida o token de sessão administrativa antes de qualquer lógica
// do handler. Token ausente, malformado ou inválido falha fechado com 401.
func AdminAuth(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de autenticação obrigatório", nil)
				return
			}

			claims, err := authService.ValidateAdminToken(token)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientAuth valida o token de cliente. A verificação de escopo contra o
// dashboard solicitado acontece no serviço, com as claims como argumento
// explícito; aqui só se garante assinatura e formato.
func ClientAuth(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de autenticação obrigatório", nil)
				return
			}

			claims, err := authService.ValidateClientToken(token)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClient, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
