package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminClaims é o payload do token de sessão administrativa. Não é vinculado a
// nenhum dashboard específico.
type AdminClaims struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// ClientTokenType é o valor obrigatório do campo "type" em tokens de cliente
const ClientTokenType = "client"

// ClientClaims é o payload do token de cliente, com escopo restrito a um único
// dashboard. A verificação de escopo compara DashboardID com o recurso
// solicitado em toda leitura pública, independente da assinatura ser válida.
type ClientClaims struct {
	DashboardID int    `json:"dashboardId"`
	Type        string `json:"type"`
	jwt.RegisteredClaims
}
