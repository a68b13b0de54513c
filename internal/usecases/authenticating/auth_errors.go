package authenticating

import "errors"

var (
	// ErrInvalidCredentials cobre tanto usuário/dashboard inexistente quanto
	// senha incorreta. A mensagem é a mesma de propósito, para não permitir
	// enumeração de usuários ou dashboards existentes.
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	// ErrInvalidToken indica token ausente, malformado, expirado ou com
	// assinatura inválida
	ErrInvalidToken = errors.New("token inválido")

	// ErrScopeMismatch indica um token de cliente legítimo apresentado contra
	// um dashboard diferente do que ele codifica
	ErrScopeMismatch = errors.New("acesso negado para este dashboard")

	// ErrDashboardNotFound indica dashboard inexistente em operações internas.
	// Nas rotas públicas de autenticação é traduzido para a mesma resposta de
	// credenciais inválidas.
	ErrDashboardNotFound = errors.New("dashboard não encontrado")
)
