package authenticating

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/dashfy/client-dashboard-api/infrastructure/repository"
	"github.com/dashfy/client-dashboard-api/internal/config"
	"github.com/dashfy/client-dashboard-api/internal/domain"
)

type Authenticator interface {
	// LoginAdmin verifica as credenciais do admin e emite um token de sessão
	// administrativa, sem vínculo com dashboard algum.
	LoginAdmin(username, password string) (string, error)

	// AuthenticateClient verifica a senha de cliente de um dashboard e emite
	// um token com escopo restrito àquele dashboard.
	AuthenticateClient(dashboardID int, password string) (string, error)

	ValidateAdminToken(tokenString string) (*domain.AdminClaims, error)
	ValidateClientToken(tokenString string) (*domain.ClientClaims, error)

	// EnsureAdminUser cria o usuário administrador inicial caso ainda não
	// exista. Usado no bootstrap da aplicação.
	EnsureAdminUser(username, password string) error
}

type Service struct {
	userRepo      repository.UserRepository
	dashboardRepo repository.DashboardRepository
	cfg           *config.Config
}

func NewService(
	userRepo repository.UserRepository,
	dashboardRepo repository.DashboardRepository,
	cfg *config.Config,
) Authenticator {
	return &Service{
		userRepo:      userRepo,
		dashboardRepo: dashboardRepo,
		cfg:           cfg,
	}
}

func (s *Service) LoginAdmin(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return "", err
	}

	// Usuário inexistente e senha errada produzem o mesmo erro
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := domain.AdminClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.AdminSecret))
}

func (s *Service) AuthenticateClient(dashboardID int, password string) (string, error) {
	dashboard, err := s.dashboardRepo.GetDashboardByID(dashboardID)
	if err != nil {
		return "", err
	}

	if dashboard == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dashboard.ClientPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := domain.ClientClaims{
		DashboardID: dashboard.ID,
		Type:        domain.ClientTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	// Segredo distinto do escopo admin: um token de cliente nunca pode ser
	// validado como sessão administrativa, nem o contrário
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.ClientSecret))
}

func (s *Service) ValidateAdminToken(tokenString string) (*domain.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.AdminSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) ValidateClientToken(tokenString string) (*domain.ClientClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.ClientClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.ClientSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.ClientClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// Assinatura válida não basta: o formato do payload também precisa ser o
	// de um token de cliente
	if claims.Type != domain.ClientTokenType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) EnsureAdminUser(username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	existing, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.userRepo.CreateUser(&domain.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         "admin",
	})
	if err != nil {
		return err
	}

	logrus.Infof("Usuário administrador inicial criado: %s", username)
	return nil
}
