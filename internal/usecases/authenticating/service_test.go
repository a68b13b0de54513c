package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/dashfy/client-dashboard-api/infrastructure/repository/mocks"
	"github.com/dashfy/client-dashboard-api/internal/config"
	"github.com/dashfy/client-dashboard-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			AdminSecret:  "segredo-admin-teste",
			ClientSecret: "segredo-cliente-teste",
		},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_LoginAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockDashboardRepo := mocks.NewMockDashboardRepository(ctrl)

	service := NewService(mockUserRepo, mockDashboardRepo, testConfig())

	passwordHash := hashPassword(t, "senha123")

	tests := []struct {
		name        string
		username    string
		password    string
		setup       func()
		expectedErr error
	}{
		{
			name:     "Credenciais válidas emitem token de admin",
			username: "admin",
			password: "senha123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername("admin").Return(&domain.User{
					ID:           1,
					Username:     "admin",
					PasswordHash: passwordHash,
					Role:         "admin",
				}, nil)
			},
		},
		{
			name:     "Senha errada produz erro genérico",
			username: "admin",
			password: "senha-errada",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername("admin").Return(&domain.User{
					ID:           1,
					Username:     "admin",
					PasswordHash: passwordHash,
				}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Usuário inexistente produz o mesmo erro genérico",
			username: "fantasma",
			password: "senha123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername("fantasma").Return(nil, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:        "Credenciais vazias nem consultam o repositório",
			username:    "",
			password:    "",
			setup:       func() {},
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			token, err := service.LoginAdmin(tt.username, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := service.ValidateAdminToken(token)
			assert.NoError(t, err)
			assert.Equal(t, tt.username, claims.Username)
			assert.Equal(t, "admin", claims.Role)
		})
	}
}

func TestService_AuthenticateClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockDashboardRepo := mocks.NewMockDashboardRepository(ctrl)

	service := NewService(mockUserRepo, mockDashboardRepo, testConfig())

	passwordHash := hashPassword(t, "senha-cliente")

	tests := []struct {
		name        string
		dashboardID int
		password    string
		setup       func()
		expectedErr error
	}{
		{
			name:        "Senha válida emite token vinculado ao dashboard",
			dashboardID: 7,
			password:    "senha-cliente",
			setup: func() {
				mockDashboardRepo.EXPECT().GetDashboardByID(7).Return(&domain.Dashboard{
					ID:                 7,
					Name:               "Loja A",
					ClientPasswordHash: passwordHash,
				}, nil)
			},
		},
		{
			name:        "Senha errada",
			dashboardID: 7,
			password:    "outra-senha",
			setup: func() {
				mockDashboardRepo.EXPECT().GetDashboardByID(7).Return(&domain.Dashboard{
					ID:                 7,
					ClientPasswordHash: passwordHash,
				}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:        "Dashboard inexistente produz o mesmo erro da senha errada",
			dashboardID: 99,
			password:    "senha-cliente",
			setup: func() {
				mockDashboardRepo.EXPECT().GetDashboardByID(99).Return(nil, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			token, err := service.AuthenticateClient(tt.dashboardID, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)

			claims, err := service.ValidateClientToken(token)
			assert.NoError(t, err)
			assert.Equal(t, tt.dashboardID, claims.DashboardID)
			assert.Equal(t, domain.ClientTokenType, claims.Type)
		})
	}
}

func TestService_ValidacaoCruzadaDeEscopos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockDashboardRepo := mocks.NewMockDashboardRepository(ctrl)

	service := NewService(mockUserRepo, mockDashboardRepo, testConfig())

	adminHash := hashPassword(t, "senha-admin")
	clientHash := hashPassword(t, "senha-cliente")

	mockUserRepo.EXPECT().GetUserByUsername("admin").Return(&domain.User{
		ID:           1,
		Username:     "admin",
		PasswordHash: adminHash,
		Role:         "admin",
	}, nil)
	adminToken, err := service.LoginAdmin("admin", "senha-admin")
	assert.NoError(t, err)

	mockDashboardRepo.EXPECT().GetDashboardByID(7).Return(&domain.Dashboard{
		ID:                 7,
		ClientPasswordHash: clientHash,
	}, nil)
	clientToken, err := service.AuthenticateClient(7, "senha-cliente")
	assert.NoError(t, err)

	t.Run("Token de admin não vale como token de cliente", func(t *testing.T) {
		claims, err := service.ValidateClientToken(adminToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Token de cliente não vale como sessão administrativa", func(t *testing.T) {
		claims, err := service.ValidateAdminToken(clientToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Assinatura de cliente com payload errado é rejeitada", func(t *testing.T) {
		// Token assinado com o segredo certo mas sem o formato de cliente
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.ClientClaims{
			DashboardID: 7,
			Type:        "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		tokenString, err := forged.SignedString([]byte("segredo-cliente-teste"))
		assert.NoError(t, err)

		claims, err := service.ValidateClientToken(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Token expirado é rejeitado", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.ClientClaims{
			DashboardID: 7,
			Type:        domain.ClientTokenType,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		tokenString, err := expired.SignedString([]byte("segredo-cliente-teste"))
		assert.NoError(t, err)

		claims, err := service.ValidateClientToken(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("Token adulterado é rejeitado", func(t *testing.T) {
		claims, err := service.ValidateClientToken(clientToken + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})
}

func TestService_EnsureAdminUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockDashboardRepo := mocks.NewMockDashboardRepository(ctrl)

	service := NewService(mockUserRepo, mockDashboardRepo, testConfig())

	tests := []struct {
		name     string
		username string
		password string
		setup    func()
	}{
		{
			name:     "Credenciais vazias desabilitam o bootstrap",
			username: "",
			password: "",
			setup:    func() {},
		},
		{
			name:     "Usuário existente não é recriado",
			username: "admin",
			password: "senha123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername("admin").Return(&domain.User{
					ID:       1,
					Username: "admin",
				}, nil)
			},
		},
		{
			name:     "Usuário novo é criado com senha em hash",
			username: "admin",
			password: "senha123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByUsername("admin").Return(nil, nil)
				mockUserRepo.EXPECT().
					CreateUser(gomock.Any()).
					DoAndReturn(func(user *domain.User) (*domain.User, error) {
						assert.Equal(t, "admin", user.Username)
						assert.Equal(t, "admin", user.Role)
						assert.NotEqual(t, "senha123", user.PasswordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
						return user, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.EnsureAdminUser(tt.username, tt.password)
			assert.NoError(t, err)
		})
	}
}
