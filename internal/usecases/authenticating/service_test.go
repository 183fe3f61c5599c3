package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/roi-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/roi-analytics-api/internal/config"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret: "segredo-de-teste",
		},
	}
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())

	t.Run("Deve criar usuário com senha criptografada", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("novo@example.com").
			Return(nil, nil)

		mockUserRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.NotEqual(t, "senha123", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
				assert.True(t, user.Active)

				user.ID = 1
				return user, nil
			})

		user, err := service.CreateUser(&domain.User{
			Name:  "Novo Usuário",
			Email: "Novo@Example.com", // Email deve ser normalizado
		}, "senha123")

		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "novo@example.com", user.Email)
	})

	t.Run("Deve rejeitar email já cadastrado", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("existente@example.com").
			Return(&domain.User{ID: 5, Email: "existente@example.com"}, nil)

		user, err := service.CreateUser(&domain.User{
			Name:  "Outro",
			Email: "existente@example.com",
		}, "senha123")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Deve rejeitar dados obrigatórios ausentes", func(t *testing.T) {
		user, err := service.CreateUser(&domain.User{Email: "a@b.com"}, "")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())

	activeUser := &domain.User{
		ID:           1,
		Name:         "Usuário",
		Email:        "user@example.com",
		PasswordHash: hashPassword(t, "senha123"),
		Active:       true,
	}

	t.Run("Credenciais válidas devem gerar um token válido", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("user@example.com").
			Return(activeUser, nil)

		token, err := service.LoginUser("user@example.com", "senha123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "user@example.com", claims.UserEmail)
	})

	t.Run("Senha incorreta deve falhar com credenciais inválidas", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("user@example.com").
			Return(activeUser, nil)

		token, err := service.LoginUser("user@example.com", "senha-errada")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário inexistente deve falhar com credenciais inválidas", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("ninguem@example.com").
			Return(nil, nil)

		token, err := service.LoginUser("ninguem@example.com", "senha123")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário desativado não deve conseguir logar", func(t *testing.T) {
		disabled := &domain.User{
			ID:           2,
			Email:        "inativo@example.com",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       false,
		}

		mockUserRepo.EXPECT().
			GetUserByEmail("inativo@example.com").
			Return(disabled, nil)

		token, err := service.LoginUser("inativo@example.com", "senha123")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserDisabled)
	})
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, newTestConfig())

	t.Run("Token malformado deve ser rejeitado", func(t *testing.T) {
		claims, err := service.ValidateToken("nao-e-um-jwt")

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token assinado com outro segredo deve ser rejeitado", func(t *testing.T) {
		other := NewService(mockUserRepo, &config.Config{
			Auth: config.Auth{Secret: "outro-segredo"},
		})

		mockUserRepo.EXPECT().
			GetUserByEmail("user@example.com").
			Return(&domain.User{
				ID:           1,
				Email:        "user@example.com",
				PasswordHash: hashPassword(t, "senha123"),
				Active:       true,
			}, nil)

		token, err := other.LoginUser("user@example.com", "senha123")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
