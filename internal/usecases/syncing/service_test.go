package syncing

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/roi-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/roi-analytics-api/internal/config"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
	syncmocks "github.com/vfg2006/roi-analytics-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		SpendSync: config.SpendSync{
			MaxConcurrentJobs: 3,
		},
	}
}

func TestService_SyncOwnerAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)

	mockGoogle := syncmocks.NewMockSpendSyncer(ctrl)
	mockGoogle.EXPECT().Platform().Return(domain.PlatformGoogle).AnyTimes()

	mockMeta := syncmocks.NewMockSpendSyncer(ctrl)
	mockMeta.EXPECT().Platform().Return(domain.PlatformMeta).AnyTimes()

	service := NewService(mockAccountRepo, newTestConfig(), mockGoogle, mockMeta)

	t.Run("Falha em uma conta não deve abortar as demais", func(t *testing.T) {
		accounts := []*domain.AdAccount{
			{ID: "acc-1", Platform: domain.PlatformGoogle, ExternalAccountID: "111"},
			{ID: "acc-2", Platform: domain.PlatformMeta, ExternalAccountID: "222"},
			{ID: "acc-3", Platform: domain.PlatformGoogle, ExternalAccountID: "333"},
		}

		mockAccountRepo.EXPECT().
			ListActiveByOwner(7).
			Return(accounts, nil)

		mockGoogle.EXPECT().
			Sync(accounts[0]).
			Return(&domain.SyncOutcome{Success: true, Count: 30}, nil)

		mockMeta.EXPECT().
			Sync(accounts[1]).
			Return(nil, domain.NewSyncError(
				domain.SyncErrRateLimited,
				domain.PlatformMeta,
				errors.New("limite de requisições atingido"),
			))

		mockGoogle.EXPECT().
			Sync(accounts[2]).
			Return(&domain.SyncOutcome{Success: true, Count: 28}, nil)

		summary, err := service.SyncOwnerAccounts(7)

		assert.NoError(t, err)
		assert.Len(t, summary.Results, 3)

		// Um resultado por conta, na ordem da listagem
		assert.Equal(t, "111", summary.Results[0].ExternalAccountID)
		assert.Equal(t, domain.SyncStatusSuccess, summary.Results[0].Status)
		assert.Equal(t, 30, summary.Results[0].Outcome.Count)

		assert.Equal(t, "222", summary.Results[1].ExternalAccountID)
		assert.Equal(t, domain.SyncStatusError, summary.Results[1].Status)
		assert.Equal(t, string(domain.SyncErrRateLimited), summary.Results[1].ErrorKind)
		assert.NotEmpty(t, summary.Results[1].Error)

		assert.Equal(t, "333", summary.Results[2].ExternalAccountID)
		assert.Equal(t, domain.SyncStatusSuccess, summary.Results[2].Status)
	})

	t.Run("Owner sem contas ativas deve receber resumo vazio com mensagem", func(t *testing.T) {
		mockAccountRepo.EXPECT().
			ListActiveByOwner(7).
			Return([]*domain.AdAccount{}, nil)

		summary, err := service.SyncOwnerAccounts(7)

		assert.NoError(t, err)
		assert.Len(t, summary.Results, 0)
		assert.NotEmpty(t, summary.Message)
	})

	t.Run("Plataforma sem adaptador deve gerar resultado de erro", func(t *testing.T) {
		accounts := []*domain.AdAccount{
			{ID: "acc-1", Platform: domain.AdPlatform("tiktok"), ExternalAccountID: "999"},
		}

		mockAccountRepo.EXPECT().
			ListActiveByOwner(7).
			Return(accounts, nil)

		summary, err := service.SyncOwnerAccounts(7)

		assert.NoError(t, err)
		assert.Len(t, summary.Results, 1)
		assert.Equal(t, domain.SyncStatusError, summary.Results[0].Status)
		assert.Equal(t, string(domain.SyncErrUnknown), summary.Results[0].ErrorKind)
	})

	t.Run("Erro ao listar contas deve ser propagado", func(t *testing.T) {
		mockAccountRepo.EXPECT().
			ListActiveByOwner(7).
			Return(nil, assert.AnError)

		summary, err := service.SyncOwnerAccounts(7)

		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}

func TestService_SyncAllActiveAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)

	mockGoogle := syncmocks.NewMockSpendSyncer(ctrl)
	mockGoogle.EXPECT().Platform().Return(domain.PlatformGoogle).AnyTimes()

	service := NewService(mockAccountRepo, newTestConfig(), mockGoogle)

	t.Run("Deve sincronizar contas de todos os usuários", func(t *testing.T) {
		accounts := []*domain.AdAccount{
			{ID: "acc-1", OwnerID: 1, Platform: domain.PlatformGoogle, ExternalAccountID: "111"},
			{ID: "acc-2", OwnerID: 2, Platform: domain.PlatformGoogle, ExternalAccountID: "222"},
		}

		mockAccountRepo.EXPECT().
			ListActive().
			Return(accounts, nil)

		mockGoogle.EXPECT().
			Sync(gomock.Any()).
			Return(&domain.SyncOutcome{Success: true, Count: 30}, nil).
			Times(2)

		summary, err := service.SyncAllActiveAccounts()

		assert.NoError(t, err)
		assert.Len(t, summary.Results, 2)
		assert.False(t, summary.SyncedAt.IsZero())
	})
}

func TestClassifySyncError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected domain.SyncErrorKind
	}{
		{
			name: "SyncError de rate limit deve manter a classificação",
			err: domain.NewSyncError(
				domain.SyncErrRateLimited,
				domain.PlatformMeta,
				errors.New("too many calls"),
			),
			expected: domain.SyncErrRateLimited,
		},
		{
			name: "SyncError de credencial expirada deve manter a classificação",
			err: domain.NewSyncError(
				domain.SyncErrCredentialExpired,
				domain.PlatformGoogle,
				errors.New("invalid_grant"),
			),
			expected: domain.SyncErrCredentialExpired,
		},
		{
			name: "SyncError embrulhado deve ser encontrado na cadeia",
			err: errors.Wrap(domain.NewSyncError(
				domain.SyncErrRateLimited,
				domain.PlatformMeta,
				errors.New("too many calls"),
			), "erro ao sincronizar"),
			expected: domain.SyncErrRateLimited,
		},
		{
			name:     "Erro genérico deve ser classificado como desconhecido",
			err:      errors.New("connection refused"),
			expected: domain.SyncErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ClassifySyncError(tt.err))
		})
	}
}
