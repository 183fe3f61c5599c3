package metaads

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/roi-analytics-api/infrastructure/integrator/metaads/domain"
	clientmocks "github.com/vfg2006/roi-analytics-api/infrastructure/integrator/metaads/metaclient/mocks"
	"github.com/vfg2006/roi-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/roi-analytics-api/internal/config"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:                "acc-meta-1",
		OwnerID:           9,
		Platform:          domain.PlatformMeta,
		ExternalAccountID: "9876543210",
		AccessToken:       "token-longa-duracao",
		IsActive:          true,
	}
}

func TestMetaAdsIntegrator_Sync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	mockSpendRepo := mocks.NewMockSpendRepository(ctrl)
	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)

	integrator := New(&config.Config{}, mockClient, mockSpendRepo, mockAccountRepo)

	t.Run("Deve normalizar o gasto diário com o campaign_id sentinela", func(t *testing.T) {
		account := testAccount()

		mockClient.EXPECT().
			GetDailySpendInsights("9876543210", "token-longa-duracao").
			Return([]metadomain.InsightRow{
				{Spend: "87.30", DateStart: "2024-01-15", AccountID: "9876543210"},
				{Spend: "N/A", DateStart: "2024-01-16", AccountID: "9876543210"},
			}, nil)

		var captured []*domain.SpendRecord
		mockSpendRepo.EXPECT().
			UpsertSyncRows(gomock.Any()).
			DoAndReturn(func(records []*domain.SpendRecord) error {
				captured = records
				return nil
			})

		outcome, err := integrator.Sync(account)

		assert.NoError(t, err)
		assert.True(t, outcome.Success)
		assert.Equal(t, 2, outcome.Count)

		assert.Equal(t, 9, captured[0].OwnerID)
		assert.Equal(t, "2024-01-15", captured[0].Date.Format(time.DateOnly))
		assert.Equal(t, 87.30, captured[0].SpendAmount)
		assert.Equal(t, domain.MetaSyncCampaignID, captured[0].CampaignID)

		// Gasto não numérico vira zero, linha não é descartada
		assert.Equal(t, 0.0, captured[1].SpendAmount)
	})

	t.Run("Token expirado deve desativar a conta", func(t *testing.T) {
		account := testAccount()

		mockClient.EXPECT().
			GetDailySpendInsights("9876543210", "token-longa-duracao").
			Return(nil, domain.NewSyncError(
				domain.SyncErrCredentialExpired,
				domain.PlatformMeta,
				errors.New("Error validating access token: Session has expired"),
			))

		mockAccountRepo.EXPECT().
			Deactivate("acc-meta-1").
			Return(nil)

		outcome, err := integrator.Sync(account)

		assert.Error(t, err)
		assert.Nil(t, outcome)
		assert.Equal(t, domain.SyncErrCredentialExpired, domain.ClassifySyncError(err))
	})

	t.Run("Rate limit não deve desativar a conta", func(t *testing.T) {
		account := testAccount()

		mockClient.EXPECT().
			GetDailySpendInsights("9876543210", "token-longa-duracao").
			Return(nil, domain.NewSyncError(
				domain.SyncErrRateLimited,
				domain.PlatformMeta,
				errors.New("User request limit reached"),
			))

		outcome, err := integrator.Sync(account)

		assert.Error(t, err)
		assert.Nil(t, outcome)
		assert.Equal(t, domain.SyncErrRateLimited, domain.ClassifySyncError(err))
	})

	t.Run("Linha com data inválida deve ser ignorada", func(t *testing.T) {
		account := testAccount()

		mockClient.EXPECT().
			GetDailySpendInsights("9876543210", "token-longa-duracao").
			Return([]metadomain.InsightRow{
				{Spend: "10.00", DateStart: "15/01/2024"},
				{Spend: "20.00", DateStart: "2024-01-16"},
			}, nil)

		mockSpendRepo.EXPECT().
			UpsertSyncRows(gomock.Len(1)).
			Return(nil)

		outcome, err := integrator.Sync(account)

		assert.NoError(t, err)
		assert.Equal(t, 1, outcome.Count)
	})
}

func TestMetaAdsIntegrator_Platform(t *testing.T) {
	integrator := New(&config.Config{}, nil, nil, nil)
	assert.Equal(t, domain.PlatformMeta, integrator.Platform())
}
