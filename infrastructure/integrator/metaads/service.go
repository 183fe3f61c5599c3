package metaads

import (
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/roi-analytics-api/infrastructure/integrator/metaads/domain"
	"github.com/vfg2006/roi-analytics-api/infrastructure/integrator/metaads/metaclient"
	"github.com/vfg2006/roi-analytics-api/infrastructure/repository"
	"github.com/vfg2006/roi-analytics-api/internal/config"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"github.com/vfg2006/roi-analytics-api/pkg/log"
	"github.com/vfg2006/roi-analytics-api/pkg/utils"
)

// MetaAdsIntegrator sincroniza o gasto diário de uma conta Meta Ads. Ao
// contrário do Google, o Meta usa token de longa duração: não há fase de
// refresh, e uma credencial reportada como expirada desativa a conta.
type MetaAdsIntegrator struct {
	cfg         *config.Config
	client      metaclient.Client
	spendRepo   repository.SpendRepository
	accountRepo repository.AccountRepository
}

func New(
	cfg *config.Config,
	client metaclient.Client,
	spendRepo repository.SpendRepository,
	accountRepo repository.AccountRepository,
) *MetaAdsIntegrator {
	return &MetaAdsIntegrator{
		cfg:         cfg,
		client:      client,
		spendRepo:   spendRepo,
		accountRepo: accountRepo,
	}
}

func (s *MetaAdsIntegrator) Platform() domain.AdPlatform {
	return domain.PlatformMeta
}

func (s *MetaAdsIntegrator) Sync(account *domain.AdAccount) (*domain.SyncOutcome, error) {
	logger := log.L.WithFields(log.Fields{
		"platform":   domain.PlatformMeta,
		"account_id": account.ExternalAccountID,
	})

	rows, err := s.client.GetDailySpendInsights(account.ExternalAccountID, account.AccessToken)
	if err != nil {
		s.deactivateIfExpired(account, err, logger)
		return nil, err
	}

	records := s.normalize(account, rows)

	if err := s.spendRepo.UpsertSyncRows(records); err != nil {
		return nil, domain.NewSyncError(domain.SyncErrUnknown, domain.PlatformMeta, err)
	}

	logger.WithField("rows", len(records)).Info("meta: sincronização de gastos concluída")

	return &domain.SyncOutcome{Success: true, Count: len(records)}, nil
}

func (s *MetaAdsIntegrator) normalize(account *domain.AdAccount, rows []metadomain.InsightRow) []*domain.SpendRecord {
	records := make([]*domain.SpendRecord, 0, len(rows))

	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.DateStart)
		if err != nil {
			log.L.WithFields(log.Fields{
				"account_id": account.ExternalAccountID,
				"date":       row.DateStart,
			}).Warn("meta: linha com data inválida ignorada")
			continue
		}

		records = append(records, &domain.SpendRecord{
			OwnerID: account.OwnerID,
			Date:    date,
			// O Meta envia o gasto como string; coerção leniente
			SpendAmount: utils.LenientFloat(row.Spend),
			CampaignID:  domain.MetaSyncCampaignID,
		})
	}

	return records
}

func (s *MetaAdsIntegrator) deactivateIfExpired(account *domain.AdAccount, err error, logger log.Logger) {
	if domain.ClassifySyncError(err) != domain.SyncErrCredentialExpired {
		return
	}

	if deactivateErr := s.accountRepo.Deactivate(account.ID); deactivateErr != nil {
		logger.WithError(errors.Wrap(deactivateErr, "falha ao desativar conta")).
			Error("meta: conta com credencial expirada continua ativa")
		return
	}

	logger.Warn("meta: credencial expirada, conta desativada")
}
