package googleads

import (
	"time"

	"github.com/pkg/errors"
	googledomain "github.com/vfg2006/roi-analytics-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/roi-analytics-api/infrastructure/integrator/googleads/googleclient"
	"github.com/vfg2006/roi-analytics-api/infrastructure/repository"
	"github.com/vfg2006/roi-analytics-api/internal/config"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"github.com/vfg2006/roi-analytics-api/pkg/log"
)

const microsPerUnit = 1_000_000

// GoogleAdsIntegrator sincroniza o gasto diário de uma conta Google Ads para a
// coleção ad_spend. Fluxo: renovar token, buscar relatório, normalizar,
// upsert; o token renovado só é persistido depois do upsert bem-sucedido.
type GoogleAdsIntegrator struct {
	cfg         *config.Config
	client      googleclient.Client
	spendRepo   repository.SpendRepository
	accountRepo repository.AccountRepository
}

func New(
	cfg *config.Config,
	client googleclient.Client,
	spendRepo repository.SpendRepository,
	accountRepo repository.AccountRepository,
) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:         cfg,
		client:      client,
		spendRepo:   spendRepo,
		accountRepo: accountRepo,
	}
}

func (s *GoogleAdsIntegrator) Platform() domain.AdPlatform {
	return domain.PlatformGoogle
}

func (s *GoogleAdsIntegrator) Sync(account *domain.AdAccount) (*domain.SyncOutcome, error) {
	logger := log.L.WithFields(log.Fields{
		"platform":   domain.PlatformGoogle,
		"account_id": account.ExternalAccountID,
	})

	// 1. Renovar o token de acesso proativamente com o refresh token armazenado
	tokenResp, err := s.client.RefreshAccessToken(account.RefreshToken)
	if err != nil {
		s.deactivateIfRevoked(account, err, logger)
		return nil, err
	}

	// 2. Buscar o relatório diário dos últimos 30 dias
	rows, err := s.client.SearchDailySpend(account.ExternalAccountID, tokenResp.AccessToken)
	if err != nil {
		s.deactivateIfRevoked(account, err, logger)
		return nil, err
	}

	// 3. Normalizar para o esquema de SpendRecord
	records := s.normalize(account, rows)

	// 4. Upsert pela chave (owner_id, date, campaign_id)
	if err := s.spendRepo.UpsertSyncRows(records); err != nil {
		return nil, domain.NewSyncError(domain.SyncErrUnknown, domain.PlatformGoogle, err)
	}

	// 5. Persistir o token renovado somente agora, com a sincronização
	// concluída. Se mudou em relação ao armazenado, gravamos token e expiry.
	if tokenResp.AccessToken != account.AccessToken {
		expiresAt := time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
		if err := s.accountRepo.UpdateToken(account.ID, tokenResp.AccessToken, expiresAt); err != nil {
			logger.WithError(err).Error("google: falha ao persistir token renovado")
			return nil, domain.NewSyncError(domain.SyncErrUnknown, domain.PlatformGoogle, err)
		}
	}

	logger.WithField("rows", len(records)).Info("google: sincronização de gastos concluída")

	return &domain.SyncOutcome{Success: true, Count: len(records)}, nil
}

func (s *GoogleAdsIntegrator) normalize(account *domain.AdAccount, rows []googledomain.ReportRow) []*domain.SpendRecord {
	records := make([]*domain.SpendRecord, 0, len(rows))

	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Segments.Date)
		if err != nil {
			log.L.WithFields(log.Fields{
				"account_id": account.ExternalAccountID,
				"date":       row.Segments.Date,
			}).Warn("google: linha com data inválida ignorada")
			continue
		}

		// Micros para valor monetário; valores não numéricos viram 0,
		// seguindo a política de coerção leniente
		costMicros, err := row.Metrics.CostMicros.Float64()
		if err != nil {
			costMicros = 0
		}

		impressions, err := row.Metrics.Impressions.Int64()
		if err != nil {
			impressions = 0
		}

		records = append(records, &domain.SpendRecord{
			OwnerID:     account.OwnerID,
			Date:        date,
			SpendAmount: costMicros / microsPerUnit,
			CampaignID:  domain.GoogleSyncCampaignID,
			Impressions: int(impressions),
		})
	}

	return records
}

// deactivateIfRevoked desativa a conta quando a falha indica credencial
// expirada ou revogada, para que execuções futuras a pulem
func (s *GoogleAdsIntegrator) deactivateIfRevoked(account *domain.AdAccount, err error, logger log.Logger) {
	if domain.ClassifySyncError(err) != domain.SyncErrCredentialExpired {
		return
	}

	if deactivateErr := s.accountRepo.Deactivate(account.ID); deactivateErr != nil {
		logger.WithError(errors.Wrap(deactivateErr, "falha ao desativar conta")).
			Error("google: conta com credencial revogada continua ativa")
		return
	}

	logger.Warn("google: credencial revogada, conta desativada")
}
