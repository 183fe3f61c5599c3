package syncing

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/roi-analytics-api/infrastructure/repository"
	"github.com/vfg2006/roi-analytics-api/internal/config"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"github.com/vfg2006/roi-analytics-api/pkg/log"
)

// SpendSyncer é o contrato comum dos adaptadores de plataforma. O conjunto de
// implementações é fechado e registrado na construção do serviço; plataformas
// novas entram por revisão, não por plugin.
type SpendSyncer interface {
	Platform() domain.AdPlatform
	Sync(account *domain.AdAccount) (*domain.SyncOutcome, error)
}

// Syncer executa a sincronização de gastos das contas conectadas
type Syncer interface {
	SyncOwnerAccounts(ownerID int) (*domain.SyncSummary, error)
	SyncAllActiveAccounts() (*domain.SyncSummary, error)
}

type Service struct {
	accountRepo   repository.AccountRepository
	adapters      map[domain.AdPlatform]SpendSyncer
	maxConcurrent int
}

func NewService(accountRepo repository.AccountRepository, cfg *config.Config, adapters ...SpendSyncer) Syncer {
	byPlatform := make(map[domain.AdPlatform]SpendSyncer, len(adapters))
	for _, adapter := range adapters {
		byPlatform[adapter.Platform()] = adapter
	}

	maxConcurrent := cfg.SpendSync.MaxConcurrentJobs
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &Service{
		accountRepo:   accountRepo,
		adapters:      byPlatform,
		maxConcurrent: maxConcurrent,
	}
}

// SyncOwnerAccounts sincroniza todas as contas ativas do owner autenticado
func (s *Service) SyncOwnerAccounts(ownerID int) (*domain.SyncSummary, error) {
	accounts, err := s.accountRepo.ListActiveByOwner(ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar contas de anúncios do usuário")
	}

	if len(accounts) == 0 {
		return &domain.SyncSummary{
			Results:  []*domain.AccountSyncResult{},
			SyncedAt: time.Now(),
			Message:  "Nenhuma conta de anúncios ativa encontrada. Conecte uma conta primeiro.",
		}, nil
	}

	return s.syncAccounts(accounts), nil
}

// SyncAllActiveAccounts sincroniza as contas ativas de todos os usuários.
// Usado pelo agendador noturno.
func (s *Service) SyncAllActiveAccounts() (*domain.SyncSummary, error) {
	accounts, err := s.accountRepo.ListActive()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar contas de anúncios ativas")
	}

	return s.syncAccounts(accounts), nil
}

// syncAccounts executa os adaptadores com concorrência limitada. Cada conta
// produz exatamente um resultado, na mesma ordem da listagem; a falha de uma
// conta nunca aborta as demais.
func (s *Service) syncAccounts(accounts []*domain.AdAccount) *domain.SyncSummary {
	results := make([]*domain.AccountSyncResult, len(accounts))

	semaphore := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup

	for i, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int, account *domain.AdAccount) {
			defer wg.Done()
			defer func() { <-semaphore }()

			results[i] = s.syncOne(account)
		}(i, account)
	}

	wg.Wait()

	return &domain.SyncSummary{
		Results:  results,
		SyncedAt: time.Now(),
	}
}

func (s *Service) syncOne(account *domain.AdAccount) *domain.AccountSyncResult {
	result := &domain.AccountSyncResult{
		Platform:          account.Platform,
		ExternalAccountID: account.ExternalAccountID,
	}

	adapter, ok := s.adapters[account.Platform]
	if !ok {
		log.L.WithFields(log.Fields{
			"platform":   account.Platform,
			"account_id": account.ExternalAccountID,
		}).Warn("sync: plataforma sem adaptador registrado")

		result.Status = domain.SyncStatusError
		result.ErrorKind = string(domain.SyncErrUnknown)
		result.Error = "plataforma não suportada: " + string(account.Platform)
		return result
	}

	outcome, err := adapter.Sync(account)
	if err != nil {
		// Falha capturada por conta, classificada e reportada ao lado dos
		// resultados das demais
		result.Status = domain.SyncStatusError
		result.ErrorKind = string(domain.ClassifySyncError(err))
		result.Error = err.Error()

		log.L.WithFields(log.Fields{
			"platform":   account.Platform,
			"account_id": account.ExternalAccountID,
			"error_kind": result.ErrorKind,
		}).WithError(err).Error("sync: falha ao sincronizar conta")

		return result
	}

	result.Status = domain.SyncStatusSuccess
	result.Outcome = outcome
	return result
}
