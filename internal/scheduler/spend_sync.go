package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-analytics-api/internal/config"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"github.com/vfg2006/roi-analytics-api/internal/usecases/syncing"
)

// SpendSyncService agenda a sincronização noturna de gastos de todas as
// contas de anúncios ativas
type SpendSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.SpendSync
	syncService         syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSpendSyncService(syncService syncing.Syncer, appConfig *config.Config) *SpendSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       appConfig.SpendSync.CronSchedule,
		"max_concurrent_jobs": appConfig.SpendSync.MaxConcurrentJobs,
		"sync_enabled":        appConfig.SpendSync.Enabled,
	}).Info("Configuração do agendador de sincronização de gastos carregada")

	return &SpendSyncService{
		scheduler:   scheduler,
		config:      appConfig.SpendSync,
		syncService: syncService,
	}
}

// Start inicia o agendador
func (s *SpendSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização agendada de gastos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de gastos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de gastos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de gastos")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa uma rodada de sincronização imediatamente, com guarda contra
// execuções sobrepostas
func (s *SpendSyncService) RunNow() {
	startTime := time.Now()

	// Os timestamps são lidos por Status() em requisições concorrentes, então
	// toda escrita acontece sob o mutex
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de gastos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de gastos para todas as contas ativas")

	summary, err := s.syncService.SyncAllActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar sincronização agendada de gastos")
		return
	}

	succeeded := 0
	for _, result := range summary.Results {
		if result.Status == domain.SyncStatusSuccess {
			succeeded++
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"accounts":  len(summary.Results),
		"succeeded": succeeded,
		"failed":    len(summary.Results) - succeeded,
	}).Info("Sincronização agendada de gastos concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// Status retorna o estado corrente do agendador para o endpoint de cron
func (s *SpendSyncService) Status() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]interface{}{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}

	return status
}
