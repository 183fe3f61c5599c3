package handler

import (
	"net/http"

	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"github.com/vfg2006/roi-analytics-api/internal/scheduler"
	"github.com/vfg2006/roi-analytics-api/internal/usecases/syncing"
	"github.com/vfg2006/roi-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/roi-analytics-api/pkg/log"
	"github.com/vfg2006/roi-analytics-api/pkg/middleware"
)

// SyncIntegrations dispara a sincronização de todas as contas de anúncios
// ativas do usuário autenticado. O resumo traz um resultado por conta; contas
// com falha aparecem classificadas ao lado das que tiveram sucesso.
func SyncIntegrations(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		summary, err := service.SyncOwnerAccounts(userClaims.UserID)
		if err != nil {
			logger.WithFields(log.Fields{
				"owner_id": userClaims.UserID,
				"error":    err.Error(),
			}).Error("sync: failed to run batch")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"owner_id": userClaims.UserID,
			"accounts": len(summary.Results),
		}).Info("sync: batch finished")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("sync: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetCronStatus expõe o estado do agendador de sincronização
func GetCronStatus(service *scheduler.SpendSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.Status())
	})
}
