package handler

import (
	"net/http"

	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"github.com/vfg2006/roi-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/roi-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/roi-analytics-api/pkg/log"
	"github.com/vfg2006/roi-analytics-api/pkg/middleware"
)

// GetROIReport calcula o relatório de ROI do usuário autenticado. O owner vem
// das claims validadas, nunca de parâmetro da requisição.
func GetROIReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		report, err := service.GetROIReport(userClaims.UserID)
		if err != nil {
			logger.WithFields(log.Fields{
				"owner_id": userClaims.UserID,
				"error":    err.Error(),
			}).Error("roi: failed to compute report")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"owner_id": userClaims.UserID,
			"entries":  len(report.Entries),
		}).Info("roi: report computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("roi: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
