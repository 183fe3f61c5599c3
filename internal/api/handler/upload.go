package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
	"github.com/vfg2006/roi-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/roi-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/roi-analytics-api/pkg/log"
	"github.com/vfg2006/roi-analytics-api/pkg/middleware"
)

const maxUploadBytes = 32 << 20 // 32 MB

// UploadAdSpend recebe um CSV de gastos e grava as linhas carimbadas com o
// owner autenticado
func UploadAdSpend(service ingesting.Ingester) http.Handler {
	return uploadHandler("ad_spend", func(ownerID int, file io.Reader) (*domain.UploadResult, error) {
		return service.IngestSpendCSV(ownerID, file)
	})
}

// UploadSales recebe um CSV de vendas
func UploadSales(service ingesting.Ingester) http.Handler {
	return uploadHandler("sales", func(ownerID int, file io.Reader) (*domain.UploadResult, error) {
		return service.IngestSalesCSV(ownerID, file)
	})
}

func uploadHandler(collection string, ingest func(int, io.Reader) (*domain.UploadResult, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum arquivo enviado", nil)
			return
		}
		defer file.Close()

		logger.WithFields(log.Fields{
			"owner_id":   userClaims.UserID,
			"collection": collection,
			"filename":   header.Filename,
		}).Info("upload: processing file")

		result, err := ingest(userClaims.UserID, file)
		if err != nil {
			var parseErr *ingesting.ParseError
			if errors.As(err, &parseErr) {
				// Rejeição integral: nenhuma linha foi importada
				apiErrors.WriteError(w, apiErrors.ErrParseFailure, parseErr.Error(), parseErr.Diagnostics)
				return
			}

			logger.WithFields(log.Fields{
				"owner_id":   userClaims.UserID,
				"collection": collection,
				"error":      err.Error(),
			}).Error("upload: failed to ingest file")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"owner_id":   userClaims.UserID,
			"collection": collection,
			"rows":       result.Rows,
			"batch_id":   result.BatchID,
		}).Info("upload: file ingested")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("upload: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
