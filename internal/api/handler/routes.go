package handler

import (
	"net/http"

	"github.com/vfg2006/roi-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/roi-analytics-api/internal/scheduler"
	"github.com/vfg2006/roi-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/roi-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/roi-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/roi-analytics-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func ROI(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/roi",
			Method:  http.MethodGet,
			Handler: GetROIReport(service),
		},
	}
}

func Uploads(service ingesting.Ingester) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/uploads/ad-spend",
			Method:  http.MethodPost,
			Handler: UploadAdSpend(service),
		},
		{
			Path:    "/v1/uploads/sales",
			Method:  http.MethodPost,
			Handler: UploadSales(service),
		},
	}
}

func Sync(service syncing.Syncer, spendSyncScheduler *scheduler.SpendSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/integrations/sync",
			Method:  http.MethodPost,
			Handler: SyncIntegrations(service),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(spendSyncScheduler),
		},
	}
}
