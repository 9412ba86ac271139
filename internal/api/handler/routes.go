package handler

import (
	"net/http"

	"github.com/vfg2006/po-console/internal/api/handler/router"
	"github.com/vfg2006/po-console/internal/usecases/creating"
	"github.com/vfg2006/po-console/internal/usecases/dashboard"
	"github.com/vfg2006/po-console/internal/usecases/managing"
	"github.com/vfg2006/po-console/pkg/middleware"
)

const staticCacheControl = "public, max-age=300"

func Healthcheck(probe BackendStatuser) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(probe),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(),
		},
	}
}

func Static() []router.Route {
	return []router.Route{
		{
			Path:    "/static/*filepath",
			Method:  http.MethodGet,
			Handler: StaticHandler(),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.CacheControl(staticCacheControl),
			},
		},
	}
}

func Dashboard(d Deps, service dashboard.Dashboard, source dashboard.RFMSource) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(d, service),
		},
		{
			Path:    "/dashboard/refresh",
			Method:  http.MethodGet,
			Handler: DashboardRefresh(d, service),
		},
		{
			Path:    "/dashboard/rfm/:view/:seq",
			Method:  http.MethodGet,
			Handler: DashboardRFM(d, service),
		},
		{
			Path:    "/api/rfm-data",
			Method:  http.MethodGet,
			Handler: RFMData(source),
		},
	}
}

func Forms(d Deps, creator creating.FormCreator) []router.Route {
	return []router.Route{
		{
			Path:    "/publisher",
			Method:  http.MethodGet,
			Handler: PublisherFormPage(d),
		},
		{
			Path:    "/publisher",
			Method:  http.MethodPost,
			Handler: PublisherSubmit(d, creator),
		},
		{
			Path:    "/po",
			Method:  http.MethodGet,
			Handler: POFormPage(d, creator),
		},
		{
			Path:    "/po",
			Method:  http.MethodPost,
			Handler: POSubmit(d, creator),
		},
	}
}

func Manage(d Deps, manager managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/manage",
			Method:  http.MethodGet,
			Handler: ManagePage(d, manager),
		},
		{
			Path:    "/manage/:session/:kind/:id/:action",
			Method:  http.MethodPost,
			Handler: ManageAction(d, manager),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/cron-jobs/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
		{
			Path:    "/cron-jobs/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
	}
}
