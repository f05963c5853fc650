package handler

import (
	"net/http"

	"github.com/vgalindo/retail-opportunity-api/internal/api/handler/router"
	"github.com/vgalindo/retail-opportunity-api/internal/config"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/analyzing"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/exhibiting"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/promoting"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/ranking"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/segmenting"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/valorizing"
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

func Segments(service segmenting.SegmentationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/segments",
			Method:  http.MethodGet,
			Handler: GetSegments(service),
		},
	}
}

func Promotions(service promoting.Promoter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/promotions/simulate",
			Method:  http.MethodPost,
			Handler: SimulatePromotion(service),
		},
		{
			Path:    "/v1/promotions/compare",
			Method:  http.MethodPost,
			Handler: ComparePromotions(service),
		},
	}
}

func Exhibitions(service exhibiting.Exhibitor, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/exhibitions/roi",
			Method:  http.MethodGet,
			Handler: GetExhibitionROI(service, cfg),
		},
		{
			Path:    "/v1/exhibitions/roi/top",
			Method:  http.MethodGet,
			Handler: GetTopStoresByROI(service, cfg),
		},
		{
			Path:    "/v1/exhibitions/roi/stores/:id",
			Method:  http.MethodGet,
			Handler: GetROIForStore(service, cfg),
		},
	}
}

func Opportunity(service analyzing.Analyzer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/opportunity/report",
			Method:  http.MethodGet,
			Handler: GetOpportunityReport(service, cfg),
		},
	}
}

func Risks(service valorizing.Valorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/risks/valorization",
			Method:  http.MethodGet,
			Handler: GetRiskValorization(service),
		},
	}
}

func StoreROIRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores/ranking/roi",
			Method:  http.MethodGet,
			Handler: GetROIRanking(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
