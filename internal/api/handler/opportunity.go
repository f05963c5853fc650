package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vgalindo/retail-opportunity-api/internal/config"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/analyzing"
	"github.com/vgalindo/retail-opportunity-api/pkg/apiErrors"
	"github.com/vgalindo/retail-opportunity-api/pkg/log"
)

// GetOpportunityReport retorna o relatório de oportunidade: ROI de exibição,
// veredito de viabilidade e valorização de riscos
func GetOpportunityReport(service analyzing.Analyzer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params, err := parseExhibitionParams(r, cfg)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de exibição inválidos", nil)
			return
		}

		report, err := service.OpportunityReport(params)
		if err != nil {
			logger.WithError(err).Error("opportunity: erro ao gerar relatório de oportunidade")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"viable":  report.Verdict.IsViable,
			"avg_roi": report.Verdict.AvgROI,
		}).Info("opportunity: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("opportunity: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
