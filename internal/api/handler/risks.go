package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vgalindo/retail-opportunity-api/internal/usecases/valorizing"
	"github.com/vgalindo/retail-opportunity-api/pkg/apiErrors"
	"github.com/vgalindo/retail-opportunity-api/pkg/log"
)

// GetRiskValorization retorna os três buckets de risco valorizados. Os totais
// entre buckets não são deduplicados (limite superior quando há sobreposição).
func GetRiskValorization(service valorizing.Valorizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		overview, err := service.AggregateRisk()
		if err != nil {
			logger.WithError(err).Error("risks: erro ao agregar valorização de riscos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao agregar valorização de riscos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.WithError(err).Error("risks: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
