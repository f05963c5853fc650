package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vgalindo/retail-opportunity-api/internal/usecases/segmenting"
	"github.com/vgalindo/retail-opportunity-api/pkg/apiErrors"
	"github.com/vgalindo/retail-opportunity-api/pkg/log"
)

// GetSegments retorna a agregação de vendas por segmento de desempenho,
// ordenada por valor de vendas decrescente. Aceita top=N para truncar e
// weeks= para sobrescrever o número de semanas do período.
func GetSegments(service segmenting.SegmentationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period := r.URL.Query().Get("period")
		if period == "" {
			// Período corrente no formato mm-yyyy
			period = time.Now().Format("01-2006")
		}

		weeks := 0.0
		if weeksParam := r.URL.Query().Get("weeks"); weeksParam != "" {
			parsed, err := strconv.ParseFloat(weeksParam, 64)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro weeks inválido", nil)
				return
			}
			weeks = parsed
		}

		var err error
		var response any

		if topParam := r.URL.Query().Get("top"); topParam != "" {
			top, parseErr := strconv.Atoi(topParam)
			if parseErr != nil || top < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro top inválido", nil)
				return
			}
			response, err = service.TopSegments(period, top, weeks)
		} else {
			response, err = service.AggregateSegments(period, weeks)
		}

		if err != nil {
			logger.WithError(err).Error("segments: erro ao agregar segmentos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao agregar segmentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("segments: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
