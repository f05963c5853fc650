package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vgalindo/retail-opportunity-api/internal/domain"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/promoting"
	"github.com/vgalindo/retail-opportunity-api/pkg/apiErrors"
	"github.com/vgalindo/retail-opportunity-api/pkg/log"
)

// SimulatePromotion projeta uma promoção para as categorias informadas
func SimulatePromotion(service promoting.Promoter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request := &domain.PromotionRequest{}
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"discount_rate": request.DiscountRate,
			"categories":    len(request.Items),
		}).Info("promotions: simulando promoção")

		response, err := service.ComputePromotion(request)
		if err != nil {
			logger.WithError(err).Error("promotions: erro ao simular promoção")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("promotions: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// comparePromotionsRequest é o corpo da comparação de cenários de desconto
type comparePromotionsRequest struct {
	DiscountRates []float64               `json:"discount_rates"`
	Items         []*domain.PromotionItem `json:"items"`
}

// ComparePromotions calcula o resultado completo para cada taxa de desconto
// informada, sobre o mesmo conjunto de itens
func ComparePromotions(service promoting.Promoter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request := &comparePromotionsRequest{}
		if err := json.NewDecoder(r.Body).Decode(request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"discount_rates": request.DiscountRates,
			"categories":     len(request.Items),
		}).Info("promotions: comparando cenários de desconto")

		response, err := service.CompareDiscounts(request.DiscountRates, request.Items)
		if err != nil {
			logger.WithError(err).Error("promotions: erro ao comparar cenários")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("promotions: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
