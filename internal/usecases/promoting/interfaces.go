package promoting

import (
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
)

// Promoter define as operações de projeção de promoção por elasticidade
type Promoter interface {
	// ComputePromotion projeta a promoção para cada categoria da requisição,
	// com uma chamada independente à função de precificação por categoria
	ComputePromotion(request *domain.PromotionRequest) (*domain.PromotionBatchResponse, error)

	// CompareDiscounts calcula o resultado completo de forma independente para
	// cada taxa de desconto, sobre o mesmo conjunto de itens
	CompareDiscounts(discountRates []float64, items []*domain.PromotionItem) (*domain.PromotionComparison, error)
}
