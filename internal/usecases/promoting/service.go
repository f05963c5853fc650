// Package promoting projeta promoções por desconto e elasticidade, delegando
// a fórmula de custo à função de precificação externa
package promoting

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/repository"
	"github.com/vgalindo/retail-opportunity-api/internal/config"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
	"github.com/vgalindo/retail-opportunity-api/pkg/utils"
)

type Service struct {
	pricingRepo   repository.PricingRepository
	maxConcurrent int
}

func NewService(pricingRepo repository.PricingRepository, cfg *config.Config) Promoter {
	maxConcurrent := cfg.Engine.MaxConcurrentPricingCalls
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &Service{
		pricingRepo:   pricingRepo,
		maxConcurrent: maxConcurrent,
	}
}

func (s *Service) ComputePromotion(request *domain.PromotionRequest) (*domain.PromotionBatchResponse, error) {
	if request == nil || len(request.Items) == 0 {
		return nil, fmt.Errorf("é necessário informar ao menos uma categoria para a simulação")
	}

	if request.DiscountRate < 0 || request.DiscountRate > 1 {
		return nil, fmt.Errorf("taxa de desconto deve ser uma fração entre 0 e 1, recebido %v", request.DiscountRate)
	}

	response := &domain.PromotionBatchResponse{
		// Ecoa a configuração da requisição para auditoria
		DiscountPct: request.DiscountRate * 100,
		Items:       request.Items,
		Results:     make(map[string]*domain.PromotionResult, len(request.Items)),
	}

	// Uma chamada independente à função de precificação por categoria, com
	// fan-out limitado por semáforo
	semaphore := make(chan struct{}, s.maxConcurrent)

	var wg sync.WaitGroup

	// Mutex para proteger o mapa de resultados durante atualizações concorrentes
	var mutex sync.Mutex

	for _, item := range request.Items {
		wg.Add(1)

		go func(item *domain.PromotionItem) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			result := s.computeCategory(request.DiscountRate, item)

			mutex.Lock()
			response.Results[item.Category] = result
			mutex.Unlock()
		}(item)
	}

	wg.Wait()

	return response, nil
}

// computeCategory invoca a função de precificação para uma categoria e deriva
// os campos que a função não fornece. Falha na chamada externa degrada a
// categoria para um resultado zerado, sem abortar as categorias irmãs.
func (s *Service) computeCategory(discountRate float64, item *domain.PromotionItem) *domain.PromotionResult {
	cost, err := s.pricingRepo.ComputePromotionCost(discountRate, item.Elasticity, item.Category)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"category":      item.Category,
			"discount_rate": discountRate,
			"elasticity":    item.Elasticity,
		}).Warn("Erro na função de precificação, degradando categoria para resultado zerado")

		return &domain.PromotionResult{Category: item.Category}
	}

	return &domain.PromotionResult{
		Category:              item.Category,
		InventoryInitialTotal: cost.InventoryInitialTotal,
		IncrementalUnits:      cost.IncrementalUnits,
		OriginalSales:         cost.OriginalSales,
		PromotionCost:         cost.PromotionCost,
		CapturedValue:         cost.CapturedValue,
		// Derivados pelo motor: fração de redução de risco com guarda de
		// estoque zerado, e estoque projetado após a promoção
		RiskReductionFraction: utils.SafeRatio(cost.IncrementalUnits, cost.InventoryInitialTotal),
		InventoryPost:         cost.InventoryInitialTotal - cost.IncrementalUnits,
	}
}

func (s *Service) CompareDiscounts(discountRates []float64, items []*domain.PromotionItem) (*domain.PromotionComparison, error) {
	if len(discountRates) == 0 {
		return nil, fmt.Errorf("é necessário informar ao menos uma taxa de desconto para comparação")
	}

	comparison := &domain.PromotionComparison{
		Scenarios: make([]*domain.PromotionBatchResponse, 0, len(discountRates)),
	}

	// Cada taxa é calculada de forma completa e independente, não incremental
	for _, rate := range discountRates {
		scenario, err := s.ComputePromotion(&domain.PromotionRequest{
			DiscountRate: rate,
			Items:        items,
		})
		if err != nil {
			return nil, err
		}

		comparison.Scenarios = append(comparison.Scenarios, scenario)
	}

	return comparison, nil
}
