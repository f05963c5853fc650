package promoting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/repository/mocks"
	"github.com/vgalindo/retail-opportunity-api/internal/config"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(pricingRepo *mocks.MockPricingRepository) Promoter {
	cfg := &config.Config{}
	cfg.Engine.MaxConcurrentPricingCalls = 5

	return NewService(pricingRepo, cfg)
}

func TestService_ComputePromotion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingRepo := mocks.NewMockPricingRepository(ctrl)
	service := newTestService(mockPricingRepo)

	tests := []struct {
		name     string
		request  *domain.PromotionRequest
		setup    func()
		validate func(t *testing.T, result *domain.PromotionBatchResponse, err error)
	}{
		{
			name: "Categoria única - deriva redução de risco e estoque projetado",
			request: &domain.PromotionRequest{
				DiscountRate: 0.20,
				Items: []*domain.PromotionItem{
					{Category: "Solar", Elasticity: 1.5},
				},
			},
			setup: func() {
				mockPricingRepo.EXPECT().
					ComputePromotionCost(0.20, 1.5, "Solar").
					Return(&domain.PromotionCost{
						InventoryInitialTotal: 1000,
						IncrementalUnits:      300,
						OriginalSales:         500,
						PromotionCost:         2400.0,
						CapturedValue:         9600.0,
					}, nil)
			},
			validate: func(t *testing.T, result *domain.PromotionBatchResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 20.0, result.DiscountPct)
				assert.Len(t, result.Results, 1)

				solar := result.Results["Solar"]
				assert.Equal(t, 0.30, solar.RiskReductionFraction)
				assert.Equal(t, 700.0, solar.InventoryPost)
				assert.Equal(t, 2400.0, solar.PromotionCost)
				assert.Equal(t, 9600.0, solar.CapturedValue)
			},
		},
		{
			name: "Múltiplas categorias - cada uma com sua própria chamada de precificação",
			request: &domain.PromotionRequest{
				DiscountRate: 0.10,
				Items: []*domain.PromotionItem{
					{Category: "Solar", Elasticity: 1.5},
					{Category: "Receituario", Elasticity: 0.8},
					{Category: "Acessorios", Elasticity: 2.0},
				},
			},
			setup: func() {
				mockPricingRepo.EXPECT().
					ComputePromotionCost(0.10, 1.5, "Solar").
					Return(&domain.PromotionCost{InventoryInitialTotal: 200, IncrementalUnits: 30}, nil)
				mockPricingRepo.EXPECT().
					ComputePromotionCost(0.10, 0.8, "Receituario").
					Return(&domain.PromotionCost{InventoryInitialTotal: 400, IncrementalUnits: 32}, nil)
				mockPricingRepo.EXPECT().
					ComputePromotionCost(0.10, 2.0, "Acessorios").
					Return(&domain.PromotionCost{InventoryInitialTotal: 100, IncrementalUnits: 20}, nil)
			},
			validate: func(t *testing.T, result *domain.PromotionBatchResponse, err error) {
				assert.NoError(t, err)
				assert.Len(t, result.Results, 3)
				assert.Equal(t, 0.15, result.Results["Solar"].RiskReductionFraction)
				assert.Equal(t, 0.08, result.Results["Receituario"].RiskReductionFraction)
				assert.Equal(t, 0.20, result.Results["Acessorios"].RiskReductionFraction)
			},
		},
		{
			name: "Falha em uma categoria degrada para resultado zerado sem abortar as irmãs",
			request: &domain.PromotionRequest{
				DiscountRate: 0.15,
				Items: []*domain.PromotionItem{
					{Category: "Solar", Elasticity: 1.5},
					{Category: "Receituario", Elasticity: 0.8},
				},
			},
			setup: func() {
				mockPricingRepo.EXPECT().
					ComputePromotionCost(0.15, 1.5, "Solar").
					Return(nil, errors.New("timeout na função de precificação"))
				mockPricingRepo.EXPECT().
					ComputePromotionCost(0.15, 0.8, "Receituario").
					Return(&domain.PromotionCost{InventoryInitialTotal: 400, IncrementalUnits: 40}, nil)
			},
			validate: func(t *testing.T, result *domain.PromotionBatchResponse, err error) {
				assert.NoError(t, err)
				assert.Len(t, result.Results, 2)

				// A categoria com falha vem zerada, mas presente
				solar := result.Results["Solar"]
				assert.Equal(t, "Solar", solar.Category)
				assert.Equal(t, 0.0, solar.InventoryInitialTotal)
				assert.Equal(t, 0.0, solar.RiskReductionFraction)

				// A irmã segue com o cálculo completo
				assert.Equal(t, 0.10, result.Results["Receituario"].RiskReductionFraction)
			},
		},
		{
			name: "Estoque inicial zerado - redução de risco zerada, nunca NaN",
			request: &domain.PromotionRequest{
				DiscountRate: 0.20,
				Items: []*domain.PromotionItem{
					{Category: "Solar", Elasticity: 1.5},
				},
			},
			setup: func() {
				mockPricingRepo.EXPECT().
					ComputePromotionCost(0.20, 1.5, "Solar").
					Return(&domain.PromotionCost{InventoryInitialTotal: 0, IncrementalUnits: 0}, nil)
			},
			validate: func(t *testing.T, result *domain.PromotionBatchResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, result.Results["Solar"].RiskReductionFraction)
			},
		},
		{
			name: "Sem categorias - erro de validação",
			request: &domain.PromotionRequest{
				DiscountRate: 0.20,
				Items:        []*domain.PromotionItem{},
			},
			setup: func() {},
			validate: func(t *testing.T, result *domain.PromotionBatchResponse, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "Taxa de desconto fora de [0,1] - erro de validação",
			request: &domain.PromotionRequest{
				DiscountRate: 20,
				Items: []*domain.PromotionItem{
					{Category: "Solar", Elasticity: 1.5},
				},
			},
			setup: func() {},
			validate: func(t *testing.T, result *domain.PromotionBatchResponse, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.ComputePromotion(tt.request)
			tt.validate(t, result, err)
		})
	}
}

func TestService_CompareDiscounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPricingRepo := mocks.NewMockPricingRepository(ctrl)
	service := newTestService(mockPricingRepo)

	items := []*domain.PromotionItem{
		{Category: "Solar", Elasticity: 1.5},
	}

	t.Run("Cada taxa gera um cenário completo e independente", func(t *testing.T) {
		mockPricingRepo.EXPECT().
			ComputePromotionCost(0.10, 1.5, "Solar").
			Return(&domain.PromotionCost{InventoryInitialTotal: 1000, IncrementalUnits: 150}, nil)
		mockPricingRepo.EXPECT().
			ComputePromotionCost(0.20, 1.5, "Solar").
			Return(&domain.PromotionCost{InventoryInitialTotal: 1000, IncrementalUnits: 300}, nil)
		mockPricingRepo.EXPECT().
			ComputePromotionCost(0.30, 1.5, "Solar").
			Return(&domain.PromotionCost{InventoryInitialTotal: 1000, IncrementalUnits: 450}, nil)

		result, err := service.CompareDiscounts([]float64{0.10, 0.20, 0.30}, items)

		assert.NoError(t, err)
		assert.Len(t, result.Scenarios, 3)
		assert.Equal(t, 10.0, result.Scenarios[0].DiscountPct)
		assert.Equal(t, 20.0, result.Scenarios[1].DiscountPct)
		assert.Equal(t, 30.0, result.Scenarios[2].DiscountPct)
		assert.Equal(t, 0.15, result.Scenarios[0].Results["Solar"].RiskReductionFraction)
		assert.Equal(t, 0.45, result.Scenarios[2].Results["Solar"].RiskReductionFraction)
	})

	t.Run("Sem taxas - erro de validação", func(t *testing.T) {
		result, err := service.CompareDiscounts(nil, items)

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Taxa inválida no meio da lista aborta a comparação", func(t *testing.T) {
		mockPricingRepo.EXPECT().
			ComputePromotionCost(0.10, 1.5, "Solar").
			Return(&domain.PromotionCost{InventoryInitialTotal: 1000, IncrementalUnits: 150}, nil)

		result, err := service.CompareDiscounts([]float64{0.10, 1.5}, items)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
