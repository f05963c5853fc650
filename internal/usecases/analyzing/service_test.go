package analyzing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/repository/mocks"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/exhibiting"
	"github.com/vgalindo/retail-opportunity-api/internal/usecases/valorizing"
	"go.uber.org/mock/gomock"
)

func TestAnalyzeViability(t *testing.T) {
	params := &domain.ExhibitionParams{
		CostPerExhibition: 2500,
		SalesLiftFraction: 0.15,
		DaysInMonth:       30,
	}

	tests := []struct {
		name     string
		summary  *domain.ExhibitionSummary
		validate func(t *testing.T, verdict *domain.ViabilityVerdict)
	}{
		{
			name: "ROI médio acima de 1 - viável",
			summary: &domain.ExhibitionSummary{
				TotalStores:     4,
				AvgROI:          2.5,
				TotalOrderValue: 15000,
			},
			validate: func(t *testing.T, verdict *domain.ViabilityVerdict) {
				assert.True(t, verdict.IsViable)
				assert.Equal(t, 4, verdict.ViableStoreCount)
				assert.Equal(t, 10000.0, verdict.TotalCost)
				assert.Equal(t, 15000.0, verdict.NetMonthlyReturn)
				assert.Equal(t, 50.0, verdict.ProfitabilityPct)
			},
		},
		{
			name: "ROI médio exatamente 1 - ponto de equilíbrio não é viável",
			summary: &domain.ExhibitionSummary{
				TotalStores:     4,
				AvgROI:          1.0,
				TotalOrderValue: 10000,
			},
			validate: func(t *testing.T, verdict *domain.ViabilityVerdict) {
				assert.False(t, verdict.IsViable)
			},
		},
		{
			name: "ROI médio abaixo de 1 - inviável com rentabilidade negativa",
			summary: &domain.ExhibitionSummary{
				TotalStores:     4,
				AvgROI:          0.6,
				TotalOrderValue: 6000,
			},
			validate: func(t *testing.T, verdict *domain.ViabilityVerdict) {
				assert.False(t, verdict.IsViable)
				assert.Equal(t, -40.0, verdict.ProfitabilityPct)
			},
		},
		{
			name: "Sem lojas - custo total zerado e rentabilidade zerada, nunca NaN",
			summary: &domain.ExhibitionSummary{
				TotalStores:     0,
				AvgROI:          0,
				TotalOrderValue: 0,
			},
			validate: func(t *testing.T, verdict *domain.ViabilityVerdict) {
				assert.False(t, verdict.IsViable)
				assert.Equal(t, 0.0, verdict.TotalCost)
				assert.Equal(t, 0.0, verdict.ProfitabilityPct)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, AnalyzeViability(tt.summary, params))
		})
	}
}

func TestService_OpportunityReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockROIRepo := mocks.NewMockExhibitionROIRepository(ctrl)
	mockRiskRepo := mocks.NewMockRiskRepository(ctrl)

	service := NewService(
		exhibiting.NewService(mockROIRepo),
		valorizing.NewService(mockRiskRepo),
	)

	params := &domain.ExhibitionParams{
		CostPerExhibition: 2500,
		SalesLiftFraction: 0.15,
		DaysInMonth:       30,
	}

	roiItems := []*domain.ExhibitionROIItem{
		{
			SkuFact:                 domain.SkuFact{StoreID: "A", Sku: "SKU-1"},
			ROIPesos:                5000,
			ExtraordinaryOrderUnits: 10,
			ExtraordinaryOrderValue: 12000,
		},
	}

	expectRisks := func() {
		mockRiskRepo.EXPECT().
			ListRiskDetails(domain.RiskStockout).
			Return([]*domain.RiskDetail{{StoreID: "A", Impact: 900}}, nil)
		mockRiskRepo.EXPECT().
			ListRiskDetails(domain.RiskExpiration).
			Return(nil, nil)
		mockRiskRepo.EXPECT().
			ListRiskDetails(domain.RiskNoSale).
			Return(nil, nil)
	}

	t.Run("Relatório completo com ROI, veredito e riscos", func(t *testing.T) {
		mockROIRepo.EXPECT().
			ListROIRows(gomock.Any()).
			Return(roiItems, nil)
		expectRisks()

		report, err := service.OpportunityReport(params)

		assert.NoError(t, err)
		assert.NotNil(t, report.Exhibition)
		assert.NotNil(t, report.Verdict)
		assert.NotNil(t, report.Risks)
		assert.True(t, report.Verdict.IsViable)
		assert.Equal(t, 900.0, report.Risks.TotalImpact)
	})

	t.Run("Falha nos riscos degrada a seção para nula sem abortar o relatório", func(t *testing.T) {
		mockROIRepo.EXPECT().
			ListROIRows(gomock.Any()).
			Return(roiItems, nil)
		mockRiskRepo.EXPECT().
			ListRiskDetails(gomock.Any()).
			Return(nil, errors.New("view indisponível")).
			Times(3)

		report, err := service.OpportunityReport(params)

		assert.NoError(t, err)
		assert.NotNil(t, report.Exhibition)
		assert.NotNil(t, report.Verdict)
		assert.Nil(t, report.Risks)
	})

	t.Run("Falha no ROI encerra o relatório", func(t *testing.T) {
		mockROIRepo.EXPECT().
			ListROIRows(gomock.Any()).
			Return(nil, errors.New("função indisponível"))
		expectRisks()

		report, err := service.OpportunityReport(params)

		assert.Error(t, err)
		assert.Nil(t, report)
	})
}
