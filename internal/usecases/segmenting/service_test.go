package segmenting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/repository/mocks"
	"github.com/vgalindo/retail-opportunity-api/internal/config"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// buildFacts gera n fatos de loja para um segmento, dividindo o valor de vendas
// igualmente entre as lojas
func buildFacts(segment string, totalSales float64, numStores int) []*domain.StoreFact {
	facts := make([]*domain.StoreFact, 0, numStores)
	for i := 0; i < numStores; i++ {
		facts = append(facts, &domain.StoreFact{
			StoreID:    segment + "-" + string(rune('A'+i)),
			Segment:    segment,
			SalesValue: totalSales / float64(numStores),
		})
	}
	return facts
}

func TestAggregateStoreFacts(t *testing.T) {
	tests := []struct {
		name     string
		facts    []*domain.StoreFact
		weeks    float64
		validate func(t *testing.T, result *domain.SegmentationResponse)
	}{
		{
			name: "Dois segmentos 60/40 - contribuição e participação invertidas",
			facts: append(
				buildFacts("Hot", 60000, 10),
				buildFacts("Slow", 40000, 15)...,
			),
			weeks: 4.0,
			validate: func(t *testing.T, result *domain.SegmentationResponse) {
				assert.Len(t, result.Segments, 2)
				assert.Equal(t, 100000.0, result.TotalSales)
				assert.Equal(t, 25, result.TotalStores)

				// Ordenado por valor de vendas decrescente
				hot := result.Segments[0]
				slow := result.Segments[1]
				assert.Equal(t, "Hot", hot.Segment)
				assert.Equal(t, "Slow", slow.Segment)

				assert.Equal(t, 60.0, hot.ContributionPct)
				assert.Equal(t, 40.0, slow.ContributionPct)
				assert.Equal(t, 40.0, hot.ParticipationPct)
				assert.Equal(t, 60.0, slow.ParticipationPct)

				// Média semanal por loja: 60000 / 10 lojas / 4 semanas
				assert.Equal(t, 1500.0, hot.WeeklyAvgPerStoreValue)
			},
		},
		{
			name: "Contribuições somam 100 com três segmentos",
			facts: append(append(
				buildFacts("A", 50000, 5),
				buildFacts("B", 30000, 5)...),
				buildFacts("C", 20000, 5)...,
			),
			weeks: 4.0,
			validate: func(t *testing.T, result *domain.SegmentationResponse) {
				sum := 0.0
				for _, segment := range result.Segments {
					sum += segment.ContributionPct
				}
				assert.InDelta(t, 100.0, sum, 0.01)
			},
		},
		{
			name:  "Sem fatos - totais zerados sem NaN",
			facts: nil,
			weeks: 4.0,
			validate: func(t *testing.T, result *domain.SegmentationResponse) {
				assert.Empty(t, result.Segments)
				assert.Equal(t, 0.0, result.TotalSales)
				assert.Equal(t, 0, result.TotalStores)
			},
		},
		{
			name: "Vendas totais zeradas - percentuais zerados, nunca NaN",
			facts: []*domain.StoreFact{
				{StoreID: "S1", Segment: "Parado", SalesValue: 0},
				{StoreID: "S2", Segment: "Parado", SalesValue: 0},
			},
			weeks: 4.0,
			validate: func(t *testing.T, result *domain.SegmentationResponse) {
				assert.Len(t, result.Segments, 1)
				assert.Equal(t, 0.0, result.Segments[0].ContributionPct)
				assert.Equal(t, 100.0, result.Segments[0].ParticipationPct)
				assert.Equal(t, 0.0, result.Segments[0].WeeklyAvgPerStoreValue)
			},
		},
		{
			name: "Empate em vendas - desempate pela ordem de primeira aparição",
			facts: []*domain.StoreFact{
				{StoreID: "S1", Segment: "Beta", SalesValue: 1000},
				{StoreID: "S2", Segment: "Alfa", SalesValue: 1000},
			},
			weeks: 4.0,
			validate: func(t *testing.T, result *domain.SegmentationResponse) {
				assert.Equal(t, "Beta", result.Segments[0].Segment)
				assert.Equal(t, "Alfa", result.Segments[1].Segment)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AggregateStoreFacts(tt.facts, tt.weeks)
			tt.validate(t, result)
		})
	}
}

func TestService_TopSegments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFactRepo := mocks.NewMockStoreFactRepository(ctrl)

	cfg := &config.Config{}
	cfg.Engine.WeeksInPeriod = 4.0

	service := NewService(mockFactRepo, cfg)

	facts := append(append(
		buildFacts("A", 50000, 5),
		buildFacts("B", 30000, 5)...),
		buildFacts("C", 20000, 5)...,
	)

	tests := []struct {
		name     string
		top      int
		setup    func()
		validate func(t *testing.T, result *domain.SegmentationResponse, err error)
	}{
		{
			name: "Top 2 trunca a ordenação padrão",
			top:  2,
			setup: func() {
				mockFactRepo.EXPECT().
					ListStoreFacts("01-2026").
					Return(facts, nil)
			},
			validate: func(t *testing.T, result *domain.SegmentationResponse, err error) {
				assert.NoError(t, err)
				assert.Len(t, result.Segments, 2)
				assert.Equal(t, "A", result.Segments[0].Segment)
				assert.Equal(t, "B", result.Segments[1].Segment)

				// Os totais continuam refletindo o conjunto completo
				assert.Equal(t, 100000.0, result.TotalSales)
				assert.Equal(t, 15, result.TotalStores)
			},
		},
		{
			name: "Top maior que o total de segmentos retorna todos",
			top:  10,
			setup: func() {
				mockFactRepo.EXPECT().
					ListStoreFacts("01-2026").
					Return(facts, nil)
			},
			validate: func(t *testing.T, result *domain.SegmentationResponse, err error) {
				assert.NoError(t, err)
				assert.Len(t, result.Segments, 3)
			},
		},
		{
			name: "Top negativo trata como zero",
			top:  -1,
			setup: func() {
				mockFactRepo.EXPECT().
					ListStoreFacts("01-2026").
					Return(facts, nil)
			},
			validate: func(t *testing.T, result *domain.SegmentationResponse, err error) {
				assert.NoError(t, err)
				assert.Empty(t, result.Segments)
			},
		},
		{
			name: "Erro do repositório propaga",
			top:  2,
			setup: func() {
				mockFactRepo.EXPECT().
					ListStoreFacts("01-2026").
					Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, result *domain.SegmentationResponse, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.TopSegments("01-2026", tt.top, 0)
			tt.validate(t, result, err)
		})
	}
}
