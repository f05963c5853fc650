// Package segmenting agrega os fatos por loja em métricas por segmento de
// desempenho (contribuição, participação, média semanal por loja)
package segmenting

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/repository"
	"github.com/vgalindo/retail-opportunity-api/internal/config"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
	"github.com/vgalindo/retail-opportunity-api/pkg/utils"
)

type SegmentationService interface {
	// AggregateSegments agrega os fatos do período por segmento, ordenados por
	// valor de vendas decrescente
	AggregateSegments(period string, weeksInPeriod float64) (*domain.SegmentationResponse, error)

	// TopSegments trunca a ordenação padrão aos N primeiros segmentos
	TopSegments(period string, n int, weeksInPeriod float64) (*domain.SegmentationResponse, error)
}

type Service struct {
	factRepo repository.StoreFactRepository
	cfg      *config.Config
}

func NewService(factRepo repository.StoreFactRepository, cfg *config.Config) SegmentationService {
	return &Service{
		factRepo: factRepo,
		cfg:      cfg,
	}
}

func (s *Service) AggregateSegments(period string, weeksInPeriod float64) (*domain.SegmentationResponse, error) {
	if weeksInPeriod <= 0 {
		weeksInPeriod = s.cfg.Engine.WeeksInPeriod
	}

	facts, err := s.factRepo.ListStoreFacts(period)
	if err != nil {
		logrus.WithError(err).WithField("period", period).Error("Erro ao buscar fatos por loja")
		return nil, fmt.Errorf("erro ao buscar fatos por loja: %w", err)
	}

	return AggregateStoreFacts(facts, weeksInPeriod), nil
}

func (s *Service) TopSegments(period string, n int, weeksInPeriod float64) (*domain.SegmentationResponse, error) {
	response, err := s.AggregateSegments(period, weeksInPeriod)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		n = 0
	}
	if n < len(response.Segments) {
		response.Segments = response.Segments[:n]
	}

	return response, nil
}

// segmentAccumulator acumula as somas de um segmento durante a agregação
type segmentAccumulator struct {
	insertionIndex int
	salesValue     float64
	salesUnits     float64
	numStores      int
}

// AggregateStoreFacts agrega os fatos por segmento. A ordenação é por valor de
// vendas decrescente; empates são resolvidos pela ordem de primeira aparição
// do segmento nos fatos de entrada, regra explícita para não depender da
// estabilidade do sort do runtime.
func AggregateStoreFacts(facts []*domain.StoreFact, weeksInPeriod float64) *domain.SegmentationResponse {
	accumulators := make(map[string]*segmentAccumulator)
	order := make([]string, 0)

	for _, fact := range facts {
		acc, exists := accumulators[fact.Segment]
		if !exists {
			acc = &segmentAccumulator{insertionIndex: len(order)}
			accumulators[fact.Segment] = acc
			order = append(order, fact.Segment)
		}

		acc.salesValue += fact.SalesValue
		acc.salesUnits += fact.SalesUnits
		acc.numStores++
	}

	totalSales := 0.0
	totalStores := 0
	for _, acc := range accumulators {
		totalSales += acc.salesValue
		totalStores += acc.numStores
	}

	segments := make([]*domain.SegmentSummary, 0, len(order))
	for _, name := range order {
		acc := accumulators[name]

		summary := &domain.SegmentSummary{
			Segment:    name,
			SalesValue: acc.salesValue,
			SalesUnits: acc.salesUnits,
			NumStores:  acc.numStores,
			// Percentuais com guarda de divisão por zero: segmento (ou
			// conjunto) sem lojas resulta em 0, nunca em NaN
			ContributionPct:  utils.RoundWithTwoDecimalPlace(100 * utils.SafeRatio(acc.salesValue, totalSales)),
			ParticipationPct: utils.RoundWithTwoDecimalPlace(100 * utils.SafeRatio(float64(acc.numStores), float64(totalStores))),
			WeeklyAvgPerStoreValue: utils.RoundWithTwoDecimalPlace(
				utils.SafeRatio(utils.SafeRatio(acc.salesValue, float64(acc.numStores)), weeksInPeriod),
			),
		}

		segments = append(segments, summary)
	}

	sort.SliceStable(segments, func(i, j int) bool {
		if segments[i].SalesValue != segments[j].SalesValue {
			return segments[i].SalesValue > segments[j].SalesValue
		}
		return accumulators[segments[i].Segment].insertionIndex < accumulators[segments[j].Segment].insertionIndex
	})

	return &domain.SegmentationResponse{
		Segments:      segments,
		TotalSales:    totalSales,
		TotalStores:   totalStores,
		WeeksInPeriod: weeksInPeriod,
	}
}
