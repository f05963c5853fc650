// Package valorizing consolida o impacto monetário dos riscos operacionais
// (ruptura de estoque, vencimento e encalhe) em buckets independentes
package valorizing

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/repository"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
)

// riskCategories na ordem fixa de apresentação dos buckets
var riskCategories = []domain.RiskCategory{
	domain.RiskStockout,
	domain.RiskExpiration,
	domain.RiskNoSale,
}

type Valorizer interface {
	// AggregateRisk agrega os três buckets de risco. Os totais entre buckets
	// não são deduplicados: uma loja presente em mais de um bucket conta
	// integralmente em cada um, portanto os totais são limites superiores.
	AggregateRisk() (*domain.RiskOverview, error)
}

type Service struct {
	riskRepo repository.RiskRepository
}

func NewService(riskRepo repository.RiskRepository) Valorizer {
	return &Service{
		riskRepo: riskRepo,
	}
}

func (s *Service) AggregateRisk() (*domain.RiskOverview, error) {
	detailSets := make(map[domain.RiskCategory][]*domain.RiskDetail, len(riskCategories))
	fetchErrors := make(map[domain.RiskCategory]error, len(riskCategories))

	// As três buscas são independentes; fan-out com captura de erro por
	// bucket e junção em um único erro agregado
	var wg sync.WaitGroup
	var mutex sync.Mutex

	for _, category := range riskCategories {
		wg.Add(1)

		go func(category domain.RiskCategory) {
			defer wg.Done()

			details, err := s.riskRepo.ListRiskDetails(category)

			mutex.Lock()
			defer mutex.Unlock()

			if err != nil {
				fetchErrors[category] = err
				return
			}
			detailSets[category] = details
		}(category)
	}

	wg.Wait()

	if len(fetchErrors) > 0 {
		failed := make([]string, 0, len(fetchErrors))
		for category, err := range fetchErrors {
			logrus.WithError(err).WithField("category", category).Error("Erro ao buscar detalhes de risco")
			failed = append(failed, string(category))
		}
		return nil, fmt.Errorf("erro ao buscar detalhes de risco: %s", strings.Join(failed, ", "))
	}

	return AggregateRiskDetails(detailSets), nil
}

// AggregateRiskDetails agrega cada conjunto de detalhes em seu bucket: lojas
// distintas afetadas e impacto total. Não há reconciliação de lojas entre
// buckets. Comportamento documentado, não um defeito a corrigir.
func AggregateRiskDetails(detailSets map[domain.RiskCategory][]*domain.RiskDetail) *domain.RiskOverview {
	overview := &domain.RiskOverview{
		Buckets: make([]*domain.RiskBucket, 0, len(riskCategories)),
	}

	for _, category := range riskCategories {
		bucket := aggregateBucket(category, detailSets[category])
		overview.Buckets = append(overview.Buckets, bucket)
		overview.TotalAffectedStores += bucket.AffectedStoreCount
		overview.TotalImpact += bucket.TotalImpact
	}

	return overview
}

func aggregateBucket(category domain.RiskCategory, details []*domain.RiskDetail) *domain.RiskBucket {
	distinctStores := make(map[string]bool)
	totalImpact := 0.0

	for _, detail := range details {
		distinctStores[detail.StoreID] = true
		totalImpact += detail.Impact
	}

	return &domain.RiskBucket{
		Category:           category,
		AffectedStoreCount: len(distinctStores),
		TotalImpact:        totalImpact,
	}
}
