// Package exhibiting calcula o retorno sobre investimento em exibição
// adicional por loja e SKU, com as visões derivadas consumidas pelo dashboard
package exhibiting

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/repository"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
	"github.com/vgalindo/retail-opportunity-api/pkg/utils"
)

type Service struct {
	roiRepo repository.ExhibitionROIRepository
}

func NewService(roiRepo repository.ExhibitionROIRepository) Exhibitor {
	return &Service{
		roiRepo: roiRepo,
	}
}

func validateParams(params *domain.ExhibitionParams) error {
	if params == nil {
		return fmt.Errorf("é necessário informar os parâmetros de exibição")
	}
	if params.CostPerExhibition <= 0 {
		return fmt.Errorf("custo por exibição deve ser maior que zero, recebido %v", params.CostPerExhibition)
	}
	if params.SalesLiftFraction < 0 {
		return fmt.Errorf("fração de aumento de vendas não pode ser negativa, recebido %v", params.SalesLiftFraction)
	}
	if params.DaysInMonth < 1 || params.DaysInMonth > 31 {
		return fmt.Errorf("dias no mês deve estar entre 1 e 31, recebido %d", params.DaysInMonth)
	}
	return nil
}

func (s *Service) ComputeExhibitionROI(params *domain.ExhibitionParams) (*domain.ExhibitionROIResponse, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	items, err := s.roiRepo.ListROIRows(params)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"cost_per_exhibition": params.CostPerExhibition,
			"sales_lift_fraction": params.SalesLiftFraction,
			"days_in_month":       params.DaysInMonth,
		}).Error("Erro ao buscar linhas de ROI de exibição")
		return nil, fmt.Errorf("erro ao buscar linhas de ROI de exibição: %w", err)
	}

	groups := GroupByStore(items)

	return &domain.ExhibitionROIResponse{
		Params:         params,
		Items:          items,
		GroupedByStore: groups,
		Summary:        ComputeSummary(items, groups),
	}, nil
}

func (s *Service) TopStoresByROI(n int, params *domain.ExhibitionParams) ([]*domain.StoreROIGroup, error) {
	// Re-deriva os grupos do conjunto completo de itens, em vez de consultar
	// novamente, para garantir consistência entre "top lojas" e o detalhe por
	// loja em uma mesma resposta
	response, err := s.ComputeExhibitionROI(params)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		n = 0
	}
	if n > len(response.GroupedByStore) {
		n = len(response.GroupedByStore)
	}

	return response.GroupedByStore[:n], nil
}

func (s *Service) ROIForStore(storeID string, params *domain.ExhibitionParams) ([]*domain.ExhibitionROIItem, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	items, err := s.roiRepo.ListROIRows(params)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar linhas de ROI de exibição: %w", err)
	}

	// Retorna a lista plana de itens da loja, não um grupo
	filtered := make([]*domain.ExhibitionROIItem, 0)
	for _, item := range items {
		if item.StoreID == storeID {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

// GroupByStore agrupa os itens por loja, ordenados por ROI decrescente com
// empates resolvidos pela ordem de primeira aparição da loja. O ROI do grupo é
// o ROI de qualquer item membro: a função externa calcula um único ROI por
// loja, idêntico em todas as linhas de SKU daquela loja.
func GroupByStore(items []*domain.ExhibitionROIItem) []*domain.StoreROIGroup {
	groupIndex := make(map[string]*domain.StoreROIGroup)
	insertionIndex := make(map[string]int)
	groups := make([]*domain.StoreROIGroup, 0)

	for _, item := range items {
		group, exists := groupIndex[item.StoreID]
		if !exists {
			group = &domain.StoreROIGroup{
				StoreID:  item.StoreID,
				ROIPesos: item.ROIPesos,
				SkuItems: make([]*domain.ExhibitionROIItem, 0),
			}
			groupIndex[item.StoreID] = group
			insertionIndex[item.StoreID] = len(groups)
			groups = append(groups, group)
		}

		group.TotalUnits += item.ExtraordinaryOrderUnits
		group.TotalOrderValue += item.ExtraordinaryOrderValue
		group.SkuItems = append(group.SkuItems, item)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].ROIPesos != groups[j].ROIPesos {
			return groups[i].ROIPesos > groups[j].ROIPesos
		}
		return insertionIndex[groups[i].StoreID] < insertionIndex[groups[j].StoreID]
	})

	return groups
}

// ComputeSummary resume o conjunto de itens. O ROI médio é calculado sobre os
// grupos por loja, nunca sobre as linhas de SKU: uma loja com 5 SKUs contribui
// com seu ROI uma única vez para a média.
func ComputeSummary(items []*domain.ExhibitionROIItem, groups []*domain.StoreROIGroup) *domain.ExhibitionSummary {
	summary := &domain.ExhibitionSummary{
		TotalStores: len(groups),
		TotalSkus:   len(items),
	}

	totalROI := 0.0
	for _, group := range groups {
		summary.TotalUnits += group.TotalUnits
		summary.TotalOrderValue += group.TotalOrderValue
		totalROI += group.ROIPesos
	}

	summary.AvgROI = utils.RoundWithTwoDecimalPlace(
		utils.SafeRatio(totalROI, float64(summary.TotalStores)),
	)

	return summary
}
