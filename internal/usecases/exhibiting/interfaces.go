package exhibiting

import (
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
)

// Exhibitor define as operações de cálculo de ROI de investimento em exibição
type Exhibitor interface {
	// ComputeExhibitionROI calcula os itens por (loja, sku), o agrupamento por
	// loja e o resumo, todos derivados de uma única busca de linhas
	ComputeExhibitionROI(params *domain.ExhibitionParams) (*domain.ExhibitionROIResponse, error)

	// TopStoresByROI retorna os N primeiros grupos da ordenação por ROI
	// decrescente, re-derivados do conjunto completo de itens
	TopStoresByROI(n int, params *domain.ExhibitionParams) ([]*domain.StoreROIGroup, error)

	// ROIForStore filtra a lista plana de itens para uma única loja
	ROIForStore(storeID string, params *domain.ExhibitionParams) ([]*domain.ExhibitionROIItem, error)
}
