package domain

// ExhibitionParams são os parâmetros do investimento em exibição adicional.
// SalesLiftFraction é uma fração (0.15 = 15% de aumento esperado nas vendas).
type ExhibitionParams struct {
	CostPerExhibition float64 `json:"cost_per_exhibition"`
	SalesLiftFraction float64 `json:"sales_lift_fraction"`
	DaysInMonth       int     `json:"days_in_month"`
}

// ExhibitionROIItem é uma linha por combinação (loja, sku) já filtrada para
// viabilidade econômica pela função de ROI externa. ROIPesos é o ROI da loja,
// idêntico em todas as linhas de uma mesma loja.
type ExhibitionROIItem struct {
	SkuFact
	ROIPesos                float64 `json:"roi_pesos"`
	ExtraordinaryOrderUnits float64 `json:"extraordinary_order_units"`
	ExtraordinaryOrderValue float64 `json:"extraordinary_order_value"`
}

// StoreROIGroup agrupa os itens de uma loja. ROIPesos é único por loja (não por
// SKU); TotalUnits e TotalOrderValue são somas sobre os SKUs membros.
type StoreROIGroup struct {
	StoreID         string               `json:"store_id"`
	ROIPesos        float64              `json:"roi_pesos"`
	TotalUnits      float64              `json:"total_units"`
	TotalOrderValue float64              `json:"total_order_value"`
	SkuItems        []*ExhibitionROIItem `json:"sku_items"`
}

// ExhibitionSummary resume o cálculo de ROI. AvgROI é a média por loja, nunca
// por linha de SKU: uma loja com 5 SKUs contribui com seu ROI uma única vez.
type ExhibitionSummary struct {
	TotalStores     int     `json:"total_stores"`
	TotalSkus       int     `json:"total_skus"`
	TotalUnits      float64 `json:"total_units"`
	TotalOrderValue float64 `json:"total_order_value"`
	AvgROI          float64 `json:"avg_roi"`
}

// ExhibitionROIResponse é a resposta completa do cálculo de ROI de exibição:
// itens, agrupamento por loja e resumo derivados do mesmo conjunto de linhas.
type ExhibitionROIResponse struct {
	Params         *ExhibitionParams    `json:"params"`
	Items          []*ExhibitionROIItem `json:"items"`
	GroupedByStore []*StoreROIGroup     `json:"grouped_by_store"`
	Summary        *ExhibitionSummary   `json:"summary"`
}
