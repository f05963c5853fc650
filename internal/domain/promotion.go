package domain

// PromotionItem representa uma categoria candidata à promoção com sua
// elasticidade. A elasticidade é um multiplicador que traduz a fração de
// desconto em aumento proporcional de unidades vendidas.
type PromotionItem struct {
	Category   string  `json:"category"`
	Elasticity float64 `json:"elasticity"`
}

// PromotionRequest é a requisição de simulação de promoção. DiscountRate é uma
// fração, não um percentual (0.41 = 41%).
type PromotionRequest struct {
	DiscountRate float64          `json:"discount_rate"`
	Items        []*PromotionItem `json:"items"`
}

// PromotionCost é o resultado bruto da função de precificação externa para uma
// categoria. O engine não deriva essa fórmula, apenas a consome.
type PromotionCost struct {
	InventoryInitialTotal float64 `json:"inventory_initial_total"`
	IncrementalUnits      float64 `json:"incremental_units"`
	OriginalSales         float64 `json:"original_sales"`
	PromotionCost         float64 `json:"promotion_cost"`
	CapturedValue         float64 `json:"captured_value"`
}

// PromotionResult é o resultado final por categoria, imutável após o cálculo.
// RiskReductionFraction e InventoryPost são derivados pelo engine a partir dos
// valores retornados pela função de precificação.
type PromotionResult struct {
	Category              string  `json:"category"`
	InventoryInitialTotal float64 `json:"inventory_initial_total"`
	IncrementalUnits      float64 `json:"incremental_units"`
	OriginalSales         float64 `json:"original_sales"`
	PromotionCost         float64 `json:"promotion_cost"`
	CapturedValue         float64 `json:"captured_value"`
	RiskReductionFraction float64 `json:"risk_reduction_fraction"`
	InventoryPost         float64 `json:"inventory_post"`
}

// PromotionBatchResponse ecoa a configuração da requisição para auditoria e
// carrega os resultados indexados por categoria.
type PromotionBatchResponse struct {
	DiscountPct float64                     `json:"discount_pct"`
	Items       []*PromotionItem            `json:"items"`
	Results     map[string]*PromotionResult `json:"results"`
}

// PromotionComparison contém o resultado completo de uma simulação para cada
// taxa de desconto informada, calculadas de forma independente.
type PromotionComparison struct {
	Scenarios []*PromotionBatchResponse `json:"scenarios"`
}
