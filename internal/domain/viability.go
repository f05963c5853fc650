package domain

// ViabilityVerdict é o veredito de viabilidade do investimento em exibição,
// derivado a cada chamada a partir do resumo de ROI; não é persistido.
// O limiar de viabilidade é avg_roi > 1 (ROI como multiplicador, 1 = ponto de
// equilíbrio); regra de negócio fixa, intencionalmente não configurável.
type ViabilityVerdict struct {
	IsViable         bool    `json:"is_viable"`
	ViableStoreCount int     `json:"viable_store_count"`
	AvgROI           float64 `json:"avg_roi"`
	NetMonthlyReturn float64 `json:"net_monthly_return"`
	TotalCost        float64 `json:"total_cost"`
	ProfitabilityPct float64 `json:"profitability_pct"`
}

// OpportunityReport combina o cálculo de ROI de exibição, o veredito de
// viabilidade e a valorização de riscos em uma única resposta. A seção de
// riscos pode vir nula quando a busca de riscos falha (degradação parcial).
type OpportunityReport struct {
	Exhibition *ExhibitionROIResponse `json:"exhibition"`
	Verdict    *ViabilityVerdict      `json:"verdict"`
	Risks      *RiskOverview          `json:"risks,omitempty"`
}
