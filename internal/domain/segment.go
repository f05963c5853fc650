package domain

// SegmentSummary agrega as métricas de vendas de um segmento de lojas
// (ex: "Hot", "Balanced", "Slow", "Critical"). A classificação das lojas em
// segmentos é fornecida externamente, não é calculada aqui.
type SegmentSummary struct {
	Segment                string  `json:"segment"`
	SalesValue             float64 `json:"sales_value"`
	SalesUnits             float64 `json:"sales_units"`
	NumStores              int     `json:"num_stores"`
	ContributionPct        float64 `json:"contribution_pct"`
	ParticipationPct       float64 `json:"participation_pct"`
	WeeklyAvgPerStoreValue float64 `json:"weekly_avg_per_store_value"`
}

// SegmentationResponse é a resposta da agregação por segmento, ordenada por
// valor de vendas decrescente.
type SegmentationResponse struct {
	Segments      []*SegmentSummary `json:"segments"`
	TotalSales    float64           `json:"total_sales"`
	TotalStores   int               `json:"total_stores"`
	WeeksInPeriod float64           `json:"weeks_in_period"`
}
