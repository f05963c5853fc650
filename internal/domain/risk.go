package domain

// RiskCategory identifica uma das três categorias de risco valorizadas.
type RiskCategory string

const (
	RiskStockout   RiskCategory = "stockout"
	RiskExpiration RiskCategory = "expiration"
	RiskNoSale     RiskCategory = "no_sale"
)

// RiskDetail é uma linha de detalhe de risco: o impacto monetário estimado
// para uma loja em uma categoria.
type RiskDetail struct {
	StoreID string  `json:"store_id"`
	Impact  float64 `json:"impact"`
}

// RiskBucket agrega uma categoria de risco: número de lojas distintas
// afetadas e impacto monetário total.
type RiskBucket struct {
	Category           RiskCategory `json:"category"`
	AffectedStoreCount int          `json:"affected_store_count"`
	TotalImpact        float64      `json:"total_impact"`
}

// RiskOverview consolida os três buckets. Os totais NÃO são deduplicados entre
// categorias: uma loja presente em dois buckets conta integralmente em ambos,
// portanto TotalAffectedStores e TotalImpact são limites superiores do risco
// real quando há sobreposição.
type RiskOverview struct {
	Buckets             []*RiskBucket `json:"buckets"`
	TotalAffectedStores int           `json:"total_affected_stores"`
	TotalImpact         float64       `json:"total_impact"`
}
