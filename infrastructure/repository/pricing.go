package repository

import (
	"fmt"

	"github.com/vgalindo/retail-opportunity-api/infrastructure/database/postgres"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
)

// PricingRepository é a função de precificação externa (stored function no
// banco). O motor não reimplementa a fórmula de custo de promoção: invoca a
// função uma vez por categoria e trata o retorno como opaco.
type PricingRepository interface {
	ComputePromotionCost(discountRate, elasticity float64, category string) (*domain.PromotionCost, error)
}

type pricingRepository struct {
	conn *postgres.Connection
}

func NewPricingRepository(conn *postgres.Connection) PricingRepository {
	return &pricingRepository{
		conn: conn,
	}
}

const promotionProjectionQuery = `
	SELECT inventory_initial_total,
	       incremental_units,
	       original_sales,
	       promotion_cost,
	       captured_value
	  FROM fn_promotion_projection($1, $2, $3)
`

func (r *pricingRepository) ComputePromotionCost(discountRate, elasticity float64, category string) (*domain.PromotionCost, error) {
	row := r.conn.QueryRow(promotionProjectionQuery, discountRate, elasticity, category)

	cost := &domain.PromotionCost{}
	err := row.Scan(
		&cost.InventoryInitialTotal,
		&cost.IncrementalUnits,
		&cost.OriginalSales,
		&cost.PromotionCost,
		&cost.CapturedValue,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular custo de promoção da categoria %s: %w", category, err)
	}

	return cost, nil
}
