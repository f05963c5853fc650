package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/database/postgres"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
)

// Views de detalhe de risco, uma por categoria. São conjuntos independentes:
// uma mesma loja pode aparecer em mais de uma view.
const (
	stockoutRiskView   = "mv_stockout_risk"
	expirationRiskView = "mv_expiration_risk"
	noSaleRiskView     = "mv_no_sale_risk"
)

// RiskRepository é a fonte dos detalhes de risco valorizados por categoria
type RiskRepository interface {
	ListRiskDetails(category domain.RiskCategory) ([]*domain.RiskDetail, error)
}

type riskRepository struct {
	conn *postgres.Connection
}

func NewRiskRepository(conn *postgres.Connection) RiskRepository {
	return &riskRepository{
		conn: conn,
	}
}

func (r *riskRepository) ListRiskDetails(category domain.RiskCategory) ([]*domain.RiskDetail, error) {
	view, err := riskViewFor(category)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select("store_id, impact").
		From(view).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar detalhes de risco %s: %w", category, err)
	}
	defer rows.Close()

	details := make([]*domain.RiskDetail, 0)
	for rows.Next() {
		detail := &domain.RiskDetail{}
		if err := rows.Scan(&detail.StoreID, &detail.Impact); err != nil {
			return nil, fmt.Errorf("erro ao escanear detalhe de risco: %w", err)
		}
		details = append(details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return details, nil
}

func riskViewFor(category domain.RiskCategory) (string, error) {
	switch category {
	case domain.RiskStockout:
		return stockoutRiskView, nil
	case domain.RiskExpiration:
		return expirationRiskView, nil
	case domain.RiskNoSale:
		return noSaleRiskView, nil
	default:
		return "", fmt.Errorf("categoria de risco desconhecida: %s", category)
	}
}
