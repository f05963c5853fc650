package repository

import (
	"database/sql"
	"fmt"

	"github.com/vgalindo/retail-opportunity-api/infrastructure/database/postgres"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
)

// ExhibitionROIRepository é a fonte externa de linhas de ROI de exibição
// (stored function no banco). As linhas retornadas já vêm filtradas para
// combinações (loja, sku) economicamente viáveis.
type ExhibitionROIRepository interface {
	ListROIRows(params *domain.ExhibitionParams) ([]*domain.ExhibitionROIItem, error)
}

type exhibitionROIRepository struct {
	conn *postgres.Connection
}

func NewExhibitionROIRepository(conn *postgres.Connection) ExhibitionROIRepository {
	return &exhibitionROIRepository{
		conn: conn,
	}
}

const exhibitionROIQuery = `
	SELECT store_id,
	       sku,
	       product_name,
	       category,
	       daily_avg_sales_units,
	       final_inventory,
	       unit_price,
	       roi_pesos,
	       extraordinary_order_units,
	       extraordinary_order_value
	  FROM fn_exhibition_roi($1, $2, $3)
`

func (r *exhibitionROIRepository) ListROIRows(params *domain.ExhibitionParams) ([]*domain.ExhibitionROIItem, error) {
	rows, err := r.conn.Query(
		exhibitionROIQuery,
		params.CostPerExhibition,
		params.SalesLiftFraction,
		params.DaysInMonth,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a função de ROI de exibição: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ExhibitionROIItem, 0)
	for rows.Next() {
		item := &domain.ExhibitionROIItem{}
		err := rows.Scan(
			&item.StoreID,
			&item.Sku,
			&item.ProductName,
			&item.Category,
			&item.DailyAvgSalesUnits,
			&item.FinalInventory,
			&item.UnitPrice,
			&item.ROIPesos,
			&item.ExtraordinaryOrderUnits,
			&item.ExtraordinaryOrderValue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de ROI de exibição: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}
