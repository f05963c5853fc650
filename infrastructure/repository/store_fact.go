package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/database/postgres"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
)

const (
	storeFactsView = "mv_store_facts sf"
)

// storeFactMetricFields são os campos numéricos esperados na coluna JSONB de
// métricas da view materializada. A view é alimentada pelo Supabase e pode
// conter strings numéricas ou nulos; ver NormalizeMetricRecord.
var storeFactMetricFields = []string{
	"sales_value",
	"sales_units",
	"inventory_initial",
	"inventory_final",
	"days_inventory",
	"weekly_sales_value",
	"weekly_sales_units",
}

// StoreFactRepository é a fonte de fatos por loja para um período de
// referência (a "fact source" do motor)
type StoreFactRepository interface {
	ListStoreFacts(period string) ([]*domain.StoreFact, error)
}

type storeFactRepository struct {
	conn *postgres.Connection
}

func NewStoreFactRepository(conn *postgres.Connection) StoreFactRepository {
	return &storeFactRepository{
		conn: conn,
	}
}

func (r *storeFactRepository) ListStoreFacts(period string) ([]*domain.StoreFact, error) {
	query, args, err := squirrel.
		Select("sf.store_id, sf.store_name, sf.segment, sf.metrics").
		From(storeFactsView).
		Where(squirrel.Eq{"sf.period": period}).
		OrderBy("sf.store_id ASC").
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
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	facts := make([]*domain.StoreFact, 0)
	for rows.Next() {
		fact, err := r.scanStoreFact(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear store facts: %w", err)
		}
		facts = append(facts, fact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return facts, nil
}

func (r *storeFactRepository) scanStoreFact(rows *sql.Rows) (*domain.StoreFact, error) {
	var (
		storeID     string
		storeName   string
		segment     string
		metricsJSON []byte
	)

	if err := rows.Scan(&storeID, &storeName, &segment, &metricsJSON); err != nil {
		return nil, err
	}

	rawMetrics := make(map[string]any)
	if len(metricsJSON) > 0 {
		if err := json.Unmarshal(metricsJSON, &rawMetrics); err != nil {
			return nil, fmt.Errorf("erro ao desserializar métricas da loja %s: %w", storeID, err)
		}
	}

	metrics := NormalizeMetricRecord(rawMetrics, storeFactMetricFields)

	return &domain.StoreFact{
		StoreID:          storeID,
		StoreName:        storeName,
		Segment:          segment,
		SalesValue:       metrics["sales_value"],
		SalesUnits:       metrics["sales_units"],
		InventoryInitial: metrics["inventory_initial"],
		InventoryFinal:   metrics["inventory_final"],
		DaysInventory:    metrics["days_inventory"],
		WeeklySalesValue: metrics["weekly_sales_value"],
		WeeklySalesUnits: metrics["weekly_sales_units"],
	}, nil
}
