package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vgalindo/retail-opportunity-api/infrastructure/database/postgres"
	"github.com/vgalindo/retail-opportunity-api/internal/domain"
	"github.com/vgalindo/retail-opportunity-api/pkg/utils"
)

const (
	roiRankingTable = "roi_ranking_snapshots"
)

// ROIRankingRepository persiste o snapshot pré-calculado do ranking de lojas
// por ROI de exibição, atualizado pelo agendador
type ROIRankingRepository interface {
	GetByPeriod(period string) (*domain.ROIRankingSnapshot, error)
	SaveOrUpdate(snapshot *domain.ROIRankingSnapshot) error
}

type roiRankingRepository struct {
	conn *postgres.Connection
}

func NewROIRankingRepository(conn *postgres.Connection) ROIRankingRepository {
	return &roiRankingRepository{
		conn: conn,
	}
}

func (r *roiRankingRepository) GetByPeriod(period string) (*domain.ROIRankingSnapshot, error) {
	query, args, err := squirrel.
		Select("id, period, params, ranking, generated_at").
		From(roiRankingTable).
		Where(squirrel.Eq{"period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	row := r.conn.QueryRow(query, args...)

	var (
		snapshot    domain.ROIRankingSnapshot
		paramsJSON  []byte
		rankingJSON []byte
	)

	err = row.Scan(&snapshot.ID, &snapshot.Period, &paramsJSON, &rankingJSON, &snapshot.GeneratedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear snapshot de ranking por ROI")
	}

	if len(paramsJSON) > 0 {
		if err := json.Unmarshal(paramsJSON, &snapshot.Params); err != nil {
			return nil, errors.Wrap(err, "erro ao desserializar parâmetros do snapshot")
		}
	}

	if len(rankingJSON) > 0 {
		if err := json.Unmarshal(rankingJSON, &snapshot.Ranking); err != nil {
			return nil, errors.Wrap(err, "erro ao desserializar ranking do snapshot")
		}
	}

	return &snapshot, nil
}

func (r *roiRankingRepository) SaveOrUpdate(snapshot *domain.ROIRankingSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "erro ao gerar ID do snapshot")
		}
		snapshot.ID = id
	}

	if snapshot.GeneratedAt.IsZero() {
		snapshot.GeneratedAt = time.Now()
	}

	paramsJSON, err := json.Marshal(snapshot.Params)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar parâmetros do snapshot")
	}

	rankingJSON, err := json.Marshal(snapshot.Ranking)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar ranking do snapshot")
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(roiRankingTable).
		Columns("id", "period", "params", "ranking", "generated_at").
		Values(snapshot.ID, snapshot.Period, paramsJSON, rankingJSON, snapshot.GeneratedAt).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				params = EXCLUDED.params,
				ranking = EXCLUDED.ranking,
				generated_at = EXCLUDED.generated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	// Upsert dentro de transação para que leitura concorrente do dashboard
	// nunca veja snapshot parcial
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec(query, args...)
		if err != nil {
			return errors.Wrap(err, "erro ao salvar snapshot de ranking por ROI")
		}
		return nil
	})
}
