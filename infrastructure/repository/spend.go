package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/roi-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
)

const spendTable = "ad_spend"

// ErrSchemaMissing sinaliza que a coleção consultada ainda não existe no banco
// (deploy novo). O chamador do relatório de ROI recupera essa condição em um
// relatório zerado; é diferente de resultado vazio.
var ErrSchemaMissing = errors.New("tabela ainda não existe")

type SpendRepository interface {
	ListByOwner(ownerID int) ([]*domain.SpendRecord, error)
	BulkInsert(records []*domain.SpendRecord) error
	UpsertSyncRows(records []*domain.SpendRecord) error
}

type spendRepository struct {
	conn postgres.Queryer
}

func NewSpendRepository(conn *postgres.Connection) SpendRepository {
	return &spendRepository{
		conn: conn,
	}
}

func (r *spendRepository) ListByOwner(ownerID int) ([]*domain.SpendRecord, error) {
	query, args, err := squirrel.
		Select("owner_id, date, spend_amount, campaign_id, impressions").
		From(spendTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if postgres.IsUndefinedTable(err) {
			return nil, ErrSchemaMissing
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.SpendRecord, 0)
	for rows.Next() {
		record := &domain.SpendRecord{}
		var dateStr string
		var impressions sql.NullInt64

		if err := rows.Scan(
			&record.OwnerID,
			&dateStr,
			&record.SpendAmount,
			&record.CampaignID,
			&impressions,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear gasto: %w", err)
		}

		date, err := parseDateColumn(dateStr)
		if err != nil {
			return nil, err
		}
		record.Date = date
		record.Impressions = int(impressions.Int64)

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *spendRepository) BulkInsert(records []*domain.SpendRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(spendTable).
		Columns("owner_id", "date", "spend_amount", "campaign_id", "impressions").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		query = query.Values(
			record.OwnerID,
			record.Date.Format(time.DateOnly),
			record.SpendAmount,
			record.CampaignID,
			record.Impressions,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir gastos: %w", err)
	}

	return nil
}

// UpsertSyncRows grava as linhas normalizadas de um adaptador de sincronização.
// A chave composta (owner_id, date, campaign_id) substitui a linha inteira em
// caso de conflito, o que torna sincronizações repetidas idempotentes.
func (r *spendRepository) UpsertSyncRows(records []*domain.SpendRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(spendTable).
		Columns("owner_id", "date", "spend_amount", "campaign_id", "impressions").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		query = query.Values(
			record.OwnerID,
			record.Date.Format(time.DateOnly),
			record.SpendAmount,
			record.CampaignID,
			record.Impressions,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (owner_id, date, campaign_id) DO UPDATE SET
			spend_amount = EXCLUDED.spend_amount,
			impressions = EXCLUDED.impressions,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar upsert de gastos: %w", err)
	}

	return nil
}

func parseDateColumn(dateStr string) (time.Time, error) {
	// Colunas "date" chegam como YYYY-MM-DD; drivers podem anexar o horário
	if len(dateStr) > 10 {
		dateStr = dateStr[:10]
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("erro ao converter data: %w", err)
	}

	return date, nil
}
