package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/roi-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
)

const salesTable = "sales"

type SaleRepository interface {
	ListByOwner(ownerID int) ([]*domain.SaleRecord, error)
	BulkInsert(records []*domain.SaleRecord) error
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) ListByOwner(ownerID int) ([]*domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select("owner_id, date, sale_amount, order_id, customer_email").
		From(salesTable).
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

	records := make([]*domain.SaleRecord, 0)
	for rows.Next() {
		record := &domain.SaleRecord{}
		var dateStr string
		var orderID, customerEmail sql.NullString

		if err := rows.Scan(
			&record.OwnerID,
			&dateStr,
			&record.SaleAmount,
			&orderID,
			&customerEmail,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}

		date, err := parseDateColumn(dateStr)
		if err != nil {
			return nil, err
		}
		record.Date = date
		record.OrderID = orderID.String
		record.CustomerEmail = customerEmail.String

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *saleRepository) BulkInsert(records []*domain.SaleRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(salesTable).
		Columns("owner_id", "date", "sale_amount", "order_id", "customer_email").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		query = query.Values(
			record.OwnerID,
			record.Date.Format(time.DateOnly),
			record.SaleAmount,
			record.OrderID,
			record.CustomerEmail,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir vendas: %w", err)
	}

	return nil
}
