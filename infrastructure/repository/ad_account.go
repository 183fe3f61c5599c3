package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/roi-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-analytics-api/internal/domain"
)

const adAccountsTable = "ad_accounts"

type AccountRepository interface {
	ListActiveByOwner(ownerID int) ([]*domain.AdAccount, error)
	ListActive() ([]*domain.AdAccount, error)
	UpdateToken(accountID string, accessToken string, expiresAt time.Time) error
	Deactivate(accountID string) error
}

type accountRepository struct {
	conn postgres.Queryer
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) ListActiveByOwner(ownerID int) ([]*domain.AdAccount, error) {
	return r.listAccounts(squirrel.Eq{"owner_id": ownerID, "is_active": true})
}

func (r *accountRepository) ListActive() ([]*domain.AdAccount, error) {
	return r.listAccounts(squirrel.Eq{"is_active": true})
}

func (r *accountRepository) listAccounts(whereClause map[string]interface{}) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("id, owner_id, platform, external_account_id, access_token, refresh_token, is_active, token_expires_at").
		From(adAccountsTable).
		Where(whereClause).
		OrderBy("created_at ASC").
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

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account, err := r.deserializeAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) deserializeAccount(rows *sql.Rows) (*domain.AdAccount, error) {
	account := &domain.AdAccount{}
	var refreshToken sql.NullString
	var expiresAt sql.NullTime

	if err := rows.Scan(
		&account.ID,
		&account.OwnerID,
		&account.Platform,
		&account.ExternalAccountID,
		&account.AccessToken,
		&refreshToken,
		&account.IsActive,
		&expiresAt,
	); err != nil {
		return nil, fmt.Errorf("erro ao escanear conta de anúncios: %w", err)
	}

	account.RefreshToken = refreshToken.String
	if expiresAt.Valid {
		account.TokenExpiresAt = &expiresAt.Time
	}

	return account, nil
}

// UpdateToken persiste o token renovado de uma conta. Chamado pelos adaptadores
// somente depois de uma sincronização bem-sucedida (write-after-use): um crash
// antes desse ponto mantém o refresh token anterior válido.
func (r *accountRepository) UpdateToken(accountID string, accessToken string, expiresAt time.Time) error {
	query, args, err := squirrel.
		Update(adAccountsTable).
		Set("access_token", accessToken).
		Set("token_expires_at", expiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar token da conta: %w", err)
	}

	return nil
}

// Deactivate marca a conta como inativa quando a plataforma reporta a
// credencial como revogada; execuções futuras passam a ignorá-la até uma nova
// autorização do usuário.
func (r *accountRepository) Deactivate(accountID string) error {
	query, args, err := squirrel.
		Update(adAccountsTable).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao desativar conta: %w", err)
	}

	return nil
}
