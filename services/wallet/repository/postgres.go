package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/ridepay/internal/pkg/database"
	"github.com/piresc/ridepay/internal/pkg/models"
	"github.com/piresc/ridepay/services/wallet"
)

const (
	walletColumns = `id, account_id, balance, currency, is_active, daily_spent, monthly_spent,
		daily_limit, monthly_limit, last_reset_at, created_at, updated_at`

	insertWalletQuery = `
		INSERT INTO wallets (` + walletColumns + `)
		VALUES (:id, :account_id, :balance, :currency, :is_active, :daily_spent, :monthly_spent,
			:daily_limit, :monthly_limit, :last_reset_at, :created_at, :updated_at)
		ON CONFLICT (account_id) DO NOTHING`

	selectWalletByAccountQuery = `SELECT ` + walletColumns + ` FROM wallets WHERE account_id = $1`

	lockWalletsQuery = `SELECT ` + walletColumns + ` FROM wallets WHERE id = ANY($1) ORDER BY id FOR UPDATE`

	updateWalletQuery = `
		UPDATE wallets
		SET balance = :balance, is_active = :is_active, daily_spent = :daily_spent,
			monthly_spent = :monthly_spent, last_reset_at = :last_reset_at, updated_at = :updated_at
		WHERE id = :id`

	insertTransactionQuery = `
		INSERT INTO wallet_transactions (
			id, wallet_id, type, amount, category, status, description, reference_id,
			balance_before, balance_after, metadata, created_at, completed_at
		) VALUES (
			:id, :wallet_id, :type, :amount, :category, :status, :description, :reference_id,
			:balance_before, :balance_after, :metadata, :created_at, :completed_at
		)`

	referenceExistsQuery = `
		SELECT EXISTS (
			SELECT 1 FROM wallet_transactions
			WHERE wallet_id = $1 AND reference_id = $2 AND category = $3 AND type = $4
		)`

	listTransactionsQuery = `
		SELECT id, wallet_id, type, amount, category, status, description, reference_id,
			balance_before, balance_after, metadata, created_at, completed_at
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	referenceIndex = "wallet_transactions_reference_idx"
)

// PostgresRepo stores wallets and their transactions in Postgres. Mutations
// lock the wallet rows with SELECT ... FOR UPDATE for the whole transaction.
type PostgresRepo struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a wallet repository on db
func NewPostgresRepository(db *sqlx.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) GetOrCreateByAccount(ctx context.Context, w *models.Wallet) (*models.Wallet, error) {
	if _, err := r.db.NamedExecContext(ctx, insertWalletQuery, w); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return r.GetByAccount(ctx, w.AccountID)
}

func (r *PostgresRepo) GetByAccount(ctx context.Context, accountID string) (*models.Wallet, error) {
	var w models.Wallet
	err := r.db.GetContext(ctx, &w, selectWalletByAccountQuery, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wallet.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &w, nil
}

func (r *PostgresRepo) Mutate(ctx context.Context, walletIDs []string, fn wallet.MutateFunc) error {
	ids := uniqueSorted(walletIDs)

	return database.WithTx(ctx, r.db, func(dbTx *sqlx.Tx) error {
		var locked []*models.Wallet
		if err := dbTx.SelectContext(ctx, &locked, lockWalletsQuery, pq.Array(ids)); err != nil {
			return fmt.Errorf("failed to lock wallets: %w", err)
		}
		if len(locked) != len(ids) {
			return wallet.ErrNotFound
		}

		tx := &postgresTx{ctx: ctx, tx: dbTx, wallets: make(map[string]*models.Wallet, len(locked))}
		for _, w := range locked {
			tx.wallets[w.ID] = w
		}

		txns, err := fn(tx)
		if err != nil {
			return err
		}

		for _, id := range ids {
			if _, err := dbTx.NamedExecContext(ctx, updateWalletQuery, tx.wallets[id]); err != nil {
				return fmt.Errorf("failed to update wallet: %w", err)
			}
		}
		for _, t := range txns {
			if _, err := dbTx.NamedExecContext(ctx, insertTransactionQuery, t); err != nil {
				if database.IsUniqueViolation(err, referenceIndex) {
					return wallet.ErrDuplicateReference
				}
				return fmt.Errorf("failed to insert transaction: %w", err)
			}
		}
		return nil
	})
}

func (r *PostgresRepo) ListTransactions(ctx context.Context, walletID string, filter models.TransactionFilter) ([]*models.Transaction, error) {
	txns := []*models.Transaction{}
	if err := r.db.SelectContext(ctx, &txns, listTransactionsQuery, walletID, filter.Limit, filter.Offset); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

type postgresTx struct {
	ctx     context.Context
	tx      *sqlx.Tx
	wallets map[string]*models.Wallet
}

func (t *postgresTx) Wallet(id string) *models.Wallet {
	return t.wallets[id]
}

func (t *postgresTx) HasReference(walletID, referenceID string, category models.TransactionCategory, typ models.TransactionType) (bool, error) {
	var exists bool
	if err := t.tx.GetContext(t.ctx, &exists, referenceExistsQuery, walletID, referenceID, category, typ); err != nil {
		return false, err
	}
	return exists, nil
}
