package ledgerrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const recordColumns = `id, source, destination, amount, currency, payer_id, payee_id, status, category, remote_ids, response_message, created_on, finalized_on`

func scanRecord(row pgx.Row, record *domain.TransactionRecord) error {
	return row.Scan(
		&record.ID, &record.Source, &record.Destination, &record.Amount, &record.Currency,
		&record.PayerID, &record.PayeeID, &record.Status, &record.Category,
		&record.RemoteIDs, &record.ResponseMessage, &record.CreatedOn, &record.FinalizedOn,
	)
}

// Insert appends a record and its target references. Ledger rows are
// append-only; nothing here ever rewrites an existing SUCCESS row.
func (r *Repository) Insert(ctx context.Context, record *domain.TransactionRecord) error {
	query := `
        INSERT INTO transaction_records (source, destination, amount, currency, payer_id, payee_id, status, category, remote_ids, response_message, finalized_on)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_on
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			record.Source, record.Destination, record.Amount, record.Currency,
			record.PayerID, record.PayeeID, record.Status, record.Category,
			record.RemoteIDs, record.ResponseMessage, record.FinalizedOn,
		)
		if err := row.Scan(&record.ID, &record.CreatedOn); err != nil {
			zap.L().Error("can't insert transaction record", zap.Error(err))
			return err
		}
		for _, target := range record.Targets {
			_, err := r.db.Exec(ctx,
				`INSERT INTO transaction_targets (transaction_id, kind, entity_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
				record.ID, target.Kind, target.ID,
			)
			if err != nil {
				zap.L().Error("can't insert transaction target", zap.Error(err))
				return err
			}
		}
		return nil
	})
	return err
}

// FindByRemoteID returns the first record carrying the external processor id,
// or nil when none does. Used for idempotent webhook replay.
func (r *Repository) FindByRemoteID(ctx context.Context, remoteID string) (*domain.TransactionRecord, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM transaction_records
        WHERE $1 = ANY(remote_ids)
        ORDER BY status ASC, id ASC
        LIMIT 1
    `, recordColumns)
	var record domain.TransactionRecord
	err := scanRecord(r.db.QueryRow(ctx, query, remoteID), &record)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find record by remote id", zap.Error(err))
		return nil, err
	}
	if err := r.loadTargets(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// RecordFilter narrows FindRecords. Nil fields are unconstrained.
type RecordFilter struct {
	Target      *domain.EntityRef
	Status      *domain.TransactionStatus
	Source      *domain.Account
	Destination *domain.Account
	Category    *domain.TransactionCategory
	PayeeID     *int
}

func (r *Repository) FindRecords(ctx context.Context, filter RecordFilter) ([]domain.TransactionRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM transaction_records`
	var (
		clauses []string
		args    []any
	)
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.Target != nil {
		clauses = append(clauses, fmt.Sprintf(
			"id IN (SELECT transaction_id FROM transaction_targets WHERE kind = %s AND entity_id = %s)",
			arg(filter.Target.Kind), arg(filter.Target.ID),
		))
	}
	if filter.Status != nil {
		clauses = append(clauses, "status = "+arg(*filter.Status))
	}
	if filter.Source != nil {
		clauses = append(clauses, "source = "+arg(*filter.Source))
	}
	if filter.Destination != nil {
		clauses = append(clauses, "destination = "+arg(*filter.Destination))
	}
	if filter.Category != nil {
		clauses = append(clauses, "category = "+arg(*filter.Category))
	}
	if filter.PayeeID != nil {
		clauses = append(clauses, "payee_id = "+arg(*filter.PayeeID))
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query transaction records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		var record domain.TransactionRecord
		if err := scanRecord(rows, &record); err != nil {
			zap.L().Error("can't scan transaction record", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}
	for i := range records {
		if err := r.loadTargets(ctx, &records[i]); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Finalize moves PENDING records to the given terminal status, appending the
// remote id when one is supplied. Amounts and accounts are never touched.
func (r *Repository) Finalize(ctx context.Context, ids []int, status domain.TransactionStatus, remoteID, responseMessage string) error {
	query := `
        UPDATE transaction_records
        SET status = $1,
            response_message = $2,
            finalized_on = $3,
            remote_ids = CASE WHEN $4 = '' OR $4 = ANY(remote_ids) THEN remote_ids ELSE array_append(remote_ids, $4) END
        WHERE id = ANY($5) AND status = $6
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, responseMessage, time.Now(), remoteID, ids, domain.TransactionPending)
		if err != nil {
			zap.L().Error("can't finalize transaction records", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// Balance sums signed amounts for a user and account: payee-matching rows
// count positive, payer-matching rows negative. A nil user means the
// platform's own rows (payee_id IS NULL / payer_id IS NULL).
func (r *Repository) Balance(ctx context.Context, userID *int, account domain.Account, statuses []domain.TransactionStatus) (decimal.Decimal, error) {
	userClause := func(column string) string {
		if userID == nil {
			return column + " IS NULL"
		}
		return column + " = $3"
	}
	args := []any{account, statuses}
	if userID != nil {
		args = append(args, *userID)
	}
	query := fmt.Sprintf(`
        SELECT COALESCE(SUM(CASE WHEN destination = $1 AND %s THEN amount ELSE 0 END), 0)
             - COALESCE(SUM(CASE WHEN source = $1 AND %s THEN amount ELSE 0 END), 0)
        FROM transaction_records
        WHERE status = ANY($2) AND (source = $1 OR destination = $1)
    `, userClause("payee_id"), userClause("payer_id"))

	var balance decimal.Decimal
	if err := r.db.QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		zap.L().Error("can't compute balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

// ListForUser returns every record where the user is payer or payee of the
// given account, newest first.
func (r *Repository) ListForUser(ctx context.Context, userID int, account domain.Account) ([]domain.TransactionRecord, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM transaction_records
        WHERE (payee_id = $1 AND destination = $2) OR (payer_id = $1 AND source = $2)
        ORDER BY created_on DESC, id DESC
    `, recordColumns)
	rows, err := r.db.Query(ctx, query, userID, account)
	if err != nil {
		zap.L().Error("can't list transaction records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.TransactionRecord
	for rows.Next() {
		var record domain.TransactionRecord
		if err := scanRecord(rows, &record); err != nil {
			zap.L().Error("can't scan transaction record", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *Repository) loadTargets(ctx context.Context, record *domain.TransactionRecord) error {
	rows, err := r.db.Query(ctx,
		`SELECT kind, entity_id FROM transaction_targets WHERE transaction_id = $1 ORDER BY kind, entity_id`,
		record.ID,
	)
	if err != nil {
		zap.L().Error("can't load transaction targets", zap.Error(err))
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var ref domain.EntityRef
		if err := rows.Scan(&ref.Kind, &ref.ID); err != nil {
			return err
		}
		record.Targets = append(record.Targets, ref)
	}
	return nil
}
