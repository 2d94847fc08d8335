package invoicerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

func cascadeToInts(types []domain.LineItemType) []int32 {
	out := make([]int32, len(types))
	for i, t := range types {
		out[i] = int32(t)
	}
	return out
}

func intsToCascade(values []int32) []domain.LineItemType {
	if len(values) == 0 {
		return nil
	}
	out := make([]domain.LineItemType, len(values))
	for i, v := range values {
		out[i] = domain.LineItemType(v)
	}
	return out
}

func (r *Repository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) error {
	query := `
        INSERT INTO invoices (bill_to_id, issuer_id, status)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, invoice.BillToID, invoice.IssuerID, invoice.Status).Scan(&invoice.ID)
	if err != nil {
		zap.L().Error("can't create invoice", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetInvoice(ctx context.Context, id int) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.QueryRow(ctx, `SELECT id, bill_to_id, issuer_id, status FROM invoices WHERE id = $1`, id).
		Scan(&invoice.ID, &invoice.BillToID, &invoice.IssuerID, &invoice.Status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find invoice", zap.Error(err))
		return nil, err
	}
	return &invoice, nil
}

func (r *Repository) UpdateInvoiceStatus(ctx context.Context, id int, status domain.InvoiceStatus) error {
	_, err := r.db.Exec(ctx, `UPDATE invoices SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		zap.L().Error("can't update invoice status", zap.Error(err))
		return err
	}
	return nil
}

const lineColumns = `id, invoice_id, type, amount, percentage, priority, cascade_under, back_into_percentage, destination_account, destination_user_id`

// LinesFor returns the invoice's line items in evaluation order.
func (r *Repository) LinesFor(ctx context.Context, invoiceID int) ([]domain.LineItem, error) {
	query := `
        SELECT ` + lineColumns + `
        FROM line_items
        WHERE invoice_id = $1
        ORDER BY priority ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		zap.L().Error("can't query line items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lines []domain.LineItem
	for rows.Next() {
		var (
			line    domain.LineItem
			cascade []int32
		)
		err := rows.Scan(
			&line.ID, &line.InvoiceID, &line.Type, &line.Amount, &line.Percentage,
			&line.Priority, &cascade, &line.BackIntoPercentage,
			&line.DestinationAccount, &line.DestinationUserID,
		)
		if err != nil {
			zap.L().Error("can't scan line item", zap.Error(err))
			return nil, err
		}
		line.CascadeUnder = intsToCascade(cascade)
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *Repository) InsertLine(ctx context.Context, line *domain.LineItem) error {
	query := `
        INSERT INTO line_items (invoice_id, type, amount, percentage, priority, cascade_under, back_into_percentage, destination_account, destination_user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		line.InvoiceID, line.Type, line.Amount, line.Percentage, line.Priority,
		cascadeToInts(line.CascadeUnder), line.BackIntoPercentage,
		line.DestinationAccount, line.DestinationUserID,
	).Scan(&line.ID)
	if err != nil {
		zap.L().Error("can't insert line item", zap.Error(err))
		return err
	}
	return nil
}

// UpsertDerivedLine creates or updates the single line of a derived type on
// an invoice. The (invoice, type) pair is the idempotency key: repeated calls
// converge on one live row.
func (r *Repository) UpsertDerivedLine(ctx context.Context, line *domain.LineItem) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		var existingID int
		err := r.db.QueryRow(ctx,
			`SELECT id FROM line_items WHERE invoice_id = $1 AND type = $2 ORDER BY id ASC LIMIT 1`,
			line.InvoiceID, line.Type,
		).Scan(&existingID)
		if err == pgx.ErrNoRows {
			return r.InsertLine(ctx, line)
		}
		if err != nil {
			zap.L().Error("can't look up derived line", zap.Error(err))
			return err
		}
		line.ID = existingID
		_, err = r.db.Exec(ctx, `
            UPDATE line_items
            SET amount = $1, percentage = $2, priority = $3, cascade_under = $4, back_into_percentage = $5, destination_account = $6, destination_user_id = $7
            WHERE id = $8
        `,
			line.Amount, line.Percentage, line.Priority, cascadeToInts(line.CascadeUnder),
			line.BackIntoPercentage, line.DestinationAccount, line.DestinationUserID, line.ID,
		)
		if err != nil {
			zap.L().Error("can't update derived line", zap.Error(err))
		}
		return err
	})
}

func (r *Repository) DeleteLine(ctx context.Context, lineID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM line_items WHERE id = $1`, lineID)
	if err != nil {
		zap.L().Error("can't delete line item", zap.Error(err))
	}
	return err
}

// DeleteLinesOfTypes removes every line of the given types from the invoice.
func (r *Repository) DeleteLinesOfTypes(ctx context.Context, invoiceID int, types []domain.LineItemType) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM line_items WHERE invoice_id = $1 AND type = ANY($2)`,
		invoiceID, cascadeToInts(types),
	)
	if err != nil {
		zap.L().Error("can't delete line items", zap.Error(err))
	}
	return err
}
