package deliverablerepo

import (
	"context"
	"time"

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

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (buyer_id, seller_id)
        VALUES ($1, $2)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, order.BuyerID, order.SellerID).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		zap.L().Error("can't create order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order
	err := r.db.QueryRow(ctx, `SELECT id, buyer_id, seller_id, created_at FROM orders WHERE id = $1`, id).
		Scan(&order.ID, &order.BuyerID, &order.SellerID, &order.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

const deliverableColumns = `id, order_id, invoice_id, status, task_weight, expected_turnaround, adjustment_task_weight, adjustment_expected_turnaround, revisions, escrow_enabled, table_order, cascade_fees, final_uploaded, auto_finalize_on, dispute_available_on, disputed_on, arbitrator_id, paid_on, finalized_on, refunded_on, created_at`

func scanDeliverable(row pgx.Row, d *domain.Deliverable) error {
	return row.Scan(
		&d.ID, &d.OrderID, &d.InvoiceID, &d.Status, &d.TaskWeight, &d.ExpectedTurnaround,
		&d.AdjustmentTaskWeight, &d.AdjustmentExpectedTurnaround, &d.Revisions,
		&d.EscrowEnabled, &d.TableOrder, &d.CascadeFees, &d.FinalUploaded,
		&d.AutoFinalizeOn, &d.DisputeAvailableOn, &d.DisputedOn, &d.ArbitratorID,
		&d.PaidOn, &d.FinalizedOn, &d.RefundedOn, &d.CreatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, d *domain.Deliverable) error {
	query := `
        INSERT INTO deliverables (order_id, invoice_id, status, task_weight, expected_turnaround, revisions, escrow_enabled, table_order, cascade_fees)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		d.OrderID, d.InvoiceID, d.Status, d.TaskWeight, d.ExpectedTurnaround,
		d.Revisions, d.EscrowEnabled, d.TableOrder, d.CascadeFees,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		zap.L().Error("can't create deliverable", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, id int) (*domain.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables WHERE id = $1`
	var d domain.Deliverable
	err := scanDeliverable(r.db.QueryRow(ctx, query, id), &d)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find deliverable", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

// GetForUpdate loads a deliverable holding a row-level exclusive lock for the
// rest of the enclosing transaction. Callers must be inside TXManager.Begin.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables WHERE id = $1 FOR UPDATE`
	var d domain.Deliverable
	err := scanDeliverable(r.db.QueryRow(ctx, query, id), &d)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock deliverable", zap.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Update(ctx context.Context, d *domain.Deliverable) error {
	query := `
        UPDATE deliverables
        SET status = $1, task_weight = $2, expected_turnaround = $3, adjustment_task_weight = $4,
            adjustment_expected_turnaround = $5, revisions = $6, escrow_enabled = $7,
            final_uploaded = $8, auto_finalize_on = $9, dispute_available_on = $10,
            disputed_on = $11, arbitrator_id = $12, paid_on = $13, finalized_on = $14, refunded_on = $15
        WHERE id = $16
    `
	_, err := r.db.Exec(ctx, query,
		d.Status, d.TaskWeight, d.ExpectedTurnaround, d.AdjustmentTaskWeight,
		d.AdjustmentExpectedTurnaround, d.Revisions, d.EscrowEnabled,
		d.FinalUploaded, d.AutoFinalizeOn, d.DisputeAvailableOn,
		d.DisputedOn, d.ArbitratorID, d.PaidOn, d.FinalizedOn, d.RefundedOn, d.ID,
	)
	if err != nil {
		zap.L().Error("can't update deliverable", zap.Error(err))
	}
	return err
}

// ClaimDispute assigns an arbitrator only if none is assigned yet. Returns
// false when another staff member already claimed the dispute.
func (r *Repository) ClaimDispute(ctx context.Context, deliverableID, arbitratorID int) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE deliverables SET arbitrator_id = $1 WHERE id = $2 AND arbitrator_id IS NULL AND status = $3`,
		arbitratorID, deliverableID, domain.StatusDisputed,
	)
	if err != nil {
		zap.L().Error("can't claim dispute", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// FindReviewPastDeadline returns deliverables sitting in REVIEW whose
// auto-finalize deadline has elapsed.
func (r *Repository) FindReviewPastDeadline(ctx context.Context, now time.Time, limit uint32) ([]domain.Deliverable, error) {
	query := `
        SELECT ` + deliverableColumns + `
        FROM deliverables
        WHERE status = $1 AND auto_finalize_on IS NOT NULL AND auto_finalize_on <= $2
        ORDER BY auto_finalize_on ASC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, domain.StatusReview, now, int(limit))
	if err != nil {
		zap.L().Error("can't query deliverables past deadline", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deliverables []domain.Deliverable
	for rows.Next() {
		var d domain.Deliverable
		if err := scanDeliverable(rows, &d); err != nil {
			zap.L().Error("can't scan deliverable", zap.Error(err))
			return nil, err
		}
		deliverables = append(deliverables, d)
	}
	return deliverables, nil
}

// CountActiveForSeller counts deliverables holding a slot in the seller's
// queue, used for waitlist and plan-limit placement.
func (r *Repository) CountActiveForSeller(ctx context.Context, sellerID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM deliverables d
        JOIN orders o ON o.id = d.order_id
        WHERE o.seller_id = $1 AND d.status = ANY($2)
    `
	active := []int32{
		int32(domain.StatusNew), int32(domain.StatusPaymentPending), int32(domain.StatusQueued),
		int32(domain.StatusInProgress), int32(domain.StatusDisputed), int32(domain.StatusReview),
	}
	var count int
	if err := r.db.QueryRow(ctx, query, sellerID, active).Scan(&count); err != nil {
		zap.L().Error("can't count active deliverables", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// ListForUser returns deliverables where the user is buyer or seller.
func (r *Repository) ListForUser(ctx context.Context, userID int) ([]domain.Deliverable, error) {
	query := `
        SELECT ` + deliverableColumns + `
        FROM deliverables
        WHERE order_id IN (SELECT id FROM orders WHERE buyer_id = $1 OR seller_id = $1)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list deliverables", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deliverables []domain.Deliverable
	for rows.Next() {
		var d domain.Deliverable
		if err := scanDeliverable(rows, &d); err != nil {
			zap.L().Error("can't scan deliverable", zap.Error(err))
			return nil, err
		}
		deliverables = append(deliverables, d)
	}
	return deliverables, nil
}
