package userrepo

import (
	"context"

	"github.com/inkwell-market/inkwell/internal/domain"
	"github.com/inkwell-market/inkwell/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, role, plan_id FROM users WHERE login = $1", login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.PlanID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, role, plan_id FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.PlanID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, plan_id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Role).Scan(&user.ID, &user.PlanID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) PlanFor(ctx context.Context, userID int) (*domain.ServicePlan, error) {
	query := `
        SELECT p.id, p.name, p.shield_percentage, p.shield_static, p.bonus_percentage, p.bonus_static, p.per_deliverable_price, p.max_simultaneous
        FROM service_plans p
        JOIN users u ON u.plan_id = p.id
        WHERE u.id = $1
    `
	var plan domain.ServicePlan
	err := repo.db.QueryRow(ctx, query, userID).Scan(
		&plan.ID, &plan.Name, &plan.ShieldPercentage, &plan.ShieldStatic,
		&plan.BonusPercentage, &plan.BonusStatic, &plan.PerDeliverablePrice, &plan.MaxSimultaneous,
	)
	if err != nil {
		zap.L().Error("can't find service plan", zap.Error(err))
		return nil, err
	}
	return &plan, nil
}
