package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-market/inkwell/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		mockSetup func()
		wantUser  bool
		expectErr bool
	}{
		{
			name: "Existing user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash, role, plan_id FROM users WHERE login = $1")).
					WithArgs("testuser").
					WillReturnRows(pgxmock.NewRows([]string{"id", "login", "password_hash", "role", "plan_id"}).
						AddRow(1, "testuser", "hashed", domain.RoleSeller, 2))
			},
			wantUser: true,
		},
		{
			name: "Unknown login",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE login = $1")).
					WithArgs("testuser").
					WillReturnRows(pgxmock.NewRows([]string{"id", "login", "password_hash", "role", "plan_id"}))
			},
		},
		{
			name: "Query failure",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE login = $1")).
					WithArgs("testuser").
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.FindByLogin(ctx, "testuser")

			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if !tt.wantUser {
				assert.Nil(t, user)
				return
			}
			require.NotNil(t, user)
			assert.Equal(t, 1, user.ID)
			assert.Equal(t, domain.RoleSeller, user.Role)
			assert.Equal(t, 2, user.PlanID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("Existing user", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(7).
			WillReturnRows(pgxmock.NewRows([]string{"id", "login", "password_hash", "role", "plan_id"}).
				AddRow(7, "seller", "hashed", domain.RoleSeller, 1))

		user, err := repo.FindByID(ctx, 7)

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "seller", user.Login)
	})

	t.Run("Unknown id", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(99).
			WillReturnRows(pgxmock.NewRows([]string{"id", "login", "password_hash", "role", "plan_id"}))

		user, err := repo.FindByID(ctx, 99)

		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("Assigns id and default plan", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash, role)")).
			WithArgs("newuser", "hashed", domain.RoleBuyer).
			WillReturnRows(pgxmock.NewRows([]string{"id", "plan_id"}).AddRow(3, 1))

		user, err := repo.Create(ctx, &domain.User{Login: "newuser", PasswordHash: "hashed", Role: domain.RoleBuyer})

		require.NoError(t, err)
		assert.Equal(t, 3, user.ID)
		assert.Equal(t, 1, user.PlanID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate login", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash, role)")).
			WithArgs("newuser", "hashed", domain.RoleBuyer).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		user, err := repo.Create(ctx, &domain.User{Login: "newuser", PasswordHash: "hashed", Role: domain.RoleBuyer})

		require.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_PlanFor(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	planColumns := []string{
		"id", "name", "shield_percentage", "shield_static", "bonus_percentage",
		"bonus_static", "per_deliverable_price", "max_simultaneous",
	}

	t.Run("Joins through the user's plan", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.plan_id = p.id")).
			WithArgs(7).
			WillReturnRows(pgxmock.NewRows(planColumns).AddRow(
				2, "premium",
				decimal.RequireFromString("8"), decimal.RequireFromString("0.75"),
				decimal.RequireFromString("5"), decimal.RequireFromString("0.25"),
				decimal.RequireFromString("0.10"), 5,
			))

		plan, err := repo.PlanFor(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "premium", plan.Name)
		assert.True(t, plan.ShieldPercentage.Equal(decimal.RequireFromString("8")))
		assert.True(t, plan.BonusStatic.Equal(decimal.RequireFromString("0.25")))
		assert.Equal(t, 5, plan.MaxSimultaneous)
	})

	t.Run("Query failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.plan_id = p.id")).
			WithArgs(7).
			WillReturnError(errors.New("db error"))

		plan, err := repo.PlanFor(ctx, 7)

		require.Error(t, err)
		assert.Nil(t, plan)
	})
}
