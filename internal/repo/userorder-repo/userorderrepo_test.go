package userorderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_FindByUserAndOrder(t *testing.T) {
	repo, mock, _ := NewMock(t)

	orderDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, user_id, order_id, dollars, completed, paid, refunded, order_date, completed_at, paid_at FROM user_orders WHERE user_id = $1 AND order_id = $2`)

	tests := []struct {
		name      string
		userID    int
		orderID   int
		mockSetup func()
		expectErr bool
		result    *domain.UserOrder
	}{
		{
			name:    "Existing assignment returns share",
			userID:  1,
			orderID: 10,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "order_id", "dollars", "completed", "paid", "refunded", "order_date", "completed_at", "paid_at"}).
					AddRow(5, 1, 10, decimal.RequireFromString("35"), false, false, false, orderDate, nil, nil)
				mock.ExpectQuery(query).WithArgs(1, 10).WillReturnRows(rows)
			},
			result: &domain.UserOrder{
				ID:        5,
				UserID:    1,
				OrderID:   10,
				Dollars:   decimal.RequireFromString("35"),
				OrderDate: orderDate,
			},
		},
		{
			name:    "Missing assignment returns nil",
			userID:  2,
			orderID: 10,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2, 10).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:    "Database error",
			userID:  1,
			orderID: 10,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, 10).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserAndOrder(context.Background(), tt.userID, tt.orderID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, _ := NewMock(t)

	orderDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`
        INSERT INTO user_orders (user_id, order_id, dollars, completed, paid, refunded, order_date, completed_at, paid_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully saves assignment",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1, 10, decimal.RequireFromString("35"), false, false, false, orderDate, (*time.Time)(nil), (*time.Time)(nil)).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(1, 10, decimal.RequireFromString("35"), false, false, false, orderDate, (*time.Time)(nil), (*time.Time)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			uo := &domain.UserOrder{
				UserID:    1,
				OrderID:   10,
				Dollars:   decimal.RequireFromString("35"),
				OrderDate: orderDate,
			}
			err := repo.Save(context.Background(), uo)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, uo.ID)
			}
		})
	}
}

func TestRepository_AddDollarsByOrder(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`UPDATE user_orders SET dollars = dollars + $1 WHERE order_id = $2`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Increments every share on the order",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(decimal.RequireFromString("15"), 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 2))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(decimal.RequireFromString("15"), 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.AddDollarsByOrder(context.Background(), 10, decimal.RequireFromString("15"))

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_CountUnpaidByOrder(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM user_orders WHERE order_id = $1 AND paid = FALSE`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Counts unpaid shares",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(10).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
			},
			count: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			count, err := repo.CountUnpaidByOrder(context.Background(), 10)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.count, count)
		})
	}
}

func TestRepository_Report(t *testing.T) {
	repo, mock, _ := NewMock(t)

	orderDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	paid := true

	t.Run("Filters narrow the query", func(t *testing.T) {
		query := regexp.QuoteMeta(`SELECT o.order_id, u.login, uo.dollars, uo.order_date, uo.completed, uo.paid FROM user_orders uo JOIN orders o ON o.id = uo.order_id JOIN users u ON u.id = uo.user_id WHERE u.login = $1 AND uo.paid = $2 ORDER BY o.order_id ASC, u.login ASC`)
		rows := pgxmock.NewRows([]string{"order_id", "login", "dollars", "order_date", "completed", "paid"}).
			AddRow("D-1337", "alice", decimal.RequireFromString("35"), orderDate, true, true)
		mock.ExpectQuery(query).WithArgs("alice", true).WillReturnRows(rows)

		report, err := repo.Report(context.Background(), domain.ReportFilter{Username: "alice", Paid: &paid})

		assert.NoError(t, err)
		assert.Len(t, report, 1)
		assert.Equal(t, "D-1337", report[0].OrderID)
		assert.Equal(t, "alice", report[0].Username)
		assert.True(t, report[0].Dollars.Equal(decimal.RequireFromString("35")))
	})

	t.Run("Database error", func(t *testing.T) {
		query := regexp.QuoteMeta(`SELECT o.order_id, u.login, uo.dollars, uo.order_date, uo.completed, uo.paid FROM user_orders uo JOIN orders o ON o.id = uo.order_id JOIN users u ON u.id = uo.user_id ORDER BY o.order_id ASC, u.login ASC`)
		mock.ExpectQuery(query).WillReturnError(errors.New("database error"))

		report, err := repo.Report(context.Background(), domain.ReportFilter{})

		assert.Error(t, err)
		assert.Nil(t, report)
	})
}
