package responserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByOrderAndUser(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, order_id, user_id, approved, closed, refund, text, price, created_at FROM responses WHERE order_id = $1 AND user_id = $2`)

	t.Run("Existing response", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "order_id", "user_id", "approved", "closed", "refund", "text", "price", "created_at"}).
			AddRow(1, 10, 2, false, false, false, "can start now", nil, createdAt)
		mock.ExpectQuery(query).WithArgs(10, 2).WillReturnRows(rows)

		resp, err := repo.FindByOrderAndUser(context.Background(), 10, 2)

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.ID)
		assert.Equal(t, "can start now", resp.Text)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No response", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(10, 3).WillReturnRows(pgxmock.NewRows([]string{"id"}))

		resp, err := repo.FindByOrderAndUser(context.Background(), 10, 3)

		assert.NoError(t, err)
		assert.Nil(t, resp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SaveForPreOrder(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO preorder_responses (preorder_id, user_id, text, price) VALUES ($1, $2, $3, $4) RETURNING id, created_at`)

	resp := &domain.PreOrderResponse{PreOrderID: 5, UserID: 2, Text: "can start tomorrow"}
	rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt)
	mock.ExpectQuery(query).WithArgs(5, 2, "can start tomorrow", resp.Price).WillReturnRows(rows)

	err := repo.SaveForPreOrder(context.Background(), resp)

	assert.NoError(t, err)
	assert.Equal(t, 7, resp.ID)
	assert.Equal(t, createdAt, resp.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByPreOrderAndUser(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, preorder_id, user_id, text, price, created_at FROM preorder_responses WHERE preorder_id = $1 AND user_id = $2`)

	t.Run("Existing response", func(t *testing.T) {
		createdAt := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
		rows := pgxmock.NewRows([]string{"id", "preorder_id", "user_id", "text", "price", "created_at"}).
			AddRow(1, 5, 2, "interested", nil, createdAt)
		mock.ExpectQuery(query).WithArgs(5, 2).WillReturnRows(rows)

		resp, err := repo.FindByPreOrderAndUser(context.Background(), 5, 2)

		assert.NoError(t, err)
		assert.Equal(t, 5, resp.PreOrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No response", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(5, 3).WillReturnRows(pgxmock.NewRows([]string{"id"}))

		resp, err := repo.FindByPreOrderAndUser(context.Background(), 5, 3)

		assert.NoError(t, err)
		assert.Nil(t, resp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CountByPreOrder(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM preorder_responses WHERE preorder_id = $1`)

	t.Run("Counts responses", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(5).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CountByPreOrder(context.Background(), 5)

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(5).WillReturnError(errors.New("database error"))

		_, err := repo.CountByPreOrder(context.Background(), 5)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
