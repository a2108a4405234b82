package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/pg"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.PreOrderRepo)
	assert.NotNil(t, repo.UserOrderRepo)
	assert.NotNil(t, repo.ResponseRepo)
	assert.NotNil(t, repo.CurrencyRepo)
	assert.NotNil(t, repo.SettingsRepo)
	assert.NotNil(t, repo.ParserRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
