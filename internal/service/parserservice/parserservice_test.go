package parserservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)

	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func sheetParser() *domain.SheetParser {
	return &domain.SheetParser{
		ID:          1,
		Spreadsheet: "SS",
		SheetID:     "May",
		StartRow:    2,
		IsSync:      true,
	}
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Known parser",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(sheetParser(), nil)
			},
		},
		{
			name: "Unknown parser",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(nil, nil)
			},
			expectedError: ErrParserNotFound,
		},
		{
			name: "Database error",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			parser, err := service.Get(context.Background(), 1)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "May", parser.SheetID)
		})
	}
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		parser        *domain.SheetParser
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "New sheet",
			parser: &domain.SheetParser{Spreadsheet: "SS", SheetID: "May", StartRow: 3},
			prepareMock: func() {
				repo.EXPECT().FindBySheet(context.Background(), "SS", "May").Return(nil, nil)
				repo.EXPECT().Save(context.Background(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "Start row defaults to the first data row",
			parser: &domain.SheetParser{Spreadsheet: "SS", SheetID: "June"},
			prepareMock: func() {
				repo.EXPECT().FindBySheet(context.Background(), "SS", "June").Return(nil, nil)
				repo.EXPECT().Save(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, parser *domain.SheetParser) error {
					assert.Equal(t, 2, parser.StartRow)
					return nil
				})
			},
		},
		{
			name:   "Sheet already registered",
			parser: &domain.SheetParser{Spreadsheet: "SS", SheetID: "May"},
			prepareMock: func() {
				repo.EXPECT().FindBySheet(context.Background(), "SS", "May").Return(sheetParser(), nil)
			},
			expectedError: ErrParserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			_, err := service.Create(context.Background(), tt.parser)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdate(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Known parser",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(sheetParser(), nil)
				repo.EXPECT().Update(context.Background(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Unknown parser",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(nil, nil)
			},
			expectedError: ErrParserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Update(context.Background(), sheetParser())
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDelete(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Known parser",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(sheetParser(), nil)
				repo.EXPECT().Delete(context.Background(), 1).Return(nil)
			},
		},
		{
			name: "Unknown parser",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(nil, nil)
			},
			expectedError: ErrParserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Delete(context.Background(), 1)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
