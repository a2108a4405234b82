package parserservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
)

//go:generate mockgen -source=parserservice.go -destination=mocks.go -package=parserservice

type Repo interface {
	List(ctx context.Context) ([]domain.SheetParser, error)
	FindByID(ctx context.Context, id int) (*domain.SheetParser, error)
	FindBySheet(ctx context.Context, spreadsheet, sheetID string) (*domain.SheetParser, error)
	Save(ctx context.Context, parser *domain.SheetParser) error
	Update(ctx context.Context, parser *domain.SheetParser) error
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

var (
	ErrParserExists   = errors.New("parser for sheet already exists")
	ErrParserNotFound = errors.New("parser not found")
)

func (s *Service) List(ctx context.Context) ([]domain.SheetParser, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.SheetParser, error) {
	parser, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if parser == nil {
		return nil, ErrParserNotFound
	}
	return parser, nil
}

func (s *Service) Create(ctx context.Context, parser *domain.SheetParser) (*domain.SheetParser, error) {
	existing, err := s.repo.FindBySheet(ctx, parser.Spreadsheet, parser.SheetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrParserExists
	}
	if parser.StartRow <= 0 {
		parser.StartRow = 2
	}
	if err := s.repo.Save(ctx, parser); err != nil {
		zap.L().Error("failed to save parser", zap.String("sheet", parser.SheetID), zap.Error(err))
		return nil, err
	}
	return parser, nil
}

func (s *Service) Update(ctx context.Context, parser *domain.SheetParser) error {
	existing, err := s.repo.FindByID(ctx, parser.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrParserNotFound
	}
	return s.repo.Update(ctx, parser)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrParserNotFound
	}
	return s.repo.Delete(ctx, id)
}
