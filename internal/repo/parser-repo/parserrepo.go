package parserrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/pg"
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

func scanParser(row pgx.Row) (*domain.SheetParser, error) {
	var (
		parser domain.SheetParser
		items  []byte
	)
	err := row.Scan(&parser.ID, &parser.Spreadsheet, &parser.SheetID, &parser.StartRow, &parser.IsSync, &items)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &parser.Items); err != nil {
		return nil, err
	}
	return &parser, nil
}

const parserColumns = "id, spreadsheet, sheet_id, start_row, is_sync, items"

func (r *Repository) List(ctx context.Context) ([]domain.SheetParser, error) {
	rows, err := r.db.Query(ctx, "SELECT "+parserColumns+" FROM sheet_parsers ORDER BY id")
	if err != nil {
		zap.L().Error("can't list sheet parsers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var parsers []domain.SheetParser
	for rows.Next() {
		parser, err := scanParser(rows)
		if err != nil {
			zap.L().Error("can't scan sheet parser row", zap.Error(err))
			return nil, err
		}
		parsers = append(parsers, *parser)
	}
	return parsers, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.SheetParser, error) {
	row := r.db.QueryRow(ctx, "SELECT "+parserColumns+" FROM sheet_parsers WHERE id = $1", id)
	parser, err := scanParser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find sheet parser", zap.Error(err))
		return nil, err
	}
	return parser, nil
}

func (r *Repository) FindBySheet(ctx context.Context, spreadsheet, sheetID string) (*domain.SheetParser, error) {
	row := r.db.QueryRow(ctx, "SELECT "+parserColumns+" FROM sheet_parsers WHERE spreadsheet = $1 AND sheet_id = $2", spreadsheet, sheetID)
	parser, err := scanParser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find sheet parser", zap.Error(err))
		return nil, err
	}
	return parser, nil
}

func (r *Repository) Save(ctx context.Context, parser *domain.SheetParser) error {
	items, err := json.Marshal(parser.Items)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO sheet_parsers (spreadsheet, sheet_id, start_row, is_sync, items)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err = r.db.QueryRow(ctx, query, parser.Spreadsheet, parser.SheetID, parser.StartRow, parser.IsSync, items).Scan(&parser.ID)
	if err != nil {
		zap.L().Error("can't save sheet parser", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, parser *domain.SheetParser) error {
	items, err := json.Marshal(parser.Items)
	if err != nil {
		return err
	}
	query := `
        UPDATE sheet_parsers
        SET spreadsheet = $1, sheet_id = $2, start_row = $3, is_sync = $4, items = $5
        WHERE id = $6
    `
	_, err = r.db.Exec(ctx, query, parser.Spreadsheet, parser.SheetID, parser.StartRow, parser.IsSync, items, parser.ID)
	if err != nil {
		zap.L().Error("can't update sheet parser", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM sheet_parsers WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete sheet parser", zap.Error(err))
		return err
	}
	return nil
}
