package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/dto"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/parserservice"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.SheetParser, error)
	Get(ctx context.Context, id int) (*domain.SheetParser, error)
	Create(ctx context.Context, parser *domain.SheetParser) (*domain.SheetParser, error)
	Update(ctx context.Context, parser *domain.SheetParser) error
	Delete(ctx context.Context, id int) error
}

// Syncer triggers one reconciliation run outside the schedule.
type Syncer interface {
	RunOnce(ctx context.Context)
}

type SheetsHandler struct {
	parserService Service
	syncer        Syncer
}

func New(parserService Service, syncer Syncer) *SheetsHandler {
	return &SheetsHandler{
		parserService: parserService,
		syncer:        syncer,
	}
}

func toParserDTO(parser *domain.SheetParser) dto.SheetParserResponseDTO {
	resp := dto.SheetParserResponseDTO{
		ID:          parser.ID,
		Spreadsheet: parser.Spreadsheet,
		SheetID:     parser.SheetID,
		StartRow:    parser.StartRow,
		IsSync:      parser.IsSync,
		Items:       make([]dto.ParseItemDTO, 0, len(parser.Items)),
	}
	for _, item := range parser.Items {
		resp.Items = append(resp.Items, dto.ParseItemDTO{
			Name:      item.Name,
			Column:    item.Column,
			Type:      string(item.Type),
			Nullable:  item.Nullable,
			Generated: item.Generated,
			Enum:      item.Enum,
		})
	}
	return resp
}

func fromParserDTO(req *dto.SheetParserRequestDTO) *domain.SheetParser {
	parser := &domain.SheetParser{
		Spreadsheet: req.Spreadsheet,
		SheetID:     req.SheetID,
		StartRow:    req.StartRow,
		IsSync:      req.IsSync,
		Items:       make([]domain.ParseItem, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		parser.Items = append(parser.Items, domain.ParseItem{
			Name:      item.Name,
			Column:    item.Column,
			Type:      domain.FieldType(item.Type),
			Nullable:  item.Nullable,
			Generated: item.Generated,
			Enum:      item.Enum,
		})
	}
	return parser
}

// List godoc
//
//	@Summary		List sheet parsers
//	@Tags			Sheets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SheetParserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sheets/parsers [get]
func (h *SheetsHandler) List(w http.ResponseWriter, r *http.Request) {
	parsers, err := h.parserService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.SheetParserResponseDTO, 0, len(parsers))
	for i := range parsers {
		resp = append(resp, toParserDTO(&parsers[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Create godoc
//
//	@Summary		Create a sheet parser
//	@Description	Registers the column mapping for one (spreadsheet, sheet) pair so the sync worker can read it.
//	@Tags			Sheets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SheetParserRequestDTO	true	"Parser schema"
//	@Success		200		{object}	dto.SheetParserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		409		{object}	utils.Response	"Parser already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sheets/parsers [post]
func (h *SheetsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SheetParserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Spreadsheet == "" || req.SheetID == "" {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "spreadsheet and sheet_id are required")
		return
	}

	parser, err := h.parserService.Create(r.Context(), fromParserDTO(&req))
	if err != nil {
		if errors.Is(err, parserservice.ErrParserExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toParserDTO(parser))
}

// Update godoc
//
//	@Summary		Update a sheet parser
//	@Tags			Sheets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Parser ID"
//	@Param			request	body		dto.SheetParserRequestDTO	true	"Parser schema"
//	@Success		200		{object}	dto.SheetParserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Parser not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sheets/parsers/{id} [put]
func (h *SheetsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid parser id")
		return
	}
	var req dto.SheetParserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	parser := fromParserDTO(&req)
	parser.ID = id
	if err := h.parserService.Update(r.Context(), parser); err != nil {
		if errors.Is(err, parserservice.ErrParserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toParserDTO(parser))
}

// Delete godoc
//
//	@Summary		Delete a sheet parser
//	@Tags			Sheets
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Parser ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Parser not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sheets/parsers/{id} [delete]
func (h *SheetsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid parser id")
		return
	}
	if err := h.parserService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, parserservice.ErrParserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Parser deleted"})
}

// Sync godoc
//
//	@Summary		Force a sync run
//	@Description	Runs one spreadsheet reconciliation pass outside the regular schedule.
//	@Tags			Sheets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SyncResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Router			/api/sheets/sync [post]
func (h *SheetsHandler) Sync(w http.ResponseWriter, r *http.Request) {
	h.syncer.RunOnce(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, dto.SyncResponseDTO{Message: "Sync completed"})
}
