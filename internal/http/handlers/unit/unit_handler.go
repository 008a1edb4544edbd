package unit

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"mdc-dispatch/internal/http/api"
	"mdc-dispatch/internal/lib/sl"
	repo "mdc-dispatch/internal/repository"
	"mdc-dispatch/internal/service/unit"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type unitService interface {
	List(ctx context.Context) ([]api.UnitSchema, error)
	Create(ctx context.Context, unitName, status, location string, members []string) (int64, error)
	Update(ctx context.Context, input unit.UpdateInput) error
	Delete(ctx context.Context, unitID int64) error
}

type UnitHandler struct {
	log     *slog.Logger
	service unitService
}

func NewUnitHandler(log *slog.Logger, s unitService) *UnitHandler {
	return &UnitHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	UnitName string   `json:"unitName" validate:"required"`
	Status   string   `json:"status"`
	Location string   `json:"location"`
	Members  []string `json:"members"`
}

// UpdateRequest distinguishes an absent members field (roster kept)
// from an empty one (roster cleared) via the pointer.
type UpdateRequest struct {
	ID       int64     `json:"id" validate:"required"`
	Status   string    `json:"status"`
	Location string    `json:"location"`
	Members  *[]string `json:"members"`
}

func (h *UnitHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.unit.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	units, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list units", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.UnitsResponse{Units: units})
}

func (h *UnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.unit.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input CreateRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	unitID, err := h.service.Create(r.Context(), input.UnitName, input.Status, input.Location, input.Members)
	if err != nil {
		log.Error("failed to create unit", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("unit created", slog.Int64("unit_id", unitID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.CreatedResponse{ID: unitID, Message: api.MsgUnitCreated})
}

func (h *UnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.unit.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input UpdateRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	err := h.service.Update(r.Context(), unit.UpdateInput{
		ID:       input.ID,
		Status:   input.Status,
		Location: input.Location,
		Members:  input.Members,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("unit not found", slog.Int64("unit_id", input.ID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("failed to update unit", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.MessageResponse{Message: api.MsgUnitUpdated})
}

func (h *UnitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.unit.Delete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "id is required"))
		return
	}

	unitID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "id must be an integer"))
		return
	}

	if err := h.service.Delete(r.Context(), unitID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("unit not found", slog.Int64("unit_id", unitID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("failed to delete unit", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.MessageResponse{Message: api.MsgUnitDeleted})
}
