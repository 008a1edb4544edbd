package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mdc-dispatch/internal/http/api"
	"mdc-dispatch/internal/lib/sl"
	repo "mdc-dispatch/internal/repository"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type storageService interface {
	Get(ctx context.Context, key string) (*api.StorageEntrySchema, error)
	Put(ctx context.Context, key string, value json.RawMessage) error
}

type StorageHandler struct {
	log     *slog.Logger
	service storageService
}

func NewStorageHandler(log *slog.Logger, s storageService) *StorageHandler {
	return &StorageHandler{
		log:     log,
		service: s,
	}
}

type PutRequest struct {
	Key   string          `json:"key" validate:"required"`
	Value json.RawMessage `json:"value"`
}

func (h *StorageHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.storage.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	key := r.URL.Query().Get("key")
	if key == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "key is required"))
		return
	}

	entry, err := h.service.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("key not found", slog.String("key", key))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("failed to read storage entry", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, entry)
}

func (h *StorageHandler) Put(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.storage.Put"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input PutRequest

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

	if err := h.service.Put(r.Context(), input.Key, input.Value); err != nil {
		log.Error("failed to store value", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.StoredResponse{Success: true, Key: input.Key})
}
