package online

import (
	"context"
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

// The online endpoint serves two resources selected by the ?resource
// query parameter, matching the wire contract of the dispatch UI.
const (
	resourceUsers  = "users"
	resourceShifts = "shifts"
)

type presenceService interface {
	List(ctx context.Context) ([]api.OnlineUserSchema, error)
	Heartbeat(ctx context.Context, userID, fullName, role, email string) (*api.OnlineUserSchema, error)
	Remove(ctx context.Context, userID string) error
}

type shiftService interface {
	ListActive(ctx context.Context) ([]api.ShiftSchema, error)
	Start(ctx context.Context, dispatcherID, dispatcherName string) (*api.ShiftSchema, error)
	End(ctx context.Context, dispatcherID string) error
}

type OnlineHandler struct {
	log      *slog.Logger
	presence presenceService
	shifts   shiftService
}

func NewOnlineHandler(log *slog.Logger, presence presenceService, shifts shiftService) *OnlineHandler {
	return &OnlineHandler{
		log:      log,
		presence: presence,
		shifts:   shifts,
	}
}

type HeartbeatRequest struct {
	UserID   string `json:"user_id"   validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role"      validate:"required"`
	Email    string `json:"email"     validate:"required"`
}

type StartShiftRequest struct {
	DispatcherID   string `json:"dispatcher_id"   validate:"required"`
	DispatcherName string `json:"dispatcher_name" validate:"required"`
}

func (h *OnlineHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.online.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	switch resource(r) {
	case resourceUsers:
		users, err := h.presence.List(ctx)
		if err != nil {
			log.Error("failed to list online users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
			return
		}

		render.JSON(w, r, users)

	case resourceShifts:
		shifts, err := h.shifts.ListActive(ctx)
		if err != nil {
			log.Error("failed to list active shifts", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
			return
		}

		render.JSON(w, r, shifts)

	default:
		renderUnknownResource(w, r)
	}
}

func (h *OnlineHandler) Post(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.online.Post"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	switch resource(r) {
	case resourceUsers:
		h.heartbeat(w, r, log)
	case resourceShifts:
		h.startShift(w, r, log)
	default:
		renderUnknownResource(w, r)
	}
}

func (h *OnlineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.online.Delete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	switch resource(r) {
	case resourceUsers:
		userID := r.URL.Query().Get("userId")
		if userID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "userId is required"))
			return
		}

		if err := h.presence.Remove(ctx, userID); err != nil {
			log.Error("failed to remove online user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
			return
		}

		render.JSON(w, r, api.SuccessResponse{Success: true})

	case resourceShifts:
		dispatcherID := r.URL.Query().Get("dispatcherId")
		if dispatcherID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "dispatcherId is required"))
			return
		}

		if err := h.shifts.End(ctx, dispatcherID); err != nil {
			log.Error("failed to end shift", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
			return
		}

		render.JSON(w, r, api.SuccessResponse{Success: true})

	default:
		renderUnknownResource(w, r)
	}
}

func (h *OnlineHandler) heartbeat(w http.ResponseWriter, r *http.Request, log *slog.Logger) {
	var input HeartbeatRequest

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

	resp, err := h.presence.Heartbeat(r.Context(), input.UserID, input.FullName, input.Role, input.Email)
	if err != nil {
		log.Error("failed to record heartbeat", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *OnlineHandler) startShift(w http.ResponseWriter, r *http.Request, log *slog.Logger) {
	var input StartShiftRequest

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

	resp, err := h.shifts.Start(r.Context(), input.DispatcherID, input.DispatcherName)
	if err != nil {
		if errors.Is(err, repo.ErrShiftActive) {
			log.Info("dispatcher already on duty", slog.String("dispatcher_id", input.DispatcherID))
			render.JSON(w, r, api.MessageResponse{Message: api.MsgAlreadyOnDuty})
			return
		}
		log.Error("failed to start shift", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func resource(r *http.Request) string {
	res := r.URL.Query().Get("resource")
	if res == "" {
		res = resourceUsers
	}
	return res
}

func renderUnknownResource(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusMethodNotAllowed)
	render.JSON(w, r, api.Error(api.ErrCodeNotAllowed, "unknown resource"))
}
