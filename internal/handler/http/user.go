package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	UpdateMe(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{
		userService: userService,
	}
}

// Create implements UserHandler.
func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// GetMe implements UserHandler.
func (h *userHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.GetMe(r.Context())
	if err != nil {
		slog.Error("Get me service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMe implements UserHandler.
func (h *userHandlerImpl) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateMeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update me decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userService.UpdateMe(r.Context(), req)
	if err != nil {
		slog.Error("Update me service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
