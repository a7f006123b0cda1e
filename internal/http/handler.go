package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-market.com/task-market/internal/data_models"
	apperrors "task-market.com/task-market/internal/errors"
	middleware "task-market.com/task-market/internal/http/middlewares"
	"task-market.com/task-market/internal/http/validators"
	"task-market.com/task-market/internal/services"
)

type Handler struct {
	authService  *services.AuthService
	taskService  *services.TaskService
	queryService *services.QueryService
	logger       *slog.Logger
}

func NewHandler(
	authService *services.AuthService,
	taskService *services.TaskService,
	queryService *services.QueryService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		authService:  authService,
		taskService:  taskService,
		queryService: queryService,
		logger:       logger,
	}
}

func (h *Handler) Healthcheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, apperrors.ErrInvalidJSON, "")
	}
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return h.fail(c, err, "")
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.fail(c, err, "registration failed")
	}

	return c.JSON(http.StatusCreated, dto.NewUserResponse(*user))
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, apperrors.ErrInvalidJSON, "")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return h.fail(c, err, "")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.fail(c, err, "login failed")
	}

	return c.JSON(http.StatusOK, dto.NewLoginResponse(result.User, result.Token, result.ExpiresAt))
}

func (h *Handler) GetUserProfile(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return h.fail(c, apperrors.ErrUnauthorized, "")
	}

	profile, err := h.queryService.GetUserProfile(c.Request().Context(), callerID)
	if err != nil {
		return h.fail(c, err, "failed to load profile")
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(*profile))
}

func (h *Handler) GetDashboard(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return h.fail(c, apperrors.ErrUnauthorized, "")
	}

	dashboard, err := h.queryService.GetDashboard(c.Request().Context(), callerID)
	if err != nil {
		return h.fail(c, err, "failed to load dashboard")
	}

	return c.JSON(http.StatusOK, dto.NewDashboardResponse(
		dashboard.User,
		dashboard.CreatedTasks,
		dashboard.AvailableTasks,
		dashboard.CompletedTasksCount,
	))
}

func (h *Handler) CreateTask(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return h.fail(c, apperrors.ErrUnauthorized, "")
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, apperrors.ErrInvalidJSON, "")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return h.fail(c, err, "")
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), callerID, req.Link, req.CoinReward)
	if err != nil {
		return h.fail(c, err, "failed to create task")
	}

	return c.JSON(http.StatusCreated, dto.NewTaskResponse(*task))
}

func (h *Handler) CompleteTask(c echo.Context) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return h.fail(c, apperrors.ErrUnauthorized, "")
	}

	var req dto.CompleteTaskRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, apperrors.ErrInvalidJSON, "")
	}
	if err := validators.ValidateCompleteTaskRequest(&req); err != nil {
		return h.fail(c, err, "")
	}

	task, err := h.taskService.CompleteTask(c.Request().Context(), uint(req.TaskID), callerID)
	if err != nil {
		return h.fail(c, err, "failed to complete task")
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(*task))
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return h.fail(c, apperrors.ErrInvalidTaskID, "")
	}

	task, err := h.taskService.GetTask(c.Request().Context(), uint(id))
	if err != nil {
		return h.fail(c, err, "failed to load task")
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(*task))
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.queryService.ListOpenTasks(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "failed to list tasks")
	}

	return c.JSON(http.StatusOK, dto.NewTaskListResponse(tasks))
}

// fail maps domain exceptions to their status; anything else is logged and
// hidden behind fallback.
func (h *Handler) fail(c echo.Context, err error, fallback string) error {
	if apperrors.KindOf(err) != apperrors.KindInternal {
		return echo.NewHTTPError(apperrors.StatusCode(err), apperrors.MessageOf(err))
	}

	h.logger.Error("request failed",
		slog.String("path", c.Path()),
		slog.Any("error", err),
	)
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}
