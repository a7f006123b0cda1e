package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"task-market.com/task-market/internal/auth"
	config "task-market.com/task-market/internal/configs"
	dto "task-market.com/task-market/internal/data_models"
	"task-market.com/task-market/internal/limiter"
	"task-market.com/task-market/internal/logging"
	repository "task-market.com/task-market/internal/repositories"
	"task-market.com/task-market/internal/services"
)

func setupServer(t *testing.T) *echo.Echo {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.NewDatabaseClient(config.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	logger := logging.Discard()
	store := repository.NewStore(db)
	authService := services.NewAuthService(
		store,
		auth.NewBcryptHasher(bcrypt.MinCost),
		auth.NewJWTTokenManager("test-secret", time.Hour),
		logger,
	)

	e := echo.New()
	handler := NewHandler(authService, services.NewTaskService(store, logger), services.NewQueryService(store), logger)
	Register(e, handler, authService, RouteOptions{
		Limiter:   limiter.NewMemoryLimiter(1000, time.Minute),
		ClientURL: "http://localhost:3000",
		Logger:    logger,
	})
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, token, body string, out any) int {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("failed to decode %s %s response %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec.Code
}

func signup(t *testing.T, e *echo.Echo, username string) dto.LoginResponse {
	t.Helper()

	creds := fmt.Sprintf(`{"username":%q,"password":"password123"}`, username)

	var user dto.UserResponse
	if code := do(t, e, http.MethodPost, "/register", "", creds, &user); code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", username, code)
	}
	if user.Coin != "100.00" {
		t.Errorf("expected starting balance 100.00, got %s", user.Coin)
	}

	var login dto.LoginResponse
	if code := do(t, e, http.MethodPost, "/login", "", creds, &login); code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", username, code)
	}
	return login
}

func TestHandler_TaskMarketplaceFlow(t *testing.T) {
	e := setupServer(t)
	alice := signup(t, e, "alice")
	bob := signup(t, e, "bob")

	var task dto.TaskResponse
	code := do(t, e, http.MethodPost, "/tasks", alice.Token, `{"link":"https://x.test","coin_reward":30}`, &task)
	if code != http.StatusCreated {
		t.Fatalf("create task: expected 201, got %d", code)
	}
	if task.Status != "open" || task.CoinReward != "30.00" {
		t.Errorf("unexpected task: %+v", task)
	}

	var list dto.TaskListResponse
	do(t, e, http.MethodGet, "/tasks", "", "", &list)
	if list.Count != 1 || list.Tasks[0].CreatorUsername != "alice" {
		t.Errorf("unexpected task list: %+v", list)
	}

	var completed dto.TaskResponse
	body := fmt.Sprintf(`{"task_id":%d}`, task.TaskID)
	if code := do(t, e, http.MethodPost, "/tasks/complete", bob.Token, body, &completed); code != http.StatusOK {
		t.Fatalf("complete task: expected 200, got %d", code)
	}
	if completed.Status != "completed" {
		t.Errorf("expected completed, got %s", completed.Status)
	}

	if code := do(t, e, http.MethodPost, "/tasks/complete", bob.Token, body, nil); code != http.StatusConflict {
		t.Errorf("second completion: expected 409, got %d", code)
	}

	var profile dto.UserResponse
	do(t, e, http.MethodGet, "/profile", bob.Token, "", &profile)
	if profile.Coin != "130.00" {
		t.Errorf("expected bob to hold 130.00, got %s", profile.Coin)
	}

	var dashboard dto.DashboardResponse
	do(t, e, http.MethodGet, "/dashboard", alice.Token, "", &dashboard)
	if dashboard.User.Coin != "70.00" {
		t.Errorf("expected alice to hold 70.00, got %s", dashboard.User.Coin)
	}
	if len(dashboard.CreatedTasks) != 1 || dashboard.CreatedTasks[0].Status != "completed" {
		t.Errorf("unexpected created tasks: %+v", dashboard.CreatedTasks)
	}

	var fetched dto.TaskResponse
	if code := do(t, e, http.MethodGet, fmt.Sprintf("/tasks/%d", task.TaskID), "", "", &fetched); code != http.StatusOK {
		t.Fatalf("get task: expected 200, got %d", code)
	}
	if fetched.Status != "completed" {
		t.Errorf("expected fetched task to be completed, got %s", fetched.Status)
	}
}

func TestHandler_ErrorStatuses(t *testing.T) {
	e := setupServer(t)
	alice := signup(t, e, "alice")

	var own dto.TaskResponse
	do(t, e, http.MethodPost, "/tasks", alice.Token, `{"link":"https://x.test","coin_reward":"10.00"}`, &own)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		{"duplicate username", http.MethodPost, "/register", "", `{"username":"alice","password":"password123"}`, http.StatusConflict},
		{"short password", http.MethodPost, "/register", "", `{"username":"carol","password":"123"}`, http.StatusBadRequest},
		{"long password", http.MethodPost, "/register", "", `{"username":"carol","password":"` + strings.Repeat("a", 73) + `"}`, http.StatusBadRequest},
		{"wrong password", http.MethodPost, "/login", "", `{"username":"alice","password":"nope-nope"}`, http.StatusUnauthorized},
		{"unknown user", http.MethodPost, "/login", "", `{"username":"nobody","password":"nope-nope"}`, http.StatusUnauthorized},
		{"malformed json", http.MethodPost, "/login", "", `{"username":`, http.StatusBadRequest},
		{"no token", http.MethodGet, "/dashboard", "", "", http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/profile", "garbage", "", http.StatusUnauthorized},
		{"invalid link", http.MethodPost, "/tasks", alice.Token, `{"link":"nope","coin_reward":5}`, http.StatusBadRequest},
		{"insufficient balance", http.MethodPost, "/tasks", alice.Token, `{"link":"https://x.test","coin_reward":150}`, http.StatusUnprocessableEntity},
		{"own task", http.MethodPost, "/tasks/complete", alice.Token, fmt.Sprintf(`{"task_id":%d}`, own.TaskID), http.StatusForbidden},
		{"missing task", http.MethodPost, "/tasks/complete", alice.Token, `{"task_id":999}`, http.StatusNotFound},
		{"bad task id", http.MethodGet, "/tasks/abc", "", "", http.StatusBadRequest},
		{"unknown task", http.MethodGet, "/tasks/999", "", "", http.StatusNotFound},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := do(t, e, c.method, c.path, c.token, c.body, nil); got != c.want {
				t.Errorf("expected %d, got %d", c.want, got)
			}
		})
	}
}

func TestHandler_Healthcheck(t *testing.T) {
	e := setupServer(t)

	var body map[string]string
	if code := do(t, e, http.MethodGet, "/healthcheck", "", "", &body); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestHandler_RateLimited(t *testing.T) {
	db, err := config.NewDatabaseClient(config.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	logger := logging.Discard()
	store := repository.NewStore(db)
	authService := services.NewAuthService(store, auth.NewBcryptHasher(bcrypt.MinCost), auth.NewJWTTokenManager("s", time.Hour), logger)

	e := echo.New()
	Register(e, NewHandler(authService, services.NewTaskService(store, logger), services.NewQueryService(store), logger), authService, RouteOptions{
		Limiter: limiter.NewMemoryLimiter(2, time.Minute),
		Logger:  logger,
	})

	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		if got := do(t, e, http.MethodGet, "/tasks", "", "", nil); got != want {
			t.Errorf("request %d: expected %d, got %d", i+1, want, got)
		}
	}
}
