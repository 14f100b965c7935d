package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"todo-backend/application/serviceimpl"
	"todo-backend/domain/dto"
	"todo-backend/infrastructure/postgres"
	"todo-backend/interfaces/api/handlers"
	"todo-backend/interfaces/api/routes"
	"todo-backend/pkg/utils"
)

// newTestApp wires the full stack (fiber -> handlers -> services ->
// gorm repositories) over an in-memory SQLite database, without the
// optional Redis and NATS sides.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	userRepo := postgres.NewUserRepository(db)
	listRepo := postgres.NewListRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	userService := serviceimpl.NewUserService(userRepo, nil, nil)
	listService := serviceimpl.NewListService(listRepo, userService, nil)
	taskService := serviceimpl.NewTaskService(taskRepo, nil)

	app := fiber.New()
	routes.SetupRoutes(app, handlers.NewHandlers(&handlers.Services{
		UserService: userService,
		ListService: listService,
		TaskService: taskService,
	}))

	return app
}

type envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   *utils.ErrorInfo `json:"error"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp.StatusCode, env
}

func registerUser(t *testing.T, app *fiber.App, username, password string) dto.UserResponse {
	t.Helper()

	status, env := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, status)

	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &user))
	require.NotEmpty(t, user.AccessID)
	return user
}

func TestListLifecycle(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "alice", "pw")

	status, env := doJSON(t, app, fiber.MethodPost, "/api/v1/lists/", user.AccessID, dto.CreateListRequest{
		Name:        "groceries",
		Description: "weekly run",
	})
	require.Equal(t, http.StatusCreated, status)

	var created []dto.ListResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Len(t, created, 1)
	require.Equal(t, "groceries", created[0].Name)
	require.Equal(t, user.ID, created[0].UserID)
	require.False(t, created[0].IsDone)

	listID := created[0].ID

	status, _ = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/api/v1/lists/%d", listID), user.AccessID, dto.UpdateListRequest{IsDone: true})
	require.Equal(t, http.StatusNoContent, status)

	status, env = doJSON(t, app, fiber.MethodGet, "/api/v1/lists/", user.AccessID, nil)
	require.Equal(t, http.StatusOK, status)

	var lists []dto.ListResponse
	require.NoError(t, json.Unmarshal(env.Data, &lists))
	require.Len(t, lists, 1)
	require.True(t, lists[0].IsDone)

	status, env = doJSON(t, app, fiber.MethodDelete, "/api/v1/lists/?name=groceries", user.AccessID, nil)
	require.Equal(t, http.StatusOK, status)

	var del dto.DeleteResponse
	require.NoError(t, json.Unmarshal(env.Data, &del))
	require.True(t, del.Deleted)

	status, env = doJSON(t, app, fiber.MethodGet, "/api/v1/lists/", user.AccessID, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &lists))
	require.Empty(t, lists)
}

func TestUnattachedTaskLifecycle(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "alice", "pw")

	status, env := doJSON(t, app, fiber.MethodPost, "/api/v1/tasks/", user.AccessID, dto.CreateTaskRequest{
		Name: "floating",
	})
	require.Equal(t, http.StatusCreated, status)

	var task dto.TaskResponse
	require.NoError(t, json.Unmarshal(env.Data, &task))
	require.Nil(t, task.ListID)

	status, env = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/tasks/%d", task.ID), user.AccessID, nil)
	require.Equal(t, http.StatusOK, status)

	var fetched dto.TaskResponse
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	require.Equal(t, task.ID, fetched.ID)

	status, env = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", task.ID), user.AccessID, nil)
	require.Equal(t, http.StatusOK, status)

	var del dto.DeleteResponse
	require.NoError(t, json.Unmarshal(env.Data, &del))
	require.True(t, del.Deleted)

	status, env = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/tasks/%d", task.ID), user.AccessID, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, utils.ErrCodeNotFound, env.Error.Code)
}

func TestTaskQuerySelectors(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "alice", "pw")

	status, env := doJSON(t, app, fiber.MethodPost, "/api/v1/lists/", user.AccessID, dto.CreateListRequest{Name: "work"})
	require.Equal(t, http.StatusCreated, status)
	var created []dto.ListResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	listID := created[0].ID

	status, env = doJSON(t, app, fiber.MethodPost, "/api/v1/tasks/", user.AccessID, dto.CreateTaskRequest{
		ListID: &listID,
		Name:   "report",
	})
	require.Equal(t, http.StatusCreated, status)
	var task dto.TaskResponse
	require.NoError(t, json.Unmarshal(env.Data, &task))

	// Non-zero list_id filters by list.
	status, env = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/tasks/?list_id=%d", listID), user.AccessID, nil)
	require.Equal(t, http.StatusOK, status)
	var tasks []dto.TaskResponse
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	require.Len(t, tasks, 1)

	// An explicit list_id=0 falls back to the id filter.
	status, env = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/tasks/?id=%d&list_id=0", task.ID), user.AccessID, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	require.Len(t, tasks, 1)
	require.Equal(t, task.ID, tasks[0].ID)

	// Unknown id is an empty result, not an error.
	status, env = doJSON(t, app, fiber.MethodGet, "/api/v1/tasks/?id=99999", user.AccessID, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	require.Empty(t, tasks)
}

func TestListAuthErrors(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "alice", "pw")

	// No token at all is a 400, not a 401.
	status, env := doJSON(t, app, fiber.MethodPost, "/api/v1/lists/", "", dto.CreateListRequest{Name: "x"})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, utils.ErrCodeMissingCredential, env.Error.Code)

	status, env = doJSON(t, app, fiber.MethodPost, "/api/v1/lists/", "not-a-real-token", dto.CreateListRequest{Name: "x"})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, utils.ErrCodeUnauthorized, env.Error.Code)

	status, env = doJSON(t, app, fiber.MethodGet, "/api/v1/lists/", "", nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, utils.ErrCodeMissingCredential, env.Error.Code)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "alice", "pw")

	status, env := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Username: "alice",
		Password: "pw",
	})
	require.Equal(t, http.StatusOK, status)

	var logged dto.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &logged))
	require.Equal(t, user.AccessID, logged.AccessID)

	status, env = doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, utils.ErrCodeUnauthorized, env.Error.Code)
}

func TestDeleteAccount(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "alice", "pw")

	// All three credentials must line up; a mismatch deletes nothing.
	status, env := doJSON(t, app, fiber.MethodDelete, "/api/v1/auth/account", "", dto.DeleteAccountRequest{
		AccessID: user.AccessID,
		Username: "alice",
		Password: "wrong",
	})
	require.Equal(t, http.StatusOK, status)
	var del dto.DeleteAccountResponse
	require.NoError(t, json.Unmarshal(env.Data, &del))
	require.False(t, del.Deleted)

	status, env = doJSON(t, app, fiber.MethodDelete, "/api/v1/auth/account", "", dto.DeleteAccountRequest{
		AccessID: user.AccessID,
		Username: "alice",
		Password: "pw",
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &del))
	require.True(t, del.Deleted)

	// The token is dead once the account is gone.
	status, env = doJSON(t, app, fiber.MethodGet, "/api/v1/lists/", user.AccessID, nil)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, utils.ErrCodeUnauthorized, env.Error.Code)
}

func TestListDeleteOrphansTasksOverHTTP(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "alice", "pw")

	status, env := doJSON(t, app, fiber.MethodPost, "/api/v1/lists/", user.AccessID, dto.CreateListRequest{Name: "errands"})
	require.Equal(t, http.StatusCreated, status)
	var created []dto.ListResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	listID := created[0].ID

	status, env = doJSON(t, app, fiber.MethodPost, "/api/v1/tasks/", user.AccessID, dto.CreateTaskRequest{
		ListID: &listID,
		Name:   "post office",
	})
	require.Equal(t, http.StatusCreated, status)
	var task dto.TaskResponse
	require.NoError(t, json.Unmarshal(env.Data, &task))

	status, _ = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/v1/lists/?id=%d", listID), user.AccessID, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/v1/tasks/%d", task.ID), user.AccessID, nil)
	require.Equal(t, http.StatusOK, status)
	var fetched dto.TaskResponse
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	require.Nil(t, fetched.ListID)
}

func TestValidationErrors(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Username: "alice",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, utils.ErrCodeValidation, env.Error.Code)
	require.NotNil(t, env.Error.Details)
}
