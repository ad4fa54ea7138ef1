package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designhub/internal/auth"
	"designhub/internal/config"
	"designhub/internal/database"
	"designhub/internal/database/databasetest"
	"designhub/internal/schema"
	"designhub/internal/seed"
	"designhub/internal/store"
	"designhub/internal/tasks"
)

func newTestRouter(t *testing.T, deps Dependencies) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := NewRouter(config.APIConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	RegisterRoutes(router, deps)
	return router
}

func newStoreRouter(t *testing.T, seeded bool) (*gin.Engine, *store.Store) {
	t.Helper()
	s := store.New(databasetest.New(t))
	if seeded {
		_, err := seed.Run(context.Background(), s, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.NoError(t, err)
	}
	return newTestRouter(t, Dependencies{Catalog: s, Passwords: auth.NewPasswords(false)}), s
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestSignupThenLogin(t *testing.T) {
	router, _ := newStoreRouter(t, false)

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"username": "bob", "email": "bob@x.com", "password": "pw", "name": "Bob",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[database.User](t, w)
	assert.NotZero(t, created.ID)
	assert.Equal(t, database.RoleCustomer, created.Role)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{"email": "bob@x.com", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	loggedIn := decode[database.User](t, w)
	assert.Equal(t, created.ID, loggedIn.ID)
	assert.Equal(t, "pw", loggedIn.Password)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{"email": "bob@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, invalidCredentialsMessage, decode[gin.H](t, w)["message"])

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{"email": "nobody@x.com", "password": "pw"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignupRejectsInvalidAndDuplicate(t *testing.T) {
	router, _ := newStoreRouter(t, false)

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, signupValidationMessage, decode[gin.H](t, w)["message"])

	body := gin.H{"username": "bob", "email": "bob@x.com", "password": "pw", "name": "Bob"}
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/api/auth/signup", body).Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/signup", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, signupDuplicateMessage, decode[gin.H](t, w)["message"])
}

func TestSignupHashesWhenEnabled(t *testing.T) {
	s := store.New(databasetest.New(t))
	router := newTestRouter(t, Dependencies{Catalog: s, Passwords: auth.NewPasswords(true)})

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", gin.H{
		"username": "bob", "email": "bob@x.com", "password": "pw", "name": "Bob",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEqual(t, "pw", decode[database.User](t, w).Password)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{"email": "bob@x.com", "password": "pw"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRateLimited(t *testing.T) {
	s := store.New(databasetest.New(t))
	router := newTestRouter(t, Dependencies{
		Catalog:      s,
		Passwords:    auth.NewPasswords(false),
		LoginLimiter: NewLoginLimiter(newFakeRateCounter(), 1),
	})

	body := gin.H{"email": "bob@x.com", "password": "pw"}
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodPost, "/api/auth/login", body).Code)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, tooManyLoginsMessage, decode[gin.H](t, w)["message"])
}

func TestSeededCatalog(t *testing.T) {
	router, _ := newStoreRouter(t, true)

	w := doJSON(t, router, http.MethodGet, "/api/creators", nil)
	require.Equal(t, http.StatusOK, w.Code)
	creators := decode[[]database.Creator](t, w)
	require.Len(t, creators, 2)
	require.NotNil(t, creators[0].User)
	assert.Equal(t, "Alex Chen", creators[0].User.Name)

	w = doJSON(t, router, http.MethodGet, "/api/designs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	designs := decode[[]database.Design](t, w)
	require.Len(t, designs, 4)
	for _, d := range designs {
		require.NotNil(t, d.Creator)
		require.NotNil(t, d.Creator.User)
		assert.NotEmpty(t, d.Creator.User.Name)
	}

	w = doJSON(t, router, http.MethodGet, "/api/designs?category=Poster&sort=price_desc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]database.Design](t, w), 2)

	w = doJSON(t, router, http.MethodGet, "/api/designs?search=podcast", nil)
	require.Equal(t, http.StatusOK, w.Code)
	podcast := decode[[]database.Design](t, w)
	require.Len(t, podcast, 1)
	assert.Equal(t, "Sarah Miller", podcast[0].Creator.User.Name)

	w = doJSON(t, router, http.MethodGet, "/api/designs?creatorId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "creatorId must be an integer", decode[gin.H](t, w)["message"])

	w = doJSON(t, router, http.MethodGet, "/api/designs/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Viral Gaming Thumbnail Pack", decode[database.Design](t, w).Title)

	w = doJSON(t, router, http.MethodGet, "/api/designs/1/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/creators/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sarah_studio", decode[database.Creator](t, w).User.Username)
}

func TestMissingEntities(t *testing.T) {
	router, _ := newStoreRouter(t, false)

	w := doJSON(t, router, http.MethodGet, "/api/designs/999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Design not found"}`, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/creators/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Creator not found"}`, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/designs/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Not found"}`, w.Body.String())
}

type recordingEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	r.tasks = append(r.tasks, task)
	if r.err != nil {
		return nil, r.err
	}
	return &asynq.TaskInfo{ID: "t1"}, nil
}

func TestCreateOrder(t *testing.T) {
	s := store.New(databasetest.New(t))
	_, err := seed.Run(context.Background(), s, nil, nil)
	require.NoError(t, err)
	customer, err := s.CreateUser(context.Background(), schema.InsertUser{
		Username: "bob", Email: "bob@x.com", Password: "pw", Name: "Bob",
	})
	require.NoError(t, err)

	enqueuer := &recordingEnqueuer{}
	router := newTestRouter(t, Dependencies{Catalog: s, Passwords: auth.NewPasswords(false), Tasks: enqueuer})

	w := doJSON(t, router, http.MethodPost, "/api/orders", gin.H{"userId": customer.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "designId is required", decode[gin.H](t, w)["message"])

	w = doJSON(t, router, http.MethodPost, "/api/orders", gin.H{"designId": "one", "userId": customer.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/orders", gin.H{"designId": 999, "userId": customer.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/orders", gin.H{
		"designId":        3,
		"userId":          customer.ID,
		"instructions":    "summer sale",
		"preferredColors": []string{"#ff0000"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[database.Order](t, w)
	assert.Equal(t, database.OrderStatusPending, order.Status)
	assert.Equal(t, uint(3), order.DesignID)

	require.Len(t, enqueuer.tasks, 1)
	assert.Equal(t, tasks.TypeOrderPlaced, enqueuer.tasks[0].Type())
	var payload tasks.OrderPlacedPayload
	require.NoError(t, json.Unmarshal(enqueuer.tasks[0].Payload(), &payload))
	assert.Equal(t, order.ID, payload.OrderID)
	assert.NotEmpty(t, payload.CorrelationID)

	enqueuer.err = errors.New("redis down")
	w = doJSON(t, router, http.MethodPost, "/api/orders", gin.H{"designId": 3, "userId": customer.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

type failingCatalog struct{ err error }

func (f failingCatalog) GetUserByEmail(context.Context, string) (*database.User, error) {
	return nil, f.err
}
func (f failingCatalog) CreateUser(context.Context, schema.InsertUser) (*database.User, error) {
	return nil, f.err
}
func (f failingCatalog) GetCreator(context.Context, uint) (*database.Creator, error) {
	return nil, f.err
}
func (f failingCatalog) GetCreators(context.Context) ([]database.Creator, error) {
	return nil, f.err
}
func (f failingCatalog) GetDesign(context.Context, uint) (*database.Design, error) {
	return nil, f.err
}
func (f failingCatalog) GetDesigns(context.Context, schema.DesignFilters) ([]database.Design, error) {
	return nil, f.err
}
func (f failingCatalog) GetReviewsByDesign(context.Context, uint) ([]database.Review, error) {
	return nil, f.err
}
func (f failingCatalog) CreateOrder(context.Context, schema.InsertOrder) (*database.Order, error) {
	return nil, f.err
}

func TestStoreFailuresMapTo500(t *testing.T) {
	router := newTestRouter(t, Dependencies{
		Catalog:   failingCatalog{err: errors.New("connection refused")},
		Passwords: auth.NewPasswords(false),
	})

	requests := []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/api/designs", nil},
		{http.MethodGet, "/api/designs/1", nil},
		{http.MethodGet, "/api/designs/1/reviews", nil},
		{http.MethodGet, "/api/creators", nil},
		{http.MethodGet, "/api/creators/1", nil},
		{http.MethodPost, "/api/orders", gin.H{"designId": 1, "userId": 1}},
		{http.MethodPost, "/api/auth/login", gin.H{"email": "bob@x.com", "password": "pw"}},
		{http.MethodPost, "/api/auth/signup", gin.H{"username": "bob", "email": "bob@x.com", "password": "pw", "name": "Bob"}},
	}
	for _, r := range requests {
		w := doJSON(t, router, r.method, r.path, r.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, r.path)
		assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String(), r.path)
	}
}
