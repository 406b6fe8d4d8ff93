package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/workforce-analytics/workforce-backend-go/internal/config"
	"github.com/workforce-analytics/workforce-backend-go/internal/handler/http/response"
	"github.com/workforce-analytics/workforce-backend-go/internal/pkg/jwt"
	authService "github.com/workforce-analytics/workforce-backend-go/internal/service/auth"
)

const handlerTestSecret = "test-secret-key-for-sessions"

// stubHandler answers every route with an empty success payload. Router
// tests only care about which requests get through the middleware.
type stubHandler struct{}

func (stubHandler) ok(w http.ResponseWriter, r *http.Request) { response.Success(w, nil) }

func (s stubHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }
func (s stubHandler) GetEmployee(w http.ResponseWriter, r *http.Request)    { s.ok(w, r) }
func (s stubHandler) ListEmployees(w http.ResponseWriter, r *http.Request)  { s.ok(w, r) }
func (s stubHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }
func (s stubHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }

func (s stubHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }
func (s stubHandler) GetDepartment(w http.ResponseWriter, r *http.Request)    { s.ok(w, r) }
func (s stubHandler) ListDepartments(w http.ResponseWriter, r *http.Request)  { s.ok(w, r) }
func (s stubHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }
func (s stubHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }
func (s stubHandler) CreateShift(w http.ResponseWriter, r *http.Request)      { s.ok(w, r) }
func (s stubHandler) GetShift(w http.ResponseWriter, r *http.Request)         { s.ok(w, r) }
func (s stubHandler) ListShifts(w http.ResponseWriter, r *http.Request)       { s.ok(w, r) }
func (s stubHandler) UpdateShift(w http.ResponseWriter, r *http.Request)      { s.ok(w, r) }
func (s stubHandler) DeleteShift(w http.ResponseWriter, r *http.Request)      { s.ok(w, r) }

func (s stubHandler) CheckIn(w http.ResponseWriter, r *http.Request)      { s.ok(w, r) }
func (s stubHandler) CheckOut(w http.ResponseWriter, r *http.Request)     { s.ok(w, r) }
func (s stubHandler) CreateRecord(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }
func (s stubHandler) ListRecords(w http.ResponseWriter, r *http.Request)  { s.ok(w, r) }
func (s stubHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }

func (s stubHandler) UpsertEntry(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }
func (s stubHandler) GetEntry(w http.ResponseWriter, r *http.Request)    { s.ok(w, r) }
func (s stubHandler) ListEntries(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }
func (s stubHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }

func (s stubHandler) OTSummary(w http.ResponseWriter, r *http.Request)           { s.ok(w, r) }
func (s stubHandler) DepartmentSummary(w http.ResponseWriter, r *http.Request)   { s.ok(w, r) }
func (s stubHandler) PayrollSummary(w http.ResponseWriter, r *http.Request)      { s.ok(w, r) }
func (s stubHandler) RevenueByDepartment(w http.ResponseWriter, r *http.Request) { s.ok(w, r) }
func (s stubHandler) BurnoutSummary(w http.ResponseWriter, r *http.Request)      { s.ok(w, r) }
func (s stubHandler) ListSchemaObjects(w http.ResponseWriter, r *http.Request)   { s.ok(w, r) }
func (s stubHandler) BrowseRows(w http.ResponseWriter, r *http.Request)          { s.ok(w, r) }

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("operator-password"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Admin = config.AdminConfig{Username: "admin", PasswordHash: string(hash)}

	jwtService := jwt.NewJWTService(handlerTestSecret, "1h")
	authSvc := authService.NewAuthService(cfg.Admin, jwtService)
	authHandler := NewAuthHandler(authSvc)

	stub := stubHandler{}
	router := NewRouter(cfg, jwtService, authHandler, stub, stub, stub, stub, stub)
	return router, jwtService
}

func doLogin(t *testing.T, router http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := doLogin(t, router, "admin", "operator-password")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestLogin_EndToEnd(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	rec := doLogin(t, router, "admin", "operator-password")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doLogin(t, router, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := loginToken(t, router)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/employees/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMutatingRoutes_RequireAdmin(t *testing.T) {
	t.Parallel()
	router, jwtService := newTestRouter(t)

	// A session token without the admin flag can read but not write.
	userToken, _, err := jwtService.GenerateSessionToken("viewer", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts/", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/shifts/", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := loginToken(t, router)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/shifts/", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout_RevokesSession(t *testing.T) {
	t.Parallel()
	router, _ := newTestRouter(t)

	token := loginToken(t, router)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/employees/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
