package bootstrap_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/contribtrack/internal/bootstrap"
	"github.com/yigit/contribtrack/internal/config"
	"github.com/yigit/contribtrack/internal/pkg/export"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Code    string                 `json:"code"`
	Data    json.RawMessage        `json:"data"`
	Errors  json.RawMessage        `json:"errors"`
	Details map[string]interface{} `json:"details"`
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.CORSOrigins = "*"
	cfg.Database.Driver = config.DriverMemory
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = "1h"
	cfg.JWT.Issuer = "contribtrack-test"
	cfg.Auth.BcryptCost = 4
	cfg.Seed.Enabled = true
	cfg.Seed.AdminName = "System Admin"
	cfg.Seed.AdminEmail = "admin@organization.com"
	cfg.Seed.AdminPassword = "Admin@123"

	lgr := zerolog.Nop()
	storage, err := bootstrap.SetupDatabase(context.Background(), cfg, lgr)
	require.NoError(t, err)
	require.Nil(t, storage.Postgres)

	deps := bootstrap.BuildDependencies(cfg, storage.Repos, lgr)
	return &testAPI{t: t, router: bootstrap.SetupRouter(cfg, deps, lgr)}
}

func (a *testAPI) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func (a *testAPI) login(email, password string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token     string `json:"token"`
		TokenType string `json:"tokenType"`
	}
	require.NoError(a.t, json.Unmarshal(decode(a.t, w).Data, &data))
	require.Equal(a.t, "Bearer", data.TokenType)
	require.NotEmpty(a.t, data.Token)
	return data.Token
}

// departmentIDs maps department code to id
func (a *testAPI) departmentIDs(adminToken string) map[string]string {
	a.t.Helper()
	w := a.do(http.MethodGet, "/api/departments", adminToken, nil)
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())

	var departments []struct {
		ID   string `json:"id"`
		Code string `json:"code"`
	}
	require.NoError(a.t, json.Unmarshal(decode(a.t, w).Data, &departments))

	ids := make(map[string]string, len(departments))
	for _, d := range departments {
		ids[d.Code] = d.ID
	}
	return ids
}

func TestStatusAndNotFound(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/status", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode(t, w).Success)

	w = api.do(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "RES_001", env.Code)
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	api.login("admin@organization.com", "Admin@123")

	w := api.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "admin@organization.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_001", decode(t, w).Code)

	w = api.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "nobody@organization.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email and password are required.", decode(t, w).Message)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_007", decode(t, w).Code)

	w = api.do(http.MethodGet, "/api/contributions/all", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_005", decode(t, w).Code)
}

func TestHODContributionFlow(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login("admin@organization.com", "Admin@123")
	hod := api.login("eng_hod@organization.com", "ENG@123")
	ids := api.departmentIDs(admin)
	require.Len(t, ids, 3)

	t.Run("reads own seeded contribution", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/contributions/department/"+ids["ENG"]+"?cycle=2025-Q4", hod, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var c struct {
			Academy float64 `json:"academy"`
			Cycle   string  `json:"cycle"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &c))
		assert.Equal(t, 40.0, c.Academy)
		assert.Equal(t, "2025-Q4", c.Cycle)
	})

	t.Run("updates remarks without touching the allocation", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/contributions/department/"+ids["ENG"]+"?cycle=2025-Q4", hod, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var seeded struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &seeded))

		w = api.do(http.MethodPut, "/api/contributions/"+seeded.ID, hod, map[string]interface{}{"remarks": "Reviewed"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var updated struct {
			Academy   float64 `json:"academy"`
			Intensive float64 `json:"intensive"`
			Niat      float64 `json:"niat"`
			Remarks   string  `json:"remarks"`
			Cycle     string  `json:"cycle"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &updated))
		assert.Equal(t, 40.0, updated.Academy)
		assert.Equal(t, 30.0, updated.Intensive)
		assert.Equal(t, 30.0, updated.Niat)
		assert.Equal(t, "Reviewed", updated.Remarks)
		assert.Equal(t, "2025-Q4", updated.Cycle)

		w = api.do(http.MethodPut, "/api/contributions/"+seeded.ID, hod, map[string]interface{}{"academy": 41})
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Equal(t, "VAL_001", decode(t, w).Code)
	})

	t.Run("cannot read another department", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/contributions/department/"+ids["MKT"], hod, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "AUTH_009", decode(t, w).Code)
	})

	t.Run("duplicate cycle returns the existing record", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/contributions", hod, map[string]interface{}{
			"department": ids["ENG"], "academy": 50, "intensive": 25, "niat": 25, "cycle": "2025-Q4",
		})
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		env := decode(t, w)
		assert.Equal(t, "RES_002", env.Code)

		var existing struct {
			Academy float64 `json:"academy"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &existing))
		assert.Equal(t, 40.0, existing.Academy)
	})

	t.Run("allocation must total 100", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/contributions", hod, map[string]interface{}{
			"department": ids["ENG"], "academy": 50, "intensive": 25, "niat": 24, "cycle": "2026-Q1",
		})
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		env := decode(t, w)
		assert.Equal(t, "VAL_001", env.Code)
		assert.NotEmpty(t, env.Errors)
	})

	t.Run("submits a new cycle", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/contributions", hod, map[string]interface{}{
			"department": ids["ENG"], "academy": "50", "intensive": 25, "niat": 25, "cycle": "2026-Q1",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = api.do(http.MethodGet, "/api/contributions/department/"+ids["ENG"], hod, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var latest struct {
			Cycle string `json:"cycle"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &latest))
		assert.Equal(t, "2026-Q1", latest.Cycle)
	})

	t.Run("cannot submit for another department", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/contributions", hod, map[string]interface{}{
			"department": ids["MKT"], "academy": 40, "intensive": 30, "niat": 30, "cycle": "2026-Q1",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin-only routes are closed to HODs", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/contributions/all", hod, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = api.do(http.MethodGet, "/api/contributions/export", hod, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAdminExport(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login("admin@organization.com", "Admin@123")

	w := api.do(http.MethodGet, "/api/contributions/export?cycle=2025-Q4", admin, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="contributions_2025-Q4.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestAdminEmployeeSeed(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login("admin@organization.com", "Admin@123")
	ids := api.departmentIDs(admin)

	w := api.do(http.MethodPost, "/api/employees/seed", admin, map[string]interface{}{
		"employees": []map[string]string{
			{"empId": "ENG-100", "name": "New Hire", "department": ids["ENG"], "designation": "Engineer", "email": "hire@organization.com"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/api/employees/seed", admin, map[string]interface{}{
		"employees": []map[string]string{
			{"empId": "ENG-100", "name": "New Hire", "department": ids["ENG"]},
		},
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	env := decode(t, w)
	assert.Equal(t, []interface{}{"ENG-100"}, env.Details["duplicates"])

	hod := api.login("eng_hod@organization.com", "ENG@123")
	w = api.do(http.MethodGet, "/api/employees", hod, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var employees []struct {
		EmpID string `json:"empId"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &employees))
	assert.Len(t, employees, 4)
}
