package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const memoryConfig = `
server:
  port: "0"
  mode: development
database:
  driver: memory
jwt:
  secret: test-secret
  expiration: 1h
auth:
  bcrypt_cost: 4
seed:
  enabled: false
logging:
  level: error
  format: json
`

func TestNewServer_MemoryDriver(t *testing.T) {
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(memoryConfig), 0o600))

	srv, err := NewServer(path)
	require.NoError(t, err)
	assert.Nil(t, srv.storage.Postgres)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// shutting down a server that never listened is a no-op
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestNewServer_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  driver: oracle\n"), 0o600))

	_, err := NewServer(path)
	assert.Error(t, err)
}
