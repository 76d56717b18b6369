package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_MemoryStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := NewApp(configFromEnv(envOf(map[string]string{"LOG_LEVEL": "error"})))
	require.NoError(t, err)
	assert.Nil(t, app.DB)
	assert.Nil(t, app.RedisClient)
	assert.Nil(t, app.WorkerServer)

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Rooms []json.RawMessage `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Rooms, 6)

	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/rooms", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
