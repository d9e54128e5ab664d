package websocket_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personnel/internal/model"
	"personnel/internal/service"
	"personnel/internal/websocket"
)

type staticVerifier struct {
	role string
}

func (v staticVerifier) Authenticate(token string) (*service.AccessClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	claims := &service.AccessClaims{Role: v.role}
	claims.Subject = "user-1"
	return claims, nil
}

func (v staticVerifier) HasPermission(_ context.Context, role, perm string) (bool, error) {
	return role == model.RoleAccountant && perm == model.PermPayrollRulesRead, nil
}

func startServer(t *testing.T, role string) (*websocket.Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := websocket.NewHub(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) { websocket.ServeWs(hub, staticVerifier{role: role}, c) })

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func TestHub_PublishReachesClient(t *testing.T) {
	hub, url := startServer(t, model.RoleAccountant)

	conn, _, err := gorilla.DefaultDialer.Dial(url+"?token=good", nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish("payroll_rules.changed", map[string]string{"jurisdiction": "RU"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type    string            `json:"type"`
		Payload map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg, &event))
	assert.Equal(t, "payroll_rules.changed", event.Type)
	assert.Equal(t, "RU", event.Payload["jurisdiction"])

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServeWs_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		token  string
		status int
	}{
		{"bad token", model.RoleAccountant, "bad", http.StatusUnauthorized},
		{"missing permission", model.RoleViewer, "good", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, url := startServer(t, tt.role)

			_, resp, err := gorilla.DefaultDialer.Dial(url+"?token="+tt.token, nil)
			require.ErrorIs(t, err, gorilla.ErrBadHandshake)
			require.NotNil(t, resp)
			assert.Equal(t, tt.status, resp.StatusCode)
			_ = resp.Body.Close()
		})
	}
}
