package queuesvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-ringqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-ringqueue/pkg/common/http/response"
	"github.com/huynhanx03/go-ringqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-ringqueue/pkg/settings"
)

func newService(t *testing.T, maxCapacity int) *Service {
	t.Helper()
	s, err := New(settings.Queue{Label: "test", InitialCapacity: 1, MaxCapacity: maxCapacity}, nil)
	require.NoError(t, err)
	return s
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, envelope, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w.Code, env, w.Body.String()
}

// =============================================================================
// Service
// =============================================================================

func TestNew_InvalidCapacity(t *testing.T) {
	_, err := New(settings.Queue{Label: "x", InitialCapacity: 0, MaxCapacity: 8}, nil)
	require.Error(t, err)

	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
}

func TestService_PushPop(t *testing.T) {
	s := newService(t, 64)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		v := i
		res, err := s.Push(ctx, &PushRequest{Value: &v})
		require.NoError(t, err)
		assert.Equal(t, i, res.Size)
	}
	for i := 1; i <= 5; i++ {
		res, err := s.Pop(ctx, &PopRequest{})
		require.NoError(t, err)
		assert.Equal(t, i, res.Value)
	}

	_, err := s.Pop(ctx, &PopRequest{})
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
	require.NoError(t, s.Close())

	res, err := s.Verify(ctx, &VerifyRequest{})
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "invalid data", res.Kind)
}

func TestService_ConcurrentCallers(t *testing.T) {
	s := newService(t, queue.MaxCapacity)
	ctx := context.Background()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				v := g*1000 + i
				_, _ = s.Push(ctx, &PushRequest{Value: &v})
				if i%2 == 1 {
					_, _ = s.Pop(ctx, &PopRequest{})
				}
			}
		}(g)
	}
	wg.Wait()

	res, err := s.Verify(ctx, &VerifyRequest{})
	require.NoError(t, err)
	assert.True(t, res.OK)

	snap, err := s.Inspect(ctx, &InspectRequest{})
	require.NoError(t, err)
	assert.Equal(t, 8*100, snap.Size)
}

// =============================================================================
// Routes
// =============================================================================

func TestRoutes(t *testing.T) {
	s := newService(t, 4)
	r := NewRouter(gin.TestMode, s)

	code, env, _ := do(t, r, http.MethodPost, "/queue/push", `{"value": 7}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, response.CodeSuccess, env.Code)
	assert.JSONEq(t, `{"size":1,"capacity":2}`, string(env.Data))

	code, env, _ = do(t, r, http.MethodGet, "/queue/verify", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"ok":true,"kind":"ok","code":0}`, string(env.Data))

	code, env, _ = do(t, r, http.MethodGet, "/queue/inspect", "")
	require.Equal(t, http.StatusOK, code)
	var snap queue.Snapshot
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Equal(t, 2, snap.Capacity)
	assert.Equal(t, []queue.Slot{{Value: 7}, {Value: queue.Poison, Poisoned: true}}, snap.Slots)

	code, _, body := do(t, r, http.MethodGet, "/queue/dump", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "Queue[test]:\n")
	assert.Contains(t, body, "    [000] 7\n")

	code, env, _ = do(t, r, http.MethodPost, "/queue/pop", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"value":7,"size":0,"capacity":1}`, string(env.Data))

	code, env, _ = do(t, r, http.MethodPost, "/queue/pop", "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, apperr.CodeQueueBase+int(queue.KindEmptyQueue), env.Code)
	assert.Equal(t, "queue failed to pop", env.Message)
}

func TestRoutes_PushValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantApp  int
	}{
		{"missing_value", `{}`, http.StatusUnprocessableEntity, response.CodeValidationFailed},
		{"poison_value", `{"value": 12648430}`, http.StatusUnprocessableEntity, response.CodeValidationFailed},
		{"malformed", `{"value":`, http.StatusBadRequest, response.CodeParamInvalid},
		{"zero_is_valid", `{"value": 0}`, http.StatusOK, response.CodeSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(gin.TestMode, newService(t, 4))
			code, env, _ := do(t, r, http.MethodPost, "/queue/push", tt.body)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantApp, env.Code)
		})
	}
}

func TestRoutes_Saturated(t *testing.T) {
	r := NewRouter(gin.TestMode, newService(t, 2))

	for i := 0; i < 2; i++ {
		code, _, _ := do(t, r, http.MethodPost, "/queue/push", `{"value": 1}`)
		require.Equal(t, http.StatusOK, code)
	}

	code, env, _ := do(t, r, http.MethodPost, "/queue/push", `{"value": 1}`)
	assert.Equal(t, http.StatusInsufficientStorage, code)
	assert.Equal(t, apperr.CodeQueueBase+int(queue.KindInvalidCapacity), env.Code)
}
