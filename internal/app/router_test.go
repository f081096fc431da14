package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbook/internal/app"
	"tripbook/internal/kvstore"
	internalRedis "tripbook/internal/redis"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type toggleBackend struct {
	*kvstore.MemoryBackend
	fail atomic.Bool
}

func (b *toggleBackend) Set(ctx context.Context, key string, value []byte) error {
	if b.fail.Load() {
		return errors.New("disk full")
	}
	return b.MemoryBackend.Set(ctx, key, value)
}

type testServer struct {
	router  http.Handler
	backend *toggleBackend
}

func newTestServer(t *testing.T, mutate func(*app.RouterDeps)) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	backend := &toggleBackend{MemoryBackend: kvstore.NewMemoryBackend()}
	store := kvstore.New(backend, logger)

	var tick atomic.Int64
	start := time.Date(2024, time.October, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return start.Add(time.Duration(tick.Add(1)) * time.Millisecond) }

	deps := app.NewServices(store, true, clock, logger).Handlers(store)
	deps.Logger = logger
	if mutate != nil {
		mutate(&deps)
	}
	return &testServer{router: app.NewRouter(deps), backend: backend}
}

func (s *testServer) do(t *testing.T, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil)
	rec := s.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_TripsLifecycle(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil)

	list := decode(t, s.do(t, http.MethodGet, "/v1/trips", ""))
	assert.EqualValues(t, 3, list["count"])
	first := list["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "Paris, França", first["destination"])
	assert.Equal(t, "Faltam 9 dias", first["timing"])

	rec := s.do(t, http.MethodPost, "/v1/trips", `{"destination":"Roma, Itália","country":"Itália","dateRange":"01 Dez - 10 Dez, 2024"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	item := created["item"].(map[string]any)
	assert.Regexp(t, `^\d+$`, item["id"])
	assert.Len(t, created["items"], 4)
	travelers := item["travelers"].([]any)
	assert.Equal(t, "me", travelers[0].(map[string]any)["id"])

	id := item["id"].(string)
	rec = s.do(t, http.MethodPut, "/v1/trips/"+id, `{"destination":"Roma","country":"Itália","status":"planning"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode(t, s.do(t, http.MethodGet, "/v1/trips/"+id, ""))
	assert.Equal(t, "Roma", got["destination"])
	assert.Equal(t, "planning", got["status"])
	assert.Len(t, got["travelers"], 1, "travelers kept when omitted")

	stats := decode(t, s.do(t, http.MethodGet, "/v1/stats", ""))
	assert.EqualValues(t, 4, stats["tripCount"])
	assert.EqualValues(t, 4, stats["countryCount"])
}

func TestRouter_ErrorStatuses(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"missing destination", http.MethodPost, "/v1/trips", `{"destination":" "}`, http.StatusUnprocessableEntity},
		{"bad status", http.MethodPost, "/v1/trips", `{"destination":"Roma","status":"cancelled"}`, http.StatusUnprocessableEntity},
		{"malformed body", http.MethodPost, "/v1/trips", `{`, http.StatusBadRequest},
		{"unknown trip", http.MethodGet, "/v1/trips/404", "", http.StatusNotFound},
		{"unknown booking", http.MethodPut, "/v1/bookings/nope", `{"tripId":"1","provider":"x"}`, http.StatusNotFound},
		{"missing provider", http.MethodPost, "/v1/trips/1/bookings", `{"type":"hotel"}`, http.StatusUnprocessableEntity},
		{"bad amount", http.MethodPost, "/v1/trips/1/expenses", `{"description":"Táxi","amount":"dez"}`, http.StatusUnprocessableEntity},
		{"exponent amount", http.MethodPost, "/v1/trips/1/expenses", `{"description":"Táxi","amount":"1e200000000"}`, http.StatusUnprocessableEntity},
		{"expense without trip", http.MethodPut, "/v1/expenses/x1", `{"description":"Passagem","amount":"3200"}`, http.StatusUnprocessableEntity},
		{"bad event time", http.MethodPost, "/v1/trips/1/events", `{"title":"Museu","time":"9h"}`, http.StatusUnprocessableEntity},
		{"unknown task", http.MethodPost, "/v1/tasks/nope/toggle", "", http.StatusNotFound},
		{"bad budget", http.MethodPut, "/v1/budget", `{"totalLimit":100,"alertThreshold":120}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		rec := s.do(t, tt.method, tt.path, tt.body)
		assert.Equal(t, tt.want, rec.Code, "%s: %s", tt.name, rec.Body.String())
	}
}

func TestRouter_TripScopedCollections(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodPost, "/v1/trips/2/bookings", `{"type":"flight","provider":"JAL","reference":"JL42"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "2", decode(t, rec)["item"].(map[string]any)["tripId"])
	assert.EqualValues(t, 2, decode(t, s.do(t, http.MethodGet, "/v1/trips/2/bookings", ""))["count"])

	rec = s.do(t, http.MethodDelete, "/v1/bookings/does-not-exist", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 4, decode(t, rec)["count"])

	rec = s.do(t, http.MethodPost, "/v1/trips/1/tasks", `{"text":"Comprar guia"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	tasks := decode(t, s.do(t, http.MethodGet, "/v1/trips/1/tasks", ""))
	assert.EqualValues(t, 4, tasks["count"])
	assert.EqualValues(t, 1, tasks["done"])

	rec = s.do(t, http.MethodPost, "/v1/tasks/k2/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["item"].(map[string]any)["completed"])

	rec = s.do(t, http.MethodPost, "/v1/trips/1/expenses", `{"description":"Crepe","amount":"12,50","category":"food"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	summary := decode(t, s.do(t, http.MethodGet, "/v1/trips/1/expenses/summary", ""))
	assert.EqualValues(t, 5063, summary["total"])
	assert.EqualValues(t, 3, summary["count"])

	rec = s.do(t, http.MethodPost, "/v1/trips/1/events", `{"title":"Louvre","time":"10:00","type":"museum"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	events := decode(t, rec)["items"].([]any)
	require.Len(t, events, 4)
	assert.Equal(t, "10:00", events[1].(map[string]any)["time"])
}

func TestRouter_MemoriesSyncMediaCount(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodPost, "/v1/memories", `{"trip":"Tóquio, Japão","image":"file:///fuji.jpg"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	tokyo := decode(t, s.do(t, http.MethodGet, "/v1/trips/2", ""))
	assert.EqualValues(t, 1, tokyo["mediaCount"])

	filtered := decode(t, s.do(t, http.MethodGet, "/v1/memories?trip=Lisboa,%20Portugal", ""))
	assert.EqualValues(t, 2, filtered["count"])

	rec = s.do(t, http.MethodDelete, "/v1/memories/m4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	lisbon := decode(t, s.do(t, http.MethodGet, "/v1/trips/3", ""))
	assert.EqualValues(t, 1, lisbon["mediaCount"])
}

func TestRouter_ProfileBudgetCategories(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil)

	assert.Equal(t, "Viajante", decode(t, s.do(t, http.MethodGet, "/v1/profile", ""))["name"])
	rec := s.do(t, http.MethodPut, "/v1/profile", `{"name":"Marina","avatarUri":"file:///me.jpg"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Marina", decode(t, s.do(t, http.MethodGet, "/v1/profile", ""))["name"])

	rec = s.do(t, http.MethodPut, "/v1/budget", `{"totalLimit":5000,"alertThreshold":80,"alertEnabled":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	summary := decode(t, s.do(t, http.MethodGet, "/v1/budget/summary", ""))
	assert.Equal(t, true, summary["alertTriggered"])
	assert.InDelta(t, 5075.4, summary["spent"], 1e-9)

	rec = s.do(t, http.MethodPost, "/v1/categories", `{"name":"Presentes","icon":"gift"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	categories := decode(t, s.do(t, http.MethodGet, "/v1/categories", ""))
	assert.Len(t, categories["items"], 1)
	assert.Len(t, categories["available"], 7)
}

func TestRouter_ClearReseeds(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil)
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/v1/trips", `{"destination":"Roma"}`).Code)

	rec := s.do(t, http.MethodDelete, "/v1/store", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.EqualValues(t, 3, decode(t, s.do(t, http.MethodGet, "/v1/trips", ""))["count"])
}

func TestRouter_WriteFailureReturnsNewList(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, nil)
	s.do(t, http.MethodGet, "/v1/trips/1/tasks", "")
	s.backend.fail.Store(true)

	rec := s.do(t, http.MethodPost, "/v1/trips/1/tasks", `{"text":"Seguro viagem"}`)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decode(t, rec)
	assert.NotEmpty(t, body["error"])
	assert.Len(t, body["items"], 5)
}

func TestRouter_IdempotentCreate(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := newTestServer(t, func(d *app.RouterDeps) {
		d.Idempotency = internalRedis.NewIdempotencyStore(client, "")
	})

	body := `{"destination":"Roma"}`
	first := s.do(t, http.MethodPost, "/v1/trips", body, "Idempotency-Key", "create-roma")
	second := s.do(t, http.MethodPost, "/v1/trips", body, "Idempotency-Key", "create-roma")

	require.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.EqualValues(t, 4, decode(t, s.do(t, http.MethodGet, "/v1/trips", ""))["count"])
}
