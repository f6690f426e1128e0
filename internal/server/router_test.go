package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fkhayef/tripsplit/internal/participant"
	"github.com/fkhayef/tripsplit/internal/payment"
	"github.com/fkhayef/tripsplit/internal/settlement"
	"github.com/fkhayef/tripsplit/internal/trip"
)

// In-memory stores standing in for Postgres

type memTrips struct {
	mu     sync.Mutex
	byCode map[string]*trip.Trip
}

func (m *memTrips) Create(_ context.Context, t *trip.Trip) (*trip.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *t
	created.CreatedAt = time.Now().UTC()
	m.byCode[t.Code] = &created
	return &created, nil
}

func (m *memTrips) GetByCode(_ context.Context, code string) (*trip.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byCode[code], nil
}

func (m *memTrips) CodeExists(_ context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byCode[code]
	return ok, nil
}

func (m *memTrips) Update(_ context.Context, id uuid.UUID, name *string, setStart bool, startDate *time.Time, setEnd bool, endDate *time.Time) (*trip.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.byCode {
		if t.ID == id {
			if name != nil {
				t.Name = *name
			}
			if setStart {
				t.StartDate = startDate
			}
			if setEnd {
				t.EndDate = endDate
			}
			return t, nil
		}
	}
	return nil, nil
}

type memParticipants struct {
	mu    sync.Mutex
	items []*participant.Participant
}

func (m *memParticipants) Create(_ context.Context, p *participant.Participant) (*participant.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *p
	created.CreatedAt = time.Now().UTC()
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memParticipants) GetByID(_ context.Context, tripID, id uuid.UUID) (*participant.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		if p.TripID == tripID && p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memParticipants) ListByTripID(_ context.Context, tripID uuid.UUID) ([]*participant.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*participant.Participant{}
	for _, p := range m.items {
		if p.TripID == tripID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memParticipants) Update(ctx context.Context, tripID, id uuid.UUID, setNickname bool, nickname *string, setDays bool, days *int) (*participant.Participant, error) {
	p, _ := m.GetByID(ctx, tripID, id)
	if p == nil {
		return nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if setNickname {
		p.Nickname = nickname
	}
	if setDays {
		p.DaysInTrip = days
	}
	return p, nil
}

func (m *memParticipants) Delete(_ context.Context, tripID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.items {
		if p.TripID == tripID && p.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return participant.ErrParticipantNotFound
}

func (m *memParticipants) BelongsToTrip(ctx context.Context, tripID, id uuid.UUID) (bool, error) {
	p, err := m.GetByID(ctx, tripID, id)
	return p != nil, err
}

type memPayments struct {
	mu    sync.Mutex
	items []*payment.Payment
}

func (m *memPayments) Create(_ context.Context, p *payment.Payment) (*payment.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := *p
	created.CreatedAt = time.Now().UTC()
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memPayments) ListByTripID(_ context.Context, tripID uuid.UUID) ([]*payment.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*payment.Payment{}
	for _, p := range m.items {
		if p.TripID == tripID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPayments) Delete(_ context.Context, tripID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.items {
		if p.TripID == tripID && p.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return payment.ErrPaymentNotFound
}

func (m *memPayments) CountByPayer(_ context.Context, tripID, participantID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, p := range m.items {
		if p.TripID == tripID && p.PaidByID == participantID {
			count++
		}
	}
	return count, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zap.NewNop()
	trips := &memTrips{byCode: map[string]*trip.Trip{}}
	participants := &memParticipants{}
	payments := &memPayments{}

	tripService := trip.NewService(trips)
	participantService := participant.NewService(participants, payments)
	paymentService := payment.NewService(payments, participants)
	settlementService := settlement.NewService(tripService, participantService, paymentService, settlement.NewFactory("DAYS"), logger)

	router := NewRouter(Handlers{
		Trips:        trip.NewHandler(tripService, logger),
		Participants: participant.NewHandler(participantService, logger),
		Payments:     payment.NewHandler(paymentService, logger),
		Summaries:    settlement.NewHandler(settlementService, logger),
	}, logger, []string{"https://trips.example.com"})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func call(t *testing.T, method, url string, body any, data any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if data != nil && env.Data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return resp.StatusCode, env
}

func TestRouter_TripLifecycle(t *testing.T) {
	srv := newTestServer(t)
	api := srv.URL + "/api/v1/trips"

	var created trip.TripResponse
	status, _ := call(t, http.MethodPost, api, map[string]any{
		"name": "Lisbon", "start_date": "2026-06-01", "end_date": "2026-06-03",
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, created.Code, 4)
	assert.Equal(t, 3, created.DurationDays)
	tripURL := api + "/" + created.Code

	var ana, ben participant.ParticipantResponse
	status, _ = call(t, http.MethodPost, tripURL+"/participants", map[string]any{"name": "Ana"}, &ana)
	require.Equal(t, http.StatusCreated, status)
	status, _ = call(t, http.MethodPost, tripURL+"/participants", map[string]any{"name": "Benjamin", "nickname": "Ben", "days_in_trip": 1}, &ben)
	require.Equal(t, http.StatusCreated, status)

	var paid payment.PaymentResponse
	status, _ = call(t, http.MethodPost, tripURL+"/payments", map[string]any{"amount": 40, "paid_by_id": ana.ID, "description": "Dinner"}, &paid)
	require.Equal(t, http.StatusCreated, status)
	assert.InDelta(t, 40.0, paid.Amount, 1e-9)

	var summary settlement.SummaryResponse
	status, _ = call(t, http.MethodGet, tripURL+"/summary", nil, &summary)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4, summary.TotalDays)
	assert.Equal(t, 2, summary.ParticipantCount)
	require.Len(t, summary.Settlements, 1)
	assert.Equal(t, "Ben", summary.Settlements[0].FromName)
	assert.Equal(t, "Ana", summary.Settlements[0].ToName)
	assert.InDelta(t, 10.0, summary.Settlements[0].Amount, 1e-9)

	// Ana has a payment, so she cannot leave the trip
	status, env := call(t, http.MethodDelete, tripURL+"/participants/"+ana.ID, nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)

	status, _ = call(t, http.MethodDelete, tripURL+"/payments/"+paid.ID, nil, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = call(t, http.MethodDelete, tripURL+"/participants/"+ana.ID, nil, nil)
	assert.Equal(t, http.StatusOK, status)

	var remaining []participant.ParticipantResponse
	status, _ = call(t, http.MethodGet, tripURL+"/participants", nil, &remaining)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, remaining, 1)
	assert.Equal(t, ben.ID, remaining[0].ID)
}

func TestRouter_PaymentFromOutsider(t *testing.T) {
	srv := newTestServer(t)
	api := srv.URL + "/api/v1/trips"

	var created trip.TripResponse
	status, _ := call(t, http.MethodPost, api, map[string]any{"name": "Oslo"}, &created)
	require.Equal(t, http.StatusCreated, status)

	status, env := call(t, http.MethodPost, api+"/"+created.Code+"/payments", map[string]any{"amount": 5, "paid_by_id": uuid.NewString()}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestRouter_UnknownTrip(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"", "/participants", "/payments", "/summary"} {
		status, env := call(t, http.MethodGet, srv.URL+"/api/v1/trips/0000"+path, nil, nil)
		assert.Equal(t, http.StatusNotFound, status, path)
		require.NotNil(t, env.Error, path)
		assert.Equal(t, "NOT_FOUND", env.Error.Code, path)
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	status, env := call(t, http.MethodGet, srv.URL+"/health", nil, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "tripsplit_http_requests_total")
}

func TestRouter_CORS(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/trips", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://trips.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "https://trips.example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example.com")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()

	assert.Empty(t, resp2.Header.Get("Access-Control-Allow-Origin"))
}
