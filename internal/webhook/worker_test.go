package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/crime_file_system/internal/config"
	"github.com/shenikar/crime_file_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	w := NewWebhookWorker(nil, logger, cfg)
	w.sleep = func(time.Duration) {}
	return w
}

func testEvent(t *testing.T) (ChangeEvent, []byte) {
	event := NewChangeEvent(models.Change{
		Kind:      models.ChangeCreated,
		RecordIDs: []models.RecordID{models.NumericID(42)},
		Total:     9,
	}, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC))
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, payload
}

func TestDeliver_SignsPayload(t *testing.T) {
	event, payload := testEvent(t)
	var gotSignature, gotEvent string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotEvent = r.Header.Get("X-Webhook-Event")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookSecret: "s3cret", WebhookMaxRetries: 3})

	require.NoError(t, w.Deliver(context.Background(), event, payload))
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
	assert.Equal(t, event.EventID.String(), gotEvent)
	assert.JSONEq(t, string(payload), string(gotBody))
	assert.Contains(t, string(gotBody), `"record_ids":[42]`)
}

func TestDeliver_RetriesThenFails(t *testing.T) {
	event, payload := testEvent(t)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookMaxRetries: 3, WebhookBaseDelay: time.Millisecond})

	err := w.Deliver(context.Background(), event, payload)
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDeliver_SucceedsAfterRetry(t *testing.T) {
	event, payload := testEvent(t)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(&config.Config{WebhookURL: srv.URL, WebhookMaxRetries: 3})

	require.NoError(t, w.Deliver(context.Background(), event, payload))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDeliver_NoURLSkips(t *testing.T) {
	event, payload := testEvent(t)
	w := newTestWorker(&config.Config{})

	assert.NoError(t, w.Deliver(context.Background(), event, payload))
}

func TestNewChangeEvent_EmptyIDs(t *testing.T) {
	event := NewChangeEvent(models.Change{Kind: models.ChangeReplaced}, time.Now())
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"record_ids":[]`)
}
