package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/charak7/Heart-care/internal/config"
	"github.com/charak7/Heart-care/internal/errdefs"
	"github.com/charak7/Heart-care/internal/logging"
	"github.com/charak7/Heart-care/internal/model"
	"github.com/charak7/Heart-care/internal/service"
)

type fakeRepo struct {
	inserted []*model.Submission
	err      error
}

func (f *fakeRepo) Insert(_ context.Context, sub *model.Submission) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, sub)
	return nil
}

type creatorFunc func(ctx context.Context, payload map[string]any, sourceType string) (*model.Submission, error)

func (f creatorFunc) Create(ctx context.Context, payload map[string]any, sourceType string) (*model.Submission, error) {
	return f(ctx, payload, sourceType)
}

func testConfig() *config.Config {
	return &config.Config{AllowedOrigins: "https://heartcare.example", TableName: "leads"}
}

func newTestHandler(cfg *config.Config, repo service.SubmissionRepository) *Handler {
	return New(cfg, service.NewSubmissionService(repo), logging.New(zap.NewNop()))
}

func postJSON(body string) Event {
	return Event{
		HTTPMethod: http.MethodPost,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

func decodeBody(t *testing.T, body string) map[string]string {
	t.Helper()
	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	return decoded
}

// ── Preflight ───────────────────────────────────────────────────────

func TestHandlePreflight(t *testing.T) {
	repo := &fakeRepo{}
	h := newTestHandler(testConfig(), repo)

	// body is garbage on purpose: preflight must not touch it
	ev := Event{HTTPMethod: http.MethodOptions, Body: `{not json`}
	resp, err := h.Handle(context.Background(), ev)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.JSONEq(t, `{}`, resp.Body)
	assert.Equal(t, "https://heartcare.example", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "OPTIONS,POST", resp.Headers["Access-Control-Allow-Methods"])
	assert.Equal(t, "Content-Type,Authorization", resp.Headers["Access-Control-Allow-Headers"])
	assert.Equal(t, "86400", resp.Headers["Access-Control-Max-Age"])
	assert.Empty(t, repo.inserted)
}

// ── Configuration ───────────────────────────────────────────────────

func TestHandleMissingTableName(t *testing.T) {
	cfg := testConfig()
	cfg.TableName = ""
	repo := &fakeRepo{}
	h := newTestHandler(cfg, repo)

	resp, err := h.Handle(context.Background(), postJSON(`{not even parsed`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "Server misconfiguration: TABLE_NAME is not set", body["message"])
	assert.Empty(t, repo.inserted)
}

// ── Submission ──────────────────────────────────────────────────────

func TestHandleSubmission(t *testing.T) {
	t.Run("ValidJSON", func(t *testing.T) {
		repo := &fakeRepo{}
		h := newTestHandler(testConfig(), repo)

		resp, err := h.Handle(context.Background(), postJSON(`{"name":"Jo","email":"jo@example.com"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, "Submitted", body["message"])

		id, err := uuid.Parse(body["userId"])
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())

		require.Len(t, repo.inserted, 1)
		sub := repo.inserted[0]
		assert.Equal(t, body["userId"], sub.UserID)
		assert.Equal(t, sub.CreatedAt, sub.UpdatedAt)
		assert.Equal(t, model.SourceJSON, sub.SourceType)
	})

	t.Run("FormEquivalentToJSON", func(t *testing.T) {
		repo := &fakeRepo{}
		h := newTestHandler(testConfig(), repo)

		form := Event{
			HTTPMethod: http.MethodPost,
			Headers:    map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
			Body:       "name=Jo&email=jo%40example.com",
		}
		resp, err := h.Handle(context.Background(), form)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		_, err = h.Handle(context.Background(), postJSON(`{"name":"Jo","email":"jo@example.com"}`))
		require.NoError(t, err)

		require.Len(t, repo.inserted, 2)
		fromForm, fromJSON := repo.inserted[0], repo.inserted[1]
		assert.Equal(t, model.SourceForm, fromForm.SourceType)
		assert.Equal(t, model.SourceJSON, fromJSON.SourceType)
		assert.Equal(t, fromJSON.Name, fromForm.Name)
		assert.Equal(t, fromJSON.Email, fromForm.Email)
	})

	t.Run("MethodIsNotChecked", func(t *testing.T) {
		// anything that is not OPTIONS runs the submission pipeline
		repo := &fakeRepo{}
		h := newTestHandler(testConfig(), repo)

		ev := postJSON(`{"name":"Jo","email":"jo@example.com"}`)
		ev.HTTPMethod = http.MethodPut
		resp, err := h.Handle(context.Background(), ev)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}

// ── Error translation ───────────────────────────────────────────────

func TestHandleErrors(t *testing.T) {
	t.Run("MalformedJSON", func(t *testing.T) {
		h := newTestHandler(testConfig(), &fakeRepo{})
		resp, err := h.Handle(context.Background(), postJSON(`{not json`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid JSON in request body", decodeBody(t, resp.Body)["message"])
	})

	t.Run("ArrayJSON", func(t *testing.T) {
		h := newTestHandler(testConfig(), &fakeRepo{})
		resp, err := h.Handle(context.Background(), postJSON(`[1,2]`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Request JSON must be an object", decodeBody(t, resp.Body)["message"])
	})

	t.Run("MissingName", func(t *testing.T) {
		h := newTestHandler(testConfig(), &fakeRepo{})
		resp, err := h.Handle(context.Background(), postJSON(`{"email":"jo@example.com"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Missing required field: name", decodeBody(t, resp.Body)["message"])
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		h := newTestHandler(testConfig(), &fakeRepo{})
		resp, err := h.Handle(context.Background(), postJSON(`{"name":"Jo","email":"not-an-email"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid email format", decodeBody(t, resp.Body)["message"])
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo := &fakeRepo{err: errors.New("provisioned throughput exceeded")}
		h := newTestHandler(testConfig(), repo)

		resp, err := h.Handle(context.Background(), postJSON(`{"name":"Jo","email":"jo@example.com"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, "Failed to store submission", body["message"])
		assert.Equal(t, "provisioned throughput exceeded", body["detail"])
	})

	t.Run("ConditionalWriteConflict", func(t *testing.T) {
		repo := &fakeRepo{err: errdefs.ErrAlreadyExists}
		h := newTestHandler(testConfig(), repo)

		resp, err := h.Handle(context.Background(), postJSON(`{"name":"Jo","email":"jo@example.com"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Failed to store submission", decodeBody(t, resp.Body)["message"])
	})

	t.Run("UnexpectedFailure", func(t *testing.T) {
		creator := creatorFunc(func(context.Context, map[string]any, string) (*model.Submission, error) {
			return nil, errors.New("boom")
		})
		h := New(testConfig(), creator, logging.New(zap.NewNop()))

		resp, err := h.Handle(context.Background(), postJSON(`{"name":"Jo","email":"jo@example.com"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, "Internal server error", body["message"])
		assert.Equal(t, "boom", body["detail"])
	})

	t.Run("ErrorResponsesCarryCORSHeaders", func(t *testing.T) {
		h := newTestHandler(testConfig(), &fakeRepo{})
		resp, err := h.Handle(context.Background(), postJSON(`{not json`))
		require.NoError(t, err)
		assert.Equal(t, "https://heartcare.example", resp.Headers["Access-Control-Allow-Origin"])
	})
}
