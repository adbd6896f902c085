package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/charak7/Heart-care/internal/config"
	"github.com/charak7/Heart-care/internal/errdefs"
	"github.com/charak7/Heart-care/internal/logging"
	"github.com/charak7/Heart-care/internal/model"
)

// SubmissionCreator is the pipeline run once the body is parsed.
type SubmissionCreator interface {
	Create(ctx context.Context, payload map[string]any, sourceType string) (*model.Submission, error)
}

type Handler struct {
	cfg  *config.Config
	subs SubmissionCreator
	log  *logging.Logger
}

func New(cfg *config.Config, subs SubmissionCreator, log *logging.Logger) *Handler {
	return &Handler{cfg: cfg, subs: subs, log: log}
}

// Handle runs the intake pipeline for one invocation: preflight
// short-circuit, config check, parse, validate-and-persist, respond.
// Errors never propagate to the runtime; they become error responses.
func (h *Handler) Handle(ctx context.Context, ev Event) (events.APIGatewayProxyResponse, error) {
	if ev.Method() == http.MethodOptions {
		return h.respond(http.StatusNoContent, map[string]string{}), nil
	}

	if h.cfg.TableName == "" {
		h.log.Error(ctx, "table name is not configured")
		return h.respond(http.StatusInternalServerError, map[string]string{
			"message": "Server misconfiguration: TABLE_NAME is not set",
		}), nil
	}

	payload, sourceType, err := parseBody(ev)
	if err != nil {
		return h.errorResponse(ctx, err), nil
	}

	sub, err := h.subs.Create(ctx, payload, sourceType)
	if err != nil {
		return h.errorResponse(ctx, err), nil
	}

	h.log.Info(ctx, "submission stored",
		zap.String("user_id", sub.UserID),
		zap.String("source_type", sub.SourceType),
	)
	return h.respond(http.StatusCreated, map[string]string{
		"message": "Submitted",
		"userId":  sub.UserID,
	}), nil
}

func (h *Handler) errorResponse(ctx context.Context, err error) events.APIGatewayProxyResponse {
	var badRequest *errdefs.BadRequestError
	if errors.As(err, &badRequest) {
		h.log.Warn(ctx, "submission rejected", zap.String("reason", badRequest.Reason))
		return h.respond(http.StatusBadRequest, map[string]string{"message": badRequest.Reason})
	}

	var storage *errdefs.StorageError
	if errors.As(err, &storage) {
		h.log.Error(ctx, "store write failed", zap.Error(storage.Err))
		return h.respond(http.StatusInternalServerError, map[string]string{
			"message": "Failed to store submission",
			"detail":  storage.Err.Error(),
		})
	}

	h.log.Error(ctx, "unexpected failure", zap.Error(err))
	return h.respond(http.StatusInternalServerError, map[string]string{
		"message": "Internal server error",
		"detail":  err.Error(),
	})
}
