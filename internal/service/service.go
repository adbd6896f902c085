package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/charak7/Heart-care/internal/errdefs"
	"github.com/charak7/Heart-care/internal/model"
)

// SubmissionRepository is the single store operation the service needs.
// Insert must fail with errdefs.ErrAlreadyExists when the key is taken.
type SubmissionRepository interface {
	Insert(ctx context.Context, sub *model.Submission) error
}

type SubmissionService struct {
	repo SubmissionRepository
	now  func() time.Time
}

func NewSubmissionService(repo SubmissionRepository) *SubmissionService {
	return &SubmissionService{repo: repo, now: time.Now}
}

// Create validates the parsed payload, builds the record and persists it.
// The timestamp is captured once, so CreatedAt and UpdatedAt are equal on
// every fresh record.
func (s *SubmissionService) Create(ctx context.Context, payload map[string]any, sourceType string) (*model.Submission, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	now := s.now().UTC().Format(time.RFC3339)
	sub := &model.Submission{
		UserID:     uuid.NewString(),
		Name:       stringify(payload["name"]),
		Email:      stringify(payload["email"]),
		SourceType: sourceType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if v, ok := payload["message"]; ok && v != nil {
		m := stringify(v)
		sub.Message = &m
	}
	if v, ok := payload["phone"]; ok && v != nil {
		p := stringify(v)
		sub.Phone = &p
	}

	if err := s.repo.Insert(ctx, sub); err != nil {
		return nil, &errdefs.StorageError{Err: err}
	}
	return sub, nil
}
