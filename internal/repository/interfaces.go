package repository

import (
	"context"

	"github.com/alexanderramin/proposal/internal/domain"
)

// SubmissionRepo stores the submissions of one form session.
type SubmissionRepo interface {
	// Create assigns the next sequence number to s and stores it with its
	// feature row.
	Create(ctx context.Context, s *domain.Submission) error
	List(ctx context.Context) ([]*domain.Submission, error)
}
