package service

import (
	"context"

	"github.com/alexanderramin/proposal/internal/contract"
	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/alexanderramin/proposal/internal/features"
)

// ProposalService runs the intake pipeline for one session: it loads the
// reference schema once, gates form values, encodes accepted inputs and keeps
// the session's append-only feature table.
type ProposalService interface {
	LoadSchema(ctx context.Context) (*contract.SchemaResponse, error)
	Submit(ctx context.Context, req contract.SubmitRequest) (*contract.SubmitResponse, error)
	Table() features.Table
	History(ctx context.Context) ([]*domain.Submission, error)
}
