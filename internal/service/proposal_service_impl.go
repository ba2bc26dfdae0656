package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/proposal/internal/contract"
	"github.com/alexanderramin/proposal/internal/db"
	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/alexanderramin/proposal/internal/features"
	"github.com/alexanderramin/proposal/internal/intake"
	"github.com/alexanderramin/proposal/internal/repository"
	"github.com/alexanderramin/proposal/internal/sheet"
	"github.com/google/uuid"
)

type proposalService struct {
	source      sheet.Source
	submissions repository.SubmissionRepo
	uow         db.UnitOfWork
	encoderOpts []features.EncoderOption
	observer    UseCaseObserver
	now         func() time.Time

	mu      sync.Mutex
	encoder *features.Encoder
	schema  *contract.SchemaResponse
	table   features.Table
}

// NewProposalService wires the pipeline. encoderOpts are applied when the
// schema is first loaded.
func NewProposalService(
	source sheet.Source,
	submissions repository.SubmissionRepo,
	uow db.UnitOfWork,
	encoderOpts []features.EncoderOption,
	observers ...UseCaseObserver,
) ProposalService {
	return &proposalService{
		source:      source,
		submissions: submissions,
		uow:         uow,
		encoderOpts: encoderOpts,
		observer:    useCaseObserverOrNoop(observers),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// LoadSchema fetches the reference sheet on first use and caches it for the
// rest of the session.
func (s *proposalService) LoadSchema(ctx context.Context) (resp *contract.SchemaResponse, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schema != nil {
		return s.schema, nil
	}

	startedAt := time.Now()
	fields := map[string]any{"source": s.source.Describe()}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "load-schema",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var frame *sheet.Frame
	frame, err = s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading reference schema from %s: %w", s.source.Describe(), err)
	}

	schema := features.NewSchema(frame.Columns)
	s.encoder = features.NewEncoder(schema, s.encoderOpts...)
	s.table = features.NewTable(schema)
	s.schema = &contract.SchemaResponse{
		Source:       s.source.Describe(),
		Columns:      schema.Columns(),
		LabelDropped: schema.LabelDropped(),
		Matched:      s.encoder.Matched(),
		Unmatched:    s.encoder.Unmatched(),
		DataRows:     len(frame.Rows),
		LoadedAt:     s.now(),
	}
	fields["columns"] = schema.Len()
	fields["data_rows"] = len(frame.Rows)
	fields["matched"] = len(s.schema.Matched)
	fields["unmatched"] = len(s.schema.Unmatched)
	return s.schema, nil
}

// Submit runs one pass of the pipeline. A closed gate is not an error: the
// response carries the report and notices and leaves the table unchanged.
func (s *proposalService) Submit(ctx context.Context, req contract.SubmitRequest) (resp *contract.SubmitResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"preview": req.Preview}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "submit",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	input, rep := intake.Aggregate(req.Fields)
	fields["accepted"] = input != nil
	fields["missing"] = len(rep.Missing)

	resp = &contract.SubmitResponse{
		Input:   input,
		Report:  rep,
		Notices: Notices(rep),
	}
	if input == nil {
		resp.Table = s.Table()
		return resp, nil
	}
	fields["region"] = string(input.Region)

	if _, err = s.LoadSchema(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp.Row = s.encoder.Encode(input)
	fields["ones"] = len(resp.Row.Ones())
	if req.Preview {
		resp.Table = s.table
		return resp, nil
	}

	sub := &domain.Submission{
		ID:        uuid.New().String(),
		Input:     *input,
		Features:  resp.Row.FeatureValues(),
		CreatedAt: s.now(),
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSubmissionRepo(tx).Create(ctx, sub)
	})
	if err != nil {
		return nil, fmt.Errorf("recording submission: %w", err)
	}

	s.table = s.table.Append(resp.Row)
	resp.Submission = sub
	resp.Table = s.table
	fields["seq"] = sub.Seq
	fields["table_rows"] = s.table.Len()
	return resp, nil
}

func (s *proposalService) Table() features.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// History lists the submissions recorded in this session, oldest first.
func (s *proposalService) History(ctx context.Context) ([]*domain.Submission, error) {
	return s.submissions.List(ctx)
}
