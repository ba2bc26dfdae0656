// Package contract holds the request and response types exchanged between the
// command layer and the proposal service.
package contract

import (
	"time"

	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/alexanderramin/proposal/internal/features"
	"github.com/alexanderramin/proposal/internal/intake"
)

// NoticeLevel grades a user-facing notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a non-fatal message shown beside the form.
type Notice struct {
	Level NoticeLevel
	Text  string
}

type SubmitRequest struct {
	Fields intake.Fields
	// Preview runs the gate and encodes the row without appending it to the
	// session table or recording a submission.
	Preview bool
}

func NewSubmitRequest(fields intake.Fields) SubmitRequest {
	return SubmitRequest{Fields: fields}
}

type SubmitResponse struct {
	// Input is nil when the gate stayed closed.
	Input  *domain.ProjectInput
	Report intake.Report
	// Row is the encoded feature row; zero when Input is nil.
	Row features.Row
	// Submission is the recorded submission; nil for previews and when the
	// gate stayed closed.
	Submission *domain.Submission
	Table      features.Table
	Notices    []Notice
}

// Accepted reports whether the gate opened.
func (r *SubmitResponse) Accepted() bool { return r.Input != nil }

type SchemaResponse struct {
	Source  string
	Columns []string
	// LabelDropped is set when the sheet carried the excluded label column.
	LabelDropped bool
	// Matched maps each known category value with a column to its index.
	Matched map[string]int
	// Unmatched lists known category values with no column in the sheet.
	Unmatched []string
	DataRows  int
	LoadedAt  time.Time
}
