package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/proposal/internal/contract"
	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/alexanderramin/proposal/internal/intake"
)

// Notice texts shown beside the form.
const (
	NoticeDisclaimer     = "This is an Aid, Final Proposals are Subject to Partner Reviews"
	NoticeWorkloadUnder  = "Total is less than 100%."
	NoticeWorkloadOver   = "Total exceeds 100%. Please adjust the values."
	NoticeWorkloadExact  = "Total is exactly 100%. Ready to proceed!"
	NoticeRangeInvalid   = "Start date must be before or equal to end date."
	NoticeRangeMissing   = "Please select both a start and end date."
	NoticeCollected      = "All inputs collected successfully!"
	NoticeCompleteFields = "Please complete all required fields to generate a project summary."
)

// Notices describes the state of the form in the order the fields appear.
// It never fails; every problem degrades to a notice.
func Notices(rep intake.Report) []contract.Notice {
	var out []contract.Notice

	// The total shows even before any role is chosen.
	out = append(out, contract.Notice{
		Level: contract.NoticeInfo,
		Text:  fmt.Sprintf("Total Allocated: %d%%", rep.Workload.Total),
	})
	switch rep.Workload.Status {
	case domain.WorkloadUnder:
		out = append(out, contract.Notice{Level: contract.NoticeWarning, Text: NoticeWorkloadUnder})
	case domain.WorkloadOver:
		out = append(out, contract.Notice{Level: contract.NoticeError, Text: NoticeWorkloadOver})
	case domain.WorkloadExact:
		out = append(out, contract.Notice{Level: contract.NoticeSuccess, Text: NoticeWorkloadExact})
	}

	switch {
	case errors.Is(rep.DateErr, domain.ErrInvalidRange):
		out = append(out, contract.Notice{Level: contract.NoticeError, Text: NoticeRangeInvalid})
	case errors.Is(rep.DateErr, domain.ErrIncompleteRange):
		out = append(out, contract.Notice{Level: contract.NoticeError, Text: NoticeRangeMissing})
	}

	if rep.Complete() {
		return append(out, contract.Notice{Level: contract.NoticeSuccess, Text: NoticeCollected})
	}
	out = append(out, contract.Notice{Level: contract.NoticeWarning, Text: NoticeCompleteFields})
	if len(rep.Missing) > 0 {
		names := make([]string, len(rep.Missing))
		for i, m := range rep.Missing {
			names[i] = string(m)
		}
		out = append(out, contract.Notice{Level: contract.NoticeInfo, Text: "Missing: " + strings.Join(names, ", ")})
	}
	return out
}
