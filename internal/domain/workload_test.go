package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateWorkload(t *testing.T) {
	tests := []struct {
		name    string
		weights map[string]int
		want    WorkloadResult
	}{
		{"exact", map[string]int{"Staff": 60, "Manager": 40}, WorkloadResult{Total: 100, Status: WorkloadExact}},
		{"under", map[string]int{"Staff": 60}, WorkloadResult{Total: 60, Status: WorkloadUnder}},
		{"over", map[string]int{"Staff": 60, "Manager": 50}, WorkloadResult{Total: 110, Status: WorkloadOver}},
		{"empty", nil, WorkloadResult{Total: 0, Status: WorkloadUnder}},
		{"one short", map[string]int{"Staff": 99}, WorkloadResult{Total: 99, Status: WorkloadUnder}},
		{"one over", map[string]int{"Staff": 100, "Intern": 1}, WorkloadResult{Total: 101, Status: WorkloadOver}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateWorkload(tt.weights)
			assert.Equal(t, tt.want, got)
			if tt.want.Status == WorkloadExact {
				assert.NoError(t, got.Err())
			} else {
				assert.ErrorIs(t, got.Err(), ErrInvalidWorkloadTotal)
			}
		})
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateDateRange(t *testing.T) {
	assert.ErrorIs(t, ValidateDateRange(DateRange{Start: day(2024, 1, 5), End: day(2024, 1, 1)}), ErrInvalidRange)
	assert.NoError(t, ValidateDateRange(DateRange{Start: day(2024, 1, 1), End: day(2024, 1, 1)}))
	assert.NoError(t, ValidateDateRange(DateRange{Start: day(2024, 1, 1), End: day(2024, 2, 1)}))
	assert.ErrorIs(t, ValidateDateRange(DateRange{Start: day(2024, 1, 1)}), ErrIncompleteRange)
	assert.ErrorIs(t, ValidateDateRange(DateRange{End: day(2024, 1, 1)}), ErrIncompleteRange)
	assert.ErrorIs(t, ValidateDateRange(DateRange{}), ErrIncompleteRange)
}

func TestDateRange_DefaultAndDays(t *testing.T) {
	now := time.Date(2024, 3, 10, 17, 45, 0, 0, time.UTC)
	r := DefaultDateRange(now)
	assert.Equal(t, day(2024, 3, 10), r.Start)
	assert.Equal(t, day(2024, 3, 11), r.End)
	assert.Equal(t, 2, r.Days())

	assert.Equal(t, 1, DateRange{Start: day(2024, 1, 1), End: day(2024, 1, 1)}.Days())
	assert.Equal(t, 0, DateRange{Start: day(2024, 1, 2), End: day(2024, 1, 1)}.Days())
}
