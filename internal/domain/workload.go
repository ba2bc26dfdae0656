package domain

// WorkloadResult is the outcome of summing a staff workload distribution.
type WorkloadResult struct {
	Total  int
	Status WorkloadStatus
}

// ValidateWorkload sums the role percentages and classifies the total against
// 100. Individual values are not range checked here.
func ValidateWorkload(weights map[string]int) WorkloadResult {
	total := 0
	for _, pct := range weights {
		total += pct
	}
	switch {
	case total < 100:
		return WorkloadResult{Total: total, Status: WorkloadUnder}
	case total > 100:
		return WorkloadResult{Total: total, Status: WorkloadOver}
	default:
		return WorkloadResult{Total: total, Status: WorkloadExact}
	}
}

// Err returns ErrInvalidWorkloadTotal unless the total is exactly 100.
func (r WorkloadResult) Err() error {
	if r.Status != WorkloadExact {
		return ErrInvalidWorkloadTotal
	}
	return nil
}
