package domain

import (
	"sort"
	"time"
)

// ProjectInput is a complete, validated set of project characteristics.
// Only the intake aggregator constructs one.
type ProjectInput struct {
	Office        Office         `json:"ProjectOffice"`
	State         StateCode      `json:"ProjectState"`
	Region        Region         `json:"ProjectRegion"`
	ClientType    ClientType     `json:"ClientType"`
	Services      []string       `json:"Services"`
	StaffWorkload map[string]int `json:"StaffWorkDistribution"`
	Complexity    Complexity     `json:"ProjectComplexity"`
	Hours         HoursLevel     `json:"ProjectHours"`
	Dates         DateRange      `json:"EstimatedDates"`
}

// CategoricalValues returns the values that are one-hot encoded, in encoding
// order: office, state, region, client type.
func (p *ProjectInput) CategoricalValues() []string {
	return []string{string(p.Office), string(p.State), string(p.Region), string(p.ClientType)}
}

// Roles returns the staffed roles sorted by name.
func (p *ProjectInput) Roles() []string {
	roles := make([]string, 0, len(p.StaffWorkload))
	for r := range p.StaffWorkload {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}

// FeatureValue is one column of an encoded feature row.
type FeatureValue struct {
	Column string
	Value  int
}

// Submission records one successful pass of the intake pipeline within a
// session.
type Submission struct {
	ID        string
	Seq       int
	Input     ProjectInput
	Features  []FeatureValue
	CreatedAt time.Time
}

// Ones returns the columns set to 1, in row order.
func (s *Submission) Ones() []string {
	var cols []string
	for _, f := range s.Features {
		if f.Value == 1 {
			cols = append(cols, f.Column)
		}
	}
	return cols
}
