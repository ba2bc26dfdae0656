package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Loads(t *testing.T) {
	c := Default()
	assert.Len(t, c.Roles, 15)
	assert.Len(t, c.Services, 34)
	assert.Len(t, c.Complexity, 4)
	assert.Len(t, c.Hours, 7)

	assert.True(t, c.HasService("TAX PLANNING"))
	assert.False(t, c.HasService("tax planning"))
	assert.True(t, c.HasRole("Intern FT"))
	assert.False(t, c.HasRole("Janitor"))
}

func TestLabels(t *testing.T) {
	c := Default()
	assert.Equal(t, "Basic", c.ComplexityLabel(1))
	assert.Equal(t, "Complex", c.ComplexityLabel(4))
	assert.Equal(t, "", c.ComplexityLabel(0))
	assert.Equal(t, "", c.ComplexityLabel(5))
	assert.Equal(t, "Extremely Little", c.HoursLabel(1))
	assert.Equal(t, "Extremely High", c.HoursLabel(7))
	assert.Equal(t, "", c.HoursLabel(8))
}

func TestHoursGuide(t *testing.T) {
	guide := Default().HoursGuide()
	lines := strings.Split(guide, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Extremely Little: 0 to 1 hours", lines[0])
	assert.Equal(t, "Extremely High: 80+ hours", lines[6])
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "empty services",
			yaml: "roles: [Staff]\ncomplexity: [{value: 1, label: A}]\nhours: [{value: 1, label: B}]\n",
			want: "services is empty",
		},
		{
			name: "duplicate role",
			yaml: "services: [X]\nroles: [Staff, Staff]\ncomplexity: [{value: 1, label: A}]\nhours: [{value: 1, label: B}]\n",
			want: `duplicate "Staff"`,
		},
		{
			name: "level gap",
			yaml: "services: [X]\nroles: [Staff]\ncomplexity: [{value: 2, label: A}]\nhours: [{value: 1, label: B}]\n",
			want: "value 2, want 1",
		},
		{
			name: "missing label",
			yaml: "services: [X]\nroles: [Staff]\ncomplexity: [{value: 1}]\nhours: [{value: 1, label: B}]\n",
			want: "label is required",
		},
		{
			name: "bad yaml",
			yaml: "services: [",
			want: "parsing catalog",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
