package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	files := []rec{
		{1, "deploy.txt"},
		{2, "docker.txt"},
		{3, "git.txt"},
	}

	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"dploy", "deploy.txt", true},
		{"DOCKR", "docker.txt", true},
		{"gitt", "git.txt", true},
		{"zzzz", "", false},
		{"", "", false},
		{"q", "", false},
		{"Z", "", false},
		{"dk", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := Closest(tt.query, files)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClosest_Empty(t *testing.T) {
	_, ok := Closest[rec]("deploy", nil)
	assert.False(t, ok)
}
