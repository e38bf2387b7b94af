package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrictCount(t *testing.T) {
	tests := []struct {
		name    string
		args    string
		want    int
		wantErr bool
	}{
		{"valid", "3", 3, false},
		{"min", "1", 1, false},
		{"max", "5", 5, false},
		{"leading space", "  2 ", 2, false},
		{"trailing words", "4 extra", 4, false},
		{"missing", "", 0, true},
		{"non-numeric", "abc", 0, true},
		{"zero", "0", 0, true},
		{"too big", "7", 0, true},
		{"negative", "-1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStrictCount(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClampCount(t *testing.T) {
	tests := []struct {
		name string
		args string
		want int
	}{
		{"valid", "3", 3},
		{"missing defaults to one", "", 1},
		{"non-numeric defaults to one", "abc", 1},
		{"clamped low", "0", 1},
		{"clamped high", "12", 5},
		{"negative", "-4", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampCount(tt.args))
		})
	}
}

func TestResourcesText(t *testing.T) {
	assert.Contains(t, resourcesText("SQL"), "postgresql.org")
	assert.Contains(t, resourcesText("Quantum"), "General search")
}
