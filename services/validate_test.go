package services

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   int
		wantOK bool
	}{
		{"zero", float64(0), 0, true},
		{"integral float", float64(42), 42, true},
		{"fraction", 1.5, 0, false},
		{"negative", float64(-3), 0, false},
		{"huge", 1e12, 0, false},
		{"string", "42", 42, true},
		{"padded string", " 7 ", 7, true},
		{"negative string", "-7", 0, false},
		{"float string", "4.2", 0, false},
		{"trailing garbage", "42abc", 0, false},
		{"json number", json.Number("120"), 120, true},
		{"int", 5, 5, true},
		{"negative int", -1, 0, false},
		{"int above int32", math.MaxInt32 + 1, 0, false},
		{"int64 above int32", int64(math.MaxInt32) + 1, 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAppError_Is(t *testing.T) {
	err := ValidationError("missing name")

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 400, err.Status)
}
