package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheduledAt(t *testing.T) {
	want := time.Date(2025, 6, 21, 14, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"iso without seconds", "2025-06-21T14:00", want},
		{"iso with seconds", "2025-06-21T14:00:00", want},
		{"iso with fraction", "2025-06-21T14:00:00.000000", want},
		{"iso with zulu marker", "2025-06-21T14:00:00Z", want},
		{"iso with utc offset", "2025-06-21T14:00:00+00:00", want},
		{"space separated", "2025-06-21 14:00", want},
		{"space separated with seconds", "2025-06-21 14:00:30", want.Add(30 * time.Second)},
		{"surrounding whitespace", "  2025-06-21T14:00  ", want},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScheduledAt(tt.raw)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseScheduledAtRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		"",
		"mañana",
		"21/06/2025 14:00",
		"2025-06-21",
		"14:00",
	} {
		_, err := parseScheduledAt(raw)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", raw)
	}
}

func TestValidateFuture(t *testing.T) {
	now := time.Date(2025, 6, 20, 12, 0, 0, 0, time.Local)

	assert.NoError(t, validateFuture(now.Add(time.Minute), now))
	assert.ErrorIs(t, validateFuture(now, now), ErrInvalidInput)
	assert.ErrorIs(t, validateFuture(now.Add(-time.Hour), now), ErrInvalidInput)
}

func TestValidateRequest(t *testing.T) {
	valid := &Request{ClientID: 1, ServiceID: 2, ScheduledAt: "2025-06-21T14:00"}
	assert.NoError(t, validateRequest(valid))

	bad := []*Request{
		{ClientID: 0, ServiceID: 2, ScheduledAt: "2025-06-21T14:00"},
		{ClientID: 1, ServiceID: 0, ScheduledAt: "2025-06-21T14:00"},
		{ClientID: 1, ServiceID: 2, ScheduledAt: "   "},
	}
	for i, req := range bad {
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput, "case %d", i)
	}

	zero := int64(0)
	assert.ErrorIs(t, validateRequest(&Request{
		ClientID: 1, ServiceID: 2, StylistID: &zero, ScheduledAt: "2025-06-21T14:00",
	}), ErrInvalidInput)
}
