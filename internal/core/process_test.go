package core

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessSet(t *testing.T) {
	set, err := NewProcessSet([]int{5, 3, 8})
	require.NoError(t, err)

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, Process{ProcessId: 2, BurstTime: 3}, set.At(1))
	assert.Equal(t, []int{5, 3, 8}, set.BurstTimes())
	assert.Equal(t, 16, set.TotalBurst())
}

func TestProcessSetIsReadOnly(t *testing.T) {
	bursts := []int{5, 3, 8}
	set, err := NewProcessSet(bursts)
	require.NoError(t, err)

	bursts[0] = 100
	processes := set.Processes()
	processes[1].BurstTime = 100

	assert.Equal(t, []int{5, 3, 8}, set.BurstTimes())
}

func TestNewProcessSetRejectsBadInput(t *testing.T) {
	cases := map[string]struct {
		count  int
		bursts []int
		field  string
	}{
		"count mismatch":      {count: 3, bursts: []int{5, 3}, field: "burst_times"},
		"zero processes":      {count: 0, bursts: nil, field: "process_count"},
		"negative count":      {count: -1, bursts: []int{1}, field: "process_count"},
		"negative burst":      {count: 2, bursts: []int{4, -1}, field: "burst_times"},
		"total burst overflow": {count: 2, bursts: []int{math.MaxInt, 1}, field: "burst_times"},
		"overflow after many":  {count: 3, bursts: []int{math.MaxInt / 2, math.MaxInt / 2, 2}, field: "burst_times"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewProcessSetWithCount(tc.count, tc.bursts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestNewProcessSetAcceptsMaximumTotal(t *testing.T) {
	set, err := NewProcessSet([]int{math.MaxInt - 1, 1})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, set.TotalBurst())
}

func TestNewProcessSetEmpty(t *testing.T) {
	_, err := NewProcessSet(nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestConfigurationError(t *testing.T) {
	err := error(&ConfigurationError{Value: "lottery"})
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "lottery")
}
