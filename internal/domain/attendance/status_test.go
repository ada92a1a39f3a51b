package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nineSharp = TimeOfDay{Hour: 9}

func ts(h, m, s int) *time.Time {
	t := time.Date(2025, 11, 20, h, m, s, 0, time.UTC)
	return &t
}

func TestDerive_NoRecord(t *testing.T) {
	derived, err := Derive(nil, nineSharp)
	require.NoError(t, err)
	assert.Equal(t, StatusIncomplete, derived.Status)
	assert.False(t, derived.IsLate)
	assert.Nil(t, derived.HoursWorked)

	derived, err = Derive(&Record{StaffID: 1}, nineSharp)
	require.NoError(t, err)
	assert.Equal(t, StatusIncomplete, derived.Status)
}

func TestDerive_ArrivalOnly(t *testing.T) {
	rec := &Record{StaffID: 1, ArrivalAt: ts(8, 30, 0)}

	derived, err := Derive(rec, nineSharp)
	require.NoError(t, err)
	assert.Equal(t, StatusArrivalRecorded, derived.Status)
	assert.False(t, derived.IsLate)
	assert.Nil(t, derived.HoursWorked)
}

func TestDerive_LatenessBoundary(t *testing.T) {
	tests := []struct {
		name    string
		arrival *time.Time
		isLate  bool
	}{
		{"on the threshold", ts(9, 0, 0), false},
		{"one second after", ts(9, 0, 1), true},
		{"well before", ts(8, 0, 0), false},
		{"well after", ts(10, 15, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			derived, err := Derive(&Record{StaffID: 1, ArrivalAt: tt.arrival}, nineSharp)
			require.NoError(t, err)
			assert.Equal(t, tt.isLate, derived.IsLate)
		})
	}
}

func TestDerive_Complete(t *testing.T) {
	rec := &Record{StaffID: 1, ArrivalAt: ts(8, 0, 0), DepartureAt: ts(16, 5, 0)}

	derived, err := Derive(rec, nineSharp)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, derived.Status)
	assert.False(t, derived.IsLate)
	require.NotNil(t, derived.HoursWorked)
	assert.Equal(t, 8.1, *derived.HoursWorked)
}

func TestDerive_CompleteAndLate(t *testing.T) {
	rec := &Record{StaffID: 1, ArrivalAt: ts(9, 30, 0), DepartureAt: ts(17, 30, 0)}

	derived, err := Derive(rec, nineSharp)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, derived.Status)
	assert.True(t, derived.IsLate)
	require.NotNil(t, derived.HoursWorked)
	assert.Equal(t, 8.0, *derived.HoursWorked)
}

func TestDerive_DepartureWithoutArrival(t *testing.T) {
	rec := &Record{ID: "r1", StaffID: 1, DepartureAt: ts(17, 0, 0)}

	_, err := Derive(rec, nineSharp)
	assert.ErrorIs(t, err, ErrInconsistentRecord)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:00:00")
	require.NoError(t, err)
	assert.Equal(t, 9*3600, tod.SecondsOfDay())
	assert.Equal(t, "09:00:00", tod.String())

	_, err = ParseTimeOfDay("9am")
	assert.Error(t, err)
}
