package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func emptyWeek() map[string][]SlotInput {
	week := make(map[string][]SlotInput, len(Weekdays))
	for _, day := range Weekdays {
		week[day] = []SlotInput{}
	}
	return week
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	ve, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T: %v", err, err)
	return ve.Kind
}

func TestValidateWeeklyNormalizes(t *testing.T) {
	week := emptyWeek()
	week["monday"] = []SlotInput{
		{Start: "14:00", End: "16:00"},
		{Start: "9:00", End: "10:30"},
	}

	normalized, err := ValidateWeekly(week)
	require.NoError(t, err)

	require.Equal(t, []TimeRange{
		{Start: "09:00", End: "10:30"},
		{Start: "14:00", End: "16:00"},
	}, normalized["monday"])
	require.Empty(t, normalized["sunday"])
}

func TestValidateWeeklyIdempotent(t *testing.T) {
	week := emptyWeek()
	week["wednesday"] = []SlotInput{
		{Start: "18:00", End: "20:00"},
		{Start: "08:00", End: "12:00"},
	}

	first, err := ValidateWeekly(week)
	require.NoError(t, err)

	// Re-validating the normalized output passes and changes nothing.
	again := make(map[string][]SlotInput, len(Weekdays))
	for _, day := range Weekdays {
		slots := make([]SlotInput, 0, len(first[day]))
		for _, r := range first[day] {
			slots = append(slots, SlotInput{Start: string(r.Start), End: string(r.End)})
		}
		again[day] = slots
	}

	second, err := ValidateWeekly(again)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestValidateWeeklyAdjacentSlotsAllowed(t *testing.T) {
	week := emptyWeek()
	week["friday"] = []SlotInput{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
	}

	_, err := ValidateWeekly(week)
	require.NoError(t, err)
}

func TestValidateWeeklyMissingDay(t *testing.T) {
	week := emptyWeek()
	delete(week, "thursday")

	_, err := ValidateWeekly(week)
	require.Error(t, err)
	require.Equal(t, KindMissingDay, kindOf(t, err))
}

func TestValidateWeeklyIncompleteSlot(t *testing.T) {
	week := emptyWeek()
	week["tuesday"] = []SlotInput{{Start: "09:00"}}

	_, err := ValidateWeekly(week)
	require.Error(t, err)
	require.Equal(t, KindIncompleteSlot, kindOf(t, err))
}

func TestValidateWeeklyBadTimeFormat(t *testing.T) {
	week := emptyWeek()
	week["saturday"] = []SlotInput{{Start: "25:00", End: "26:00"}}

	_, err := ValidateWeekly(week)
	require.Error(t, err)
	require.Equal(t, KindBadTimeFormat, kindOf(t, err))
}

func TestValidateWeeklyInvertedRange(t *testing.T) {
	week := emptyWeek()
	week["monday"] = []SlotInput{{Start: "12:00", End: "09:00"}}

	_, err := ValidateWeekly(week)
	require.Error(t, err)
	require.Equal(t, KindInvertedRange, kindOf(t, err))

	// Zero-length ranges are inverted too.
	week["monday"] = []SlotInput{{Start: "09:00", End: "09:00"}}
	_, err = ValidateWeekly(week)
	require.Error(t, err)
	require.Equal(t, KindInvertedRange, kindOf(t, err))
}

func TestValidateWeeklyOverlappingSlots(t *testing.T) {
	week := emptyWeek()
	week["monday"] = []SlotInput{
		{Start: "09:00", End: "10:00"},
		{Start: "09:30", End: "11:00"},
	}

	_, err := ValidateWeekly(week)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Equal(t, KindOverlappingSlots, ve.Kind)
	require.Equal(t, "monday", ve.Day)
}

func TestValidateWeeklyReportsFirstDayInOrder(t *testing.T) {
	// Violations on tuesday and saturday: tuesday wins because days are
	// walked monday through sunday.
	week := emptyWeek()
	week["saturday"] = []SlotInput{{Start: "12:00", End: "09:00"}}
	week["tuesday"] = []SlotInput{{Start: "bad", End: "10:00"}}

	_, err := ValidateWeekly(week)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Equal(t, KindBadTimeFormat, ve.Kind)
	require.Equal(t, "tuesday", ve.Day)
}

func TestValidateTimezone(t *testing.T) {
	require.NoError(t, ValidateTimezone("America/Sao_Paulo"))
	require.NoError(t, ValidateTimezone("Europe/Berlin"))

	for _, bad := range []string{"", "UTC", "America", "America/", "/Paris", "Bad Zone/Oslo", "a/b/c"} {
		err := ValidateTimezone(bad)
		require.Error(t, err, "timezone %q", bad)
		require.Equal(t, KindBadTimezone, kindOf(t, err))
	}
}
