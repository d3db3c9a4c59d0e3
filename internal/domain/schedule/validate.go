package schedule

import (
	"fmt"
	"regexp"
	"sort"
)

// ======================================================
// Validation error kinds
// ======================================================

type Kind string

const (
	KindMissingDay       Kind = "missing_day"
	KindIncompleteSlot   Kind = "incomplete_slot"
	KindBadTimeFormat    Kind = "bad_time_format"
	KindInvertedRange    Kind = "inverted_range"
	KindOverlappingSlots Kind = "overlapping_slots"
	KindBadTimezone      Kind = "bad_timezone"
)

type ValidationError struct {
	Kind    Kind
	Day     string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func errFor(kind Kind, day, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Day:     day,
		Message: fmt.Sprintf(format, args...),
	}
}

// ======================================================
// Weekly schedule validation
// ======================================================

// SlotInput is one submitted {start, end} pair, before any validation.
type SlotInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ValidateWeekly checks a submitted schedule and returns the normalized
// form: canonical zero-padded times, each day sorted by start. Days are
// walked monday through sunday and the first violation wins. Pure
// validation; the caller decides whether to persist.
//
// Per day, in order: key present, every slot has both ends, both parse as
// HH:MM, start strictly before end, and no two slots overlap once sorted.
// Adjacent slots (one ends exactly when the next starts) are legal.
func ValidateWeekly(input map[string][]SlotInput) (WeeklySchedule, error) {
	out := make(WeeklySchedule, len(Weekdays))

	for _, day := range Weekdays {
		slots, ok := input[day]
		if !ok {
			return nil, errFor(KindMissingDay, day,
				"%s: day is missing or not a list of slots", day)
		}

		ranges := make([]TimeRange, 0, len(slots))
		for _, s := range slots {
			if s.Start == "" || s.End == "" {
				return nil, errFor(KindIncompleteSlot, day,
					"%s: each slot needs both a start and an end time", day)
			}

			start, err := ParseTimeOfDay(s.Start)
			if err != nil {
				return nil, errFor(KindBadTimeFormat, day,
					"%s: %q is not a valid HH:MM time", day, s.Start)
			}
			end, err := ParseTimeOfDay(s.End)
			if err != nil {
				return nil, errFor(KindBadTimeFormat, day,
					"%s: %q is not a valid HH:MM time", day, s.End)
			}

			if start >= end {
				return nil, errFor(KindInvertedRange, day,
					"%s: slot start %s must be before end %s", day, start, end)
			}

			ranges = append(ranges, TimeRange{Start: start, End: end})
		}

		sort.Slice(ranges, func(i, j int) bool {
			return ranges[i].Start < ranges[j].Start
		})

		for i := 0; i+1 < len(ranges); i++ {
			if ranges[i].End > ranges[i+1].Start {
				return nil, errFor(KindOverlappingSlots, day,
					"%s: slots %s-%s and %s-%s overlap", day,
					ranges[i].Start, ranges[i].End,
					ranges[i+1].Start, ranges[i+1].End)
			}
		}

		out[day] = ranges
	}

	return out, nil
}

// Timezone values only need the Region/City shape here; resolving them
// against the IANA database is the reader's problem, not the writer's.
var timezoneRe = regexp.MustCompile(`^[A-Za-z_]+/[A-Za-z_]+$`)

func ValidateTimezone(tz string) error {
	if !timezoneRe.MatchString(tz) {
		return errFor(KindBadTimezone, "",
			"timezone %q must look like Region/City", tz)
	}
	return nil
}
