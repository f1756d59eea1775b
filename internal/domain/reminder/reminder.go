package reminder

import (
	"fmt"
	"time"
)

// Outcome classifies the result of evaluating a single occasion.
type Outcome string

const (
	OutcomeDue    Outcome = "DUE"
	OutcomeNotDue Outcome = "NOT_DUE"
	OutcomeNoDate Outcome = "NO_DATE"
	OutcomePast   Outcome = "PAST"
)

// LeadDays is the only horizon at which a reminder fires: exactly this many
// whole days before the occasion's target date.
const LeadDays = 5

const dayMillis = 86_400_000

// Decision is the engine's verdict for one occasion. Message is populated
// only when Outcome is OutcomeDue.
type Decision struct {
	Outcome       Outcome
	DaysRemaining int
	Message       string
}

// Evaluate decides whether a reminder for the given occasion is due right now.
// A nil target date never produces a message.
func Evaluate(label string, target *time.Time) Decision {
	return EvaluateAt(label, target, time.Now())
}

// EvaluateAt is Evaluate with an explicit clock, so callers and tests can pin
// the evaluation instant.
//
// Day counts are whole days: floor of the millisecond difference divided by
// 24h. A target on the same local calendar day as now counts as 0 days
// remaining regardless of the hour, a target on an earlier day is past.
func EvaluateAt(label string, target *time.Time, now time.Time) Decision {
	if target == nil {
		return Decision{Outcome: OutcomeNoDate}
	}

	if sameCalendarDay(*target, now) {
		return decideForDays(label, 0)
	}

	diffMillis := target.UnixMilli() - now.UnixMilli()
	if diffMillis < 0 {
		return Decision{Outcome: OutcomePast}
	}

	return decideForDays(label, int(diffMillis/dayMillis))
}

func decideForDays(label string, daysRemaining int) Decision {
	if daysRemaining != LeadDays {
		return Decision{Outcome: OutcomeNotDue, DaysRemaining: daysRemaining}
	}
	return Decision{
		Outcome:       OutcomeDue,
		DaysRemaining: daysRemaining,
		Message:       fmt.Sprintf("Reminder: %s - scheduled in %d days.", label, daysRemaining),
	}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
