package services

import "errors"

// Kind buckets every service error into the categories the surrounding API
// layer renders. Conflicts detected by the pre-check and conflicts surfaced
// from the storage constraint classify identically.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrInvalidFlowLength),
		errors.Is(err, ErrInvalidOvulationDate),
		errors.Is(err, ErrStartDateOutsideMonth),
		errors.Is(err, ErrOvulationBeforeStart),
		errors.Is(err, ErrInvalidFeedback),
		errors.Is(err, ErrNoPregnancySignal):
		return KindValidation
	case errors.Is(err, ErrNoCycleForUser),
		errors.Is(err, ErrCycleNotFound),
		errors.Is(err, ErrPregnancyNotFound):
		return KindNotFound
	case errors.Is(err, ErrCycleMonthConflict),
		errors.Is(err, ErrPregnancyConflict):
		return KindConflict
	default:
		return KindInternal
	}
}
