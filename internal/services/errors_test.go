package services

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err      error
		expected Kind
	}{
		{ErrInvalidFlowLength, KindValidation},
		{ErrInvalidOvulationDate, KindValidation},
		{ErrStartDateOutsideMonth, KindValidation},
		{ErrOvulationBeforeStart, KindValidation},
		{ErrInvalidFeedback, KindValidation},
		{ErrNoPregnancySignal, KindValidation},
		{ErrNoCycleForUser, KindNotFound},
		{ErrCycleNotFound, KindNotFound},
		{ErrPregnancyNotFound, KindNotFound},
		{ErrCycleMonthConflict, KindConflict},
		{ErrPregnancyConflict, KindConflict},
		{errors.New("disk on fire"), KindInternal},
	}

	for _, c := range cases {
		if got := Classify(c.err); got != c.expected {
			t.Fatalf("Classify(%v): expected %d, got %d", c.err, c.expected, got)
		}
	}
}

func TestClassifySeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create cycle: %w", ErrCycleMonthConflict)
	if got := Classify(wrapped); got != KindConflict {
		t.Fatalf("expected wrapped conflict to classify as conflict, got %d", got)
	}
}
