package reminder

import (
	"errors"
	"fmt"
	"time"
)

// ErrAssignmentNotFound signals the target assignment does not exist or is
// not owned by the caller.
var ErrAssignmentNotFound = errors.New("assignment not found")

// PassedOffsetError signals the chosen offset yields a fire time that has
// already passed. Nothing is written when this is returned.
type PassedOffsetError struct {
	Offset   Offset
	RemindAt time.Time
}

func (e *PassedOffsetError) Error() string {
	return fmt.Sprintf("reminder time %s for offset %q has already passed", e.RemindAt.Format(time.RFC3339), e.Offset)
}
