package job

import (
	"errors"
	"fmt"

	"fixify/identity"
)

var (
	// ErrIllegalTransition signals a status change the state machine forbids.
	ErrIllegalTransition = errors.New("job: illegal status transition")
	// ErrForbidden signals a legal transition requested by the wrong actor.
	ErrForbidden = errors.New("job: transition not permitted for actor")
)

// next is the forward chain of the lifecycle. There is no path back: once a
// status has been passed the job can never return to it.
var next = map[Status]Status{
	StatusOpen:       StatusAssigned,
	StatusAssigned:   StatusInProgress,
	StatusInProgress: StatusCompleted,
}

// checkTransition enforces both legality and authorization for a status
// change. The registry, not any caller, is the authority on transitions:
//
//   - open -> assigned: any worker other than the poster; the job is
//     assigned to that worker.
//   - assigned -> in-progress -> completed: only the assigned worker.
//   - the poster may never transition their own job.
func checkTransition(j Job, actor identity.Actor, to Status) error {
	if !ValidStatus(to) {
		return fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, to)
	}
	if next[j.Status] != to {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, j.Status, to)
	}
	if actor.ID == j.UserID {
		return fmt.Errorf("%w: poster cannot transition own job", ErrForbidden)
	}

	switch j.Status {
	case StatusOpen:
		if actor.Role != identity.RoleWorker {
			return fmt.Errorf("%w: only workers accept jobs", ErrForbidden)
		}
	default:
		if actor.ID != j.WorkerID {
			return fmt.Errorf("%w: only the assigned worker may advance the job", ErrForbidden)
		}
	}
	return nil
}
