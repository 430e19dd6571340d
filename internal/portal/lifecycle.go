package portal

import (
	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

// Action names one status transition a caller can request.
type Action string

const (
	ActionMarkResolved   Action = "mark_resolved"
	ActionMarkUnresolved Action = "mark_unresolved"
	ActionClose          Action = "close"
	ActionReopen         Action = "reopen"
)

// ActionsFor returns exactly the transition actions offered for a ticket's
// current state:
//
//	OPEN/UNRESOLVED -> mark_resolved, close
//	OPEN/RESOLVED   -> mark_unresolved, close
//	CLOSED/*        -> reopen
//
// Reopening keeps the resolution unchanged. There is no terminal state.
func ActionsFor(state domain.State) []Action {
	if state.Ticket == domain.TicketStatusClosed {
		return []Action{ActionReopen}
	}
	if state.Resolution == domain.ResolutionResolved {
		return []Action{ActionMarkUnresolved, ActionClose}
	}
	return []Action{ActionMarkResolved, ActionClose}
}

// Flags maps an action to the open/resolved flags sent to the backend. The
// portal does not re-check preconditions here: which actions it offers is
// its only local gate, and the backend remains the authority and may reject
// the transition.
func Flags(action Action) (open, resolved *bool, err error) {
	switch action {
	case ActionMarkResolved:
		return nil, boolPtr(true), nil
	case ActionMarkUnresolved:
		return nil, boolPtr(false), nil
	case ActionClose:
		return boolPtr(false), nil, nil
	case ActionReopen:
		return boolPtr(true), nil, nil
	default:
		return nil, nil, errs.NewValidation("unknown status action")
	}
}

func boolPtr(v bool) *bool {
	return &v
}
