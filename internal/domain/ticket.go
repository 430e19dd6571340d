package domain

import "time"

// TicketStatus is the open/closed half of a ticket's visible state.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "OPEN"
	TicketStatusClosed TicketStatus = "CLOSED"
)

// ResolutionStatus is the resolved/unresolved half of a ticket's state.
type ResolutionStatus string

const (
	ResolutionResolved   ResolutionStatus = "RESOLVED"
	ResolutionUnresolved ResolutionStatus = "UNRESOLVED"
)

// UserRef is the backend's embedded reference to a user or staff member.
type UserRef struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsTeam     bool   `json:"is_team"`
	IsSysAdmin bool   `json:"is_sys_admin"`
}

// ProfileField is one entry of the free-form profile data map the backend
// attaches to registered users (graduation year, degree, room number, ...).
type ProfileField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Profile extends UserRef with the profile data map present on detail views.
type Profile struct {
	UserRef
	Data map[string]ProfileField `json:"data"`
}

// Ticket is the list-level projection of a support ticket. The portal holds
// no authoritative copy; every Ticket is a request-scoped fetch result.
type Ticket struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	User             UserRef          `json:"user"`
	Subcategory      Subcategory      `json:"subcategory"`
	Assignee         UserRef          `json:"assignee"`
	Severity         Severity         `json:"severity"`
	SLA              SLA              `json:"sla"`
	CreatedAt        time.Time        `json:"created_at"`
	ClosedAt         *time.Time       `json:"closed_at"`
	ResolutionStatus ResolutionStatus `json:"resolution_status"`
	TicketStatus     TicketStatus     `json:"ticket_status"`
}

// TicketDetails is the detail-level projection, carrying full profiles for
// the requester and assignee.
type TicketDetails struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	User             Profile          `json:"user"`
	Subcategory      Subcategory      `json:"subcategory"`
	Assignee         Profile          `json:"assignee"`
	Severity         Severity         `json:"severity"`
	SLA              SLA              `json:"sla"`
	CreatedAt        time.Time        `json:"created_at"`
	ClosedAt         *time.Time       `json:"closed_at"`
	ResolutionStatus ResolutionStatus `json:"resolution_status"`
	TicketStatus     TicketStatus     `json:"ticket_status"`
}

// State is the (ticket_status, resolution_status) pair that drives the
// lifecycle action table.
type State struct {
	Ticket     TicketStatus
	Resolution ResolutionStatus
}

// State returns the ticket's lifecycle state pair.
func (t *Ticket) State() State {
	return State{Ticket: t.TicketStatus, Resolution: t.ResolutionStatus}
}

// State returns the lifecycle state pair of the detail projection.
func (t *TicketDetails) State() State {
	return State{Ticket: t.TicketStatus, Resolution: t.ResolutionStatus}
}

// Consistent reports whether closed_at agrees with ticket_status: a closed
// ticket carries a close timestamp, an open one does not.
func (t *Ticket) Consistent() bool {
	return consistent(t.TicketStatus, t.ClosedAt)
}

// Consistent mirrors Ticket.Consistent for detail projections.
func (t *TicketDetails) Consistent() bool {
	return consistent(t.TicketStatus, t.ClosedAt)
}

func consistent(status TicketStatus, closedAt *time.Time) bool {
	if status == TicketStatusClosed {
		return closedAt != nil
	}
	return closedAt == nil
}
