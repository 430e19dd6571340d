package portal

import (
	"github.com/spec-kit/helpdesk-portal/internal/auth"
	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/internal/domain"
)

// StatusPanel is the side-panel view model for one ticket. Severity and SLA
// are omitted entirely for callers without the team role, as are all edit
// affordances and transition actions.
type StatusPanel struct {
	TicketID   string                  `json:"ticket_id"`
	Status     domain.TicketStatus     `json:"ticket_status"`
	Resolution domain.ResolutionStatus `json:"resolution_status"`
	Category   domain.Category         `json:"category"`
	Subcategory struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"subcategory"`
	Severity *domain.Severity      `json:"severity,omitempty"`
	SLA      *domain.SLA           `json:"sla,omitempty"`
	Assignee domain.UserRef        `json:"assignee"`
	Editable []backend.TicketField `json:"editable"`
	Actions  []Action              `json:"actions"`
}

// editableFields are the inline editors offered to team members; order
// matches the panel layout.
var editableFields = []backend.TicketField{
	backend.FieldCategory,
	backend.FieldSubcategory,
	backend.FieldSeverity,
	backend.FieldSLA,
	backend.FieldAssignee,
}

// NewStatusPanel builds the panel view model from a ticket detail
// projection and the caller's authorization. A nil authorization behaves
// like an empty role set: while roles are unresolved the gated content is
// never rendered.
func NewStatusPanel(details *domain.TicketDetails, authz *auth.Authorization) StatusPanel {
	panel := StatusPanel{
		TicketID:   details.ID,
		Status:     details.TicketStatus,
		Resolution: details.ResolutionStatus,
		Category:   details.Subcategory.Category,
		Assignee:   details.Assignee.UserRef,
		Editable:   []backend.TicketField{},
		Actions:    []Action{},
	}
	panel.Subcategory.ID = details.Subcategory.ID
	panel.Subcategory.Name = details.Subcategory.Name

	if authz.Has(auth.RoleTeam) {
		severity := details.Severity
		sla := details.SLA
		panel.Severity = &severity
		panel.SLA = &sla
		panel.Editable = append(panel.Editable, editableFields...)
		panel.Actions = ActionsFor(details.State())
	}
	return panel
}
