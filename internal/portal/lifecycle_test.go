package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-portal/internal/domain"
	"github.com/spec-kit/helpdesk-portal/pkg/errs"
)

func TestActionsFor(t *testing.T) {
	cases := []struct {
		name  string
		state domain.State
		want  []Action
	}{
		{
			"open unresolved",
			domain.State{Ticket: domain.TicketStatusOpen, Resolution: domain.ResolutionUnresolved},
			[]Action{ActionMarkResolved, ActionClose},
		},
		{
			"open resolved",
			domain.State{Ticket: domain.TicketStatusOpen, Resolution: domain.ResolutionResolved},
			[]Action{ActionMarkUnresolved, ActionClose},
		},
		{
			"closed unresolved",
			domain.State{Ticket: domain.TicketStatusClosed, Resolution: domain.ResolutionUnresolved},
			[]Action{ActionReopen},
		},
		{
			"closed resolved",
			domain.State{Ticket: domain.TicketStatusClosed, Resolution: domain.ResolutionResolved},
			[]Action{ActionReopen},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ActionsFor(tc.state))
		})
	}
}

func TestOpenTicketsNeverOfferReopen(t *testing.T) {
	for _, resolution := range []domain.ResolutionStatus{domain.ResolutionResolved, domain.ResolutionUnresolved} {
		actions := ActionsFor(domain.State{Ticket: domain.TicketStatusOpen, Resolution: resolution})
		assert.NotContains(t, actions, ActionReopen)
	}
}

func TestFlags(t *testing.T) {
	open, resolved, err := Flags(ActionMarkResolved)
	require.NoError(t, err)
	assert.Nil(t, open)
	require.NotNil(t, resolved)
	assert.True(t, *resolved)

	open, resolved, err = Flags(ActionMarkUnresolved)
	require.NoError(t, err)
	assert.Nil(t, open)
	require.NotNil(t, resolved)
	assert.False(t, *resolved)

	open, resolved, err = Flags(ActionClose)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.False(t, *open)
	assert.Nil(t, resolved)

	open, resolved, err = Flags(ActionReopen)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.True(t, *open)
	assert.Nil(t, resolved)
}

func TestFlagsRejectsUnknownAction(t *testing.T) {
	_, _, err := Flags(Action("escalate"))
	var valErr *errs.ValidationError
	assert.ErrorAs(t, err, &valErr)
}
