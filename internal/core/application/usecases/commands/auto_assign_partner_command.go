package commands

import (
	"errors"

	"foodies/internal/pkg/guard"
)

var ErrAutoAssignPartnerCommandIsNotConstructed = errors.New(
	"AutoAssignPartnerCommand must be created via NewAutoAssignPartnerCommand constructor",
)

// AutoAssignPartnerCommand triggers the assignment of a free delivery partner
// to the oldest unassigned order. This is a parameterless command issued by
// the assignment job on behalf of the SYSTEM principal.
type AutoAssignPartnerCommand struct {
	guard guard.ConstructorGuard
}

func NewAutoAssignPartnerCommand() AutoAssignPartnerCommand {
	return AutoAssignPartnerCommand{guard: guard.NewConstructorGuard()}
}

func (c AutoAssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignPartnerCommandIsNotConstructed)
}
