package kernel

import (
	"fmt"
	"strings"

	"foodies/internal/pkg/errs"
)

// Role is the kind of actor behind a request.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleRestaurant
	RoleDeliveryPartner
	RoleAdmin
	// RoleSystem is used by background jobs and internal callbacks.
	RoleSystem
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "UNKNOWN",
		RoleCustomer:        "CUSTOMER",
		RoleRestaurant:      "RESTAURANT",
		RoleDeliveryPartner: "DELIVERY_PARTNER",
		RoleAdmin:           "ADMIN",
		RoleSystem:          "SYSTEM",
	}
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// ParseRole maps a role name (case-insensitive) to a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && strings.EqualFold(name, s) {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// Principal identifies who is performing an operation. It is passed
// explicitly to every command and query; there is no ambient security context.
type Principal struct {
	id   string
	role Role
}

// NewPrincipal builds a principal. The id is the subject identifier issued by
// the identity provider (customer id, restaurant id, partner id).
func NewPrincipal(id string, role Role) (Principal, error) {
	if strings.TrimSpace(id) == "" {
		return Principal{}, errs.NewValueIsRequiredError("principal id")
	}
	if role == RoleUnknown {
		return Principal{}, errs.NewValueIsRequiredError("principal role")
	}
	return Principal{id: id, role: role}, nil
}

// SystemPrincipal is the identity used by jobs and internal callbacks.
func SystemPrincipal() Principal {
	return Principal{id: "system", role: RoleSystem}
}

func (p Principal) ID() string {
	return p.id
}

func (p Principal) Role() Role {
	return p.role
}

// IsPrivileged is true for ADMIN and SYSTEM principals.
func (p Principal) IsPrivileged() bool {
	return p.role == RoleAdmin || p.role == RoleSystem
}

// Is reports whether the principal has the given role and id.
func (p Principal) Is(role Role, id string) bool {
	return p.role == role && p.id == id
}

func (p Principal) String() string {
	return p.role.String() + " " + p.id
}
