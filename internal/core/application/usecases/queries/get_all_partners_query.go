package queries

import (
	"errors"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/pkg/guard"
)

var ErrGetAllPartnersQueryIsNotConstructed = errors.New(
	"GetAllPartnersQuery must be created via NewGetAllPartnersQuery constructor",
)

// GetAllPartnersQuery retrieves every delivery partner with approval,
// availability and current location, for monitoring and dispatching.
type GetAllPartnersQuery struct {
	principal kernel.Principal

	guard guard.ConstructorGuard
}

func NewGetAllPartnersQuery(principal kernel.Principal) (GetAllPartnersQuery, error) {
	if err := requirePrincipal(principal); err != nil {
		return GetAllPartnersQuery{}, err
	}
	return GetAllPartnersQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAllPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPartnersQueryIsNotConstructed)
}

func (q GetAllPartnersQuery) Principal() kernel.Principal {
	return q.principal
}

// PartnerView is the read model of a delivery partner.
//
// Example:
//
//	view := PartnerView{
//	    ID:        "550e8400-e29b-41d4-a716-446655440000",
//	    Name:      "Ravi",
//	    Vehicle:   "SCOOTER",
//	    Approved:  true,
//	    Available: true,
//	    Latitude:  12.9716,
//	    Longitude: 77.5946,
//	}
type PartnerView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Vehicle   string  `json:"vehicle"`
	Approved  bool    `json:"approved"`
	Available bool    `json:"available"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
