package deliverableservice

import (
	"errors"

	"github.com/inkwell-market/inkwell/internal/domain"
)

// Actor is the authenticated party attempting a transition.
type Actor struct {
	ID   int
	Role domain.Role
}

// Platform is the actor used by scheduled sweeps. It carries staff power
// without belonging to either side of the order.
var Platform = Actor{ID: 0, Role: domain.RoleStaff}

var ErrPermission = errors.New("actor is not allowed to perform this transition")

// Predicate answers whether the actor may act on the deliverable's order.
type Predicate func(actor Actor, order *domain.Order) bool

func IsSeller(actor Actor, order *domain.Order) bool {
	return actor.ID != 0 && actor.ID == order.SellerID
}

func IsBuyer(actor Actor, order *domain.Order) bool {
	return actor.ID != 0 && actor.ID == order.BuyerID
}

func HasStaffPower(actor Actor, _ *domain.Order) bool {
	return actor.Role == domain.RoleStaff
}

// AnyOf passes when at least one predicate passes.
func AnyOf(predicates ...Predicate) Predicate {
	return func(actor Actor, order *domain.Order) bool {
		for _, p := range predicates {
			if p(actor, order) {
				return true
			}
		}
		return false
	}
}

// AllOf passes when every predicate passes.
func AllOf(predicates ...Predicate) Predicate {
	return func(actor Actor, order *domain.Order) bool {
		for _, p := range predicates {
			if !p(actor, order) {
				return false
			}
		}
		return true
	}
}
