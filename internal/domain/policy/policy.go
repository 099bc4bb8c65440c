// Package policy decides whether an actor may perform an action on a resource.
// Every function fails closed: an unknown action, a nil actor or a resource
// without an owner is denied.
package policy

import (
	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
)

// Action is an operation kind subject to authorization.
type Action int

const (
	ActionRead Action = iota + 1
	ActionCreate
	ActionUpdate
	ActionDelete
)

// IsSafe reports whether the action only reads data.
func (a Action) IsSafe() bool {
	return a == ActionRead
}

func (a Action) isWrite() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	default:
		return false
	}
}

// Owned is a resource with an author.
type Owned interface {
	OwnerID() int64
}

// Allow reports whether actor may perform action on resource.
// A nil resource stands for a creation request.
func Allow(actor *entity.Actor, action Action, resource Owned) bool {
	if action.IsSafe() {
		return true
	}
	if !action.isWrite() || actor.IsAnonymous() {
		return false
	}
	if action == ActionCreate {
		return true
	}
	if resource == nil {
		return false
	}

	owner := resource.OwnerID()
	if owner <= 0 {
		return false
	}

	return actor.IsAdmin() || owner == actor.UserID
}

// CanModify reports whether actor may change resource.
// A nil resource is a creation request, permitted for any authenticated actor.
func CanModify(actor *entity.Actor, resource Owned) bool {
	if resource == nil {
		return Allow(actor, ActionCreate, nil)
	}

	return Allow(actor, ActionUpdate, resource)
}

// Check is Allow reported as an error: ErrUnauthorized when an anonymous actor
// attempts a write, ErrForbidden when an identified actor lacks the right.
func Check(actor *entity.Actor, action Action, resource Owned) error {
	if Allow(actor, action, resource) {
		return nil
	}

	return denial(actor)
}

// AdminOnly reports whether actor may perform action on reference data:
// everyone reads, only administrators write.
func AdminOnly(actor *entity.Actor, action Action) bool {
	if action.IsSafe() {
		return true
	}

	return action.isWrite() && actor.IsAdmin()
}

// CheckAdminOnly is AdminOnly reported as an error.
func CheckAdminOnly(actor *entity.Actor, action Action) error {
	if AdminOnly(actor, action) {
		return nil
	}

	return denial(actor)
}

// RequireIdentity returns ErrUnauthorized for an anonymous actor.
func RequireIdentity(actor *entity.Actor) error {
	if actor.IsAnonymous() {
		return domainerrors.ErrUnauthorized
	}

	return nil
}

func denial(actor *entity.Actor) error {
	if actor.IsAnonymous() {
		return domainerrors.ErrUnauthorized
	}

	return domainerrors.ErrForbidden
}
