package entity

// Actor is the identity on whose behalf an operation runs.
// The zero value is the anonymous actor.
type Actor struct {
	UserID   int64
	Username string
	Roles    Roles
}

// Anonymous returns an actor without identity.
func Anonymous() *Actor {
	return &Actor{}
}

// NewActor builds an authenticated actor for the given user.
func NewActor(user *User) *Actor {
	return &Actor{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    user.Roles(),
	}
}

// IsAnonymous reports whether the actor has no usable identity.
// A nil actor is anonymous.
func (a *Actor) IsAnonymous() bool {
	return a == nil || a.UserID <= 0
}

// IsAdmin reports whether the actor holds the administrator capability.
func (a *Actor) IsAdmin() bool {
	return !a.IsAnonymous() && a.Roles.Contains(RoleAdmin)
}
