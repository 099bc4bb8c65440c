package entity

import "time"

// Follow is a subscription of a user to an author's recipes.
// A user never follows themselves and follows an author at most once.
type Follow struct {
	ID        int64
	UserID    int64 // Follower.
	AuthorID  int64 // Followed user.
	CreatedAt time.Time
}
