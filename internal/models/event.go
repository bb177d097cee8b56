package models

import "time"

// Event represents an audit record of a notable action in the system.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`  // e.g. "user.login", "post.create"
	Level     string    `json:"level"` // e.g. "info", "warn"
	Message   string    `json:"message"`
	ActorID   *string   `json:"actorId,omitempty"` // Nullable for anonymous actions
	CreatedAt time.Time `json:"createdAt"`
}
