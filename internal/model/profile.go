package model

import "time"

// UserProfile accumulates facts about one user across a session.
// Scalar fields are last-write-wins; Interests counts how often each
// primary task category was requested.
type UserProfile struct {
	Location    string              `json:"location,omitempty"`
	CurrentCrop string              `json:"current_crop,omitempty"`
	SoilType    string              `json:"soil_type,omitempty"`
	Interests   map[PrimaryTask]int `json:"interests,omitempty"`
}

// ConversationTurn is one completed request/response exchange.
// Turns are append-only and never mutated after being recorded.
type ConversationTurn struct {
	ID           string      `json:"id"`
	Timestamp    time.Time   `json:"timestamp"`
	UserInput    string      `json:"user_input"`
	Intent       string      `json:"intent"`
	PrimaryTask  PrimaryTask `json:"primary_task"`
	AgentsCalled []string    `json:"agents_called"`
	Response     string      `json:"response"`
	HadImage     bool        `json:"had_image"`
}
