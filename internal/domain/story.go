package domain

import "time"

// StoryMessage is one transcript entry of the free-form discovery session.
// ParsedFields carries the assistant's captured-field annotation for display;
// coverage always reads Answer rows, never the transcript.
type StoryMessage struct {
	ID           string
	ProjectID    string
	Role         Role
	Message      string
	ParsedFields map[string]string
	CreatedAt    time.Time
}
