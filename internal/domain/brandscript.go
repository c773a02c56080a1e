package domain

import "time"

// Brandscript is a generated SB7 narrative stored as a JSON document.
// Content holds the decoded object; when the generator returned text that
// could not be parsed as JSON it is kept under the "raw" key.
type Brandscript struct {
	ID        string
	ProjectID string
	Content   map[string]any
	CreatedAt time.Time
}
