package domain

import "time"

// Answer is one persisted discovery fact: exactly one row exists per
// (project, key) pair. Writes for an existing key overwrite the value
// and step association in place.
type Answer struct {
	ID         string
	ProjectID  string
	StepNumber int
	Key        string
	Value      string
	CreatedAt  time.Time
}

// AnswerUpdate is one element of a reconciliation batch.
type AnswerUpdate struct {
	Key        string
	Value      string
	StepNumber int
}
