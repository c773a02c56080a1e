package domain

import "time"

type Project struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectSummary is a project joined with its dashboard counts.
type ProjectSummary struct {
	Project
	AnswerCount int
	AssetCount  int
}
