package domain

import "time"

type Asset struct {
	ID        string
	ProjectID string
	Type      AssetType
	Title     string
	Content   string
	Version   int
	ParentID  *string
	CreatedAt time.Time
}

// ConversationEntry is one refinement exchange attached to an asset.
type ConversationEntry struct {
	ID        string
	ProjectID string
	AssetID   *string
	Role      Role
	Message   string
	CreatedAt time.Time
}
