package registry

import (
	"time"

	"github.com/google/uuid"
)

// Launch outcomes.
const (
	StatusStarted = "started"
	StatusFailed  = "failed"
	StatusStopped = "stopped"
	StatusCrashed = "crashed"
)

// LaunchRecord is one startup attempt.
type LaunchRecord struct {
	ID        uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	Backend   string     `gorm:"size:64" json:"backend"`
	DataDir   string     `gorm:"size:1024" json:"data_dir"`
	URL       string     `gorm:"size:255" json:"url"`
	Binary    string     `gorm:"size:1024" json:"binary"`
	Serve     bool       `json:"serve"`
	Status    string     `gorm:"size:16;index" json:"status"`
	Error     string     `gorm:"type:text" json:"error,omitempty"`
	StartedAt time.Time  `gorm:"index" json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// TableName pins the table name.
func (LaunchRecord) TableName() string { return "chroma_launches" }
