package models

import (
	"time"
)

// Document is one persisted record of the document store. The payload is an
// opaque JSON object; the row id is assigned by the store and never reused.
type Document struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Database   string    `gorm:"type:varchar(255);not null;index" json:"database"`
	Collection string    `gorm:"type:varchar(255);not null;index" json:"collection"`
	Data       string    `gorm:"type:text" json:"data"` // JSON payload
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Document) TableName() string {
	return "documents"
}
