package models

import "time"

// TargetKind names the kind of record an Authorship row points at.
type TargetKind string

const (
	TargetProcesVerbal TargetKind = "proces_verbal"
	TargetPerson       TargetKind = "person"
	TargetRoom         TargetKind = "room"
	TargetAddress      TargetKind = "address"
	TargetSource       TargetKind = "source"
	TargetObject       TargetKind = "object"
	// TargetResidence points at a person (TargetID) and one of their addresses (RelatedID).
	TargetResidence TargetKind = "residence"
)

// Authorship attributes a change of an archive record to the editor who made it.
// Rows are append-only. TargetID carries no foreign key so the history outlives
// the record it describes; UserID is not constrained either.
type Authorship struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	TargetKind TargetKind `gorm:"size:32;not null;index:idx_authorship_target" json:"target_kind"`
	TargetID   uint       `gorm:"not null;index:idx_authorship_target" json:"target_id"`
	RelatedID  *uint      `gorm:"" json:"related_id,omitempty"` // Nullable
	CreatedAt  time.Time  `gorm:"not null" json:"date"`
}

// TableName explicitly sets the table name for GORM.
func (Authorship) TableName() string {
	return "authorships"
}
