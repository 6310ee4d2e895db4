package models

// ProcesVerbal represents a police report documenting a theft at a theatre.
// Every reference is nullable; deleting the referenced row clears it.
// It corresponds to the 'proces_verbaux' table.
type ProcesVerbal struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Date       string `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	TheatreID  *uint  `gorm:"index" json:"theatre_id,omitempty"`
	SourceID   *uint  `gorm:"index" json:"source_id,omitempty"`
	OfficialID *uint  `gorm:"index" json:"official_id,omitempty"`
	VictimID   *uint  `gorm:"index" json:"victim_id,omitempty"`
	ObjectID   *uint  `gorm:"index" json:"object_id,omitempty"`

	Theatre  *Theatre `gorm:"foreignKey:TheatreID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"theatre,omitempty"`
	Source   *Source  `gorm:"foreignKey:SourceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"source,omitempty"`
	Official *Person  `gorm:"foreignKey:OfficialID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"official,omitempty"`
	Victim   *Person  `gorm:"foreignKey:VictimID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"victim,omitempty"`
	Object   *Object  `gorm:"foreignKey:ObjectID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"object,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (ProcesVerbal) TableName() string {
	return "proces_verbaux"
}

// Source represents an archival call number ("cote"), e.g. "Y 11601A".
// It corresponds to the 'sources' table.
type Source struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Code string `gorm:"not null;uniqueIndex" json:"code"`
}

// TableName explicitly sets the table name for GORM.
func (Source) TableName() string {
	return "sources"
}

// Object represents a category of stolen item.
// It corresponds to the 'objects' table.
type Object struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Type string `gorm:"column:type;not null;uniqueIndex" json:"type"`
}

// TableName explicitly sets the table name for GORM.
func (Object) TableName() string {
	return "objects"
}
