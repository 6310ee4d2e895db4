package models

// Theatre represents a theatrical institution (troupe or company).
// It corresponds to the 'theatres' table.
type Theatre struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// TableName explicitly sets the table name for GORM.
func (Theatre) TableName() string {
	return "theatres"
}

// Room represents a performance hall occupied by a theatre over a period.
// Latitude and longitude are kept as text for the map view.
// It corresponds to the 'rooms' table.
type Room struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"" json:"name"`
	OccupationDates string `gorm:"" json:"occupation_dates"`
	TheatreID       *uint  `gorm:"index" json:"theatre_id,omitempty"` // Nullable
	Latitude        string `gorm:"" json:"latitude"`
	Longitude       string `gorm:"" json:"longitude"`

	Theatre *Theatre `gorm:"foreignKey:TheatreID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"theatre,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Room) TableName() string {
	return "rooms"
}
