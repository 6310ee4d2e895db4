package models

// RoleCommissioner is the role value that marks a police official.
const RoleCommissioner = "commissaire de police"

// Person represents an individual named in the archive, either as the
// investigating official of a report or as its victim.
// It corresponds to the 'persons' table.
type Person struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FamilyName string `gorm:"not null;index" json:"family_name"`
	GivenName  string `gorm:"" json:"given_name"`
	Role       string `gorm:"index" json:"role"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "persons"
}

// FullName returns the display label used in listings and search results.
func (p Person) FullName() string {
	if p.GivenName == "" {
		return p.FamilyName
	}
	return p.GivenName + " " + p.FamilyName
}

// Address represents a street within a Parisian district.
// It corresponds to the 'addresses' table.
type Address struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Street   string `gorm:"" json:"street"`
	District string `gorm:"" json:"district"`
}

// TableName explicitly sets the table name for GORM.
func (Address) TableName() string {
	return "addresses"
}

// Residence links a person to one of their addresses. The row carries its own
// surrogate key and disappears with either side.
type Residence struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	PersonID  uint `gorm:"not null;uniqueIndex:idx_residence_pair" json:"person_id"`
	AddressID uint `gorm:"not null;uniqueIndex:idx_residence_pair;index" json:"address_id"`

	Person  *Person  `gorm:"foreignKey:PersonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Address *Address `gorm:"foreignKey:AddressID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TableName explicitly sets the table name for GORM.
func (Residence) TableName() string {
	return "residences"
}
