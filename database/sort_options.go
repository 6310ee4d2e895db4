package database

// Listing orders. Each ends with the primary key so pages are stable.
const (
	OrderReportsByDate         = "date ASC, id ASC"
	OrderPersonsByFamilyName   = "LOWER(family_name) ASC, id ASC"
	OrderCommissionersByName   = "family_name ASC, id ASC"
	OrderSourcesByCode         = "code ASC, id ASC"
	OrderAddressesByStreet     = "LOWER(street) ASC, id ASC"
	OrderTheatresByName        = "name ASC, id ASC"
	OrderObjectsByType         = "type ASC, id ASC"
	OrderRoomsByName           = "name ASC, id ASC"
	OrderAddressesByStreetJoin = "LOWER(addresses.street) ASC, addresses.id ASC"
	OrderPersonsByNameJoin     = "LOWER(persons.family_name) ASC, persons.id ASC"
)
