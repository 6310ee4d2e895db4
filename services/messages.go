package services

// User-facing validation messages.
const (
	MsgNoChanges = "No changes were made."

	MsgPersonFamilyNameRequired = "Please enter the person's family name."
	MsgPersonGivenNameRequired  = "Please enter the person's given name."
	MsgPersonNamesCapitalized   = "The family name and the given name must start with a capital letter."
	MsgPersonExists             = "This person already exists in the database."
	MsgAlreadyLinked            = "This address is already recorded for this person."

	MsgAddressStreetRequired   = "Please enter the street name."
	MsgAddressDistrictRequired = "Please enter the district the street is in."
	MsgAddressExists           = "This address already exists in the database."

	MsgRoomNameRequired  = "Please enter the room name."
	MsgRoomDatesRequired = "Please enter the occupation dates."

	MsgReportDateRequired = "Please enter the date of the report."
	MsgReportDateFormat   = `The date must take the form YYYY-MM-DD, e.g. "1784-04-06" (10 characters).`
	MsgReportDateRange    = "Please enter a valid date (between 1770 and 1789)."
	MsgReportExists       = "This report already exists in the database."

	MsgSourceCodeRequired = "Please enter the call number of the source."
	MsgSourceCodeFormat   = `The call number must take the form "Y 11601A" or "Y 15665" (7 or 8 characters).`
	MsgSourceExists       = "This call number already exists in the database."

	MsgObjectTypeRequired    = "Please enter the object type."
	MsgObjectTypeCapitalized = "The object type must start with a capital letter (e.g. Watch)."
	MsgObjectExists          = "This object already exists in the database."

	MsgUserLoginRequired    = "Please enter a login."
	MsgUserEmailRequired    = "Please enter an email address."
	MsgUserEmailInvalid     = "Please enter a valid email address."
	MsgUserNameRequired     = "Please enter your name."
	MsgUserPasswordTooShort = "The password must be at least 6 characters long."
	MsgUserLoginTaken       = "This login is already taken."
	MsgUserEmailTaken       = "This email address is already in use."
)
