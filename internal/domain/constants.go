package domain

// Default configuration values
const (
	DefaultTurnTimeMinutes = 120 // 2 часа на посадку, если не задано бронированием
)

// Business validation constants
const (
	MinPartySize         = 1
	MaxPartySize         = 50
	MinTurnTimeMinutes   = 15
	MaxTurnTimeMinutes   = 480 // 8 hours
	MaxReasonLength      = 500
	MaxCombinationTables = 2 // Пары столов; более крупные группы собираются из пар
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
