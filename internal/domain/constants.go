package domain

// Default configuration values
const (
	DefaultOpeningHour  = 9
	DefaultClosingHour  = 18
	DefaultHorizonDays  = 7
	DefaultGenerateDays = 7
	MaxGenerateDays     = 90
)

// Business validation constants
const (
	MinHour              = 0
	MaxHour              = 23
	SlotDurationMinutes  = 60
	MaxNotesLength       = 500
	MaxStudioNameLength  = 100
	MaxPackageNameLength = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование удерживает слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// AllStatuses все допустимые статусы
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}
