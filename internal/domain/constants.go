package domain

// Timeline constants
const (
	SlotsPerDay = 2 // Утро и вечер: выезд до полудня, заезд после
)

// Default planning values
const (
	DefaultPlanningDays = 30
	MaxPlanningDays     = 366
	MaxSearchNights     = 365
)

// Business validation constants
const (
	MaxGuestNameLength          = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Format constants
const (
	DateFormat       = "2006-01-02"   // YYYY-MM-DD
	MonthLabelFormat = "January 2006" // Заголовок группы дней в календаре
)
