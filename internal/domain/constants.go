package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinDurationDays    = 1
	MinMaxParticipants = 1
	MinParticipants    = 1

	// RecentBookingsLimit количество последних бронирований в сводке админ-панели
	RecentBookingsLimit = 5

	// PriceTolerance допустимое расхождение при сверке итоговой цены
	PriceTolerance = 0.005
)

// BookingStatuses все допустимые статусы бронирования
var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}
