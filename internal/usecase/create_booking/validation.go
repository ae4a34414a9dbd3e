package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-StayPlanner/internal/domain"
	"github.com/m04kA/SMC-StayPlanner/internal/planning"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.GuestName)
	if name == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName is longer than %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateRange проверяет, что выезд строго позже заезда и срок не превышает лимит
func validateRange(req *Request) error {
	if !req.CheckIn.Before(req.CheckOut) {
		return &planning.InvalidRangeError{CheckIn: req.CheckIn, CheckOut: req.CheckOut}
	}

	if nights := req.CheckIn.DaysUntil(req.CheckOut); nights > domain.MaxSearchNights {
		return fmt.Errorf("%w: %d nights, at most %d allowed", ErrStayTooLong, nights, domain.MaxSearchNights)
	}

	return nil
}
