package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrPassengerNotFound  = errors.New("passenger not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrDuplicate          = errors.New("duplicate record")
	ErrSeatLocked         = errors.New("seat is already locked")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Message codes of validation failures. They double as catalog keys for
// localized rendering.
const (
	CodeSelectPassenger     = "select_passenger"
	CodeSelectFlight        = "select_flight"
	CodeSelectClass         = "select_class"
	CodeSelectTerminal      = "select_terminal"
	CodeEnterSeatNumber     = "enter_seat_number"
	CodeInvalidSeatCount    = "invalid_seat_count"
	CodeAllFieldsRequired   = "all_fields_required"
	CodeInvalidFlightNumber = "invalid_flight_number"
	CodeFlightExists        = "flight_exists"
	CodeDateFormat          = "date_format"
	CodeInvalidOrigin       = "invalid_origin"
	CodeInvalidDestination  = "invalid_destination"
	CodeSameAirports        = "same_airports"
	CodeArrivalBeforeDepart = "arrival_before_departure"
	CodeInvalidDateTime     = "invalid_datetime"
	CodeInvalidGenderOrNat  = "invalid_gender_or_nationality"
	CodePassportExists      = "passport_exists"
	CodeMissingCredentials  = "missing_credentials"
	CodeInvalidSelection    = "invalid_selection"
	CodeInvalidRequest      = "invalid_request"
)

// ValidationError is a user-facing rejection of an input. Message is the
// English text, Args feed the localized template of Code.
type ValidationError struct {
	Code    string
	Message string
	Args    []any
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(code, message string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: message, Args: args}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	ErrSelectPassenger   = NewValidationError(CodeSelectPassenger, "Please select a passenger")
	ErrSelectFlight      = NewValidationError(CodeSelectFlight, "Please select a flight")
	ErrSelectClass       = NewValidationError(CodeSelectClass, "Please select a class")
	ErrSelectTerminal    = NewValidationError(CodeSelectTerminal, "Please select a terminal")
	ErrEnterSeatNumber   = NewValidationError(CodeEnterSeatNumber, "Please enter a seat number")
	ErrInvalidSeatCount  = NewValidationError(CodeInvalidSeatCount, "Please enter valid number of seats")
	ErrAllFieldsRequired = NewValidationError(CodeAllFieldsRequired, "All fields are required!")
	ErrInvalidFlightNum  = NewValidationError(CodeInvalidFlightNumber, "Please enter a valid flight number (numbers only)")
	ErrDateFormat        = NewValidationError(CodeDateFormat, "Please use YYYY-MM-DD format for dates!")
	ErrInvalidOrigin     = NewValidationError(CodeInvalidOrigin, "Please select a valid origin airport!")
	ErrInvalidDest       = NewValidationError(CodeInvalidDestination, "Please select a valid destination airport!")
	ErrSameAirports      = NewValidationError(CodeSameAirports, "Origin and destination airports cannot be the same!")
	ErrArrivalBeforeDep  = NewValidationError(CodeArrivalBeforeDepart, "Arrival must be after departure!")
	ErrInvalidGenderNat  = NewValidationError(CodeInvalidGenderOrNat, "Invalid gender or nationality")
	ErrPassportExists    = NewValidationError(CodePassportExists, "Passport number already exists")
	ErrMissingCredential = NewValidationError(CodeMissingCredentials, "Please enter both username and password")
	ErrInvalidRequest    = NewValidationError(CodeInvalidRequest, "Invalid request")
)

func ErrFlightExists(number, date string) *ValidationError {
	return NewValidationError(CodeFlightExists,
		fmt.Sprintf("Flight %s already exists on %s!", number, date), number, date)
}

func ErrInvalidDateTime(cause error) *ValidationError {
	return NewValidationError(CodeInvalidDateTime, fmt.Sprintf("Invalid date/time: %v", cause), cause.Error())
}

func ErrInvalidSelection(kind, label string) *ValidationError {
	return NewValidationError(CodeInvalidSelection,
		fmt.Sprintf("Unknown %s: %s", kind, label), kind, label)
}
