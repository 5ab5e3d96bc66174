package models

import "errors"

var (
	ErrPlaceNotFound        = errors.New("place not found")
	ErrInvalidCalendarDate  = errors.New("invalid calendar date")
	ErrInvalidHour          = errors.New("invalid hour")
	ErrTimezoneResolution   = errors.New("timezone resolution failed")
	ErrEphemerisComputation = errors.New("ephemeris computation failed")
	ErrExternalService      = errors.New("external service unavailable")

	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAdminUnlimited      = errors.New("admin has unlimited access")
	ErrPaymentsDisabled    = errors.New("payments disabled")
	ErrUnknownPackage      = errors.New("unknown package")
	ErrUnknownPayload      = errors.New("unknown payment payload")
	ErrPayloadMismatch     = errors.New("payment payload does not match user")

	ErrSessionNotFound = errors.New("session not found")
)
