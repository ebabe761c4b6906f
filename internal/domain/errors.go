package domain

import "errors"

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrWorkerNotFound       = errors.New("worker profile not found")
	ErrCategoryNotFound     = errors.New("service category not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

var (
	ErrIllegalTransition  = errors.New("this action is not allowed in the booking's current state")
	ErrAlreadyAssigned    = errors.New("job has already been taken by another worker")
	ErrInvalidOTP         = errors.New("invalid OTP, ask the customer for the correct code")
	ErrTooManyOTPAttempts = errors.New("too many wrong OTP attempts, try again later")

	// ErrTransitionConflict is returned by stores when a conditional update matched
	// no row. Services re-read the booking and report a precise error instead.
	ErrTransitionConflict = errors.New("booking changed concurrently")
)

var (
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrBelowMinimum        = errors.New("amount is below the minimum withdrawal")
	ErrInvalidUpiID        = errors.New("invalid UPI id")
)

var (
	ErrPhoneTaken    = errors.New("phone number is already registered")
	ErrProfileExists = errors.New("worker profile already exists")
)

var (
	ErrValidation     = errors.New("validation error")
	ErrForbidden      = errors.New("not allowed")
	ErrUnauthorized   = errors.New("not authorized")
	ErrNetworkFailure = errors.New("network failure, please retry")
)
