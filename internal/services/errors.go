package services

import (
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/mongo"

	"omufusion/internal/config"
)

// Sentinel errors surfaced by the auth flows. Handlers translate them to the
// fixed user-facing strings via AuthErrorMessage.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrEmailInUse      = errors.New("email already in use")
	ErrWeakPassword    = errors.New("weak password")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrTooManyRequests = errors.New("too many requests")
	ErrAccountInactive = errors.New("account suspended")

	// ErrNotAdmin is returned when credentials check out but no admin record
	// exists for the account. The text is shown to the user verbatim.
	ErrNotAdmin = errors.New("Access denied. This account does not have admin privileges.")

	ErrNotFound = errors.New("not found")
)

// AuthErrorMessage maps auth errors onto the small fixed set of user-facing
// strings. Unknown errors get the generic fallback so internals never leak.
func AuthErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrWrongPassword):
		return "Invalid email or password."
	case errors.Is(err, ErrEmailInUse):
		return "This email address is already registered."
	case errors.Is(err, ErrWeakPassword):
		return "Password must be at least 6 characters."
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid email address."
	case errors.Is(err, ErrTooManyRequests):
		return "Too many attempts. Please try again later."
	case errors.Is(err, ErrAccountInactive):
		return "This account has been suspended."
	case errors.Is(err, ErrNotAdmin):
		return ErrNotAdmin.Error()
	default:
		return "Authentication failed. Please try again."
	}
}

// MongoDB server error codes that map onto the diagnostic hints of the
// original backend (permission-denied, failed-precondition, unimplemented).
const (
	codeUnauthorized    = 13
	codeIllegalOp       = 20
	codeCommandNotFound = 59
)

// logPersistenceError logs a read/write failure with a diagnostic hint before
// it is rethrown as a generic failure.
func logPersistenceError(area string, err error) {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		switch cmdErr.Code {
		case codeUnauthorized:
			log.Printf("[%s] [ERROR] permission denied, check database user privileges: %v", area, err)
			return
		case codeIllegalOp:
			log.Printf("[%s] [ERROR] failed precondition, an index or collection setting is missing: %v", area, err)
			return
		case codeCommandNotFound:
			log.Printf("[%s] [ERROR] unimplemented on this server tier: %v", area, err)
			return
		}
	}
	log.Printf("[%s] [ERROR] persistence failure: %v", area, err)
}

// fallbackToEmpty reports whether a failed read should degrade to an empty
// result set. Only development mode keeps the UI usable without a working
// backend; production surfaces the failure.
func fallbackToEmpty(err error) bool {
	return err != nil && config.AppEnv.IsDevelopment()
}
