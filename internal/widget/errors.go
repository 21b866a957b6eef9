package widget

import "errors"

const (
	// ValidationMessage is shown for an empty search.
	ValidationMessage = "Please enter a city name"
	// GenericErrorMessage is shown when the backend gives no message.
	GenericErrorMessage = "Failed to fetch weather data"
)

// ErrSuperseded is returned by a search whose response arrived after a newer
// search started. Its response is discarded.
var ErrSuperseded = errors.New("search superseded by a newer search")

// ValidationError rejects a search locally; no request is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// RequestError covers every failed request: non-2xx status, network failure
// or an unreadable body. Message is what the widget displays.
type RequestError struct {
	Message string
	Err     error
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return e.Err }
