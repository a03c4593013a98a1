// Package toast holds the active transient notifications shown by the UI.
//
// A Store owns the ordered sequence of toasts. Every toast added to the store
// is removed again after DefaultTTL unless it is dismissed earlier. Consumers
// never reach the store through a global; they are handed a Notifier when
// they are constructed.
package toast

import (
	"errors"
	"fmt"
	"time"
)

// DefaultTTL is how long a toast stays visible before it expires.
const DefaultTTL = 5 * time.Second

// Toast is a single short-lived confirmation message.
type Toast struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
}

// Notifier is the handle pages use to request and dismiss toasts.
type Notifier interface {
	// Notify adds a toast and returns its id.
	Notify(title, description string) string
	// Dismiss removes the toast with the given id. Unknown ids are ignored.
	Dismiss(id string)
	// Toasts returns the active toasts, oldest first.
	Toasts() []Toast
}

// ErrNoProvider is reported when a consumer is built without a Notifier.
var ErrNoProvider = errors.New("access point used without an enclosing provider")

// ConfigurationError names the consumer that was wired without a Notifier.
type ConfigurationError struct {
	Consumer string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Consumer, ErrNoProvider)
}

func (e *ConfigurationError) Unwrap() error { return ErrNoProvider }

// Require returns n, or panics with a *ConfigurationError when n is nil.
// Wiring a consumer without a notifier is a programmer error and must not
// surface at runtime.
func Require(consumer string, n Notifier) Notifier {
	if n == nil {
		panic(&ConfigurationError{Consumer: consumer})
	}
	if s, ok := n.(*Store); ok && s == nil {
		panic(&ConfigurationError{Consumer: consumer})
	}
	return n
}
