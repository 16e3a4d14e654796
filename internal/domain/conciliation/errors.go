package conciliation

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("conciliation template misconfigured")
	// ErrNotAccepted is returned by a Sender when the mail API did not accept the message.
	ErrNotAccepted = errors.New("conciliation email not accepted")
)

// ConfigurationError reports a field template that cannot be resolved
// against the payment, consumer or payment-detail data. It is fatal for the
// whole accounting close.
type ConfigurationError struct {
	Field     string
	Reference string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("field %q (%s): %s", e.Field, e.Reference, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
