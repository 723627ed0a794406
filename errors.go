package obsremote

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-obs-remote/obsws"
)

var (
	// ErrNameRequired is returned when a name argument is blank after trimming.
	ErrNameRequired = errors.New("name must not be blank")

	// ErrExclusiveIdentifiers is returned when a name/UUID pair is either
	// both set or both empty: exactly one must be supplied.
	ErrExclusiveIdentifiers = errors.New("exactly one of name or uuid must be set")

	// ErrDurationOutOfRange is returned for transition durations outside
	// the 50..20000 ms window accepted by OBS.
	ErrDurationOutOfRange = errors.New("transition duration out of range")
)

func requireName(what, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s", ErrNameRequired, what)
	}
	return nil
}

func requireOneOf(what, name, uuid string) error {
	if (name == "") == (uuid == "") {
		return fmt.Errorf("%w: %s", ErrExclusiveIdentifiers, what)
	}
	return nil
}

// notFound wraps obsws.ErrResourceNotFound with the missing name and,
// when known, the names that do exist.
func notFound(what, name string, available []string) error {
	if len(available) == 0 {
		return fmt.Errorf("%w: %s %q", obsws.ErrResourceNotFound, what, name)
	}
	return fmt.Errorf("%w: %s %q (available: %s)", obsws.ErrResourceNotFound, what, name, strings.Join(available, ", "))
}

func alreadyExists(what, name string) error {
	return fmt.Errorf("%w: %s %q", obsws.ErrResourceAlreadyExists, what, name)
}
