package styles

import "github.com/matzehuels/plotdeck/pkg/errors"

// Style registry names.
const (
	StyleSimple   = "simple"
	StyleMidnight = "midnight"
)

// ValidStyles is the set of supported style names.
var ValidStyles = map[string]bool{
	StyleSimple:   true,
	StyleMidnight: true,
}

// ForName returns the Style registered under name.
func ForName(name string) (Style, error) {
	switch name {
	case StyleSimple, "":
		return Simple{}, nil
	case StyleMidnight:
		return Midnight{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q", name)
	}
}
