package templates

import (
	"fmt"

	"golang.org/x/text/message"
)

// Localizer resolves message keys for the request language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key through loc. Without a localizer a string key is used as
// its own format so components still render in isolation.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	keyString, ok := key.(string)
	if !ok {
		return ""
	}
	if len(args) == 0 {
		return keyString
	}
	return fmt.Sprintf(keyString, args...)
}
