package container

import (
	"errors"
	"fmt"
)

// RetentionMode tells the embedding host's memory reclaimer not to count a
// container's keys and/or values as strong references. The mode travels as
// sentinel spec data; the container itself does not alter its storage.
type RetentionMode string

// Canonical retention modes. The two paired spellings accepted by
// ParseRetention both canonicalize to RetentionKeyValue.
const (
	RetentionKey      RetentionMode = "key"
	RetentionValue    RetentionMode = "value"
	RetentionKeyValue RetentionMode = "key-and-value"
)

// ErrInvalidMode is returned for retention tokens outside the recognised
// spellings.
var ErrInvalidMode = errors.New("container: unrecognized retention mode")

// ParseRetention canonicalizes a retention-mode token. "key-and-value" and
// "value-and-key" normalise to the same canonical mode; anything outside
// the four spellings is rejected.
func ParseRetention(mode string) (RetentionMode, error) {
	switch mode {
	case "key":
		return RetentionKey, nil
	case "value":
		return RetentionValue, nil
	case "key-and-value", "value-and-key":
		return RetentionKeyValue, nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidMode, mode)
}
