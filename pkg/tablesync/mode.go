package tablesync

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode selects how a sync treats an existing target table.
type Mode string

const (
	// Replace drops the target table, recreates it and loads ids 1..N.
	Replace Mode = "replace"

	// Append creates the target table if needed and loads ids after the current row count.
	Append Mode = "append"
)

// ErrInvalidMode is returned for modes other than replace and append.
var ErrInvalidMode = errors.New("invalid sync mode")

// ParseMode parses a mode name, ignoring case and surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", errors.Wrapf(ErrInvalidMode, "%q (expected %s or %s)", s, Replace, Append)
	}

	return m, nil
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == Replace || m == Append
}
