// Package raw is a logging-free view over environment variables.
// The logger bootstraps from here, so this package must not import it
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a namespaced view over environment variables
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. rc.Prefix("LOG_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Get returns the value for key or def when missing/empty
func (c Conf) Get(key, def string) string {
	v := strings.TrimSpace(os.Getenv(c.prefix + key))
	if v == "" {
		return def
	}
	return v
}

// GetInt returns the int value for key or def when missing/empty/invalid
func (c Conf) GetInt(key string, def int) int {
	s := strings.TrimSpace(os.Getenv(c.prefix + key))
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// GetBool returns the bool value for key or def when missing/empty/invalid
func (c Conf) GetBool(key string, def bool) bool {
	s := strings.TrimSpace(os.Getenv(c.prefix + key))
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	return def
}
