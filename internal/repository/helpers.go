package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NewCatalogID returns a short stable id for a custom catalog entry.
func NewCatalogID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// escapeLike escapes LIKE wildcards so prefixes match literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
