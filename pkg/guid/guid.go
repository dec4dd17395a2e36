// Package guid generates the opaque public identifiers assigned to prompts.
// The guid is distinct from a prompt's surrogate database key and is the only
// identifier exposed to API callers.
package guid

import "github.com/google/uuid"

// New returns a globally unique opaque identifier in canonical UUID form.
func New() string {
	return uuid.NewString()
}
