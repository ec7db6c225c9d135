// Package codegen builds short human-readable identifiers such as
// "ORDER-1A2B3C4D" or "FAC-9F00E1AB".
//
// The suffix is the first 8 hex characters of a random (version 4) UUID,
// so uniqueness is probabilistic only: 32 random bits, roughly a 1.2% chance
// of one duplicate among 10k codes. Callers that need
// a hard guarantee must back the code with a unique constraint.
package codegen

import (
	"strings"

	"github.com/erp/orderflow/internal/domain/shared"
	"github.com/google/uuid"
)

// Well-known entity tags
const (
	TagOrder   = "ORDER"
	TagInvoice = "FAC"
)

// suffixLen is the number of hex characters taken from the UUID
const suffixLen = 8

// Generate returns "<TAG>-<8 HEX>" for the given entity tag.
// The tag is trimmed and upper-cased; the hex suffix is upper-case too.
func Generate(tag string) (string, error) {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" {
		return "", shared.NewInvalidArgumentError("code tag cannot be empty")
	}
	suffix := strings.ToUpper(uuid.NewString()[:suffixLen])
	return tag + "-" + suffix, nil
}

// MustGenerate is like Generate but panics on an empty tag.
// Use it only with the constant tags above.
func MustGenerate(tag string) string {
	code, err := Generate(tag)
	if err != nil {
		panic(err)
	}
	return code
}
