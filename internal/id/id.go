// Package id generates prefixed identifiers for locally created records.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generate returns "<prefix>-<nanoid>", e.g. "deck-V1StGXR8_Z5jdHi6B-myT".
func Generate(prefix string) (string, error) {
	v, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + v, nil
}
