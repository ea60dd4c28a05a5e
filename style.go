package coaster

import (
	"fmt"
	"strings"
)

// StrutStyle selects the visual variant of support structures.
// The zero value is Metal.
type StrutStyle uint8

const (
	// Metal draws steel lattice towers with K bracing.
	Metal StrutStyle = iota
	// Wood draws timber frames with X bracing.
	Wood
)

// String returns "metal" or "wood".
func (s StrutStyle) String() string {
	switch s {
	case Metal:
		return "metal"
	case Wood:
		return "wood"
	}
	return fmt.Sprintf("StrutStyle(%d)", s)
}

// ParseStrutStyle parses "metal", "steel", "wood" or "timber", ignoring case.
func ParseStrutStyle(s string) (StrutStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "metal", "steel":
		return Metal, nil
	case "wood", "timber":
		return Wood, nil
	}
	return Metal, fmt.Errorf("coaster: unknown strut style %q", s)
}
