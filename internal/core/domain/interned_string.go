package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Package names, requirements and sources repeat across every target of a
// manifest, so they are interned once and compared by handle.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
// The empty string maps to the zero value so that unset and empty fields compare equal.
func NewInternedString(s string) InternedString {
	if s == "" {
		return InternedString{}
	}
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	if is.IsZero() {
		return ""
	}
	return is.h.Value()
}

// IsZero reports whether the value holds the empty string.
func (is InternedString) IsZero() bool {
	var zero unique.Handle[string]
	return is.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	*is = NewInternedString(string(text))
	return nil
}
