package types

import (
	"strconv"
	"strings"
)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// NonEmptyStringPtr returns nil for blank strings, otherwise a pointer to the trimmed value
func NonEmptyStringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FirstNonEmpty returns the first pointer holding a non-empty string
func FirstNonEmpty(values ...*string) *string {
	for _, v := range values {
		if !StringNilOrEmpty(v) {
			return v
		}
	}
	return nil
}

// Int64Ptr converts an int64 to a pointer
func Int64Ptr(i int64) *int64 {
	return &i
}

// ParseInt64Ptr parses a base-10 integer, returning nil when the value is empty or malformed
func ParseInt64Ptr(s string) *int64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
