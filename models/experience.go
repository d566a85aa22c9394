package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Experience is a number of years. Clients send it either as a JSON number or
// as the numeric string taken from a form field.
type Experience int

func (e *Experience) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*e = 0
			return nil
		}
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*e = Experience(n)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("experience must be a number of years, got %s", data)
	}
	*e = Experience(f)
	return nil
}
