package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// GPUPreference is the tri-state answer to "Require GPU?".
// The zero value means no preference.
type GPUPreference int

const (
	GPUUnspecified GPUPreference = iota
	GPUYes
	GPUNo
)

// ParseGPUPreference maps a select option value to a preference.
// Anything other than "yes" or "no" is treated as no preference.
func ParseGPUPreference(s string) GPUPreference {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return GPUYes
	case "no":
		return GPUNo
	default:
		return GPUUnspecified
	}
}

// FormValue returns the select option value for p.
func (p GPUPreference) FormValue() string {
	switch p {
	case GPUYes:
		return "yes"
	case GPUNo:
		return "no"
	default:
		return ""
	}
}

func (p GPUPreference) String() string {
	switch p {
	case GPUYes:
		return "yes"
	case GPUNo:
		return "no"
	default:
		return "unspecified"
	}
}

// MarshalJSON encodes yes/no/unspecified as true/false/null.
func (p GPUPreference) MarshalJSON() ([]byte, error) {
	switch p {
	case GPUYes:
		return []byte("true"), nil
	case GPUNo:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (p *GPUPreference) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true":
		*p = GPUYes
	case "false":
		*p = GPUNo
	case "null":
		*p = GPUUnspecified
	default:
		return fmt.Errorf("require_gpu must be true, false or null, got %s", data)
	}
	return nil
}

var _ json.Marshaler = GPUPreference(0)
