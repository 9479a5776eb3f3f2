package eventmodels

import (
	"fmt"
	"strings"
)

type OptionType string

func (o OptionType) Validate() error {
	if o != OptionTypeCall && o != OptionTypePut {
		return fmt.Errorf("OptionType: Validate: invalid option type: %s", o)
	}

	return nil
}

// OccCode returns the single letter used by OCC option symbols.
func (o OptionType) OccCode() string {
	if o == OptionTypePut {
		return "P"
	}

	return "C"
}

func NewOptionType(s string) OptionType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CALL", "C":
		return OptionTypeCall
	case "PUT", "P":
		return OptionTypePut
	}

	return OptionType(strings.ToUpper(s))
}

const (
	OptionTypeCall OptionType = "CALL"
	OptionTypePut  OptionType = "PUT"
)
