package utils

import (
	"fmt"
	"strconv"
)

// ParseUintArg parses a positional chaincode argument as an unsigned integer
func ParseUintArg(name, value string) (uint64, error) {
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s argument %q: %v", name, value, err)
	}
	return parsed, nil
}

// ValidateRequired checks if required fields are not empty
func ValidateRequired(fields map[string]string) error {
	for fieldName, value := range fields {
		if value == "" {
			return fmt.Errorf("required field '%s' is empty", fieldName)
		}
	}
	return nil
}
