// validation.go
package portfolio

import (
	"encoding/json"
	"fmt"
)

var validTypes = map[string]bool{
	StringType:  true,
	BooleanType: true,
	NumberType:  true,
	JSONType:    true,
	EnumType:    true,
}

func isValidType(t string) bool {
	return validTypes[t]
}

func validateValue(value interface{}, def Definition) error {
	switch def.Type {
	case StringType:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%w: expected string", ErrInvalidValue)
		}
	case BooleanType:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%w: expected boolean", ErrInvalidValue)
		}
	case NumberType:
		switch value.(type) {
		case int, int32, int64, float32, float64:
		default:
			return fmt.Errorf("%w: expected number", ErrInvalidValue)
		}
	case JSONType:
		if _, err := json.Marshal(value); err != nil {
			return fmt.Errorf("%w: invalid JSON value", ErrInvalidValue)
		}
	case EnumType:
		if len(def.AllowedValues) == 0 {
			return fmt.Errorf("%w: enum has no allowed values", ErrInvalidValue)
		}
		found := false
		for _, allowed := range def.AllowedValues {
			if value == allowed {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: value not in allowed values", ErrInvalidValue)
		}
	default:
		return fmt.Errorf("%w: unsupported type %q", ErrInvalidValue, def.Type)
	}

	if def.ValidateFunc != nil {
		if err := def.ValidateFunc(value); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
	}
	return nil
}
