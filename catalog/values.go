package catalog

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/appdraft/appdraft/set"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$`)

// CheckValue is the advisory edit-time type check for one property value.
// Storage never enforces this; the boundary where the user submits an edit
// does.
func CheckValue(entry *Definition, name string, value interface{}) error {
	property, ok := entry.Property(name)
	if !ok {
		return fmt.Errorf("widget %q has no property %q", entry.Kind, name)
	}
	switch property.Type {
	case StringValue:
		if _, ok := value.(string); !ok {
			return typeMismatch(entry, property, value)
		}
	case NumberValue:
		switch value.(type) {
		case float64, int, int64:
		default:
			return typeMismatch(entry, property, value)
		}
	case BooleanValue:
		if _, ok := value.(bool); !ok {
			return typeMismatch(entry, property, value)
		}
	case ColorValue:
		text, ok := value.(string)
		if !ok || !colorPattern.MatchString(text) {
			return fmt.Errorf("property %q of %q wants a #RRGGBB color, got %v", name, entry.Kind, value)
		}
	case EnumValue:
		text, ok := value.(string)
		if !ok || !set.Member(text, property.Options) {
			return fmt.Errorf("property %q of %q wants one of %v, got %v", name, entry.Kind, property.Options, value)
		}
	case ObjectValue:
		if _, ok := value.(map[string]interface{}); !ok {
			return typeMismatch(entry, property, value)
		}
	}
	return nil
}

func typeMismatch(entry *Definition, property *Property, value interface{}) error {
	return fmt.Errorf("property %q of %q wants a %s, got %T", property.Name, entry.Kind, property.Type, value)
}

// ParseValue converts textual command-line input into the value shape the
// property wants, so "fontSize=18" lands as a number and "obscure=true" as
// a boolean.
func ParseValue(entry *Definition, name, text string) (interface{}, error) {
	property, ok := entry.Property(name)
	if !ok {
		return nil, fmt.Errorf("widget %q has no property %q", entry.Kind, name)
	}
	switch property.Type {
	case NumberValue:
		number, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("property %q of %q wants a number, got %q", name, entry.Kind, text)
		}
		return number, nil
	case BooleanValue:
		truth, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("property %q of %q wants true/false, got %q", name, entry.Kind, text)
		}
		return truth, nil
	case ObjectValue:
		var value map[string]interface{}
		if err := json.Unmarshal([]byte(text), &value); err != nil {
			return nil, fmt.Errorf("property %q of %q wants a JSON object, got %q", name, entry.Kind, text)
		}
		return value, nil
	default:
		value := interface{}(text)
		if err := CheckValue(entry, name, value); err != nil {
			return nil, err
		}
		return value, nil
	}
}
