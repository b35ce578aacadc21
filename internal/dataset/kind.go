package dataset

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type Kind string

const (
	KindText  Kind = "text"
	KindFloat Kind = "float"
	KindInt   Kind = "int"
	KindDate  Kind = "date"
	KindBool  Kind = "bool"
	KindList  Kind = "list"
)

type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// ListSeparator joins list cells when a store or file has no native list type.
const ListSeparator = "; "

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// Coerce converts a value read from a store, a file or JSON into the Go type of kind.
// Empty strings and nil coerce to nil.
func Coerce(kind Kind, v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" && kind != KindText {
		return nil, nil
	}

	switch kind {
	case KindText:
		switch x := v.(type) {
		case string:
			return x, nil
		case time.Time:
			return x.Format("2006-01-02"), nil
		default:
			return fmt.Sprint(x), nil
		}

	case KindFloat:
		switch x := v.(type) {
		case float64:
			return x, nil
		case float32:
			return float64(x), nil
		case int:
			return float64(x), nil
		case int32:
			return float64(x), nil
		case int64:
			return float64(x), nil
		case json.Number:
			return x.Float64()
		case string:
			f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(x), ",", ""), 64)
			if err != nil {
				return nil, fmt.Errorf("not a number: %q", x)
			}
			return f, nil
		}
		if n, ok := numericString(v); ok {
			return strconv.ParseFloat(n, 64)
		}

	case KindInt:
		switch x := v.(type) {
		case int:
			return int64(x), nil
		case int32:
			return int64(x), nil
		case int64:
			return x, nil
		case float64:
			if x != math.Trunc(x) {
				return nil, fmt.Errorf("not an integer: %v", x)
			}
			return int64(x), nil
		case string:
			s := strings.TrimSpace(x)
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return i, nil
			}
			f, err := strconv.ParseFloat(s, 64)
			if err != nil || f != math.Trunc(f) {
				return nil, fmt.Errorf("not an integer: %q", x)
			}
			return int64(f), nil
		}
		if n, ok := numericString(v); ok {
			return strconv.ParseInt(n, 10, 64)
		}

	case KindDate:
		switch x := v.(type) {
		case time.Time:
			return x, nil
		case string:
			return ParseDate(x)
		}

	case KindBool:
		switch x := v.(type) {
		case bool:
			return x, nil
		case int64:
			return x != 0, nil
		case int:
			return x != 0, nil
		case float64:
			return x != 0, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(strings.ToLower(x)))
			if err != nil {
				switch strings.ToLower(strings.TrimSpace(x)) {
				case "yes", "y":
					return true, nil
				case "no", "n":
					return false, nil
				}
				return nil, fmt.Errorf("not a boolean: %q", x)
			}
			return b, nil
		}

	case KindList:
		switch x := v.(type) {
		case []string:
			return x, nil
		case []interface{}:
			out := make([]string, len(x))
			for i, item := range x {
				out[i] = fmt.Sprint(item)
			}
			return out, nil
		case string:
			parts := strings.Split(x, strings.TrimSpace(ListSeparator))
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, p)
				}
			}
			return out, nil
		}
	}

	return nil, fmt.Errorf("cannot convert %T to %s", v, kind)
}

func numericString(v interface{}) (string, bool) {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), true
	}
	return "", false
}

// Flatten renders a cell for stores and files that only hold scalars.
func Flatten(kind Kind, v interface{}) interface{} {
	if v == nil {
		return nil
	}
	switch kind {
	case KindList:
		if items, ok := v.([]string); ok {
			return strings.Join(items, ListSeparator)
		}
	case KindDate:
		if t, ok := v.(time.Time); ok {
			return t.Format("2006-01-02 15:04:05")
		}
	}
	return v
}
