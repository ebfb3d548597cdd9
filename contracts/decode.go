package contracts

import (
	"fmt"
	"math"
	"time"
)

// Option customizes schema construction.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock overrides the time source used for timestamp defaults.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func buildOptions(opts []Option) options {
	o := options{
		clock: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// The decoders below pull typed values out of a construction map. A present
// key with the wrong shape records a wrong_type violation; an absent key is
// reported to the caller, which decides between a default and a
// missing_required violation.

func decodeString(fields map[string]interface{}, key string, fe fieldErrors) (string, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		fe.add(key, ReasonWrongType, fmt.Sprintf("%s must be a string", key))
		return "", false
	}
	return s, true
}

func decodeBool(fields map[string]interface{}, key string, fe fieldErrors) (bool, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return false, false
	}
	b, ok := v.(bool)
	if !ok {
		fe.add(key, ReasonWrongType, fmt.Sprintf("%s must be a boolean", key))
		return false, false
	}
	return b, true
}

func decodeInt(fields map[string]interface{}, key string, fe fieldErrors) (int, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		// encoding/json decodes all numbers to float64.
		if n != math.Trunc(n) {
			fe.add(key, ReasonWrongType, fmt.Sprintf("%s must be an integer", key))
			return 0, false
		}
		// Conversion of out-of-range values is implementation-defined;
		// reject them before they can alias to a plausible int.
		if n < math.MinInt64 || n >= math.MaxInt64 {
			fe.add(key, ReasonOutOfRange, fmt.Sprintf("%s is out of integer range", key))
			return 0, false
		}
		return int(n), true
	default:
		fe.add(key, ReasonWrongType, fmt.Sprintf("%s must be an integer", key))
		return 0, false
	}
}

func decodeFloat(fields map[string]interface{}, key string, fe fieldErrors) (float64, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		fe.add(key, ReasonWrongType, fmt.Sprintf("%s must be a number", key))
		return 0, false
	}
}

func decodeTime(fields map[string]interface{}, key string, fe fieldErrors) (time.Time, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
		fe.add(key, ReasonWrongType, fmt.Sprintf("%s must be a timestamp", key))
		return time.Time{}, false
	default:
		fe.add(key, ReasonWrongType, fmt.Sprintf("%s must be a timestamp", key))
		return time.Time{}, false
	}
}

func decodeMap(fields map[string]interface{}, key string, fe fieldErrors) (map[string]interface{}, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return nil, false
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		fe.add(key, ReasonWrongType, fmt.Sprintf("%s must be a key/value map", key))
		return nil, false
	}
	return m, true
}
