package config

import (
	"log/slog"
	"strings"
	"time"
)

// Config is a read-only view over a decoded YAML or JSON document.
//
// Accessors take the value's default and fall back to it when the key is
// absent or holds an incompatible type. Keys may be dotted paths
// ("dispatcher.max_depth"); a literal key containing dots wins over the path.
type Config struct {
	data map[string]any
}

// New wraps data. A nil map behaves as an empty document.
func New(data map[string]any) Config {
	if data == nil {
		data = map[string]any{}
	}
	return Config{data: data}
}

// lookup resolves key, first literally, then as a dotted path.
func (c Config) lookup(key string) (any, bool) {
	if v, ok := c.data[key]; ok {
		return v, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}

	node := c.data
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := asMap(node[part])
		if !ok {
			return nil, false
		}
		node = next
	}
	v, ok := node[parts[len(parts)-1]]
	return v, ok
}

// asMap accepts both decoder map shapes.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[s] = val
		}
		return out, true
	}
	return nil, false
}

// value returns the value under key if it has type T.
func value[T any](c Config, key string) (T, bool) {
	v, ok := c.lookup(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Sub returns the section under key. Anything but a mapping yields an
// empty Config.
func (c Config) Sub(key string) Config {
	v, _ := c.lookup(key)
	m, _ := asMap(v)
	return New(m)
}

// String returns the string under key.
func (c Config) String(key, defaultVal string) string {
	if s, ok := value[string](c, key); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean under key.
func (c Config) Bool(key string, defaultVal bool) bool {
	if b, ok := value[bool](c, key); ok {
		return b
	}
	return defaultVal
}

// Int returns the integer under key. JSON numbers arrive as float64 and
// are accepted when they have no fractional part.
func (c Config) Int(key string, defaultVal int) int {
	v, _ := c.lookup(key)
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
	}
	return defaultVal
}

// Float returns the number under key.
func (c Config) Float(key string, defaultVal float64) float64 {
	v, _ := c.lookup(key)
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return defaultVal
}

// Duration returns the duration under key. Strings are parsed with
// time.ParseDuration ("30s"); bare numbers are seconds.
func (c Config) Duration(key string, defaultVal time.Duration) time.Duration {
	v, _ := c.lookup(key)
	switch d := v.(type) {
	case time.Duration:
		return d
	case string:
		if parsed, err := time.ParseDuration(d); err == nil {
			return parsed
		}
	case int:
		return time.Duration(d) * time.Second
	case int64:
		return time.Duration(d) * time.Second
	case float64:
		return time.Duration(d * float64(time.Second))
	}
	return defaultVal
}

// StringSlice returns the list of strings under key. A list holding
// anything other than strings yields defaultVal.
func (c Config) StringSlice(key string, defaultVal []string) []string {
	v, _ := c.lookup(key)
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return defaultVal
			}
			out[i] = s
		}
		return out
	}
	return defaultVal
}

// LogLevel returns the slog level named under key ("debug", "info", "warn",
// "error", or an offset such as "info+2").
func (c Config) LogLevel(key string, defaultVal slog.Level) slog.Level {
	s, ok := value[string](c, key)
	if !ok {
		return defaultVal
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return defaultVal
	}
	return level
}

// Any returns the raw value under key.
func (c Config) Any(key string, defaultVal any) any {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return defaultVal
}

// Has reports whether key is present, even with a null value.
func (c Config) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Raw returns the underlying map. Callers must not modify it.
func (c Config) Raw() map[string]any {
	return c.data
}
