/*
Package config provides type-safe configuration extraction from map[string]any.

Accessors take a default that is returned when the key is missing or the
value has the wrong type, so callers never type-assert YAML/JSON trees by hand.

# Usage

	cfg, err := config.FromFile("wumpus.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	level := cfg.Sub("log").LogLevel("level", slog.LevelInfo)
	d := cfg.Sub("dispatcher")
	maxDepth := d.Int("max_depth", 0)
	quiet := d.StringSlice("quiet_tags", nil)

A file for the demo application looks like:

	log:
	  level: debug
	dispatcher:
	  max_depth: 32
	  recover_panics: true
	  quiet_tags: [tick, step, ready, busy]
	  metrics: false
	  tracing: false
	journal:
	  path: ./session.db

# Loading

Load takes an explicit path and falls back to $WUMPUS_CONFIG; with
neither it returns an empty Config so every accessor yields its default.
${VAR} references inside a file are expanded from the environment.

Keys may be dotted paths, so cfg.Int("dispatcher.max_depth", 0) and
cfg.Sub("dispatcher").Int("max_depth", 0) are equivalent. A section can
also be decoded into a yaml-tagged struct with Decode.

# Type Coercion

Duration accepts strings ("30s"), numbers (seconds) and time.Duration.
Int accepts float64 only when it has no fractional part, which is how
JSON numbers arrive.

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
