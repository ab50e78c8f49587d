package config

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"gopkg.in/yaml.v3"
)

// Configuration keys.
const (
	KeyTracingAdapter = "tracing.adapter"
	KeyRootLevel      = "tracelevel.root"
	KeyMarkupStrict   = "markup.strict"
	KeyPropagate      = "event.propagate"
)

// TraceLevelPrefix is the key prefix for trace levels of tracers.
const TraceLevelPrefix = "tracelevel"

var defaults = map[string]string{
	KeyTracingAdapter: "go",
	KeyRootLevel:      "Error",
	KeyMarkupStrict:   "false",
	KeyPropagate:      "false",
}

// Conf is a flat key-value configuration.
type Conf struct {
	values map[string]string
}

// New creates a configuration holding the defaults.
func New() *Conf {
	c := &Conf{}
	c.InitDefaults()
	return c
}

// Load reads a YAML configuration file. If the file does not exist, the
// defaults are returned.
func Load(path string) (*Conf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			tracer().Infof("no configuration file %q, using defaults", path)
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	return Parse(data)
}

// Parse reads a YAML configuration from data. Keys not set in data are
// set to their defaults.
func Parse(data []byte) (*Conf, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	c := New()
	flatten("", raw, c.values)
	return c, nil
}

func flatten(prefix string, m map[string]any, into map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch x := v.(type) {
		case map[string]any:
			flatten(key, x, into)
		case nil:
			into[key] = ""
		case []any:
			s := make([]string, len(x))
			for i, e := range x {
				s[i] = fmt.Sprint(e)
			}
			into[key] = strings.Join(s, ",")
		default:
			into[key] = fmt.Sprint(x)
		}
	}
}

// InitDefaults is part of interface schuko.Configuration. It sets the
// defaults for all keys which are not set.
func (c *Conf) InitDefaults() {
	if c.values == nil {
		c.values = make(map[string]string, len(defaults))
	}
	for k, v := range defaults {
		if _, ok := c.values[k]; !ok {
			c.values[k] = v
		}
	}
}

// Set sets a configuration value.
func (c *Conf) Set(key, value string) {
	if c.values == nil {
		c.InitDefaults()
	}
	c.values[key] = value
}

// IsSet is part of interface schuko.Configuration.
func (c *Conf) IsSet(key string) bool {
	_, ok := c.values[key]
	return ok
}

// GetString is part of interface schuko.Configuration.
func (c *Conf) GetString(key string) string {
	return c.values[key]
}

// GetInt is part of interface schuko.Configuration. Values which are not
// integers are reported as 0.
func (c *Conf) GetInt(key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.values[key]))
	if err != nil {
		return 0
	}
	return n
}

// GetBool is part of interface schuko.Configuration.
func (c *Conf) GetBool(key string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(c.values[key]))
	return err == nil && b
}

// IsInteractive is part of interface schuko.Configuration.
func (c *Conf) IsInteractive() bool {
	return false
}

// Keys returns all configuration keys in lexical order.
func (c *Conf) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ schuko.Configuration = (*Conf)(nil)

// SetupTracing installs trace2go as the global trace selector. The adapter
// is taken from key `tracing.adapter` ("go" is always available), trace
// levels from keys `tracelevel.<tracer>`. Tracers created before are
// replaced.
func SetupTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, TraceLevelPrefix, trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("tracing set up with adapter %q", conf.GetString(KeyTracingAdapter))
	return nil
}
