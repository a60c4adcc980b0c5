// Package config reads settings from environment variables. It never logs: values
// that fail to parse fall back to their default and are kept for Invalid, so the
// logger itself can be configured from here
package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Problem is a set variable whose value could not be parsed
type Problem struct {
	Key   string
	Value string
	Err   error
}

type problems struct {
	mu   sync.Mutex
	list []Problem
}

func (p *problems) add(pr Problem) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.list = append(p.list, pr)
}

// Conf is a namespaced view over environment variables, e.g. Prefix("BBC_API_").
// Views made from one New share their problem list
type Conf struct {
	prefix string
	bad    *problems
}

// New creates a root Conf with no prefix
func New() Conf { return Conf{bad: &problems{}} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p, bad: c.bad} }

// Invalid lists every value that fell back to its default because it did not parse
func (c Conf) Invalid() []Problem {
	if c.bad == nil {
		return nil
	}
	c.bad.mu.Lock()
	defer c.bad.mu.Unlock()
	return append([]Problem(nil), c.bad.list...)
}

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(key string) string { return strings.TrimSpace(os.Getenv(c.key(key))) }

func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		c.bad.add(Problem{Key: c.key(key), Value: s, Err: err})
		return def
	}
	return v
}

// MayString returns the value or def when unset
func (c Conf) MayString(key, def string) string {
	return may(c, key, def, func(s string) (string, error) { return s, nil })
}

func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

func (c Conf) MayInt64(key string, def int64) int64 {
	return may(c, key, def, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
}

func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayCSV splits a comma-separated value, dropping blank items. def is returned when
// nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.lookup(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
