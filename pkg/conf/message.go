package conf

import (
	"fmt"
	"strings"
)

// Message helpers render user-facing strings from the config: the value at
// a dotted key, with indexed placeholders ({0}, {1}, ...) or named tokens
// (%name) substituted, the configured prefix prepended, and &-codes
// translated to terminal styling.

// PrefixPath returns the dotted key the message prefix is read from.
func (c *Config) PrefixPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prefixPath
}

// SetPrefixPath sets the dotted key the message prefix is read from.
func (c *Config) SetPrefixPath(path string) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefixPath = path
	return c
}

// ExcludePrefix reports whether prefix injection is disabled.
func (c *Config) ExcludePrefix() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.excludePrefix
}

// SetExcludePrefix enables or disables prefix injection.
func (c *Config) SetExcludePrefix(exclude bool) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.excludePrefix = exclude
	return c
}

// AutoExcludePrefix disables prefix injection when "prefix.enabled" is
// false in the config. The prefix is enabled by default.
func (c *Config) AutoExcludePrefix() *Config {
	return c.SetExcludePrefix(!c.Bool("prefix.enabled", true))
}

// Message renders the message at key with indexed placeholders substituted,
// the prefix prepended, and color codes translated.
func (c *Config) Message(key string, args ...any) string {
	return Colorize(c.MessageRaw(key, args...))
}

// MessageRaw renders the message at key without color translation. A
// missing key yields "no entry for <key>". Unless the prefix is excluded,
// the value at the prefix path is prepended; the prefix itself is never
// prefixed, even when looked up with different casing.
func (c *Config) MessageRaw(key string, args ...any) string {
	val := c.String(key, fmt.Sprintf("no entry for %s", key))
	if !c.ExcludePrefix() && !strings.EqualFold(key, c.PrefixPath()) {
		val = c.String(c.PrefixPath(), "") + val
	}
	return substituteIndexed(val, args)
}

// MessageList renders the string list at key, substituting indexed
// placeholders and translating colors per element. No prefix is applied.
func (c *Config) MessageList(key string, args ...any) []string {
	raw := c.StringList(key)
	out := make([]string, 0, len(raw))
	for _, msg := range raw {
		out = append(out, Colorize(substituteIndexed(msg, args)))
	}
	return out
}

// MessageNamed renders the message at key using named %tokens. Pairs are
// alternating token names and values:
//
//	cfg.MessageNamed("my.message", "playerName", "JohnDoe", "age", 30)
//
// replaces %playerName with JohnDoe and %age with 30. A token with no
// trailing value substitutes "<nil>". A missing key yields a formatted
// "does not exist" message. The result is colorized.
func (c *Config) MessageNamed(key string, pairs ...any) string {
	msg := c.String(key, fmt.Sprintf("message %q does not exist", key))
	return Colorize(substituteNamed(msg, pairs))
}

// PrefixedMessageNamed renders the message at key like MessageNamed with
// the colorized prefix prepended. When the prefix is excluded the result
// equals MessageNamed.
func (c *Config) PrefixedMessageNamed(key string, pairs ...any) string {
	if c.ExcludePrefix() {
		return c.MessageNamed(key, pairs...)
	}
	prefix := Colorize(c.String(c.PrefixPath(), ""))
	return prefix + c.MessageNamed(key, pairs...)
}

// substituteIndexed replaces {0}, {1}, ... tokens with the corresponding
// argument. Arguments without a token in the text are ignored.
func substituteIndexed(s string, args []any) string {
	for i, arg := range args {
		token := fmt.Sprintf("{%d}", i)
		if !strings.Contains(s, token) {
			continue
		}
		s = strings.ReplaceAll(s, token, sprintArg(arg))
	}
	return s
}

// substituteNamed replaces %name tokens with values from alternating
// (name, value) pairs.
func substituteNamed(s string, pairs []any) string {
	for i := 0; i < len(pairs); i += 2 {
		token := "%" + sprintArg(pairs[i])
		if !strings.Contains(s, token) {
			continue
		}
		val := "<nil>"
		if i+1 < len(pairs) {
			val = sprintArg(pairs[i+1])
		}
		s = strings.ReplaceAll(s, token, val)
	}
	return s
}

func sprintArg(arg any) string {
	if arg == nil {
		return "<nil>"
	}
	return fmt.Sprint(arg)
}
