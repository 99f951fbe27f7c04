// Package builder provides fluent builders for objects with many optional
// settings.
package builder

import (
	"errors"
	"fmt"
)

// DefaultMaxConnections is the connection limit used when none is set.
const DefaultMaxConnections = 4

// ErrInvalidMaxConnections is returned by Build when the connection limit is not positive.
var ErrInvalidMaxConnections = errors.New("max connections must be greater than 0")

// DatabaseConfig is an immutable set of database connection settings.
type DatabaseConfig struct {
	url            string
	username       string
	password       string
	maxConnections int
	enableCache    bool
	readOnly       bool
}

func (c DatabaseConfig) URL() string         { return c.url }
func (c DatabaseConfig) Username() string    { return c.username }
func (c DatabaseConfig) Password() string    { return c.password }
func (c DatabaseConfig) MaxConnections() int { return c.maxConnections }
func (c DatabaseConfig) CacheEnabled() bool  { return c.enableCache }
func (c DatabaseConfig) ReadOnly() bool      { return c.readOnly }

// String returns a safe representation with the password masked.
func (c DatabaseConfig) String() string {
	pw := ""
	if c.password != "" {
		pw = "***"
	}
	return fmt.Sprintf("DatabaseConfig{URL:%s, Username:%s, Password:%s, MaxConnections:%d, Cache:%t, ReadOnly:%t}",
		c.url, c.username, pw, c.maxConnections, c.enableCache, c.readOnly)
}

// DatabaseConfigBuilder accumulates settings for a DatabaseConfig.
type DatabaseConfigBuilder struct {
	cfg DatabaseConfig
}

// NewDatabaseConfig starts a builder with default settings.
func NewDatabaseConfig() *DatabaseConfigBuilder {
	return &DatabaseConfigBuilder{
		cfg: DatabaseConfig{maxConnections: DefaultMaxConnections},
	}
}

func (b *DatabaseConfigBuilder) URL(url string) *DatabaseConfigBuilder {
	b.cfg.url = url
	return b
}

func (b *DatabaseConfigBuilder) Username(username string) *DatabaseConfigBuilder {
	b.cfg.username = username
	return b
}

func (b *DatabaseConfigBuilder) Password(password string) *DatabaseConfigBuilder {
	b.cfg.password = password
	return b
}

func (b *DatabaseConfigBuilder) MaxConnections(n int) *DatabaseConfigBuilder {
	b.cfg.maxConnections = n
	return b
}

func (b *DatabaseConfigBuilder) EnableCache(enabled bool) *DatabaseConfigBuilder {
	b.cfg.enableCache = enabled
	return b
}

func (b *DatabaseConfigBuilder) ReadOnly(readOnly bool) *DatabaseConfigBuilder {
	b.cfg.readOnly = readOnly
	return b
}

// Build returns the configured settings. The builder can be reused afterwards;
// later changes do not affect configs already built.
func (b *DatabaseConfigBuilder) Build() (DatabaseConfig, error) {
	if b.cfg.maxConnections <= 0 {
		return DatabaseConfig{}, fmt.Errorf("building database config: %w", ErrInvalidMaxConnections)
	}
	return b.cfg, nil
}
