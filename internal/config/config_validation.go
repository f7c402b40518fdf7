package config

import (
	"errors"
	"time"
)

// Configuration validation errors.
var (
	ErrNoDatabaseDSN = errors.New("database DSN is required")
	ErrNoTokenKey    = errors.New("token sign key is required")
)

const (
	defaultHTTPAddress          = ":8080"
	defaultBaseURL              = "http://localhost:8080"
	defaultTokenIssuer          = "notelink"
	defaultTokenDuration        = 24 * time.Hour
	defaultRequestTimeout       = 30 * time.Second
	defaultSessionPurgeInterval = time.Hour
)

// applyDefaults fills in default values for every optional field that is
// still zero after all sources were merged.
func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = defaultBaseURL
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = defaultTokenIssuer
	}
	if c.Auth.TokenDuration == 0 {
		c.Auth.TokenDuration = defaultTokenDuration
	}
	if c.Workers.SessionPurgeInterval == 0 {
		c.Workers.SessionPurgeInterval = defaultSessionPurgeInterval
	}
}

// validate checks that all required fields are present. Only fields
// without a sensible default are required.
func (c *StructuredConfig) validate() error {
	var err error

	if c.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrNoDatabaseDSN)
	}
	if c.Auth.TokenSignKey == "" {
		err = errors.Join(err, ErrNoTokenKey)
	}

	return err
}
