package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	return nil
}

func (c *ImportConfig) validate() error {
	switch c.Delimiter {
	case ";", ",":
		return nil
	}
	return fmt.Errorf("delimiter must be %q or %q (got %q)", ";", ",", c.Delimiter)
}

// DelimiterRune returns the configured CSV delimiter as a rune.
// Validate guarantees it is a single-byte delimiter.
func (c *ImportConfig) DelimiterRune() rune {
	return rune(c.Delimiter[0])
}
