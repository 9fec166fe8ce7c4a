package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.Limits.validate(); err != nil {
		return fmt.Errorf("limits: %w", err)
	}
	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	return nil
}

func (l *LimitsConfig) validate() error {
	if l.SessionSize <= 0 {
		return fmt.Errorf("session_size must be > 0 (got %d)", l.SessionSize)
	}
	if l.MaxDistractor < 0 {
		return fmt.Errorf("max_distractors must be >= 0 (got %d)", l.MaxDistractor)
	}
	if l.WordsPageSize <= 0 {
		return fmt.Errorf("words_page_size must be > 0 (got %d)", l.WordsPageSize)
	}
	return nil
}

func (g *GeneratorConfig) validate() error {
	if g.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if g.MaxConcurrent <= 0 {
		return fmt.Errorf("max_concurrent must be > 0 (got %d)", g.MaxConcurrent)
	}
	if g.DefaultCount <= 0 {
		return fmt.Errorf("default_count must be > 0 (got %d)", g.DefaultCount)
	}
	return nil
}
