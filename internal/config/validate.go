package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Payout.validate(); err != nil {
		return fmt.Errorf("payout: %w", err)
	}

	return nil
}

func (p *PayoutConfig) validate() error {
	if p.MaxPeriodDays <= 0 {
		return fmt.Errorf("max_period_days must be > 0 (got %d)", p.MaxPeriodDays)
	}
	if p.AuditDefaultLimit <= 0 {
		return fmt.Errorf("audit_default_limit must be > 0 (got %d)", p.AuditDefaultLimit)
	}
	if p.AuditMaxLimit < p.AuditDefaultLimit {
		return fmt.Errorf("audit_max_limit must be >= audit_default_limit (got %d < %d)",
			p.AuditMaxLimit, p.AuditDefaultLimit)
	}
	return nil
}
