package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.RateLimitPerMin <= 0 {
		return fmt.Errorf("server.rate_limit_per_min must be > 0 (got %d)", c.Server.RateLimitPerMin)
	}
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}
	if c.AutoSave.DebounceDelay <= 0 {
		return fmt.Errorf("autosave.debounce_delay must be > 0 (got %v)", c.AutoSave.DebounceDelay)
	}
	if c.AutoSave.FlushInterval <= c.AutoSave.DebounceDelay {
		return fmt.Errorf("autosave.flush_interval (%v) must be longer than debounce_delay (%v)",
			c.AutoSave.FlushInterval, c.AutoSave.DebounceDelay)
	}
	return nil
}
