package config

import (
	"fmt"
	"strings"
)

// CountedStatusesAll is the sentinel value that makes the capacity check
// count every team regardless of status.
const CountedStatusesAll = "all"

// RegistrationConfig holds team registration policy configuration.
type RegistrationConfig struct {
	// CountedStatuses lists the team statuses counted against a tournament's
	// max_teams capacity. Empty means all statuses are counted.
	CountedStatuses []string
}

// LoadRegistrationConfigFromEnv loads registration configuration from
// environment variables. REGISTRATION_COUNTED_STATUSES is a comma-separated
// list of team statuses, or "all" to count every team.
func LoadRegistrationConfigFromEnv() RegistrationConfig {
	raw := GetEnv("REGISTRATION_COUNTED_STATUSES", "pending,confirmed")
	if raw == CountedStatusesAll {
		return RegistrationConfig{CountedStatuses: nil}
	}

	parts := strings.Split(raw, ",")
	statuses := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			statuses = append(statuses, p)
		}
	}
	return RegistrationConfig{CountedStatuses: statuses}
}

// Validate validates registration configuration.
func (c RegistrationConfig) Validate() error {
	validStatuses := map[string]bool{
		"pending":   true,
		"confirmed": true,
		"cancelled": true,
	}
	for _, s := range c.CountedStatuses {
		if !validStatuses[s] {
			return fmt.Errorf("invalid counted status: %s (must be: pending, confirmed, cancelled)", s)
		}
	}
	return nil
}
