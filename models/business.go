// File: models/business.go
package models

import (
	"fmt"
	"sort"
)

// BusinessHours is the daily operating window, as whole hours of the day.
type BusinessHours struct {
	Start int `mapstructure:"start" json:"start"`
	End   int `mapstructure:"end" json:"end"`
}

// BusinessConfig is the static catalog of offered services and operating
// hours. Loaded once at startup and read-only afterwards.
type BusinessConfig struct {
	Services map[string]int `mapstructure:"services" json:"services"` // service name -> duration in minutes
	Hours    BusinessHours  `mapstructure:"hours" json:"hours"`
}

// Validate checks catalog invariants: every duration positive, start < end.
func (c *BusinessConfig) Validate() error {
	if len(c.Services) == 0 {
		return fmt.Errorf("business config: no services defined")
	}
	for name, duration := range c.Services {
		if duration <= 0 {
			return fmt.Errorf("business config: service %q has non-positive duration %d", name, duration)
		}
	}
	if c.Hours.Start >= c.Hours.End {
		return fmt.Errorf("business config: hours start %d must be before end %d", c.Hours.Start, c.Hours.End)
	}
	return nil
}

// ServiceNames returns the catalog names sorted, for stable reply text.
func (c *BusinessConfig) ServiceNames() []string {
	names := make([]string, 0, len(c.Services))
	for name := range c.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
