package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	creator "github.com/xml-creator/xml-creator"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSettings(); err != nil {
		return err
	}

	missing := []string{}
	if strings.TrimSpace(c.Spreadsheet.Name) == "" {
		missing = append(missing, "spreadsheet.name")
	}

	if strings.TrimSpace(c.Worksheet.Name) == "" {
		missing = append(missing, "worksheet.name")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing '%s'", creator.ErrConfiguration, strings.Join(missing, "', '"))
	}

	return c.Cells.Validate()
}

func (c *Config) validateSettings() error {
	if strings.TrimSpace(c.Settings.Credentials) == "" {
		return fmt.Errorf("%w: missing 'settings.credentials'", creator.ErrConfiguration)
	}

	if len(c.Settings.Scope) == 0 {
		return fmt.Errorf("%w: missing 'settings.scope'", creator.ErrConfiguration)
	}

	for _, scope := range c.Settings.Scope {
		if strings.TrimSpace(scope) == "" {
			return fmt.Errorf("%w: blank entry in 'settings.scope'", creator.ErrConfiguration)
		}
	}

	if _, err := c.Settings.Location(); err != nil {
		return err
	}

	return nil
}

// Location returns the time zone used for the asset timestamps.
func (s Settings) Location() (*time.Location, error) {
	tz := s.Timezone
	if tz == "" {
		tz = defaultTimezone
	}

	location, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid 'settings.timezone' %q (%v)", creator.ErrConfiguration, tz, err)
	}

	return location, nil
}

// Validate checks that every asset field is bound to a column header.
func (c Cells) Validate() error {
	fields := []struct {
		key   string
		value string
	}{
		{"title", c.Title},
		{"description", c.Description},
		{"filename", c.Filename},
		{"keywords", c.Keywords},
		{"rights", c.Rights},
		{"renderStatus", c.RenderStatus},
		{"renderStatusValue", c.RenderStatusValue},
	}

	missing := []string{}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, "cells."+f.key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing '%s'", creator.ErrConfiguration, strings.Join(missing, "', '"))
	}

	return nil
}
