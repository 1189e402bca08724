package config

const (
	defaultTimezone   = "America/New_York"
	defaultLanguage   = "en"
	defaultProfileUID = "5afbb2681e654c9eb1ffa17a741b44e8"
	defaultStatus     = "Unencoded"
	defaultAction     = "INSERT"
	defaultFTPPort    = "21"
	defaultFTPTimeout = 30
)

func (c *Config) applyDefaults() {
	if c.Settings.Timezone == "" {
		c.Settings.Timezone = defaultTimezone
	}

	if c.Asset.Language == "" {
		c.Asset.Language = defaultLanguage
	}

	if c.Asset.ProfileUID == "" {
		c.Asset.ProfileUID = defaultProfileUID
	}

	if c.Asset.Status == "" {
		c.Asset.Status = defaultStatus
	}

	if c.Asset.Action == "" {
		c.Asset.Action = defaultAction
	}
}
