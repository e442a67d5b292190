package config

// Warnings reports settings that are legal but probably a mistake.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, WarnMsgExamplePassword)
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}
	if c.DevMode && c.Environment != "dev" {
		warnings = append(warnings, WarnMsgDevModeInProd)
	}

	return warnings
}
