package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is complete enough to
// boot. Production additionally requires the sensitive values to come from
// Docker secrets, which surfaces here as empty fields when they are missing.
func ValidateConfig(cfg *Config) error {
	var errors []string

	required := map[string]string{
		"server port": cfg.ServerPort,
		"server host": cfg.ServerHost,
		"db host":     cfg.DBHost,
		"db port":     cfg.DBPort,
		"db user":     cfg.DBUser,
		"db name":     cfg.DBName,
	}
	for field, value := range required {
		if value == "" {
			errors = append(errors, fmt.Sprintf("%s is not set", field))
		}
	}

	if cfg.JWTSecret == "" {
		errors = append(errors, "jwt secret is required")
	}
	if cfg.Environment == Production {
		if cfg.DBPassword == "" {
			errors = append(errors, "db_password secret is required")
		}
		if cfg.JWTSecret == "dev-secret-change-me" {
			errors = append(errors, "jwt secret must not be the development default")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
