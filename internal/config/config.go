package config

// Config is the biz_config section of config.yaml, decoded by the infra
// loader into this pointer (see cmd/taskmgmt-server/main.go).
type Config struct {
	Auth AuthConfig `yaml:"auth" json:"auth"`
}

type AuthConfig struct {
	JWT      JWTOptions                `yaml:"jwt" json:"jwt"`
	Password PasswordComplexityOptions `yaml:"password" json:"password"`
}

// JWTOptions configures token issuance and validation.
type JWTOptions struct {
	Issuer         string `yaml:"issuer" json:"issuer"`
	Audience       string `yaml:"audience" json:"audience"`
	SecretKey      string `yaml:"secret_key" json:"secret_key"`
	ExpiresMinutes int    `yaml:"expires_minutes" json:"expires_minutes"`
}

// PasswordComplexityOptions configures registration password requirements.
type PasswordComplexityOptions struct {
	MinimumLength           int  `yaml:"minimum_length" json:"minimum_length"`
	RequireUppercase        bool `yaml:"require_uppercase" json:"require_uppercase"`
	RequireLowercase        bool `yaml:"require_lowercase" json:"require_lowercase"`
	RequireDigit            bool `yaml:"require_digit" json:"require_digit"`
	RequireSpecialCharacter bool `yaml:"require_special_character" json:"require_special_character"`
}

// Default returns a config with sane development defaults; config.yaml
// overrides field by field.
func Default() *Config {
	return &Config{
		Auth: AuthConfig{
			JWT: JWTOptions{
				Issuer:         "taskmgmt",
				Audience:       "taskmgmt-api",
				ExpiresMinutes: 60,
			},
			Password: PasswordComplexityOptions{
				MinimumLength:           8,
				RequireUppercase:        true,
				RequireLowercase:        true,
				RequireDigit:            true,
				RequireSpecialCharacter: true,
			},
		},
	}
}
