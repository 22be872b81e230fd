package sparkpost

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	email "github.com/International-Combat-Archery-Alliance/sparkmail"
)

// Config holds everything a Sender needs. Build it once at startup with
// Load, LoadFromEnv or LoadFromFile and share it by value.
type Config struct {
	APIKey        string         `env:"SPARK_KEY"`
	SenderAddress string         `env:"SENDER"`
	Region        Region         `env:"USE_EU"`
	Policy        DeliveryPolicy `env:"SPARK_DELIVERY_POLICY"`
}

// Load parses a Config from source and validates it. It does not consult the
// process environment.
func Load(source map[string]string) (Config, error) {
	if source == nil {
		source = map[string]string{}
	}

	var cfg Config
	parseErr := env.ParseWithOptions(&cfg, env.Options{Environment: source})

	// Missing or malformed required keys take precedence over parse errors
	// in optional ones.
	required := Config{APIKey: source["SPARK_KEY"], SenderAddress: source["SENDER"]}
	if err := required.Validate(); err != nil {
		return Config{}, err
	}

	if parseErr != nil {
		return Config{}, email.NewInvalidConfigError("unable to parse configuration", parseErr)
	}

	return cfg, nil
}

// LoadFromEnv loads the Config from the process environment.
func LoadFromEnv() (Config, error) {
	return Load(env.ToMap(os.Environ()))
}

// LoadFromFile loads the Config from a dotenv file. The process environment
// is left untouched.
func LoadFromFile(path string) (Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return Config{}, email.NewInvalidConfigError(fmt.Sprintf("unable to read %s", path), err)
	}

	return Load(values)
}

// Validate applies the same rules as Load to a Config built in code.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return email.NewMissingAPIKeyError("SPARK_KEY cannot be empty, cannot send emails without an api key", nil)
	}

	if c.SenderAddress == "" {
		return email.NewMissingSenderError("SENDER cannot be empty, emails need a from address", nil)
	}

	if !email.IsValidAddress(c.SenderAddress) {
		return email.NewInvalidSenderAddressError(fmt.Sprintf("sender %q is not a valid email address", c.SenderAddress), nil)
	}

	return nil
}

// LogValue keeps the api key out of log records.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api_key", maskSecret(c.APIKey)),
		slog.String("sender", c.SenderAddress),
		slog.String("region", c.Region.String()),
		slog.String("policy", c.Policy.String()),
	)
}

// maskSecret shows the last four characters of keys long enough that the
// suffix gives little away; shorter keys are masked entirely.
func maskSecret(s string) string {
	const minRevealLen = 12
	if len(s) < minRevealLen {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
