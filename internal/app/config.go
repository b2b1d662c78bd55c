package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreBadger = "badger"
	StoreSQLite = "sqlite"

	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home            string `env:"MLSBRIDGE_HOME"`
	Store           string `env:"MLSBRIDGE_STORE,default=file" validate:"oneof=memory file badger sqlite"`
	Passphrase      string `env:"MLSBRIDGE_PASSPHRASE" validate:"omitempty,passphrase"`
	LogLevel        string `env:"MLSBRIDGE_LOG_LEVEL,default=info"`
	KeyPackageCache int    `env:"MLSBRIDGE_KP_CACHE,default=256" validate:"gte=0,lte=65536"`
	DeferMerge      bool   `env:"MLSBRIDGE_DEFER_MERGE,default=false"`
}

// ErrWeakPassphrase is returned when the at-rest passphrase fails the strength policy.
var ErrWeakPassphrase = fmt.Errorf(
	"passphrase is too weak (must be at least %d characters and include upper, lower, "+
		"number, and symbol)",
	minPassphraseLength,
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("passphrase", func(fl validator.FieldLevel) bool {
		return isSecurePassphrase(fl.Field().String())
	})
	return v
}

// LoadConfig reads Config from the environment after loading any of the
// given dotenv files that exist. An empty Home defaults to ~/.mlsbridge.
func LoadConfig(dotenv ...string) (Config, error) {
	if len(dotenv) > 0 {
		if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load dotenv: %w", err)
		}
	}
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".mlsbridge")
	}
	return cfg, cfg.Validate()
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "passphrase" {
					return ErrWeakPassphrase
				}
			}
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Store != StoreMemory && c.Home == "" {
		return errors.New("invalid config: home directory required for " + c.Store + " store")
	}
	return nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
