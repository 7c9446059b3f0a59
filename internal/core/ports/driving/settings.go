package driving

import "github.com/custodia-labs/tabula/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings: defaults overlaid
	// with stored values.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Set parses value for the named key, validates the result and
	// persists it. Unknown keys fail with domain.ErrInvalidArgument.
	Set(key, value string) error

	// Values returns every setting as key and display value, in key order.
	Values() ([]SettingValue, error)

	// Keys returns the recognised setting keys.
	Keys() []string

	// Path returns the configuration file location.
	Path() string
}

// SettingValue is one setting for display.
type SettingValue struct {
	Key   string
	Value string
}
