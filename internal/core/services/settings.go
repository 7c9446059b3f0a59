package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/tabula/internal/core/domain"
	"github.com/custodia-labs/tabula/internal/core/ports/driven"
	"github.com/custodia-labs/tabula/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyUserAgent         = "fetch.user_agent"
	KeyRequestsPerSecond = "fetch.requests_per_second"
	KeyBurst             = "fetch.burst"
	KeyTimeoutSeconds    = "fetch.timeout_seconds"
	KeyCacheBackend      = "cache.backend"
	KeyCacheTTLMinutes   = "cache.ttl_minutes"
	KeySQLiteDir         = "cache.sqlite_dir"
	KeyRedisAddr         = "cache.redis_addr"
	KeyRedisDB           = "cache.redis_db"
	KeyPageTimeout       = "browse.page_timeout_seconds"
	KeyDefaultLimit      = "browse.default_limit"
	KeyBrowseUI          = "browse.ui"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindFloat
)

// setting binds a config key to a field of domain.AppSettings.
type setting struct {
	kind  valueKind
	read  func(s *domain.AppSettings) any
	write func(s *domain.AppSettings, v any)
}

var settings = map[string]setting{
	KeyUserAgent: {kindString,
		func(s *domain.AppSettings) any { return s.Fetch.UserAgent },
		func(s *domain.AppSettings, v any) { s.Fetch.UserAgent = v.(string) }},
	KeyRequestsPerSecond: {kindFloat,
		func(s *domain.AppSettings) any { return s.Fetch.RequestsPerSecond },
		func(s *domain.AppSettings, v any) { s.Fetch.RequestsPerSecond = v.(float64) }},
	KeyBurst: {kindInt,
		func(s *domain.AppSettings) any { return s.Fetch.Burst },
		func(s *domain.AppSettings, v any) { s.Fetch.Burst = v.(int) }},
	KeyTimeoutSeconds: {kindInt,
		func(s *domain.AppSettings) any { return int(s.Fetch.Timeout / time.Second) },
		func(s *domain.AppSettings, v any) { s.Fetch.Timeout = time.Duration(v.(int)) * time.Second }},
	KeyCacheBackend: {kindString,
		func(s *domain.AppSettings) any { return s.Cache.Backend.String() },
		func(s *domain.AppSettings, v any) { s.Cache.Backend = domain.CacheBackend(v.(string)) }},
	KeyCacheTTLMinutes: {kindInt,
		func(s *domain.AppSettings) any { return int(s.Cache.TTL / time.Minute) },
		func(s *domain.AppSettings, v any) { s.Cache.TTL = time.Duration(v.(int)) * time.Minute }},
	KeySQLiteDir: {kindString,
		func(s *domain.AppSettings) any { return s.Cache.SQLiteDir },
		func(s *domain.AppSettings, v any) { s.Cache.SQLiteDir = v.(string) }},
	KeyRedisAddr: {kindString,
		func(s *domain.AppSettings) any { return s.Cache.RedisAddr },
		func(s *domain.AppSettings, v any) { s.Cache.RedisAddr = v.(string) }},
	KeyRedisDB: {kindInt,
		func(s *domain.AppSettings) any { return s.Cache.RedisDB },
		func(s *domain.AppSettings, v any) { s.Cache.RedisDB = v.(int) }},
	KeyPageTimeout: {kindInt,
		func(s *domain.AppSettings) any { return int(s.Browse.PageTimeout / time.Second) },
		func(s *domain.AppSettings, v any) { s.Browse.PageTimeout = time.Duration(v.(int)) * time.Second }},
	KeyDefaultLimit: {kindInt,
		func(s *domain.AppSettings) any { return s.Browse.DefaultLimit },
		func(s *domain.AppSettings, v any) { s.Browse.DefaultLimit = v.(int) }},
	KeyBrowseUI: {kindString,
		func(s *domain.AppSettings) any { return s.Browse.UI.String() },
		func(s *domain.AppSettings, v any) { s.Browse.UI = domain.BrowseUI(v.(string)) }},
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings: defaults overlaid with every
// stored key.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	result := domain.DefaultAppSettings()

	for key, st := range settings {
		if _, ok := s.configStore.Get(key); !ok {
			continue
		}
		switch st.kind {
		case kindString:
			st.write(&result, s.configStore.GetString(key))
		case kindInt:
			st.write(&result, s.configStore.GetInt(key))
		case kindFloat:
			st.write(&result, s.configStore.GetFloat(key))
		}
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	return &result, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(appSettings *domain.AppSettings) error {
	if err := appSettings.Validate(); err != nil {
		return err
	}
	for _, key := range s.Keys() {
		if err := s.configStore.Set(key, settings[key].read(appSettings)); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Set parses value for key, validates the resulting settings and persists
// the single key.
func (s *SettingsService) Set(key, value string) error {
	st, ok := settings[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q (known: %s)",
			domain.ErrInvalidArgument, key, strings.Join(s.Keys(), ", "))
	}

	parsed, err := parseValue(st.kind, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidArgument, key, err)
	}

	current, err := s.Get()
	if err != nil {
		// A broken stored value must not block fixing it.
		defaults := domain.DefaultAppSettings()
		current = &defaults
	}
	st.write(current, parsed)
	if err := current.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Values returns every setting in key order.
func (s *SettingsService) Values() ([]driving.SettingValue, error) {
	current, err := s.Get()
	if err != nil {
		return nil, err
	}

	keys := s.Keys()
	values := make([]driving.SettingValue, 0, len(keys))
	for _, key := range keys {
		values = append(values, driving.SettingValue{
			Key:   key,
			Value: fmt.Sprint(settings[key].read(current)),
		})
	}
	return values, nil
}

// Keys returns the recognised setting keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the configuration file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func parseValue(kind valueKind, value string) (any, error) {
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", value)
		}
		return n, nil
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", value)
		}
		return f, nil
	default:
		return value, nil
	}
}
