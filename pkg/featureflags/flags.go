// ABOUTME: Feature flag management for optional API features
// ABOUTME: Resolves flags from environment variables with per-flag defaults and overrides

package featureflags

import (
	"context"
	"os"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags
const (
	// TranslationEnabled enables description translation on metadata lookups
	TranslationEnabled FeatureFlag = "translation_enabled"

	// MetadataEnabled exposes the AniList metadata endpoint
	MetadataEnabled FeatureFlag = "metadata_enabled"

	// RateLimitEnabled enables rate limiting
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"

	// CacheEnabled enables caching of metadata and translations
	CacheEnabled FeatureFlag = "cache_enabled"
)

// All lists every defined flag
var All = []FeatureFlag{TranslationEnabled, MetadataEnabled, RateLimitEnabled, CacheEnabled}

// Defaults apply when the environment does not set a flag
var Defaults = map[FeatureFlag]bool{
	TranslationEnabled: true,
	MetadataEnabled:    true,
	RateLimitEnabled:   true,
	CacheEnabled:       true,
}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled sets a feature flag's state (for testing)
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager implements Manager using environment variables
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	defaults  map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates a new environment-based feature flag manager using Defaults
func NewEnvManager(prefix string) *EnvManager {
	return NewEnvManagerWithDefaults(prefix, Defaults)
}

// NewEnvManagerWithDefaults creates a manager with custom defaults.
// Flags missing from defaults are off unless the environment enables them.
func NewEnvManagerWithDefaults(prefix string, defaults map[FeatureFlag]bool) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	d := make(map[FeatureFlag]bool, len(defaults))
	for k, v := range defaults {
		d[k] = v
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		defaults:  d,
		prefix:    prefix,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if enabled, ok := m.overrides[flag]; ok {
		return enabled
	}

	envKey := m.prefix + strings.ToUpper(string(flag))
	if enabled, ok := parseBool(os.Getenv(envKey)); ok {
		return enabled
	}

	return m.defaults[flag]
}

// SetEnabled sets a feature flag's state (mainly for testing)
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(All))
	for _, f := range All {
		flags[f] = m.IsEnabled(ctx, f)
	}
	return flags
}

// parseBool reports the flag value and whether value was recognized
func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "enabled", "on":
		return true, true
	case "false", "0", "disabled", "off":
		return false, true
	}
	return false, false
}

// StaticManager implements Manager with static configuration
type StaticManager struct {
	flags map[FeatureFlag]bool
	mu    sync.RWMutex
}

// NewStaticManager creates a manager with predefined flag states
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	copied := make(map[FeatureFlag]bool, len(flags))
	for k, v := range flags {
		copied[k] = v
	}
	return &StaticManager{
		flags: copied,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

// SetEnabled sets a feature flag's state
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns all flag states
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[FeatureFlag]bool, len(m.flags))
	for k, v := range m.flags {
		result[k] = v
	}
	return result
}
