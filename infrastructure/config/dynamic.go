package config

import "time"

// DynamicConfig represents runtime-changeable configuration loaded from a
// JSON overrides file.
type DynamicConfig struct {
	Limits   Limits         `json:"limits"`
	Metadata ConfigMetadata `json:"metadata"`
}

// Limits holds runtime-tunable application limits.
type Limits struct {
	ListingPageSize    int `json:"listingPageSize"`
	EventQueueCapacity int `json:"eventQueueCapacity"`
}

// ConfigMetadata holds metadata about the configuration.
type ConfigMetadata struct {
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

// DefaultDynamicConfig returns the overrides used when no file is present.
func DefaultDynamicConfig() *DynamicConfig {
	return &DynamicConfig{
		Limits: Limits{
			ListingPageSize:    100,
			EventQueueCapacity: 1024,
		},
		Metadata: ConfigMetadata{Version: "1.0.0"},
	}
}

// StaticLimits serves limits from a fixed snapshot. It stands in for the
// watcher when no overrides file is configured.
type StaticLimits struct {
	Limits Limits
}

// ListingPageSize returns the fixed listing page size.
func (s StaticLimits) ListingPageSize() int {
	return s.Limits.ListingPageSize
}
