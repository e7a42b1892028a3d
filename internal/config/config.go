package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"hygrometer/internal/domain"
	"hygrometer/internal/eventbus"
)

// APIKeyEnv overrides geocoder.api_key when set
const APIKeyEnv = "HYGROMETER_KAKAO_API_KEY"

// Geocoder providers
const (
	ProviderKakao  = "kakao"
	ProviderStatic = "static"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	LastRegion RegionConfig   `toml:"last_region"`
	Geocoder   GeocoderConfig `toml:"geocoder"`
	Storage    StorageConfig  `toml:"storage"`
	Log        LogConfig      `toml:"log"`
	UISettings UISettings     `toml:"ui"`
}

// RegionConfig is the region shown on the home view at startup
type RegionConfig struct {
	ID          string  `toml:"id"`
	Name        string  `toml:"name"`
	Address     string  `toml:"address"`
	RoadAddress string  `toml:"road_address"`
	Category    string  `toml:"category"`
	Latitude    float64 `toml:"latitude"`
	Longitude   float64 `toml:"longitude"`
}

// NewRegionConfig converts a region for storage
func NewRegionConfig(r domain.Region) RegionConfig {
	return RegionConfig{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		RoadAddress: r.RoadAddress,
		Category:    r.Category,
		Latitude:    r.Coordinate.Latitude,
		Longitude:   r.Coordinate.Longitude,
	}
}

// Region converts back to a domain region
func (rc RegionConfig) Region() domain.Region {
	return domain.Region{
		ID:          rc.ID,
		Name:        rc.Name,
		Address:     rc.Address,
		RoadAddress: rc.RoadAddress,
		Category:    rc.Category,
		Coordinate:  domain.Coordinate{Latitude: rc.Latitude, Longitude: rc.Longitude},
	}
}

// GeocoderConfig configures the region search backend
type GeocoderConfig struct {
	Provider       string `toml:"provider"`
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	CacheSize      int    `toml:"cache_size"`
}

// Timeout returns the per-request timeout
func (g GeocoderConfig) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// StorageConfig locates the bookmark database
type StorageConfig struct {
	BookmarksPath string `toml:"bookmarks_path"`
}

// LogConfig configures the rotating log file
type LogConfig struct {
	Path       string `toml:"path"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCoordinates bool `toml:"show_coordinates"`
	SheetTopMargin  int  `toml:"sheet_top_margin"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
	Dir() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultDir returns the hygrometer directory under the user config dir
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "hygrometer")
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return NewConfigServiceAt(filepath.Join(DefaultDir(), "config.toml"))
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects the default location.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = filepath.Join(DefaultDir(), "config.toml")
	}
	return &configService{bus: bus, filePath: path}
}

func (cs *configService) Path() string { return cs.filePath }

func (cs *configService) Dir() string { return filepath.Dir(cs.filePath) }

// Load loads the configuration file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
		applyEnv(cfg)
		err = nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// never persist a key that only came from the environment
	out := *config
	if env := os.Getenv(APIKeyEnv); env != "" && out.Geocoder.APIKey == env {
		out.Geocoder.APIKey = ""
	}

	data, err := toml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Geocoder: GeocoderConfig{
			Provider:       ProviderKakao,
			BaseURL:        "https://dapi.kakao.com",
			TimeoutSeconds: 5,
			CacheSize:      64,
		},
		Log: LogConfig{
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
		UISettings: UISettings{
			ShowCoordinates: true,
			SheetTopMargin:  3,
		},
	}
}

// BookmarksPath resolves the bookmark database path relative to dir
func (c *Config) BookmarksPath(dir string) string {
	if c.Storage.BookmarksPath != "" {
		return expandHome(c.Storage.BookmarksPath)
	}
	return filepath.Join(dir, "bookmarks.db")
}

// LogPath resolves the log file path relative to dir
func (c *Config) LogPath(dir string) string {
	if c.Log.Path != "" {
		return expandHome(c.Log.Path)
	}
	return filepath.Join(dir, "hygrometer.log")
}

func applyEnv(cfg *Config) {
	if key := os.Getenv(APIKeyEnv); key != "" {
		cfg.Geocoder.APIKey = key
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
