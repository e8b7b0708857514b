// Package config loads chatpane's settings from defaults, an optional YAML
// file and CHATPANE_ environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/zhubert/chatpane/internal/errors"
	"github.com/zhubert/chatpane/internal/layout"
	"github.com/zhubert/chatpane/internal/locale"
	"github.com/zhubert/chatpane/internal/logger"
	"github.com/zhubert/chatpane/internal/message"
	"github.com/zhubert/chatpane/internal/ui"
)

// EnvPrefix prefixes every environment override, e.g.
// CHATPANE_CHAT_MAX_COMPOSER_HEIGHT.
const EnvPrefix = "CHATPANE"

// UserConfig identifies the local participant.
type UserConfig struct {
	ID   string `mapstructure:"id" yaml:"id"`
	Name string `mapstructure:"name" yaml:"name"`
}

// ChatConfig holds the widget options that make sense in a file.
type ChatConfig struct {
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
	TimeFormat  string `mapstructure:"time_format" yaml:"time_format"`
	DateFormat  string `mapstructure:"date_format" yaml:"date_format"`

	Inverted                  bool `mapstructure:"inverted" yaml:"inverted"`
	Animated                  bool `mapstructure:"animated" yaml:"animated"`
	AlwaysShowSend            bool `mapstructure:"always_show_send" yaml:"always_show_send"`
	ShowUserAvatar            bool `mapstructure:"show_user_avatar" yaml:"show_user_avatar"`
	ShowAvatarForEveryMessage bool `mapstructure:"show_avatar_for_every_message" yaml:"show_avatar_for_every_message"`
	RenderAvatarOnTop         bool `mapstructure:"render_avatar_on_top" yaml:"render_avatar_on_top"`

	// Heights are in terminal rows; composer heights include the border.
	MinInputToolbarHeight int `mapstructure:"min_input_toolbar_height" yaml:"min_input_toolbar_height"`
	MinComposerHeight     int `mapstructure:"min_composer_height" yaml:"min_composer_height"`
	MaxComposerHeight     int `mapstructure:"max_composer_height" yaml:"max_composer_height"`
	MaxInputLength        int `mapstructure:"max_input_length" yaml:"max_input_length"`
	BottomOffset          int `mapstructure:"bottom_offset" yaml:"bottom_offset"`
}

// KeyboardConfig describes the simulated on-screen keyboard of the TUI host.
type KeyboardConfig struct {
	Height              int    `mapstructure:"height" yaml:"height"`
	Platform            string `mapstructure:"platform" yaml:"platform"`
	ForceKeyboardHeight bool   `mapstructure:"force_keyboard_height" yaml:"force_keyboard_height"`
	HasHomeIndicator    bool   `mapstructure:"has_home_indicator" yaml:"has_home_indicator"`
	SafeAreaInset       int    `mapstructure:"safe_area_inset" yaml:"safe_area_inset"`
}

// RelayConfig configures the optional websocket relay.
type RelayConfig struct {
	URL         string        `mapstructure:"url" yaml:"url"`
	DialTimeout time.Duration `mapstructure:"dial_timeout" yaml:"dial_timeout"`
}

// Config holds all configuration for chatpane.
type Config struct {
	Theme         string `mapstructure:"theme" yaml:"theme"`
	Locale        string `mapstructure:"locale" yaml:"locale"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogPath       string `mapstructure:"log_path" yaml:"log_path"`
	Notifications bool   `mapstructure:"notifications" yaml:"notifications"`

	User     UserConfig     `mapstructure:"user" yaml:"user"`
	Chat     ChatConfig     `mapstructure:"chat" yaml:"chat"`
	Keyboard KeyboardConfig `mapstructure:"keyboard" yaml:"keyboard"`
	Relay    RelayConfig    `mapstructure:"relay" yaml:"relay"`

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chatpane"), nil
}

// DefaultPath returns the config file used when no path is given.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", string(ui.DefaultTheme))
	v.SetDefault("locale", locale.Default)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_path", logger.DefaultLogPath)
	v.SetDefault("notifications", false)

	v.SetDefault("user.id", "me")
	v.SetDefault("user.name", "Me")

	v.SetDefault("chat.placeholder", "Type a message...")
	v.SetDefault("chat.time_format", ui.DefaultTimeFormat)
	v.SetDefault("chat.date_format", ui.DefaultDateFormat)
	v.SetDefault("chat.inverted", true)
	v.SetDefault("chat.animated", true)
	v.SetDefault("chat.always_show_send", false)
	v.SetDefault("chat.show_user_avatar", false)
	v.SetDefault("chat.show_avatar_for_every_message", false)
	v.SetDefault("chat.render_avatar_on_top", false)
	v.SetDefault("chat.min_input_toolbar_height", ui.TerminalMinInputToolbarHeight)
	v.SetDefault("chat.min_composer_height", ui.TerminalMinComposerHeight)
	v.SetDefault("chat.max_composer_height", ui.TerminalMaxComposerHeight)
	v.SetDefault("chat.max_input_length", 0)
	v.SetDefault("chat.bottom_offset", 0)

	v.SetDefault("keyboard.height", 8)
	v.SetDefault("keyboard.platform", layout.PlatformIOS.String())
	v.SetDefault("keyboard.force_keyboard_height", false)
	v.SetDefault("keyboard.has_home_indicator", false)
	v.SetDefault("keyboard.safe_area_inset", 1)

	v.SetDefault("relay.url", "")
	v.SetDefault("relay.dial_timeout", 5*time.Second)
}

// Load reads configuration. An empty path searches ~/.chatpane and the
// working directory for config.yaml; a missing file there is not an error.
// An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
		v.SetConfigFile(path)
	} else {
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.ConfigLoadFailed(v.ConfigFileUsed(), err)
		}
		logger.Debug("Config: no config file found, using defaults")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ConfigLoadFailed(v.ConfigFileUsed(), err)
	}

	cfg.filePath = v.ConfigFileUsed()
	if cfg.filePath == "" {
		cfg.filePath = path
	}
	if cfg.filePath == "" {
		if p, err := DefaultPath(); err == nil {
			cfg.filePath = p
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Info("Config: loaded from %q", v.ConfigFileUsed())
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Theme != "" && !ui.IsTheme(c.Theme) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown theme %q", c.Theme))
	}
	if c.User.ID == "" {
		return errors.ConfigInvalid("user.id must not be empty")
	}

	ch := c.Chat
	if ch.MinInputToolbarHeight <= 0 {
		return errors.ConfigInvalid("chat.min_input_toolbar_height must be positive")
	}
	if ch.MinComposerHeight <= 0 {
		return errors.ConfigInvalid("chat.min_composer_height must be positive")
	}
	if ch.MaxComposerHeight < ch.MinComposerHeight {
		return errors.ConfigInvalid(fmt.Sprintf("chat.max_composer_height (%d) is below chat.min_composer_height (%d)",
			ch.MaxComposerHeight, ch.MinComposerHeight))
	}
	if ch.MinInputToolbarHeight < ch.MinComposerHeight {
		return errors.ConfigInvalid("chat.min_input_toolbar_height must fit the composer")
	}
	if ch.MaxInputLength < 0 {
		return errors.ConfigInvalid("chat.max_input_length must not be negative")
	}

	if c.Keyboard.Height < 0 {
		return errors.ConfigInvalid("keyboard.height must not be negative")
	}
	if _, err := layout.ParsePlatform(c.Keyboard.Platform); err != nil {
		return errors.ConfigInvalid(err.Error())
	}
	if c.Relay.DialTimeout < 0 {
		return errors.ConfigInvalid("relay.dial_timeout must not be negative")
	}
	return nil
}

// Path returns the file the config was loaded from, or would be saved to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Save writes the config as YAML to its path.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.ConfigInvalid("no config path to save to")
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigLoadFailed(c.filePath, err)
	}
	data, err := c.marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigLoadFailed(c.filePath, err)
	}
	return nil
}

// SaveTo sets the path and saves.
func (c *Config) SaveTo(path string) error {
	c.mu.Lock()
	c.filePath = path
	c.mu.Unlock()
	return c.Save()
}

func (c *Config) marshal() ([]byte, error) {
	type plain struct {
		Theme         string         `yaml:"theme"`
		Locale        string         `yaml:"locale"`
		LogLevel      string         `yaml:"log_level"`
		LogPath       string         `yaml:"log_path"`
		Notifications bool           `yaml:"notifications"`
		User          UserConfig     `yaml:"user"`
		Chat          ChatConfig     `yaml:"chat"`
		Keyboard      KeyboardConfig `yaml:"keyboard"`
		Relay         RelayConfig    `yaml:"relay"`
	}
	return yaml.Marshal(plain{
		Theme:         c.Theme,
		Locale:        c.Locale,
		LogLevel:      c.LogLevel,
		LogPath:       c.LogPath,
		Notifications: c.Notifications,
		User:          c.User,
		Chat:          c.Chat,
		Keyboard:      c.Keyboard,
		Relay:         c.Relay,
	})
}

// YAML returns the effective configuration as YAML.
func (c *Config) YAML() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, err := c.marshal()
	return string(data), err
}

// GetTheme returns the theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notifications
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Notifications = enabled
}

// LocalUser returns the configured participant.
func (c *Config) LocalUser() message.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return message.User{ID: c.User.ID, Name: c.User.Name}
}

// WidgetOptions maps the config onto chat widget options. Callbacks and
// messages are left for the host to fill in.
func (c *Config) WidgetOptions() ui.Options {
	c.mu.RLock()
	defer c.mu.RUnlock()

	opts := ui.TerminalOptions()
	opts.User = message.User{ID: c.User.ID, Name: c.User.Name}
	opts.Locale = c.Locale

	ch := c.Chat
	opts.Placeholder = ch.Placeholder
	opts.TimeFormat = ch.TimeFormat
	opts.DateFormat = ch.DateFormat
	opts.Inverted = ch.Inverted
	opts.Animated = ch.Animated
	opts.AlwaysShowSend = ch.AlwaysShowSend
	opts.ShowUserAvatar = ch.ShowUserAvatar
	opts.ShowAvatarForEveryMessage = ch.ShowAvatarForEveryMessage
	opts.RenderAvatarOnTop = ch.RenderAvatarOnTop
	opts.MinInputToolbarHeight = ch.MinInputToolbarHeight
	opts.MinComposerHeight = ch.MinComposerHeight
	opts.MaxComposerHeight = ch.MaxComposerHeight
	opts.MaxInputLength = ch.MaxInputLength
	opts.BottomOffset = ch.BottomOffset

	kb := c.Keyboard
	if p, err := layout.ParsePlatform(kb.Platform); err == nil {
		opts.Platform = p
	}
	opts.ForceKeyboardHeight = kb.ForceKeyboardHeight
	opts.HasHomeIndicator = kb.HasHomeIndicator
	opts.SafeAreaInset = kb.SafeAreaInset
	return opts
}
