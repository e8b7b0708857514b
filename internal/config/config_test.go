package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/chatpane/internal/errors"
	"github.com/zhubert/chatpane/internal/layout"
	"github.com/zhubert/chatpane/internal/ui"
)

// isolate points HOME and the working directory at an empty temp dir so the
// search path finds nothing.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "chatpane.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != string(ui.DefaultTheme) {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q", cfg.Locale)
	}
	if !cfg.Chat.Inverted || !cfg.Chat.Animated {
		t.Error("inverted and animated should default on")
	}
	if cfg.Chat.MinComposerHeight != ui.TerminalMinComposerHeight || cfg.Chat.MaxComposerHeight != ui.TerminalMaxComposerHeight {
		t.Errorf("composer heights = %d..%d", cfg.Chat.MinComposerHeight, cfg.Chat.MaxComposerHeight)
	}
	if cfg.Relay.DialTimeout != 5*time.Second {
		t.Errorf("DialTimeout = %v", cfg.Relay.DialTimeout)
	}
	if !strings.HasSuffix(cfg.Path(), filepath.Join(".chatpane", "config.yaml")) {
		t.Errorf("Path() = %q, want default path", cfg.Path())
	}
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
theme: nord
locale: fr
notifications: true
user:
  id: zoe
  name: Zoe
chat:
  inverted: false
  max_composer_height: 6
  max_input_length: 140
keyboard:
  platform: android
  height: 10
relay:
  url: ws://localhost:9000/ws
  dial_timeout: 2s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != "nord" || cfg.Locale != "fr" || !cfg.Notifications {
		t.Errorf("top level = %q %q %v", cfg.Theme, cfg.Locale, cfg.Notifications)
	}
	if cfg.User.ID != "zoe" || cfg.User.Name != "Zoe" {
		t.Errorf("User = %+v", cfg.User)
	}
	if cfg.Chat.Inverted {
		t.Error("inverted should be overridden")
	}
	if cfg.Chat.MaxComposerHeight != 6 || cfg.Chat.MaxInputLength != 140 {
		t.Errorf("Chat = %+v", cfg.Chat)
	}
	if cfg.Chat.MinComposerHeight != ui.TerminalMinComposerHeight {
		t.Error("unset keys should keep their defaults")
	}
	if cfg.Keyboard.Platform != "android" || cfg.Keyboard.Height != 10 {
		t.Errorf("Keyboard = %+v", cfg.Keyboard)
	}
	if cfg.Relay.URL != "ws://localhost:9000/ws" || cfg.Relay.DialTimeout != 2*time.Second {
		t.Errorf("Relay = %+v", cfg.Relay)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoad_SearchPath(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("theme: dracula\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q, want dracula from the working directory", cfg.Theme)
	}
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("CHATPANE_CHAT_MAX_COMPOSER_HEIGHT", "7")
	t.Setenv("CHATPANE_USER_NAME", "From Env")
	t.Setenv("CHATPANE_THEME", "light")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Chat.MaxComposerHeight != 7 {
		t.Errorf("MaxComposerHeight = %d, want 7", cfg.Chat.MaxComposerHeight)
	}
	if cfg.User.Name != "From Env" {
		t.Errorf("User.Name = %q", cfg.User.Name)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		if !errors.Is(err, errors.KindConfig) {
			t.Errorf("err = %v, want config error", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeConfig(t, dir, "theme: [unclosed\n")
		_, err := Load(path)
		if !errors.Is(err, errors.KindConfig) {
			t.Errorf("err = %v, want config error", err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, dir, "chat:\n  min_composer_height: 5\n  max_composer_height: 4\n")
		_, err := Load(path)
		if !errors.Is(err, errors.KindInvalid) {
			t.Errorf("err = %v, want invalid error", err)
		}
	})
}

func validConfig() *Config {
	return &Config{
		Theme: "nord",
		User:  UserConfig{ID: "me"},
		Chat: ChatConfig{
			MinInputToolbarHeight: 3,
			MinComposerHeight:     3,
			MaxComposerHeight:     8,
		},
		Keyboard: KeyboardConfig{Platform: "ios", Height: 8},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }, "unknown theme"},
		{"empty user", func(c *Config) { c.User.ID = "" }, "user.id"},
		{"zero toolbar", func(c *Config) { c.Chat.MinInputToolbarHeight = 0 }, "min_input_toolbar_height"},
		{"zero composer", func(c *Config) { c.Chat.MinComposerHeight = 0 }, "min_composer_height"},
		{"max below min", func(c *Config) { c.Chat.MaxComposerHeight = 2 }, "max_composer_height"},
		{"toolbar below composer", func(c *Config) { c.Chat.MinInputToolbarHeight = 2 }, "fit the composer"},
		{"negative input length", func(c *Config) { c.Chat.MaxInputLength = -1 }, "max_input_length"},
		{"negative keyboard", func(c *Config) { c.Keyboard.Height = -1 }, "keyboard.height"},
		{"unknown platform", func(c *Config) { c.Keyboard.Platform = "symbian" }, "unknown platform"},
		{"negative timeout", func(c *Config) { c.Relay.DialTimeout = -time.Second }, "dial_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
			if !errors.Is(err, errors.KindInvalid) {
				t.Errorf("Validate() kind = %v, want invalid", errors.GetKind(err))
			}
		})
	}
}

func TestWidgetOptions(t *testing.T) {
	c := validConfig()
	c.Locale = "de"
	c.User = UserConfig{ID: "u1", Name: "Una"}
	c.Chat.Inverted = false
	c.Chat.Animated = true
	c.Chat.MaxInputLength = 50
	c.Chat.Placeholder = "Say something"
	c.Keyboard.Platform = "android"
	c.Keyboard.ForceKeyboardHeight = true

	opts := c.WidgetOptions()
	if opts.User.ID != "u1" || opts.User.Name != "Una" {
		t.Errorf("User = %+v", opts.User)
	}
	if opts.Locale != "de" || opts.Placeholder != "Say something" {
		t.Errorf("Locale/Placeholder = %q/%q", opts.Locale, opts.Placeholder)
	}
	if opts.Inverted || !opts.Animated {
		t.Errorf("Inverted/Animated = %v/%v", opts.Inverted, opts.Animated)
	}
	if opts.MaxInputLength != 50 || opts.MinComposerHeight != 3 || opts.MaxComposerHeight != 8 {
		t.Errorf("limits = %d %d %d", opts.MaxInputLength, opts.MinComposerHeight, opts.MaxComposerHeight)
	}
	if opts.Platform != layout.PlatformAndroid || !opts.ForceKeyboardHeight {
		t.Errorf("Platform = %v force = %v", opts.Platform, opts.ForceKeyboardHeight)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.yaml")

	c := validConfig()
	c.Locale = "pt"
	c.Relay.DialTimeout = 3 * time.Second
	c.SetTheme("dracula")
	c.SetNotificationsEnabled(true)
	if err := c.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.GetTheme() != "dracula" || !loaded.GetNotificationsEnabled() || loaded.Locale != "pt" {
		t.Errorf("loaded = %q %v %q", loaded.GetTheme(), loaded.GetNotificationsEnabled(), loaded.Locale)
	}
	if loaded.Relay.DialTimeout != 3*time.Second {
		t.Errorf("DialTimeout = %v", loaded.Relay.DialTimeout)
	}
}

func TestSave_NoPath(t *testing.T) {
	c := validConfig()
	if err := c.Save(); !errors.Is(err, errors.KindInvalid) {
		t.Errorf("Save() error = %v, want invalid", err)
	}
}

func TestYAML(t *testing.T) {
	out, err := validConfig().YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	for _, want := range []string{"theme: nord", "max_composer_height: 8", "platform: ios"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML() missing %q:\n%s", want, out)
		}
	}
}
