package cmd

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/chatpane/internal/app"
	"github.com/zhubert/chatpane/internal/config"
	"github.com/zhubert/chatpane/internal/logger"
	"github.com/zhubert/chatpane/internal/relay"
	"github.com/zhubert/chatpane/internal/ui"
)

var (
	configPath            string
	relayURL              string
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "chatpane",
	Short: "Terminal chat widget with keyboard-aware layout",
	Long: `Chatpane is a terminal chat with a composer that grows as you type and a
simulated on-screen keyboard (ctrl+k) that the message list makes room for.

Without --relay it talks to a local echo bot; with --relay it joins a
websocket relay.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.chatpane/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&relayURL, "relay", "", "Websocket relay URL (overrides relay.url)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("chatpane %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("chatpane %s\n", version)
}

// loadConfig loads the config and applies logging settings from it. Flags
// win over the file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if err := logger.Init(cfg.LogPath); err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	if !debugMode && !quietMode {
		logger.SetLevel(logger.ParseLevel(cfg.LogLevel))
	}
	ui.SetThemeByName(cfg.GetTheme())
	return cfg, nil
}

// connectPeer dials the relay when one is configured and falls back to the
// echo bot otherwise.
func connectPeer(ctx context.Context, cfg *config.Config) (app.Peer, error) {
	url := cfg.Relay.URL
	if relayURL != "" {
		url = relayURL
	}
	if url == "" {
		return app.NewEchoBot(), nil
	}

	if cfg.Relay.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Relay.DialTimeout)
		defer cancel()
	}
	client, err := relay.Dial(ctx, url)
	if err != nil {
		return nil, err
	}
	return app.NewRelayPeer(client), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Close()

	peer, err := connectPeer(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("error connecting to relay: %w", err)
	}

	m := app.New(cfg, peer)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
