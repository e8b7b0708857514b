package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/chatpane/internal/app"
	"github.com/zhubert/chatpane/internal/config"
	"github.com/zhubert/chatpane/internal/demo"
	"github.com/zhubert/chatpane/internal/errors"
)

func TestDebugFlagDefaultFalse(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "false")
	}
}

func TestFlagsExist(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		local     bool
	}{
		{"quiet", "q", false},
		{"config", "c", false},
		{"relay", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := rootCmd.PersistentFlags()
			if tt.local {
				flags = rootCmd.Flags()
			}
			flag := flags.Lookup(tt.name)
			if flag == nil {
				t.Fatalf("--%s flag not found", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("--%s shorthand = %q, want %q", tt.name, flag.Shorthand, tt.shorthand)
			}
		})
	}
}

func TestInitConfig_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	debugMode = true
	quietMode = true

	// Should not panic - quiet should take precedence
	initConfig()
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer SetVersionInfo(origV, origC, origD)

	SetVersionInfo("1.2.3", "none", "")
	if got := versionTemplate(); got != "chatpane 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	if got := versionTemplate(); !strings.Contains(got, "commit: abc123") {
		t.Errorf("versionTemplate() = %q, want commit line", got)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, path := range [][]string{{"demo", "list"}, {"demo", "run"}, {"demo", "cast"}, {"config", "show"}, {"config", "init"}, {"clean", "clean"}} {
		cmd, _, err := rootCmd.Find(path)
		if err != nil || cmd.Name() != path[1] {
			t.Errorf("subcommand %v not found", path)
		}
	}
}

func TestGetScenario(t *testing.T) {
	origW, origH := demoWidth, demoHeight
	defer func() { demoWidth, demoHeight = origW, origH }()
	demoWidth, demoHeight = 0, 0

	if _, err := getScenario("basic"); err != nil {
		t.Errorf("getScenario(basic) error = %v", err)
	}
	_, err := getScenario("nope")
	if !errors.Is(err, errors.KindNotFound) {
		t.Errorf("getScenario(nope) error = %v, want a not-found error", err)
	}

	path := filepath.Join(t.TempDir(), "hello.yaml")
	yaml := "name: hello\nsteps:\n  - action: send\n    text: hi\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	demoWidth = 40
	var s *demo.Scenario
	s, err = getScenario(path)
	if err != nil {
		t.Fatalf("getScenario(file) error = %v", err)
	}
	if s.Name != "hello" || s.Width != 40 {
		t.Errorf("scenario = %q width %d", s.Name, s.Width)
	}
}

func TestOutputName(t *testing.T) {
	orig := demoOutput
	defer func() { demoOutput = orig }()

	demoOutput = ""
	if got := outputName("demos/hello.yaml", ".cast"); got != "demos/hello.cast" {
		t.Errorf("outputName = %q", got)
	}
	demoOutput = "out.cast"
	if got := outputName("basic", ".cast"); got != "out.cast" {
		t.Errorf("outputName = %q, want the --output value", got)
	}
}

func TestDemoList(t *testing.T) {
	var buf bytes.Buffer
	demoListCmd.SetOut(&buf)
	defer demoListCmd.SetOut(nil)

	demoListCmd.Run(demoListCmd, nil)
	for _, name := range []string{"basic", "keyboard", "composer", "quick-replies"} {
		if !strings.Contains(buf.String(), name) {
			t.Errorf("list output missing %q:\n%s", name, buf.String())
		}
	}
}

func TestConnectPeer_EchoWithoutRelay(t *testing.T) {
	orig := relayURL
	defer func() { relayURL = orig }()
	relayURL = ""

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: dark-purple\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	peer, err := connectPeer(t.Context(), cfg)
	if err != nil {
		t.Fatalf("connectPeer() error = %v", err)
	}
	if _, ok := peer.(*app.EchoBot); !ok {
		t.Errorf("peer = %T, want *app.EchoBot", peer)
	}
}
