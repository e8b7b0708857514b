package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/chatpane/internal/demo"
	"github.com/zhubert/chatpane/internal/demo/scenarios"
	"github.com/zhubert/chatpane/internal/errors"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
	demoTitle      string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate demo recordings of the chat widget",
	Long: `Generate demo recordings of the chat widget for documentation and presentations.

A scenario is either a built-in name or a path to a YAML scenario file.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and output to stdout (for testing)
  cast      - Generate an asciinema cast file`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available demo scenarios:")
		fmt.Fprintln(out)
		for _, s := range scenarios.All() {
			fmt.Fprintf(out, "  %-15s %s\n", s.Name, s.Description)
		}
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and output to stdout (for testing)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoRun,
}

var demoCastCmd = &cobra.Command{
	Use:   "cast <scenario>",
	Short: "Generate an asciinema cast file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoCast,
}

func init() {
	for _, cmd := range []*cobra.Command{demoRunCmd, demoCastCmd} {
		cmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file")
		cmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Terminal width (default from the scenario)")
		cmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (default from the scenario)")
		cmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	}
	demoCastCmd.Flags().StringVar(&demoTitle, "title", "", "Cast title (default the scenario description)")

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	demoCmd.AddCommand(demoCastCmd)
	rootCmd.AddCommand(demoCmd)
}

// isScenarioFile reports whether arg names a YAML file rather than a
// built-in scenario.
func isScenarioFile(arg string) bool {
	return strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml")
}

func getScenario(name string) (*demo.Scenario, error) {
	var scenario *demo.Scenario
	if isScenarioFile(name) {
		s, err := demo.Load(name)
		if err != nil {
			return nil, err
		}
		scenario = s
	} else {
		scenario = scenarios.Get(name)
		if scenario == nil {
			return nil, fmt.Errorf("%w\nRun 'chatpane demo list' to see available scenarios", errors.ScenarioNotFound(name))
		}
	}

	// Override dimensions if specified
	if demoWidth > 0 {
		scenario.Width = demoWidth
	}
	if demoHeight > 0 {
		scenario.Height = demoHeight
	}

	return scenario, nil
}

func executeScenario(scenario *demo.Scenario) ([]demo.Frame, error) {
	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll

	executor := demo.NewExecutor(execCfg)
	return executor.Run(scenario)
}

// outputName derives the default output file from the scenario argument.
func outputName(arg, ext string) string {
	if demoOutput != "" {
		return demoOutput
	}
	base := strings.TrimSuffix(strings.TrimSuffix(arg, ".yaml"), ".yml")
	return base + ext
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	out := cmd.OutOrStdout()
	if demoOutput != "" {
		f, err := os.Create(demoOutput)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	fmt.Fprintf(out, "Captured %d frames\n", len(frames))
	for i, f := range frames {
		fmt.Fprintf(out, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(out, "Annotation: %s\n", f.Annotation)
		}
		fmt.Fprintln(out, f.Content)
	}

	return nil
}

func runDemoCast(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	outputFile := outputName(args[0], ".cast")
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	title := demoTitle
	if title == "" {
		title = scenario.Description
	}
	if err := demo.WriteCast(f, frames, scenario.Width, scenario.Height, demo.CastOptions{Title: title}); err != nil {
		return fmt.Errorf("error generating cast file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d frames)\n", outputFile, len(frames))
	fmt.Fprintf(cmd.OutOrStdout(), "Play with: asciinema play %s\n", outputFile)

	return nil
}
