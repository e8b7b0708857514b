package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/chatpane/internal/config"
	"github.com/zhubert/chatpane/internal/logger"
)

var cleanSkipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the chatpane log file",
	Long: `Removes the log file named by log_path in the config
(default /tmp/chatpane-debug.log).

Prompts for confirmation unless --yes is given.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout())
}

// runCleanWithReader is the testable version of runClean that accepts an input reader
func runCleanWithReader(input io.Reader, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if _, err := os.Stat(cfg.LogPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintf(out, "Log file: %s\n\n", cfg.LogPath)

	if !cleanSkipConfirm {
		if !confirm(input, out, "Remove log file?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	// The logger may hold the file open.
	if logger.Path() == cfg.LogPath {
		logger.Close()
	}

	n, err := logger.ClearLogs(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("failed to remove log file: %w", err)
	}
	fmt.Fprintf(out, "Removed %d log file(s).\n", n)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
