package cli

import (
	"fmt"
	"os"

	"github.com/jakoblorz/go-ngscaffold/internal/filesystem"
	"github.com/jakoblorz/go-ngscaffold/internal/output"
	"github.com/jakoblorz/go-ngscaffold/internal/prompt"
	"github.com/jakoblorz/go-ngscaffold/internal/tui"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, asker prompt.Asker, exit func(int)) *cobra.Command {
	root := &ServiceCommand{fs: fs, asker: asker, exit: exit}

	rootCmd := &cobra.Command{
		Use:   "ngscaffold",
		Short: "Scaffold Angular artifacts into an existing project",
		Long: `An interactive generator for Angular projects.

It walks you through the module tree below the modules root, asks for a
name and writes the artifact together with its test file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Default to `ngscaffold service` when no subcommand is provided.
		RunE: root.Run,
	}

	root.bindFlags(rootCmd)
	rootCmd.AddCommand(NewServiceCommand(fs, asker, exit))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	asker := prompt.NewHuhAsker(tui.NewHuhTheme())

	return execute(NewRootCommand(fs, asker, os.Exit))
}

func execute(rootCmd *cobra.Command) error {
	if err := rootCmd.Execute(); err != nil {
		output.Error("command failed", "err", err)
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
