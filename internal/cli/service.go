package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jakoblorz/go-ngscaffold/internal/config"
	"github.com/jakoblorz/go-ngscaffold/internal/filesystem"
	"github.com/jakoblorz/go-ngscaffold/internal/output"
	"github.com/jakoblorz/go-ngscaffold/internal/project"
	"github.com/jakoblorz/go-ngscaffold/internal/prompt"
	"github.com/jakoblorz/go-ngscaffold/internal/resolver"
	"github.com/jakoblorz/go-ngscaffold/internal/scaffold"
	"github.com/jakoblorz/go-ngscaffold/internal/tui"
	"github.com/jakoblorz/go-ngscaffold/internal/walker"
	"github.com/spf13/cobra"
)

// ServiceCommand handles the service command
type ServiceCommand struct {
	fs    filesystem.FileSystem
	asker prompt.Asker
	exit  func(int)
}

// NewServiceCommand creates a new service command. exit is called with 0
// after a successful run unless --vulgarcli is set; nil means os.Exit.
func NewServiceCommand(fs filesystem.FileSystem, asker prompt.Asker, exit func(int)) *cobra.Command {
	cmd := &ServiceCommand{fs: fs, asker: asker, exit: exit}

	cobraCmd := &cobra.Command{
		Use:   "service",
		Short: "Create a new Angular service",
		Long: `Create a new Angular service and its test file.

Pick the target module interactively or pass --dest or --module, and pass
--name to skip the name prompt.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cmd.bindFlags(cobraCmd)

	return cobraCmd
}

func (c *ServiceCommand) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String(destFlag, "", "Destination directory, skips the module walk")
	flags.String(moduleFlag, "", "Module directory below the modules root, skips the module walk")
	flags.String(nameFlag, "", "Name of the service")
	flags.Bool(vulgarCLIFlag, false, "Return instead of exiting after scaffolding")
	flags.Bool(forceFlag, false, "Overwrite existing files")
	flags.String(configFlag, "", "Config file (default <project>/"+project.ConfigFileName+")")
	flags.String(projectFlag, "", "Directory to search for the project root from (default current directory)")
	flags.BoolP(verboseFlag, "v", false, "Enable debug logging")

	_ = flags.MarkHidden(vulgarCLIFlag)
}

// Run executes the service command
func (c *ServiceCommand) Run(cmd *cobra.Command, args []string) error {
	opts, err := serviceOptionsFromCmd(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool(verboseFlag)
	output.SetupLoggingTo(cmd.ErrOrStderr(), verbose)

	projectDir, _ := cmd.Flags().GetString(projectFlag)
	proj, err := project.Detect(c.fs, projectDir)
	if err != nil {
		return fmt.Errorf("failed to detect project: %w", err)
	}
	output.Debug("detected project", "root", proj.RootPath, "marker", proj.Marker)

	configFile, _ := cmd.Flags().GetString(configFlag)
	cfg, err := c.loadConfig(proj, configFile)
	if err != nil {
		return err
	}

	state, err := c.newResolver(proj, cfg).Resolve(opts.Overrides())
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			output.Info("aborted, nothing was written")
			return nil
		}
		return err
	}

	destination := proj.Resolve(state.Destination)
	output.Debug("resolved scaffold", "destination", destination, "name", state.Names.Canonical)

	writer := scaffold.NewWriter(c.fs, scaffold.NewRenderer(scaffold.ServiceTemplates), opts.Force)
	result, err := writer.Write(destination, scaffold.NewData(state.Names, cfg.Suffix))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", state.Names.Slug, err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSuccess(state.Names, result))

	if !opts.VulgarCLI {
		c.exitWith(0)
	}

	return nil
}

func (c *ServiceCommand) loadConfig(proj *project.Project, configFile string) (*config.Config, error) {
	loader := config.NewLoader()

	if configFile == "" {
		path, ok := proj.ConfigPath()
		if !ok {
			return loader.Load()
		}
		configFile = path
	}

	data, err := c.fs.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	output.Debug("loading config", "path", configFile)
	return loader.LoadData(configFile, data)
}

func (c *ServiceCommand) newResolver(proj *project.Project, cfg *config.Config) *resolver.Resolver {
	p := prompt.NewPrompter(c.asker)

	options := []walker.Option{walker.WithExclude(cfg.Exclude...)}
	if cfg.RespectGitignore {
		options = append(options, walker.WithIgnore(proj.Ignored))
	}

	return resolver.New(
		walker.New(c.fs, p, options...),
		p,
		proj.Resolve(cfg.ModulesRoot),
		cfg.DefaultName,
	)
}

func (c *ServiceCommand) exitWith(code int) {
	if c.exit == nil {
		os.Exit(code)
	}
	c.exit(code)
}
