package cli

import (
	"github.com/jakoblorz/go-ngscaffold/internal/prompt"
	"github.com/jakoblorz/go-ngscaffold/internal/resolver"
	"github.com/jakoblorz/go-ngscaffold/internal/walker"
	"github.com/spf13/cobra"
)

const (
	destFlag      = "dest"
	moduleFlag    = "module"
	nameFlag      = "name"
	vulgarCLIFlag = "vulgarcli"
	forceFlag     = "force"
	configFlag    = "config"
	projectFlag   = "project"
	verboseFlag   = "verbose"
)

// ServiceOptions are the parsed command line options. A nil override was not
// given on the command line; a non-nil empty string was given as "".
type ServiceOptions struct {
	Dest   *string
	Module *string
	Name   *string

	// VulgarCLI keeps the process alive after scaffolding so an embedding
	// tool can chain further commands.
	VulgarCLI bool
	Force     bool
}

// Overrides returns the prompt answers fixed by the options.
func (o ServiceOptions) Overrides() prompt.Overrides {
	overrides := prompt.Overrides{}
	if o.Dest != nil {
		overrides[resolver.DestKey] = *o.Dest
	}
	if o.Module != nil {
		overrides[walker.Key] = *o.Module
	}
	if o.Name != nil {
		overrides[resolver.NameKey] = *o.Name
	}
	return overrides
}

// serviceOptionsFromCmd reads the flags of cmd. Overrides are only set for
// flags that were passed explicitly.
func serviceOptionsFromCmd(cmd *cobra.Command) (ServiceOptions, error) {
	var opts ServiceOptions
	flags := cmd.Flags()

	for name, target := range map[string]**string{
		destFlag:   &opts.Dest,
		moduleFlag: &opts.Module,
		nameFlag:   &opts.Name,
	} {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return ServiceOptions{}, err
		}
		*target = &value
	}

	var err error
	if opts.VulgarCLI, err = flags.GetBool(vulgarCLIFlag); err != nil {
		return ServiceOptions{}, err
	}
	if opts.Force, err = flags.GetBool(forceFlag); err != nil {
		return ServiceOptions{}, err
	}

	return opts, nil
}
