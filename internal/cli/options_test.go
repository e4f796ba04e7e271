package cli

import (
	"testing"

	"github.com/jakoblorz/go-ngscaffold/internal/prompt"
	"github.com/jakoblorz/go-ngscaffold/internal/resolver"
	"github.com/jakoblorz/go-ngscaffold/internal/walker"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func parseServiceFlags(t *testing.T, args ...string) ServiceOptions {
	t.Helper()

	cmd := &cobra.Command{Use: "service"}
	(&ServiceCommand{}).bindFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))

	opts, err := serviceOptionsFromCmd(cmd)
	require.NoError(t, err)
	return opts
}

func TestServiceOptionsFromCmd(t *testing.T) {
	t.Run("unset flags are not overrides", func(t *testing.T) {
		opts := parseServiceFlags(t)
		require.Nil(t, opts.Dest)
		require.Nil(t, opts.Module)
		require.Nil(t, opts.Name)
		require.False(t, opts.VulgarCLI)
		require.False(t, opts.Force)
		require.Empty(t, opts.Overrides())
	})

	t.Run("explicit empty values are overrides", func(t *testing.T) {
		opts := parseServiceFlags(t, "--module=", "--name", "")
		require.Equal(t, prompt.Overrides{walker.Key: "", resolver.NameKey: ""}, opts.Overrides())
	})

	t.Run("all flags", func(t *testing.T) {
		opts := parseServiceFlags(t, "--dest", "custom/path/", "--module", "widgets", "--name", "Foo", "--vulgarcli", "--force")
		require.True(t, opts.VulgarCLI)
		require.True(t, opts.Force)
		require.Equal(t, prompt.Overrides{
			resolver.DestKey: "custom/path/",
			walker.Key:       "widgets",
			resolver.NameKey: "Foo",
		}, opts.Overrides())
	})
}
