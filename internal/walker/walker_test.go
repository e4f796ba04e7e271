package walker

import (
	"strings"
	"testing"

	"github.com/jakoblorz/go-ngscaffold/internal/filesystem"
	"github.com/jakoblorz/go-ngscaffold/internal/prompt"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T) *filesystem.MockFileSystem {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/workspace/src/app/core/http")
	fs.AddDir("/workspace/src/app/shared")
	fs.AddDir("/workspace/src/environments")
	fs.AddDir("/workspace/src/assets/img")
	fs.AddDir("/workspace/src/sass")
	fs.AddDir("/workspace/src/node_modules")
	fs.AddFile("/workspace/src/main.ts", []byte("bootstrap()"))
	return fs
}

func choiceValues(spec prompt.Spec) []string {
	values := make([]string, 0, len(spec.Choices))
	for _, c := range spec.Choices {
		values = append(values, c.Value)
	}
	return values
}

func TestWalk_MenuContents(t *testing.T) {
	fs := newTree(t)
	asker := prompt.NewMockAsker("")
	w := New(fs, prompt.NewPrompter(asker), WithIgnore(func(path string, isDir bool) bool {
		return strings.HasSuffix(path, "/node_modules")
	}))

	path, err := w.Walk("/workspace/src", nil)
	require.NoError(t, err)
	require.Empty(t, path.Segments)

	require.Len(t, asker.Asked, 1)
	spec := asker.Asked[0]
	require.Equal(t, prompt.KindSelect, spec.Kind)
	require.Equal(t, Key, spec.Key)
	require.Equal(t, []string{Up, "app", "environments", ""}, choiceValues(spec))
	require.Equal(t, SelectLabel, spec.Choices[len(spec.Choices)-1].Label)
}

func TestWalk_Descends(t *testing.T) {
	fs := newTree(t)
	asker := prompt.NewMockAsker("app", "core", "")
	w := New(fs, prompt.NewPrompter(asker))

	path, err := w.Walk("/workspace/src", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"app", "core"}, path.Segments)
	require.Equal(t, "app/core/", path.String())

	require.Len(t, asker.Asked, 3)
	require.Equal(t, []string{Up, "core", "shared", ""}, choiceValues(asker.Asked[1]))
	require.Equal(t, []string{Up, "http", ""}, choiceValues(asker.Asked[2]))
	require.Equal(t, []string{"/workspace/src", "/workspace/src/app", "/workspace/src/app/core"}, fs.ReadDirCalls())
}

func TestWalk_Up(t *testing.T) {
	t.Run("pops the last segment", func(t *testing.T) {
		fs := newTree(t)
		asker := prompt.NewMockAsker("app", "core", Up, "shared", "")
		path, err := New(fs, prompt.NewPrompter(asker)).Walk("/workspace/src", nil)
		require.NoError(t, err)
		require.Equal(t, []string{"app", "shared"}, path.Segments)
		require.Equal(t, "/workspace/src/app", fs.ReadDirCalls()[3])
	})

	t.Run("stays at the root", func(t *testing.T) {
		fs := newTree(t)
		asker := prompt.NewMockAsker(Up, Up, "")
		path, err := New(fs, prompt.NewPrompter(asker)).Walk("/workspace/src", nil)
		require.NoError(t, err)
		require.Empty(t, path.Segments)
		require.Equal(t, []string{"/workspace/src", "/workspace/src", "/workspace/src"}, fs.ReadDirCalls())
	})
}

func TestWalk_MissingRoot(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	asker := prompt.NewMockAsker("")

	path, err := New(fs, prompt.NewPrompter(asker)).Walk("/workspace/src", nil)
	require.NoError(t, err)
	require.Empty(t, path.Segments)
	require.Equal(t, []string{Up, ""}, choiceValues(asker.Asked[0]))
}

func TestWalk_ModuleOverride(t *testing.T) {
	t.Run("resolves every level to one segment", func(t *testing.T) {
		fs := filesystem.NewMockFileSystem()
		fs.AddDir("/workspace/src/widgets/widgets/widgets")
		asker := prompt.NewMockAsker()

		path, err := New(fs, prompt.NewPrompter(asker)).Walk("/workspace/src", prompt.Overrides{Key: "widgets"})
		require.NoError(t, err)
		require.Equal(t, []string{"widgets"}, path.Segments)
		require.Empty(t, asker.Asked)
		require.Empty(t, fs.ReadDirCalls())
	})

	t.Run("value need not exist", func(t *testing.T) {
		fs := filesystem.NewMockFileSystem()
		path, err := New(fs, prompt.NewPrompter(nil)).Walk("/workspace/src", prompt.Overrides{Key: "widgets"})
		require.NoError(t, err)
		require.Equal(t, "widgets/", path.String())
	})

	t.Run("up selects the root", func(t *testing.T) {
		fs := newTree(t)
		path, err := New(fs, prompt.NewPrompter(nil)).Walk("/workspace/src", prompt.Overrides{Key: Up})
		require.NoError(t, err)
		require.Empty(t, path.Segments)
		require.Empty(t, fs.ReadDirCalls())
	})

	t.Run("nested value is split", func(t *testing.T) {
		path, err := New(filesystem.NewMockFileSystem(), prompt.NewPrompter(nil)).Walk("/workspace/src", prompt.Overrides{Key: "app/./core/"})
		require.NoError(t, err)
		require.Equal(t, []string{"app", "core"}, path.Segments)
		require.Equal(t, "app/core/", path.String())
	})

	t.Run("values leaving the root are rejected", func(t *testing.T) {
		for _, value := range []string{"..", "../app", "app/../../etc", "/etc"} {
			_, err := New(filesystem.NewMockFileSystem(), prompt.NewPrompter(nil)).Walk("/workspace/src", prompt.Overrides{Key: value})
			require.ErrorIs(t, err, ErrOutsideRoot, "value %q", value)
		}
	})

	t.Run("empty override selects the root", func(t *testing.T) {
		fs := newTree(t)
		path, err := New(fs, prompt.NewPrompter(nil)).Walk("/workspace/src", prompt.Overrides{Key: ""})
		require.NoError(t, err)
		require.Empty(t, path.Segments)
		require.Equal(t, "", path.String())
	})
}

func TestWalk_CustomExclude(t *testing.T) {
	fs := newTree(t)
	asker := prompt.NewMockAsker("")

	_, err := New(fs, prompt.NewPrompter(asker), WithExclude("environments")).Walk("/workspace/src", nil)
	require.NoError(t, err)
	require.Equal(t, []string{Up, "app", "assets", "node_modules", "sass", ""}, choiceValues(asker.Asked[0]))
}

func TestWalk_PromptFailure(t *testing.T) {
	fs := newTree(t)
	asker := prompt.NewMockAsker().FailWith(prompt.ErrNonInteractive)

	_, err := New(fs, prompt.NewPrompter(asker)).Walk("/workspace/src", nil)
	require.ErrorIs(t, err, prompt.ErrNonInteractive)

	var unresolvable *prompt.UnresolvableError
	require.ErrorAs(t, err, &unresolvable)
	require.Equal(t, Key, unresolvable.Key)
}

func TestWalk_RootIsAFile(t *testing.T) {
	fs := newTree(t)
	_, err := New(fs, prompt.NewPrompter(prompt.NewMockAsker(""))).Walk("/workspace/src/main.ts", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to list")
}

func TestWalk_FollowsSymlinkedDirectories(t *testing.T) {
	fs := newTree(t)
	fs.AddDir("/workspace/libs/ui/buttons")
	fs.AddSymlink("/workspace/src/ui", "../libs/ui")
	fs.AddSymlink("/workspace/src/broken", "/workspace/missing")
	fs.AddSymlink("/workspace/src/readme", "main.ts")

	asker := prompt.NewMockAsker("ui", "buttons", "")
	path, err := New(fs, prompt.NewPrompter(asker)).Walk("/workspace/src", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"ui", "buttons"}, path.Segments)

	require.Equal(t, []string{Up, "app", "environments", "node_modules", "ui", ""}, choiceValues(asker.Asked[0]))
	require.Equal(t, []string{Up, "buttons", ""}, choiceValues(asker.Asked[1]))
}
