package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupLoggingTo(t *testing.T) {
	orig := Logger
	defer func() { Logger = orig }()

	t.Run("debug hidden by default", func(t *testing.T) {
		var buf bytes.Buffer
		SetupLoggingTo(&buf, false)

		Debug("walking", "root", "src")
		Info("created", "file", "foo.service.ts")

		out := buf.String()
		require.NotContains(t, out, "walking")
		require.Contains(t, out, "created")
		require.Contains(t, out, "foo.service.ts")
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		SetupLoggingTo(&buf, true)

		Debug("walking", "root", "src")
		require.Contains(t, buf.String(), "walking")
	})
}
