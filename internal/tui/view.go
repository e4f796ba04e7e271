package tui

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/go-ngscaffold/internal/naming"
	"github.com/jakoblorz/go-ngscaffold/internal/scaffold"
)

// RenderSuccess renders a summary after the files were written.
func RenderSuccess(names naming.Forms, result *scaffold.Result) string {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render(fmt.Sprintf("✓ Created %s", names.Type)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Wrote %d file(s) to %s:\n", len(result.Files), result.Destination))
	for _, file := range result.Files {
		b.WriteString("  ")
		b.WriteString(PathStyle.Render(file))
		b.WriteString("\n")
	}

	return b.String()
}
