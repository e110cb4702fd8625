package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Pandoc renders the serialized document to the output file. The output
// format follows from the file extension, the way pandoc resolves it.
type Pandoc struct {
	command string
}

func NewPandoc() *Pandoc {
	return &Pandoc{command: "pandoc"}
}

func (p *Pandoc) Render(ctx context.Context, source []byte, outputPath string) error {
	cmd := exec.CommandContext(ctx, p.command,
		"-f", "markdown", "--standalone", "-o", outputPath)
	cmd.Stdin = bytes.NewReader(source)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("pandoc failed: %w: %s", err, msg)
		}
		return fmt.Errorf("pandoc failed: %w", err)
	}

	return nil
}
