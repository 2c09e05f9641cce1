package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvEditor prepares an external editor command using $EDITOR (fallback: "vi").
// Cmd does NOT run the editor itself; the TUI hands the returned *exec.Cmd
// to tea.ExecProcess so Bubble Tea suspends raw terminal mode.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

const instructionComment = `<!--
NetFeed: %s below.

- SAVE and EXIT to submit (e.g., :wq in vi).
- Emptying the file or making NO CHANGES will cancel.
-->

`

// Cmd prepares an *exec.Cmd for the editor and a temp file path.
// purpose fills the instruction header, e.g. "Write your post".
func (e *EnvEditor) Cmd(content, purpose string) (*exec.Cmd, string, error) {
	editorCmd := strings.TrimSpace(os.Getenv("EDITOR"))
	if editorCmd == "" {
		editorCmd = "vi"
	}
	if strings.TrimSpace(purpose) == "" {
		purpose = "Write your post"
	}

	tmpFile, err := os.CreateTemp("", "netfeed-*.md")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(fmt.Sprintf(instructionComment, purpose) + content); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	parts := strings.Fields(editorCmd)
	args := append(parts[1:], tmpPath)
	cmd := exec.Command(parts[0], args...)
	return cmd, tmpPath, nil
}

// ReadContent reads the temp file, trims whitespace, and removes the file.
// It strips the instruction comment before returning.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	content := string(data)
	if idx := strings.Index(content, "-->"); idx != -1 {
		content = content[idx+3:]
	}
	return strings.TrimSpace(content), nil
}

// Compose runs the editor attached to the current terminal and returns
// what was written. Used by the non-interactive `post` command.
func (e *EnvEditor) Compose(ctx context.Context, initial string) (string, error) {
	cmd, path, err := e.Cmd(initial, "Write your post")
	if err != nil {
		return "", err
	}
	run := exec.CommandContext(ctx, cmd.Path, cmd.Args[1:]...)
	run.Stdin, run.Stdout, run.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := run.Run(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("running editor: %w", err)
	}
	content, err := e.ReadContent(path)
	if err != nil {
		return "", err
	}
	if content == strings.TrimSpace(initial) {
		return "", nil
	}
	return content, nil
}
