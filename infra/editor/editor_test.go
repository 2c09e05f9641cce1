package editor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestCmd_UsesEditorAndWritesTemplate(t *testing.T) {
	t.Setenv("EDITOR", "cat -n")
	e := NewEnvEditor()

	cmd, path, err := e.Cmd("hello", "Edit your post")
	if err != nil {
		t.Fatalf("cmd failed: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })
	if len(cmd.Args) != 3 || cmd.Args[1] != "-n" || cmd.Args[2] != path {
		t.Fatalf("expected editor args split with file last: %#v", cmd.Args)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read temp file failed: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "Edit your post below") || !strings.HasSuffix(text, "hello") {
		t.Fatalf("unexpected template content: %q", text)
	}
}

func TestReadContent_StripsInstructionAndDeletesFile(t *testing.T) {
	e := NewEnvEditor()
	f, err := os.CreateTemp("", "netfeed-test-*.md")
	if err != nil {
		t.Fatalf("create temp failed: %v", err)
	}
	path := f.Name()
	_, _ = f.WriteString(fmt.Sprintf(instructionComment, "Write your post") + "\nline1\nline2\n")
	_ = f.Close()

	content, err := e.ReadContent(path)
	if err != nil {
		t.Fatalf("read content failed: %v", err)
	}
	if content != "line1\nline2" {
		t.Fatalf("unexpected content: %q", content)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be deleted")
	}
}

func TestCompose_UnchangedContentCancels(t *testing.T) {
	// "true" exits without touching the file.
	t.Setenv("EDITOR", "true")
	got, err := NewEnvEditor().Compose(context.Background(), "draft")
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if got != "" {
		t.Fatalf("unchanged content must cancel, got %q", got)
	}
}
