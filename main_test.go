package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"

	"github.com/CrestNiraj12/netfeed/domain"
)

func init() {
	homedir.DisableCache = true
}

func TestResolveVersionInfo(t *testing.T) {
	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v1.2.3", map[string]string{
		"vcs.revision": "0123456789abcdef",
		"vcs.time":     "2025-01-02T03:04:05Z",
	})
	if v != "v1.2.3" || c != "0123456789ab" || d != "2025-01-02T03:04:05Z" {
		t.Fatalf("unexpected resolved info: %q %q %q", v, c, d)
	}

	v, c, d = resolveVersionInfo("v9", "abc", "today", "(devel)", nil)
	if v != "v9" || c != "abc" || d != "today" {
		t.Fatalf("ldflags values must win: %q %q %q", v, c, d)
	}
}

func TestBuildSettingsMap(t *testing.T) {
	m := buildSettingsMap([]debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}})
	if m["vcs.revision"] != "abc" {
		t.Fatalf("unexpected settings map: %#v", m)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"login", "logout", "register", "render", "post", "version"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NETFEED_SESSION_PATH", home+"/session.json")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderCmd_RejectsInvalidView(t *testing.T) {
	_, err := execute(t, "", "render", "--view", "bogus")
	if !errors.Is(err, domain.ErrInvalidView) {
		t.Fatalf("expected ErrInvalidView, got %v", err)
	}
	_, err = execute(t, "", "render", "--page", "0")
	if !errors.Is(err, domain.ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}
}

func TestRenderCmd_WritesHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts/all/" || r.URL.Query().Get("page") != "1" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"posts": []map[string]any{{
				"id":        1,
				"author":    map[string]any{"id": 2, "username": "ana"},
				"content":   "first post",
				"timestamp": "Mar 04 2025, 01:30 PM",
			}},
			"current_page": 1,
			"num_pages":    1,
		})
	}))
	defer srv.Close()

	out, err := execute(t, "", "render", "--server", srv.URL)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "first post") || !strings.Contains(out, `id="page_nav"`) {
		t.Fatalf("unexpected html:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "feed.html")
	out, err = execute(t, "", "render", "--server", srv.URL, "--out", path)
	if err != nil {
		t.Fatalf("render --out: %v", err)
	}
	if strings.Contains(out, "first post") {
		t.Fatalf("--out must not also write to stdout")
	}
	data, err := os.ReadFile(path)
	if err != nil || !strings.Contains(string(data), "first post") {
		t.Fatalf("expected html in %s: %v\n%s", path, err, data)
	}
}

func TestWriteOutput_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-dir", "feed.html")
	err := writeOutput(io.Discard, missing, func(io.Writer) error {
		t.Fatalf("render must not run without an output file")
		return nil
	})
	if err == nil || !strings.Contains(err.Error(), "creating") {
		t.Fatalf("expected create error, got %v", err)
	}

	errRender := errors.New("template failed")
	path := filepath.Join(t.TempDir(), "feed.html")
	err = writeOutput(io.Discard, path, func(io.Writer) error { return errRender })
	if !errors.Is(err, errRender) {
		t.Fatalf("render error must be returned, got %v", err)
	}

	var buf bytes.Buffer
	if err := writeOutput(&buf, "", func(w io.Writer) error {
		_, err := io.WriteString(w, "<html>")
		return err
	}); err != nil || buf.String() != "<html>" {
		t.Fatalf("empty path must write to stdout: %v %q", err, buf.String())
	}
}

func TestPostCmd_SendsStdin(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/new" {
			http.NotFound(w, r)
			return
		}
		var body struct {
			Content string `json:"content"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		got = body.Content
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message": "Post created successfully."}`))
	}))
	defer srv.Close()

	if _, err := execute(t, "from stdin\n", "post", "--server", srv.URL); err != nil {
		t.Fatalf("post: %v", err)
	}
	if got != "from stdin" {
		t.Fatalf("unexpected posted content: %q", got)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil || !strings.HasPrefix(out, "NetFeed ") {
		t.Fatalf("unexpected version output %q (%v)", out, err)
	}
}
