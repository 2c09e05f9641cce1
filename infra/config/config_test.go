package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"

	"github.com/CrestNiraj12/netfeed/domain"
)

func init() {
	// Tests point HOME at temp dirs.
	homedir.DisableCache = true
}

func TestLoad_ParsesEnvAndDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NETFEED_SERVER", "https://network.example/")
	t.Setenv("NETFEED_HTTP_TIMEOUT", "3s")
	t.Setenv("NETFEED_DEBUG", "true")

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerURL != "https://network.example" {
		t.Fatalf("server must be normalized: %q", cfg.ServerURL)
	}
	if cfg.HTTPTimeout != 3*time.Second || !cfg.Debug {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	want := filepath.Join(home, ".config", "netfeed", "session.json")
	if cfg.SessionPath != want {
		t.Fatalf("unexpected session path: %q want %q", cfg.SessionPath, want)
	}
}

func TestLoad_DefaultServer(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerURL != DefaultServer || cfg.HTTPTimeout != DefaultHTTPTimeout {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
}

func TestLoad_RejectsBadServer(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	for _, raw := range []string{"ftp://files.example", "not a url", "/relative"} {
		v := New()
		v.Set(KeyServer, raw)
		if _, err := Load(v); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestReadFile_MergesYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: http://localhost:9000\nstate_path: /tmp/nf-state.json\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	v := New()
	if err := ReadFile(v, path); err != nil {
		t.Fatalf("read file failed: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerURL != "http://localhost:9000" || cfg.StatePath != "/tmp/nf-state.json" {
		t.Fatalf("file values not applied: %#v", cfg)
	}
}

func TestReadFile_MissingDefaultIsFine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := ReadFile(New(), ""); err != nil {
		t.Fatalf("missing default config must not error: %v", err)
	}
	if err := ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("missing explicit config must error")
	}
}

func TestUIState_LoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui_state.json")

	st, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("missing state should not error: %v", err)
	}
	if st != (UIState{}) {
		t.Fatalf("expected empty state for missing file")
	}
	if st.ViewState() != domain.InitialViewState() {
		t.Fatalf("empty state must fall back to all/1")
	}

	want := FromViewState(domain.ViewState{View: domain.ViewFollowing, Page: 3})
	if err := SaveUIState(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("load after save failed: %v", err)
	}
	if got != want || got.ViewState().Page != 3 {
		t.Fatalf("unexpected loaded state got=%#v want=%#v", got, want)
	}

	if err := os.WriteFile(path, []byte("not-json"), 0o600); err != nil {
		t.Fatalf("write corrupt state failed: %v", err)
	}
	if _, err := LoadUIState(path); err == nil {
		t.Fatalf("expected parse error for invalid json")
	}
}
