package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds application-level configuration.
type Config struct {
	ServerURL   string // e.g. "http://127.0.0.1:8000"
	SessionPath string // Saved session cookies
	StatePath   string // Last view/page
	LogPath     string
	HTTPTimeout time.Duration
	Debug       bool
}

const (
	KeyServer      = "server"
	KeySessionPath = "session_path"
	KeyStatePath   = "state_path"
	KeyLogPath     = "log_path"
	KeyHTTPTimeout = "http_timeout"
	KeyDebug       = "debug"

	DefaultServer      = "http://127.0.0.1:8000"
	DefaultHTTPTimeout = 15 * time.Second
)

// New returns a viper instance reading NETFEED_* environment variables
// with every key defaulted.
//
//	NETFEED_SERVER        — server base URL (default: http://127.0.0.1:8000)
//	NETFEED_SESSION_PATH  — session cookie file (default: ~/.config/netfeed/session.json)
//	NETFEED_STATE_PATH    — UI state file (default: ~/.config/netfeed/ui_state.json)
//	NETFEED_LOG_PATH      — log file used while the TUI runs (default: ~/.config/netfeed/netfeed.log)
//	NETFEED_HTTP_TIMEOUT  — per-request timeout (default: 15s)
//	NETFEED_DEBUG         — debug logging
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("NETFEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyServer, DefaultServer)
	v.SetDefault(KeySessionPath, "")
	v.SetDefault(KeyStatePath, "")
	v.SetDefault(KeyLogPath, "")
	v.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)
	v.SetDefault(KeyDebug, false)
	return v
}

// ReadFile merges an optional config file into v. An empty path looks for
// ~/.config/netfeed/config.yaml; a missing default file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, "config.yaml")
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !explicit {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// Load resolves and validates configuration from v.
func Load(v *viper.Viper) (Config, error) {
	server := strings.TrimSpace(v.GetString(KeyServer))
	if server == "" {
		server = DefaultServer
	}
	parsed, err := url.Parse(server)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid server %q: must be an absolute URL", server)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid server %q: only http and https are allowed", server)
	}
	server = strings.TrimRight(parsed.String(), "/")

	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}
	sessionPath, err := pathOr(v.GetString(KeySessionPath), filepath.Join(dir, "session.json"))
	if err != nil {
		return Config{}, err
	}
	statePath, err := pathOr(v.GetString(KeyStatePath), filepath.Join(dir, "ui_state.json"))
	if err != nil {
		return Config{}, err
	}
	logPath, err := pathOr(v.GetString(KeyLogPath), filepath.Join(dir, "netfeed.log"))
	if err != nil {
		return Config{}, err
	}

	timeout := v.GetDuration(KeyHTTPTimeout)
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	return Config{
		ServerURL:   server,
		SessionPath: sessionPath,
		StatePath:   statePath,
		LogPath:     logPath,
		HTTPTimeout: timeout,
		Debug:       v.GetBool(KeyDebug),
	}, nil
}

func configDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "netfeed"), nil
}

func pathOr(raw, fallback string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	p, err := homedir.Expand(raw)
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", raw, err)
	}
	return p, nil
}
