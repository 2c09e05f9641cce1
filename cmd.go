package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/CrestNiraj12/netfeed/app"
	"github.com/CrestNiraj12/netfeed/infra/auth"
	"github.com/CrestNiraj12/netfeed/infra/config"
	"github.com/CrestNiraj12/netfeed/infra/editor"
	"github.com/CrestNiraj12/netfeed/infra/logging"
	"github.com/CrestNiraj12/netfeed/infra/network"
	"github.com/CrestNiraj12/netfeed/tui"
)

// cli carries what every subcommand needs. Commands are built per
// invocation so tests can run them in isolation.
type cli struct {
	v          *viper.Viper
	configFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.New()}

	v, cm, d := resolvedRuntimeVersionInfo(version, commit, date)
	root := &cobra.Command{
		Use:           "netfeed",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", v, cm, d),
		Short:         "Terminal client for a NetFeed posts server",
		Long:          "Browse, post, like, comment and follow on a NetFeed server from the terminal.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			network.DefaultUserAgent = "netfeed/" + v
			if err := config.ReadFile(c.v, c.configFile); err != nil {
				return err
			}
			logging.ToStderr(c.v.GetBool(config.KeyDebug))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configFile, "config", "c", "", "config file (default ~/.config/netfeed/config.yaml)")
	flags.StringP("server", "s", config.DefaultServer, "NetFeed server base URL")
	flags.BoolP("debug", "d", false, "enable debug logging")
	bindFlags(c.v, flags, map[string]string{
		config.KeyServer: "server",
		config.KeyDebug:  "debug",
	})

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.registerCmd(),
		c.renderCmd(),
		c.postCmd(),
		c.versionCmd(),
	)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			log.WithError(err).WithField("flag", name).Debug("error binding flag")
		}
	}
}

// connect loads config, builds the HTTP client and restores the saved
// session cookies.
func (c *cli) connect() (config.Config, *network.Client, app.SessionService, error) {
	cfg, err := config.Load(c.v)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	client, err := network.NewClient(cfg.ServerURL, network.WithTimeout(cfg.HTTPTimeout))
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	sessions := network.NewSessionService(client, auth.NewSessionStore(cfg.SessionPath))
	if err := sessions.Restore(); err != nil {
		log.WithError(err).Warn("error restoring session")
	}
	return cfg, client, sessions, nil
}

func (c *cli) runTUI() error {
	cfg, client, _, err := c.connect()
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs go to a file while it runs.
	closer, err := logging.ToFile(cfg.LogPath, cfg.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := config.LoadUIState(cfg.StatePath)
	if err != nil {
		log.WithError(err).Warn("error loading ui state")
	}

	rootModel := tui.NewApp(tui.Deps{
		Feed:      network.NewFeedService(client),
		Posts:     network.NewPostService(client),
		Profiles:  network.NewProfileService(client),
		Editor:    editor.NewEnvEditor(),
		Initial:   st.ViewState(),
		StatePath: cfg.StatePath,
	})

	log.WithField("server", cfg.ServerURL).Info("starting netfeed")
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, cm, d := resolvedRuntimeVersionInfo(version, commit, date)
			fmt.Fprintf(cmd.OutOrStdout(), "NetFeed %s\ncommit: %s\nbuilt: %s\n", v, cm, d)
		},
	}
}
