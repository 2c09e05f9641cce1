package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CrestNiraj12/netfeed/app"
	"github.com/CrestNiraj12/netfeed/domain"
	"github.com/CrestNiraj12/netfeed/infra/editor"
	"github.com/CrestNiraj12/netfeed/infra/network"
	"github.com/CrestNiraj12/netfeed/infra/web"
	"github.com/CrestNiraj12/netfeed/presenter"
)

func (c *cli) renderCmd() *cobra.Command {
	var (
		viewFlag string
		page     int
		out      string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write one feed page as static HTML",
		Long:  "Fetch a page of posts (all, following or a user id) and render it as an HTML document.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := domain.ParseView(viewFlag)
			if err != nil {
				return err
			}
			if page < 1 {
				return domain.ErrInvalidPage
			}
			_, client, _, err := c.connect()
			if err != nil {
				return err
			}

			ctx := context.Background()
			data := web.Page{}
			opts := presenter.Options{}
			if id, ok := view.ProfileID(); ok {
				profile, err := network.NewProfileService(client).Profile(ctx, id)
				if err != nil {
					return err
				}
				card := presenter.RenderProfile(profile)
				data.Profile = &card
				opts.ProfileName = profile.Username
			}
			p, err := network.NewFeedService(client).Posts(ctx, view, page)
			if err != nil {
				return err
			}
			data.Feed = presenter.RenderPosts(p.Posts, view, opts).WithPage(p)

			r, err := web.NewRenderer()
			if err != nil {
				return err
			}
			err = writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return r.Render(w, data)
			})
			if err != nil {
				return err
			}
			log.WithField("view", view).WithField("page", p.CurrentPage).Debug("rendered page")
			return nil
		},
	}
	cmd.Flags().StringVar(&viewFlag, "view", string(domain.ViewAll), `"all", "following" or a user id`)
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

// writeOutput runs render against path, or against stdout when path is
// empty. A file that fails to flush on close is an error.
func writeOutput(stdout io.Writer, path string, render func(io.Writer) error) (err error) {
	if path == "" {
		return render(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", path, cerr))
		}
	}()
	return render(f)
}

func (c *cli) postCmd() *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:     "post [text...]",
		Aliases: []string{"new"},
		Short:   "Publish a new post",
		Long:    "Publish text given as arguments, --message, piped on stdin, or written in $EDITOR.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := message
			if text == "" {
				text = strings.Join(args, " ")
			}
			if text == "" {
				var err error
				if text, err = readPostText(cmd.InOrStdin(), editor.NewEnvEditor()); err != nil {
					return err
				}
			}
			if strings.TrimSpace(text) == "" {
				log.Info("nothing to post")
				return nil
			}

			_, client, _, err := c.connect()
			if err != nil {
				return err
			}
			msg, err := network.NewPostService(client).Create(context.Background(), text)
			if err != nil {
				return err
			}
			log.Info(msg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "post text")
	return cmd
}

// readPostText takes piped input, or opens $EDITOR when stdin is a terminal.
func readPostText(in io.Reader, composer app.Composer) (string, error) {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return composer.Compose(context.Background(), "")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading text from stdin: %w", err)
	}
	return string(data), nil
}
