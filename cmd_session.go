package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// prompter reads credentials, hiding passwords when stdin is a terminal.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{in: bufio.NewReader(cmd.InOrStdin()), out: cmd.ErrOrStderr()}
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", fmt.Errorf("reading %s: %w", strings.TrimSuffix(strings.ToLower(label), ": "), err)
	}
	return strings.TrimRight(s, "\r\n"), nil
}

func (p *prompter) password(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return p.line(label)
	}
	fmt.Fprint(p.out, label)
	data, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(data), nil
}

func (c *cli) loginCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, sessions, err := c.connect()
			if err != nil {
				return err
			}
			p := newPrompter(cmd)
			if username == "" {
				if username, err = p.line("Username: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = p.password("Password: "); err != nil {
					return err
				}
			}
			if err := sessions.Login(context.Background(), username, password); err != nil {
				return err
			}
			log.Info("login successful")
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when empty)")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, sessions, err := c.connect()
			if err != nil {
				return err
			}
			if err := sessions.Logout(context.Background()); err != nil {
				return err
			}
			log.Info("logged out")
			return nil
		},
	}
}

func (c *cli) registerCmd() *cobra.Command {
	var username, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, sessions, err := c.connect()
			if err != nil {
				return err
			}
			p := newPrompter(cmd)
			if username == "" {
				if username, err = p.line("Username: "); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = p.line("Email: "); err != nil {
					return err
				}
			}
			confirmation := password
			if password == "" {
				if password, err = p.password("Password: "); err != nil {
					return err
				}
				if confirmation, err = p.password("Confirm password: "); err != nil {
					return err
				}
			}
			if err := sessions.Register(context.Background(), username, email, password, confirmation); err != nil {
				return err
			}
			log.WithField("user", username).Info("registration successful")
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted twice when empty)")
	return cmd
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
