package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/desertthunder/mixtape/internal/store"
	"github.com/desertthunder/mixtape/internal/validate"
	"github.com/urfave/cli/v3"
)

// AuthRegister validates and stores a new credential record, then
// establishes the session for the new user.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	email := cmd.StringArg("email")
	password := cmd.StringArg("password")

	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", shared.ErrMissingArgument)
	}

	if err := validate.Credentials(email, password); err != nil {
		return err
	}

	kv, closer, err := r.openKV()
	if err != nil {
		return err
	}
	defer closer()

	if err := store.NewCredentialStore(kv, r.logger).Register(email, password); err != nil {
		return err
	}

	if err := store.NewSession(kv).Establish(email); err != nil {
		return err
	}

	r.logger.Info("user registered", "email", email)

	r.writePlain("✓ Registration successful\n")
	r.writePlain("✓ Logged in as %s\n", email)

	return nil
}

// AuthLogin validates the pair, checks it against the credential store,
// and establishes the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.StringArg("email")
	password := cmd.StringArg("password")

	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", shared.ErrMissingArgument)
	}

	if err := validate.Credentials(email, password); err != nil {
		return err
	}

	kv, closer, err := r.openKV()
	if err != nil {
		return err
	}
	defer closer()

	if err := store.NewCredentialStore(kv, r.logger).Authenticate(email, password); err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) {
			// Nudge toward registration without revealing whether the
			// email exists.
			r.writePlain("Invalid credentials. No account? Try 'mixtape auth register'.\n")
		}
		return err
	}

	if err := store.NewSession(kv).Establish(email); err != nil {
		return err
	}

	r.logger.Info("session established", "email", email)

	r.writePlain("✓ Logged in as %s\n", email)
	return nil
}

// AuthLogout clears the active session. The user's playlists stay persisted.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	kv, closer, err := r.openKV()
	if err != nil {
		return err
	}
	defer closer()

	session := store.NewSession(kv)
	user, err := session.Restore()
	if err != nil {
		return err
	}
	if user == "" {
		r.writePlain("No active session\n")
		return nil
	}

	if err := session.Clear(); err != nil {
		return err
	}

	r.logger.Info("session cleared", "email", user)

	r.writePlain("✓ Logged out %s\n", user)
	return nil
}

// AuthWhoami prints the active session's user.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	kv, closer, err := r.openKV()
	if err != nil {
		return err
	}
	defer closer()

	user, err := store.NewSession(kv).Restore()
	if err != nil {
		return err
	}

	if user == "" {
		r.writePlain("Not logged in\n")
		return nil
	}

	r.writePlain("%s\n", user)
	return nil
}
