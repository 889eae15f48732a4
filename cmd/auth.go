package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/trainpartner/tpx/internal/editor"
	"github.com/trainpartner/tpx/internal/models"
	"github.com/trainpartner/tpx/internal/services"
	"github.com/trainpartner/tpx/internal/shared"
	"github.com/trainpartner/tpx/internal/validate"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// Login exchanges credentials for an access token and stores the session.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	password := cmd.String("password")

	r.logger.Info("logging in", "username", username)

	resp, err := r.svc.Login(ctx, services.LoginRequest{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, shared.ErrBadCredentials) {
			return fmt.Errorf("%w: %s", shared.ErrBadCredentials, validate.BadCredentials)
		}
		return fmt.Errorf("login failed: %w", err)
	}

	store, closer, err := r.openSessions()
	if err != nil {
		return err
	}
	defer closer()

	if _, err := store.Save(username, resp.AccessToken); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	if r.api != nil {
		r.api.SetToken(&oauth2.Token{AccessToken: resp.AccessToken, TokenType: resp.TokenType})
	}

	user, err := r.svc.CurrentUser(ctx)
	if err != nil {
		r.logger.Warn("token stored but user lookup failed", "error", err)
		return r.writePlain("✓ Logged in as %s\n", username)
	}

	return r.writePlain("✓ Logged in as %s (%s)\n", user.Username, user.Name)
}

// Signup validates the registration form locally, verifies username and
// email availability, then creates the account.
func (r *Runner) Signup(ctx context.Context, cmd *cli.Command) error {
	req := services.SignupRequest{
		Name:     cmd.String("name"),
		Username: cmd.String("username"),
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
	}

	fields := []struct {
		label string
		value string
		rule  validate.Rule
	}{
		{"name", req.Name, validate.Name},
		{"username", req.Username, validate.Username},
		{"email", req.Email, validate.Email},
		{"password", req.Password, validate.Password},
	}
	for _, f := range fields {
		if v := f.rule(f.value); v.Status == models.StatusError {
			return fmt.Errorf("%w: %s: %s", shared.ErrValidation, f.label, v.Message)
		}
	}

	// Availability is a hard gate here, so transport failures block signup.
	checker := editor.NewChecker(r.svc)
	checker.AdvisoryFailures = false

	r.logger.Info("checking username availability", "username", req.Username)
	if o := checker.Username(ctx, req.Username); o.Status == models.StatusError {
		return fmt.Errorf("%w: username: %s", shared.ErrValidation, o.Message)
	}

	r.logger.Info("checking email availability", "email", req.Email)
	if o := checker.Email(ctx, req.Email); o.Status == models.StatusError {
		return fmt.Errorf("%w: email: %s", shared.ErrValidation, o.Message)
	}

	user, err := r.svc.Signup(ctx, req)
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	r.logger.Info("account created", "username", user.Username)
	return r.writePlain("✓ %s\n", validate.SignUpSuccess)
}

// Logout clears the session slot and the in-memory token.
func (r *Runner) Logout(ctx context.Context, cmd *cli.Command) error {
	store, closer, err := r.openSessions()
	if err != nil {
		return err
	}
	defer closer()

	if err := store.Clear(); err != nil {
		return err
	}
	if r.api != nil {
		r.api.ClearToken()
	}

	return r.writePlain("✓ Logged out\n")
}

// Whoami prints the authenticated user's record.
func (r *Runner) Whoami(ctx context.Context, cmd *cli.Command) error {
	sess, closer, err := r.restoreSession()
	if err != nil {
		return err
	}
	defer closer()

	user, err := r.svc.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrAPIRequest) {
			return fmt.Errorf("%w: stored token was rejected, log in again", shared.ErrSessionExpired)
		}
		return fmt.Errorf("failed to fetch current user: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, true)
	}

	r.writePlain("Username: %s\n", user.Username)
	r.writePlain("Name:     %s\n", user.Name)
	r.writePlain("Email:    %s\n", user.Email)
	return r.writePlain("Session:  since %s\n", sess.CreatedAt.Format("2006-01-02 15:04"))
}
