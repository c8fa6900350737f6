// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/MKhiriev/go-trade-desk/internal/logger"
	"github.com/MKhiriev/go-trade-desk/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	api          API
	in           *bufio.Reader
	out          io.Writer
	prompt       io.Writer
	readPassword PasswordReader
	commands     map[string]command

	logger *logger.Logger
}

// NewApp returns a client that prints results to out and prompts on prompt.
// Interactive input is read from in, passwords through readPassword.
func NewApp(api API, in io.Reader, out, prompt io.Writer, readPassword PasswordReader, logger *logger.Logger) *App {
	a := &App{
		api:          api,
		in:           bufio.NewReader(in),
		out:          out,
		prompt:       prompt,
		readPassword: readPassword,
		logger:       logger,
	}

	a.commands = map[string]command{
		"signup":                 {usage: "create an account", run: a.signup},
		"login":                  {usage: "log in with email or username", run: a.login},
		"google-login":           {usage: "log in with a Google ID token", run: a.googleLogin},
		"logout":                 {usage: "end the session", run: a.logout},
		"forgot-password":        {usage: "request a password reset link", run: a.forgotPassword},
		"verify-reset-token":     {usage: "check a password reset token", run: a.verifyResetToken},
		"reset-password":         {usage: "set a new password with a reset token", run: a.resetPassword},
		"verify-activation-code": {usage: "redeem an activation code", run: a.verifyActivationCode},
		"calculate":              {usage: "size an order from risk, entry and stop loss", run: a.calculate},
		"profile":                {usage: "show the logged in user", run: a.profile},
		"version":                {usage: "show the server version", run: a.version},
	}

	return a
}

// Run executes the command named by args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()
		return ErrMissingCommand
	}

	name := args[0]
	if name == "help" {
		a.Usage()
		return nil
	}

	cmd, ok := a.commands[name]
	if !ok {
		a.Usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	return cmd.run(ctx, args[1:])
}

// Usage lists the commands on the prompt writer.
func (a *App) Usage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.prompt, "Commands:")
	for _, name := range names {
		fmt.Fprintf(a.prompt, "  %-24s %s\n", name, a.commands[name].usage)
	}
}

func (a *App) signup(ctx context.Context, args []string) error {
	fs := a.flagSet("signup")
	email := fs.String("email", "", "account email")
	username := fs.String("username", "", "account username")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if *email, err = a.valueOrPrompt(*email, "Email"); err != nil {
		return err
	}
	if *username, err = a.valueOrPrompt(*username, "Username"); err != nil {
		return err
	}
	password, err := readSecret(a.readPassword, a.prompt, "Password")
	if err != nil {
		return err
	}

	resp, err := a.api.Signup(ctx, models.SignupRequest{Email: *email, Password: password, Username: *username})
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	identifier := fs.String("identifier", "", "email or username")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := a.valueOrPrompt(*identifier, "Email or username")
	if err != nil {
		return err
	}
	password, err := readSecret(a.readPassword, a.prompt, "Password")
	if err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, models.LoginRequest{Identifier: id, Password: password})
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) googleLogin(ctx context.Context, args []string) error {
	fs := a.flagSet("google-login")
	idToken := fs.String("id-token", "", "Google ID token")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *idToken == "" {
		return fmt.Errorf("%w: -id-token", ErrMissingArgument)
	}

	resp, err := a.api.GoogleLogin(ctx, *idToken)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) logout(ctx context.Context, _ []string) error {
	resp, err := a.api.Logout(ctx)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) forgotPassword(ctx context.Context, args []string) error {
	fs := a.flagSet("forgot-password")
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	address, err := a.valueOrPrompt(*email, "Email")
	if err != nil {
		return err
	}

	resp, err := a.api.ForgotPassword(ctx, address)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) verifyResetToken(ctx context.Context, args []string) error {
	fs := a.flagSet("verify-reset-token")
	token := fs.String("token", "", "reset token from the emailed link")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *token == "" {
		return fmt.Errorf("%w: -token", ErrMissingArgument)
	}

	valid, err := a.api.VerifyResetToken(ctx, *token)
	if err != nil {
		return err
	}
	return a.print(models.ResetTokenValidity{Valid: valid})
}

func (a *App) resetPassword(ctx context.Context, args []string) error {
	fs := a.flagSet("reset-password")
	token := fs.String("token", "", "reset token from the emailed link")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *token == "" {
		return fmt.Errorf("%w: -token", ErrMissingArgument)
	}

	password, err := readSecret(a.readPassword, a.prompt, "New password")
	if err != nil {
		return err
	}

	resp, err := a.api.ResetPassword(ctx, *token, password)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) verifyActivationCode(ctx context.Context, args []string) error {
	fs := a.flagSet("verify-activation-code")
	code := fs.String("code", "", "activation code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	value, err := a.valueOrPrompt(*code, "Activation code")
	if err != nil {
		return err
	}

	resp, err := a.api.VerifyActivationCode(ctx, value)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) calculate(ctx context.Context, args []string) error {
	fs := a.flagSet("calculate")
	risk := fs.Float64("risk", 0, "amount to lose if the stop loss is hit")
	entry := fs.Float64("entry", 0, "entry price")
	stop := fs.Float64("stop", 0, "stop loss price")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.api.CalculateOrderValue(ctx, models.OrderValueRequest{
		RiskAmount:    models.NewNumber(*risk),
		EntryPrice:    models.NewNumber(*entry),
		StopLossPrice: models.NewNumber(*stop),
	})
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) profile(ctx context.Context, _ []string) error {
	user, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}
	return a.print(models.ProfileResponse{User: user})
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	return a.print(models.VersionResponse{Version: v})
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.prompt)
	return fs
}

func (a *App) valueOrPrompt(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	return readLine(a.in, a.prompt, prompt)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
