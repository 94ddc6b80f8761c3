package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/toasts/internal/core/config"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "toasts config validate [options]",
				Description: "Loads the configuration file and reports invalid durations, limits and theme names.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	errs := cmd.validate()

	if cmd.format == "json" {
		out := struct {
			Valid  bool              `json:"valid"`
			Errors []validationError `json:"errors,omitempty"`
		}{
			Valid:  len(errs) == 0,
			Errors: errs,
		}

		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
		if len(errs) > 0 {
			return cli.Exit("", 1)
		}
		return nil
	}

	w := c.Root().Writer
	for _, e := range errs {
		_, _ = fmt.Fprintf(w, "✖ %s: %s\n", e.Field, e.Message)
	}
	if len(errs) == 0 {
		_, _ = fmt.Fprintln(w, "✔ Configuration is valid")
		return nil
	}

	_, _ = fmt.Fprintf(w, "\n%d error(s) found\n", len(errs))
	return cli.Exit("", 1)
}

// validate loads the config file from scratch so parse and validation errors
// are reported rather than returned.
func (cmd *ConfigValidateCmd) validate() []validationError {
	path := cmd.flags.ConfigPath

	cfg, err := config.Load(path)
	if err != nil {
		return toValidationErrors(err)
	}
	return toValidationErrors(cfg.ValidateDeep(path))
}

func toValidationErrors(err error) []validationError {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		out := make([]validationError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			out = append(out, validationError{Field: fe.Field, Message: fe.Err.Error()})
		}
		return out
	}

	return []validationError{{Field: "config_file", Message: err.Error()}}
}
