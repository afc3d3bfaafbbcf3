package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/devconf/internal/adapter"
	"github.com/MKhiriev/devconf/internal/config"
	handler "github.com/MKhiriev/devconf/internal/handler/http"
	"github.com/MKhiriev/devconf/internal/logger"
	"github.com/MKhiriev/devconf/models"
)

var errNothingToDo = errors.New("nothing to do: pass -show or -set-sim")

type ctlFlags struct {
	show    bool
	setSim  string
	remote  string
	timeout time.Duration
	version bool
}

func run(args []string, out io.Writer, log *logger.Logger) error {
	fs := flag.NewFlagSet("devconfctl", flag.ContinueOnError)
	fs.SetOutput(out)

	values := config.RegisterFlags(fs)
	var f ctlFlags
	fs.BoolVar(&f.show, "show", false, "Print the resolved configuration")
	fs.StringVar(&f.setSim, "set-sim", "", "Store the simulation flag for the next start (true|false)")
	fs.StringVar(&f.remote, "remote", "", "Admin API of a running process, host:port or URL")
	fs.DurationVar(&f.timeout, "timeout", 5*time.Second, "Admin API request timeout")
	fs.BoolVar(&f.version, "version", false, "Print build information")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidOptions, err)
	}

	if f.version {
		_, err := fmt.Fprint(out, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return err
	}

	var simMode *bool
	if f.setSim != "" {
		v, err := strconv.ParseBool(f.setSim)
		if err != nil {
			return fmt.Errorf("%w: -set-sim: %w", config.ErrInvalidOptions, err)
		}
		simMode = &v
	}
	if simMode == nil && !f.show {
		return errNothingToDo
	}

	if f.remote != "" {
		client, err := adapter.NewHTTPAdminClient(f.remote, f.timeout, log)
		if err != nil {
			return err
		}
		return runRemote(context.Background(), client, simMode, f.show, out)
	}

	opts, err := config.BuildOptions(values.Options())
	if err != nil {
		return err
	}
	return runLocal(opts, simMode, f.show, out, log)
}

func runRemote(ctx context.Context, client adapter.AdminClient, simMode *bool, show bool, out io.Writer) error {
	if simMode != nil {
		view, err := client.SetSimMode(ctx, *simMode)
		if err != nil {
			return fmt.Errorf("set simulation mode: %w", err)
		}
		if err = printJSON(out, view); err != nil {
			return err
		}
	}

	if show {
		cfg, err := client.GetConfig(ctx)
		if err != nil {
			return fmt.Errorf("get config: %w", err)
		}
		return printJSON(out, cfg)
	}
	return nil
}

func runLocal(opts *config.Options, simMode *bool, show bool, out io.Writer, log *logger.Logger) error {
	store := config.NewStore(opts.RuntimePath, log)

	if simMode != nil {
		if err := store.SaveRuntimeSimMode(*simMode); err != nil {
			return err
		}
		log.Info().
			Bool("sim_mode", *simMode).
			Str("path", store.RuntimePath()).
			Msg("simulation flag stored, applies on next start")
	}

	if show {
		if err := store.LoadConfig(opts.ConfigPath); err != nil {
			log.Warn().Err(err).Msg("showing built-in defaults")
		}
		snap := store.ResolveRuntime()

		return printJSON(out, handler.NewConfigResponse(snap, store.Stage()))
	}
	return nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
