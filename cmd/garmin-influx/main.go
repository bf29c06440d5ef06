package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spencertipping/garmin-influxdb2/internal/di"
	"github.com/spencertipping/garmin-influxdb2/pkg/config"
)

type flags struct {
	configPath string
	start      string
	end        string
	email      string
	server     string
	org        string
	bucket     string
	token      string
	backend    string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "garmin-influx",
		Short:         "Import daily Garmin Connect wellness metrics into InfluxDB 2",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := run(cmd, &f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "optional YAML config file")
	fl.StringVar(&f.start, "start", "", "first day to import (YYYY-mm-dd)")
	fl.StringVar(&f.end, "end", "", "last day to import, inclusive (YYYY-mm-dd)")
	fl.StringVar(&f.email, "email", "", "Garmin Connect account email")
	fl.StringVar(&f.server, "server", "", "InfluxDB server URL")
	fl.StringVar(&f.org, "org", "", "InfluxDB organization")
	fl.StringVar(&f.bucket, "bucket", "", "InfluxDB bucket")
	fl.StringVar(&f.token, "token", "", "InfluxDB API token")
	fl.StringVar(&f.backend, "backend", "", "sink backend: influx, clickhouse, kafka or stdout")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(f, readPassword)
	if err != nil {
		return err
	}

	app, cleanup, err := di.InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("app initialization failed: %w", err)
	}
	defer cleanup()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.Run(ctx)
}

// loadConfig merges file, env and flags and validates the result. The
// password is prompted for only once everything else is known to be valid.
func loadConfig(f *flags, prompt func() (string, error)) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(f.configPath)
	if err != nil {
		return nil, err
	}
	f.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Garmin.Password == "" {
		pw, err := prompt()
		if err != nil {
			return nil, err
		}
		if pw == "" {
			return nil, fmt.Errorf("empty password")
		}
		cfg.Garmin.Password = pw
	}
	return cfg, nil
}

// apply overrides config values with flags that were set.
func (f *flags) apply(cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Range.Start, f.start)
	set(&cfg.Range.End, f.end)
	set(&cfg.Garmin.Email, f.email)
	set(&cfg.Influx.Server, f.server)
	set(&cfg.Influx.Org, f.org)
	set(&cfg.Influx.Bucket, f.bucket)
	set(&cfg.Influx.Token, f.token)
	set(&cfg.Backend.Type, strings.ToLower(f.backend))
	set(&cfg.Log.Level, strings.ToLower(f.logLevel))
}

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no terminal for password prompt; set GARMIN_PASSWORD")
	}
	fmt.Fprint(os.Stderr, "Garmin Connect password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
