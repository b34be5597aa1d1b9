package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/chaise"
	"github.com/aretw0/chaise/internal/platform"
	"github.com/aretw0/chaise/pkg/core"
)

const defaultURL = "http://127.0.0.1:5984"

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	url      string
	database string
	username string
	password string
	timeout  time.Duration
	readOnly bool
	verbose  bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "chaise",
		Short: "A client for CouchDB-style document databases",
		Long: `chaise reads and writes documents of a database reached over HTTP.
Connection settings come from flags, then CHAISE_* environment variables
(a .env file is honored), then the nearest .chaise.yaml profile.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if g.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(g.logger)

			// A missing .env is fine.
			_ = godotenv.Load()
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.url, "url", "", "Server base URL (env CHAISE_URL, default "+defaultURL+")")
	pf.StringVarP(&g.database, "db", "d", "", "Database name (env CHAISE_DB)")
	pf.StringVarP(&g.username, "user", "u", "", "Username for basic auth (env CHAISE_USER)")
	pf.StringVar(&g.password, "password", "", "Password for basic auth (env CHAISE_PASSWORD)")
	pf.DurationVar(&g.timeout, "timeout", 0, "Per-request timeout (env CHAISE_TIMEOUT)")
	pf.BoolVar(&g.readOnly, "read-only", false, "Refuse every write")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		newURICmd(g),
		newGetCmd(g),
		newPutCmd(g),
		newDeleteCmd(g),
		newRevCmd(g),
		newListCmd(g),
		newRevCmpCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// resolve fills unset connection settings from the environment and the profile.
func (g *globals) resolve() error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	profile, err := platform.LoadProfile(wd)
	if err != nil {
		return err
	}

	g.url = firstNonEmpty(g.url, os.Getenv("CHAISE_URL"), profile.URL, defaultURL)
	g.database = firstNonEmpty(g.database, os.Getenv("CHAISE_DB"), profile.Database)
	g.username = firstNonEmpty(g.username, os.Getenv("CHAISE_USER"), profile.Username)
	g.password = firstNonEmpty(g.password, os.Getenv("CHAISE_PASSWORD"))

	if g.timeout == 0 {
		if raw := firstNonEmpty(os.Getenv("CHAISE_TIMEOUT"), profile.Timeout); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return fmt.Errorf("invalid timeout %q: %w", raw, err)
			}
			g.timeout = d
		}
	}

	if g.database == "" {
		return fmt.Errorf("no database given: use --db, CHAISE_DB or %s", platform.ProfileFile)
	}
	return nil
}

// service resolves settings and builds a service without contacting the server.
func (g *globals) service() (*core.Service, error) {
	if err := g.resolve(); err != nil {
		return nil, err
	}

	opts := []chaise.Option{
		chaise.WithDatabase(g.database),
		chaise.WithReadOnly(g.readOnly),
		chaise.WithLogger(g.logger),
	}
	if g.username != "" {
		opts = append(opts, chaise.WithCredentials(g.username, g.password))
	}
	if g.timeout > 0 {
		opts = append(opts, chaise.WithTimeout(g.timeout))
	}
	return chaise.Connect(g.url, opts...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// kindFlags binds --kind and its --design shorthand on a document command.
type kindFlags struct {
	name   string
	design bool
}

func addKindFlags(cmd *cobra.Command, k *kindFlags) {
	cmd.Flags().StringVar(&k.name, "kind", "", "Document kind: normal or design (default normal)")
	cmd.Flags().BoolVar(&k.design, "design", false, "Shorthand for --kind design")
}

func (k *kindFlags) kind() (core.DocumentKind, error) {
	kind, err := core.ParseDocumentKind(k.name)
	if err != nil {
		return core.Normal, err
	}
	if k.design {
		if k.name != "" && kind != core.Design {
			return core.Normal, fmt.Errorf("--design conflicts with --kind %s", k.name)
		}
		return core.Design, nil
	}
	return kind, nil
}
