package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/adesai/prepdeck/internal/api"
	"github.com/adesai/prepdeck/internal/app"
	"github.com/adesai/prepdeck/internal/auth"
	"github.com/adesai/prepdeck/internal/config"
	"github.com/adesai/prepdeck/internal/store"
)

// runApp loads config, opens the local store, builds the API client,
// and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, client, err := buildClient(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Client:   client,
		Attempts: st.Attempts(),
	})
}

// buildClient assembles the API client from config, flags, and the
// session token. Flags win over environment.
func buildClient(cmd *cobra.Command) (config.Config, *api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		if v, _ := cmd.Flags().GetString("api"); v == "" {
			return config.Config{}, nil, err
		}
		cfg = config.Default()
	}
	if v, _ := cmd.Flags().GetString("api"); v != "" {
		cfg.APIBaseURL = v
	}
	if v, _ := cmd.Flags().GetString("token"); v != "" {
		cfg.Token = v
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	session, err := auth.NewSession(cfg.Token)
	if err != nil {
		return config.Config{}, nil, err
	}
	if err := session.Valid(time.Now()); err != nil {
		return config.Config{}, nil, fmt.Errorf("%w (set PREPDECK_TOKEN or PREPDECK_TOKEN_FILE)", err)
	}

	client := api.New(cfg.APIBaseURL, session,
		api.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	return cfg, client, nil
}
