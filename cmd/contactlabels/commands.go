package main

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/contactlabels/core"
	"github.com/jask/contactlabels/core/screens"
	"github.com/jask/contactlabels/internal/config"
	"github.com/jask/contactlabels/internal/database"
	"github.com/jask/contactlabels/internal/database/repository"
	"github.com/jask/contactlabels/internal/labels"
	"github.com/jask/contactlabels/internal/logging"
)

func newRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:           "contactlabels",
		Short:         "Browse contacts and relabel their phone numbers, emails and SIP addresses",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context(), cfgPath)
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default is $CONTACTLABELS_CONFIG or the user config dir)")

	root.AddCommand(newLabelsCmd(&cfgPath), newSeedCmd(&cfgPath), newKeysCmd(&cfgPath), newInitCmd(&cfgPath))
	return root
}

func newLabelsCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:       "labels [kind]",
		Short:     "Print the label sets offered per detail kind",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(labels.KindPhone), string(labels.KindEmail), string(labels.KindSIP)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}
			kinds := catalog.Kinds()
			if len(args) == 1 {
				kind, err := labels.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []labels.Kind{kind}
			}
			out := cmd.OutOrStdout()
			for _, kind := range kinds {
				set := catalog.For(kind)
				fmt.Fprintf(out, "%s:\n", kind)
				for _, e := range set.Entries() {
					fmt.Fprintf(out, "  %-10s %s\n", e.Key, e.Label)
				}
				for _, pair := range labels.NearDuplicates(set) {
					fmt.Fprintf(out, "  warning: %q and %q look alike\n", pair[0], pair[1])
				}
			}
			return nil
		},
	}
}

func newSeedCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo contacts into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			n, err := database.SeedDemo(cmd.Context(), db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d contacts\n", n)
			return nil
		},
	}
}

func newKeysCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the effective key bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys)
			byAction := core.DefaultKeybindingsByAction(bindings)
			for _, action := range slices.Sorted(maps.Keys(byAction)) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %v\n", action, byAction[action])
			}
			return nil
		},
	}
}

func newInitCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file with the built-in label sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *cfgPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}

func openDatabase(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, err
	}
	return database.Open(path)
}

func runUI(ctx context.Context, cfgPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Close()

	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}
	for _, kind := range catalog.Kinds() {
		for _, pair := range labels.NearDuplicates(catalog.For(kind)) {
			logger.Printf("warn: %s labels %q and %q look alike", kind, pair[0], pair[1])
		}
	}

	db, err := openDatabase(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.Seed {
		if n, err := database.SeedDemo(ctx, db); err != nil {
			return err
		} else if n > 0 {
			logger.Printf("seeded %d demo contacts", n)
		}
	}

	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys))
	root := screens.NewContactsScreen(ctx, repository.NewContactRepo(db), repository.NewDetailRepo(db), catalog, keys, logger.Logger)
	model := core.NewModel(cfg.UI.Title, root, keys).WithLogger(logger.Logger)

	logger.Printf("start db=%s", cfg.Database.Path)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
