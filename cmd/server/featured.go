package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/blues/decentrafund/internal/config"
	"github.com/blues/decentrafund/internal/database"
	"github.com/blues/decentrafund/internal/handler"
	"github.com/blues/decentrafund/internal/logger"
	"github.com/blues/decentrafund/internal/page"
	"github.com/blues/decentrafund/internal/source"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func newFeaturedCmd(getConfig func() *config.Config) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Print the featured campaigns as display-ready JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.close()

			if lang == "" {
				lang = cfg.Landing.Locale
			}
			tag, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("invalid --lang %q: %w", lang, err)
			}
			return printFeatured(cmd.Context(), cmd.OutOrStdout(), a, tag)
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "locale used for number formatting (default: landing.locale)")
	return cmd
}

func printFeatured(ctx context.Context, w io.Writer, a *app, tag language.Tag) error {
	if ctx == nil {
		ctx = context.Background()
	}

	views, err := a.landing.LoadFeatured(ctx, tag)
	st := page.Loaded(views)
	if err != nil {
		st = page.Failed(err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(handler.ToFeaturedResponse(st, tag.String())); encErr != nil {
		return encErr
	}
	return err
}

func newSeedCmd(getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample featured campaigns into an empty campaign table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			db, err := database.Init(cfg.Database)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			n, err := database.SeedCampaigns(cmd.Context(), db, source.SampleCampaigns())
			if err != nil {
				return err
			}
			logger.Info("Seeded %d campaigns", n)
			return nil
		},
	}
}
