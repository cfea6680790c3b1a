package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/catalog"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/cli"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/session"
)

func newSearchCommand() *cobra.Command {
	var page int
	searchCommand := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog with free text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			controller := session.NewController(newCatalogClient(cfg))
			return cli.RunSearch(cmd.Context(), controller, strings.Join(args, " "), page)
		},
	}
	searchCommand.Flags().IntVar(&page, "page", 1, "result page")
	return searchCommand
}

func newAdvancedCommand() *cobra.Command {
	var (
		page      int
		title     string
		artist    string
		dateStart int
		dateEnd   int
	)
	advancedCommand := &cobra.Command{
		Use:   "advanced",
		Short: "Search the catalog by title, artist and/or a creation date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			query := catalog.AdvancedQuery{
				Title:  title,
				Artist: artist,
			}
			if cmd.Flags().Changed("date-start") {
				query.DateStart = &dateStart
			}
			if cmd.Flags().Changed("date-end") {
				query.DateEnd = &dateEnd
			}

			controller := session.NewController(newCatalogClient(cfg))
			return cli.RunAdvancedSearch(cmd.Context(), controller, query, page)
		},
	}
	advancedCommand.Flags().StringVar(&title, "title", "", "match words of the artwork title")
	advancedCommand.Flags().StringVar(&artist, "artist", "", "match words of the artist name")
	advancedCommand.Flags().IntVar(&dateStart, "date-start", 0, "earliest creation year, inclusive")
	advancedCommand.Flags().IntVar(&dateEnd, "date-end", 0, "latest creation year, inclusive")
	advancedCommand.Flags().IntVar(&page, "page", 1, "result page")
	return advancedCommand
}

func newArtistsCommand() *cobra.Command {
	var page int
	artistsCommand := &cobra.Command{
		Use:   "artists <letter>",
		Short: "Browse artists by the first letter of their name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			controller := session.NewController(newCatalogClient(cfg))
			return cli.RunBrowseArtists(cmd.Context(), controller, args[0], page)
		},
	}
	artistsCommand.Flags().IntVar(&page, "page", 1, "result page")
	return artistsCommand
}
