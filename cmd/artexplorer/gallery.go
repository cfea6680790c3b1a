package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/cli"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/gallery"
)

func newGalleryCommand() *cobra.Command {
	galleryCommand := &cobra.Command{
		Use:   "gallery",
		Short: "Manage the personal gallery",
	}

	galleryCommand.AddCommand(
		newGalleryListCommand(),
		newGalleryAddCommand(),
		newGalleryRemoveCommand(),
		newGalleryNoteCommand(),
	)
	return galleryCommand
}

// withGalleryStore loads the config, opens the configured storage backend and
// runs fn against the store, closing the backend afterwards.
func withGalleryStore(fn func(store *gallery.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, closer, err := newGalleryStore(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer func() {
			_ = closer()
		}()
	}
	return fn(store)
}

func parseArtworkID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid artwork id %q", arg)
	}
	return id, nil
}

func newGalleryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the saved artworks and their notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withGalleryStore(cli.RunGalleryList)
		},
	}
}

func newGalleryAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <artwork-id>",
		Short: "Fetch an artwork from the catalog and save it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseArtworkID(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, closer, err := newGalleryStore(cfg)
			if err != nil {
				return err
			}
			if closer != nil {
				defer func() {
					_ = closer()
				}()
			}
			return cli.RunGalleryAdd(cmd.Context(), newCatalogClient(cfg), store, id)
		},
	}
}

func newGalleryRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <artwork-id>",
		Short: "Remove a saved artwork",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseArtworkID(args[0])
			if err != nil {
				return err
			}
			return withGalleryStore(func(store *gallery.Store) error {
				return cli.RunGalleryRemove(store, id)
			})
		},
	}
}

func newGalleryNoteCommand() *cobra.Command {
	noteCommand := &cobra.Command{
		Use:   "note",
		Short: "Manage notes on saved artworks",
	}

	noteCommand.AddCommand(
		&cobra.Command{
			Use:   "set <artwork-id> <text>",
			Short: "Create or replace the note on a saved artwork",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseArtworkID(args[0])
				if err != nil {
					return err
				}
				return withGalleryStore(func(store *gallery.Store) error {
					return cli.RunSetNote(store, id, strings.Join(args[1:], " "))
				})
			},
		},
		&cobra.Command{
			Use:   "delete <artwork-id>",
			Short: "Delete the note on a saved artwork",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseArtworkID(args[0])
				if err != nil {
					return err
				}
				return withGalleryStore(func(store *gallery.Store) error {
					return cli.RunDeleteNote(store, id)
				})
			},
		},
	)
	return noteCommand
}
