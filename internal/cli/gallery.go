package cli

import (
	"context"
	"fmt"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/catalog"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/gallery"
)

// ArtworkFetcher fetches a single artwork by id.
type ArtworkFetcher interface {
	GetByID(ctx context.Context, id int) (catalog.Artwork, error)
}

// RunGalleryList prints the gallery in insertion order.
func RunGalleryList(store *gallery.Store) error {
	items := store.Items()
	if len(items) == 0 {
		fmt.Println("The gallery is empty.")
		return nil
	}

	for _, item := range items {
		renderGalleryItem(item)
	}
	fmt.Println()
	fmt.Printf("%d artwork(s) in the gallery\n", len(items))
	return nil
}

// RunGalleryAdd fetches an artwork from the catalog and saves it.
func RunGalleryAdd(ctx context.Context, fetcher ArtworkFetcher, store *gallery.Store, id int) error {
	artwork, err := fetcher.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch artwork %d: %w", id, err)
	}

	added, err := store.Add(artwork)
	if err != nil {
		return err
	}
	if !added {
		fmt.Printf("%q is already in the gallery.\n", artwork.Title)
		return nil
	}
	fmt.Printf("Added %q to the gallery.\n", artwork.Title)
	return nil
}

// RunGalleryRemove removes an artwork from the gallery.
func RunGalleryRemove(store *gallery.Store, id int) error {
	if !store.Contains(id) {
		fmt.Printf("Artwork %d is not in the gallery.\n", id)
		return nil
	}
	if err := store.Remove(id); err != nil {
		return err
	}
	fmt.Printf("Removed artwork %d from the gallery.\n", id)
	return nil
}

// RunSetNote creates or replaces the note on a gallery item.
func RunSetNote(store *gallery.Store, id int, text string) error {
	ok, err := store.SetNote(id, text)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("the note was rejected: the artwork must be in the gallery and the text at most %d characters", gallery.MaxNoteLength)
	}
	fmt.Printf("Saved the note on artwork %d.\n", id)
	return nil
}

// RunDeleteNote clears the note on a gallery item.
func RunDeleteNote(store *gallery.Store, id int) error {
	if err := store.DeleteNote(id); err != nil {
		return err
	}
	fmt.Printf("Deleted the note on artwork %d.\n", id)
	return nil
}
