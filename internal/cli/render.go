// Package cli is the presentation layer: it drives the session controller
// and the gallery store from terminal commands and renders their outputs.
// It holds no state of its own and protects no invariants.
package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/catalog"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/gallery"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/session"
)

func renderState(state session.State) {
	if state.Error != "" {
		color.Red("%s", state.Error)
		return
	}

	switch {
	case state.Artworks != nil:
		renderArtworkPage(state.Artworks)
	case state.Artists != nil:
		renderArtistPage(state.Artists)
	default:
		fmt.Println("No results.")
	}
}

func renderArtworkPage(page *catalog.SearchResultPage) {
	if len(page.Items) == 0 {
		fmt.Println("No artworks found.")
		return
	}

	bold := color.New(color.Bold)
	for _, artwork := range page.Items {
		_, _ = bold.Printf("%s", artwork.Title)
		fmt.Printf("  (#%d)\n", artwork.ID)
		if artwork.ArtistDisplay != nil {
			fmt.Printf("    %s\n", *artwork.ArtistDisplay)
		}
		if artwork.DateDisplay != nil {
			fmt.Printf("    %s\n", *artwork.DateDisplay)
		}
		if artwork.MediumDisplay != nil {
			fmt.Printf("    %s\n", *artwork.MediumDisplay)
		}
		fmt.Printf("    %s\n", catalog.ImageURL(artwork.ImageID, catalog.DefaultImageSize))
	}
	renderPagination(page.Pagination)
}

func renderArtistPage(page *catalog.ArtistPage) {
	if len(page.Items) == 0 {
		fmt.Println("No artists found.")
		return
	}

	for _, artist := range page.Items {
		fmt.Printf("%s  (#%d)%s\n", artist.Title, artist.ID, lifespan(artist))
	}
	renderPagination(page.Pagination)
}

func lifespan(artist catalog.ArtistInfo) string {
	if artist.BirthDate == nil && artist.DeathDate == nil {
		return ""
	}
	birth, death := "?", "?"
	if artist.BirthDate != nil {
		birth = fmt.Sprintf("%d", *artist.BirthDate)
	}
	if artist.DeathDate != nil {
		death = fmt.Sprintf("%d", *artist.DeathDate)
	}
	return fmt.Sprintf("  %s-%s", birth, death)
}

func renderPagination(p catalog.Pagination) {
	fmt.Println()
	fmt.Printf("Page %d of %d (%d results)\n", p.CurrentPage, p.TotalPages, p.Total)
}

func renderGalleryItem(item gallery.Item) {
	bold := color.New(color.Bold)
	_, _ = bold.Printf("%s", item.Artwork.Title)
	fmt.Printf("  (#%d)\n", item.Artwork.ID)
	if item.Artwork.ArtistTitle != nil {
		fmt.Printf("    %s\n", *item.Artwork.ArtistTitle)
	}
	fmt.Printf("    added %s\n", item.AddedAt.Format("2006-01-02"))
	if item.Note != nil {
		text := item.Note.Text
		if strings.TrimSpace(text) == "" {
			text = "(empty note)"
		}
		color.Cyan("    note: %s", text)
	}
}
