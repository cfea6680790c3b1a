package cli

import (
	"context"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/catalog"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/session"
)

// RunSearch issues a free-text search and renders the resulting page.
func RunSearch(ctx context.Context, controller *session.Controller, text string, page int) error {
	if err := controller.SearchFreeText(ctx, text); err != nil {
		return err
	}
	if err := moveToPage(ctx, controller, page); err != nil {
		return err
	}
	renderState(controller.State())
	return nil
}

// RunAdvancedSearch issues an advanced search and renders the resulting page.
func RunAdvancedSearch(ctx context.Context, controller *session.Controller, query catalog.AdvancedQuery, page int) error {
	if err := controller.SearchAdvanced(ctx, query); err != nil {
		return err
	}
	if err := moveToPage(ctx, controller, page); err != nil {
		return err
	}
	renderState(controller.State())
	return nil
}

// RunBrowseArtists lists artists by their first letter and renders the page.
func RunBrowseArtists(ctx context.Context, controller *session.Controller, letter string, page int) error {
	if err := controller.BrowseArtists(ctx, letter); err != nil {
		return err
	}
	if err := moveToPage(ctx, controller, page); err != nil {
		return err
	}
	renderState(controller.State())
	return nil
}

// moveToPage re-issues the active search for a later page. Every new search
// lands on page 1 first, so page 1 needs no extra round trip. A failed first
// request keeps its error state; paging on top of it would be rejected, so it
// is skipped.
func moveToPage(ctx context.Context, controller *session.Controller, page int) error {
	if page <= 1 {
		return nil
	}
	if controller.State().Error != "" {
		return nil
	}
	return controller.ChangePage(ctx, page)
}
