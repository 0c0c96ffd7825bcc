package viewmodels

import (
	"context"
	"net/http"

	"github.com/adampresley/adamgokit/rendering"
	"github.com/raminaphoto/website/pkg/gallery"
)

type contextKey string

const galleryStateKey contextKey = "galleryState"

type BaseViewModel struct {
	Message            string
	IsError            bool
	IsWarning          bool
	IsHtmx             bool
	JavascriptIncludes []rendering.JavascriptInclude
}

func WithGalleryState(ctx context.Context, state *gallery.State) context.Context {
	return context.WithValue(ctx, galleryStateKey, state)
}

/*
GetGalleryStateFromContext returns the visitor's gallery state loaded by
the session middleware, or a fresh closed state.
*/
func GetGalleryStateFromContext(r *http.Request) *gallery.State {
	if result, ok := r.Context().Value(galleryStateKey).(*gallery.State); ok && result != nil {
		return result
	}

	return &gallery.State{}
}
