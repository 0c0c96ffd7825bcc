package main

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/adampresley/adamgokit/sessions"
	"github.com/raminaphoto/website/cmd/website/internal/viewmodels"
	"github.com/raminaphoto/website/pkg/gallery"
)

/*
newGalleryStateMiddleware loads the visitor's gallery modal state from
their session into the request context. Visitors without a session get
a closed modal.
*/
func newGalleryStateMiddleware(sessionService sessions.Session[*gallery.State], excludedPaths []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				err   error
				state *gallery.State
			)

			path := r.URL.Path

			/*
			 * If this path is excluded, keep going.
			 */
			for _, excludedPath := range excludedPaths {
				if strings.HasPrefix(path, excludedPath) {
					next.ServeHTTP(w, r)
					return
				}
			}

			if state, err = sessionService.Get(r); err != nil || state == nil {
				state = &gallery.State{}
			}

			ctx := viewmodels.WithGalleryState(r.Context(), state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newRequestLoggerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			slog.Debug("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"htmx", r.Header.Get("HX-Request") == "true",
				"duration", time.Since(start),
			)
		})
	}
}
