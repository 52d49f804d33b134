package httpserver

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// MountStatic serves the built SPA from dir. Unmatched GET routes outside
// /api fall back to index.html so client-side routing keeps working.
func (s *Server) MountStatic(dir string) {
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		log.Warn().Str("dir", dir).Msg("static dir missing; SPA serving disabled")
		s.mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeProblem(w, http.StatusNotFound, "Not Found", "no such route")
		})
		return
	}

	fs := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	s.mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || r.Method != http.MethodGet {
			writeProblem(w, http.StatusNotFound, "Not Found", "no such route")
			return
		}
		p := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	})
}
