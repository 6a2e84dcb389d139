/* handlers.go
 * Contains the HTTP handlers serving read-only tournament views as plain text.
 * All mutations go through the Discord bot; these endpoints only render what
 * the store already holds
 */

package web

import (
	"fmt"
	"net/http"
)

// StandingsHandler serves the current group standings table
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Writes the rendered standings table, or an error status
func (s *Server) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	s.serveRendering(w, r, s.api.StandingsTable)
}

// BracketHandler serves the current knockout bracket
func (s *Server) BracketHandler(w http.ResponseWriter, r *http.Request) {
	s.serveRendering(w, r, s.api.BracketTree)
}

// TeamsHandler serves the registered team list
func (s *Server) TeamsHandler(w http.ResponseWriter, r *http.Request) {
	s.serveRendering(w, r, s.api.TeamsList)
}

// serveRendering runs one of the API's render methods and writes the result.
// Render errors are phase errors ("standings only during groups"), not server
// faults, so they come back as 404 rather than 500.
func (s *Server) serveRendering(w http.ResponseWriter, r *http.Request, render func() (string, error)) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	text, err := render()
	if err != nil {
		s.logger.WithError(err).Debug("rendering unavailable")
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, text)
}
