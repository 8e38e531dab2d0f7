package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	shim "github.com/heroku/cnb-shim"
)

// failureBody is the only body ever sent for a failed request; error detail
// stays in the server log.
const failureBody = "INTERNAL SERVER ERROR"

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("health check ok"))
}

func (s *Server) shim(w http.ResponseWriter, r *http.Request) {
	namespace := chi.URLParam(r, "namespace")
	name := chi.URLParam(r, "name")

	pkg, err := s.Shimmer.Shim(namespace, name, parseOptions(r))
	if err != nil {
		s.Logger.Errorf("shim %s/%s: %s", namespace, name, err)
		writeFailure(w, statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/x-gzip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pkg.Filename))
	_, _ = w.Write(pkg.Data)
}

// parseOptions assembles Options from the query string. Every stacks value
// is collected and comma-split; empty entries are dropped.
func parseOptions(r *http.Request) shim.Options {
	q := r.URL.Query()
	opts := shim.Options{
		Version: q.Get("version"),
		Name:    q.Get("name"),
		API:     q.Get("api"),
	}
	for _, raw := range q["stacks"] {
		for _, stack := range strings.Split(raw, ",") {
			if stack == "" {
				continue
			}
			opts.Stacks = append(opts.Stacks, stack)
		}
	}
	return opts
}

func statusFor(err error) int {
	if shim.IsBadRequest(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeFailure(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
	_, _ = w.Write([]byte(failureBody))
}
