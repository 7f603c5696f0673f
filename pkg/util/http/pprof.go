package httputil

import (
	"net/http"
	"net/http/pprof"
)

// Handler returns an http.Handler for the profiling endpoints of the
// net/http/pprof package.
//
// The handler can be used as a Server parameter.
func Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}
