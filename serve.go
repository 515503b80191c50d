package route

import (
	"context"
	"fmt"
	"net/http"
)

type server struct {
	router          *Router
	responseEncoder func(context.Context, http.ResponseWriter, any) error
	notFound        http.Handler
	handleErr       func(context.Context, http.ResponseWriter, error)
	middleware      []func(http.Handler) http.Handler
}

// Serve adapts the router to net/http. The matched handler's result is
// written through the response encoder, JSON unless configured otherwise.
// The request target handed to the matcher is the decoded URL path plus the
// raw query.
func Serve(router *Router, opts ...Option) (http.HandlerFunc, error) {
	s := server{
		router:   router,
		notFound: http.NotFoundHandler(),
	}
	if err := Join(append([]Option{JSONResponse()}, opts...)...)(&s); err != nil {
		return nil, err
	}
	var handler http.Handler = http.HandlerFunc(s.serve)
	for _, middleware := range s.middleware {
		handler = middleware(handler)
	}
	return handler.ServeHTTP, nil
}

func (s *server) serve(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	res, ok := s.router.Match(r.Method, target)
	if !ok {
		s.notFound.ServeHTTP(w, r)
		return
	}
	if err := s.responseEncoder(r.Context(), w, res); err != nil {
		s.handleError(r.Context(), w, fmt.Errorf("encoding response: %w", err))
	}
}

func (s *server) handleError(ctx context.Context, w http.ResponseWriter, err error) {
	if s.handleErr != nil {
		s.handleErr(ctx, w, err)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
