package route

import (
	"context"
	"encoding/json"
	"net/http"
)

// Option is a function that sets a serving option.
type Option func(*server) error

// Join returns an Option that joins multiple options.
func Join(opts ...Option) Option {
	return func(s *server) error {
		for _, opt := range opts {
			if err := opt(s); err != nil {
				return err
			}
		}
		return nil
	}
}

// ResponseEncoder returns an Option that sets the response encoder.
// Different handler result types can be handled differently by the given
// encoder function.
func ResponseEncoder(encoder func(context.Context, http.ResponseWriter, any) error) Option {
	return func(s *server) error {
		s.responseEncoder = encoder
		return nil
	}
}

// JSONResponse returns an Option that encodes handler results as JSON.
func JSONResponse() Option {
	return ResponseEncoder(func(ctx context.Context, w http.ResponseWriter, v any) error {
		return json.NewEncoder(w).Encode(v)
	})
}

// NotFound returns an Option that sets the handler invoked when no route
// matches.
func NotFound(h http.Handler) Option {
	return func(s *server) error {
		s.notFound = h
		return nil
	}
}

// HandleError returns an Option that sets the error handler.
func HandleError(handleErr func(ctx context.Context, w http.ResponseWriter, err error)) Option {
	return func(s *server) error {
		s.handleErr = handleErr
		return nil
	}
}

// Middleware returns an Option that adds given middleware.
func Middleware(middleware ...func(http.Handler) http.Handler) Option {
	return func(s *server) error {
		s.middleware = append(s.middleware, middleware...)
		return nil
	}
}
