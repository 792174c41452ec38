package http

import (
	"context"
	"net/http"
	"time"

	"github.com/w-h-a/recall/server"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type httpServer struct {
	options server.Options
	srv     *http.Server
}

func (s *httpServer) Run() error {
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *httpServer) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func NewServer(handler http.Handler, opts ...server.Option) server.Server {
	options := server.NewOptions(opts...)

	if ms, ok := MiddlewareFrom(options.Context); ok {
		for i := len(ms) - 1; i >= 0; i-- {
			handler = ms[i](handler)
		}
	}

	handler = otelhttp.NewHandler(handler, "recall")

	return &httpServer{
		options: options,
		srv: &http.Server{
			Addr:              options.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}
