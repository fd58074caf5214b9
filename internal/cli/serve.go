package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	adapthttp "slimtrack/internal/adapter/http"
	"slimtrack/internal/log"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return opts.withStack(ctx, cmd.ErrOrStderr(), func(s *stack) error {
				if addr == "" {
					addr = s.cfg.Addr
				}
				h := adapthttp.New(s.records, s.charts, s.suggestions, s.logger).Handler()
				srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}

				errc := make(chan error, 1)
				go func() {
					s.logger.Info("listening", "addr", addr, log.FieldBackend, s.cfg.Backend)
					errc <- srv.ListenAndServe()
				}()

				select {
				case err := <-errc:
					if errors.Is(err, http.ErrServerClosed) {
						return nil
					}
					return err
				case <-ctx.Done():
				}

				s.logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides ADDR)")
	return cmd
}
