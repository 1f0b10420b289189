package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/Rin0913/healthping/internal/config"
	"github.com/Rin0913/healthping/internal/httpserver"
	"github.com/Rin0913/healthping/internal/output"
	"github.com/Rin0913/healthping/internal/redisclient"
	"github.com/Rin0913/healthping/internal/widget"
	"github.com/redis/go-redis/v9"
)

// Run serves the page holding the output element and runs the health check
// once, as the page's script would on load.
func Run(ctx context.Context, cfg *config.Config, client *http.Client) error {
	var rdb *redis.Client
	if cfg.Output.Target == config.TargetRedis {
		rdb = redisclient.NewClient(cfg.Redis)
		defer rdb.Close()
	}

	target, err := output.Build(cfg.Output, rdb, os.Stdout)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	httpserver.NewServer(target, cfg.Output.Element).RegisterRoutes(mux)

	s := &http.Server{
		Handler:        mux,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	ln, err := net.Listen("tcp", cfg.Server.Address)
	if err != nil {
		return err
	}

	return serve(ctx, s, ln, func(ctx context.Context) {
		if _, err := widget.New(client, target).Run(ctx); err != nil {
			log.Printf("[ERROR] health check failed: %v\n", err)
		}
	})
}

// serve runs s on ln alongside check. It returns only once check has
// finished, so nothing check uses is released underneath it.
func serve(ctx context.Context, s *http.Server, ln net.Listener, check func(ctx context.Context)) error {
	errCh := make(chan error, 1)

	go func() {
		log.Printf("[INFO] http server listening on %s", ln.Addr())
		if err := s.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	checkCtx, cancelCheck := context.WithCancel(ctx)
	defer cancelCheck()

	checkDone := make(chan struct{})
	go func() {
		defer close(checkDone)
		check(checkCtx)
	}()

	select {
	case <-ctx.Done():
		log.Println("[INFO] shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := s.Shutdown(shutdownCtx)
		<-checkDone
		return err

	case err := <-errCh:
		log.Printf("[ERROR] http server stopped: %v\n", err)
		cancelCheck()
		<-checkDone
		return err
	}
}
