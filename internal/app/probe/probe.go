package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/Rin0913/healthping/internal/config"
	"github.com/Rin0913/healthping/internal/output"
	"github.com/Rin0913/healthping/internal/redisclient"
	"github.com/Rin0913/healthping/internal/widget"
	"github.com/redis/go-redis/v9"
)

// Run performs the health check once and renders it into the configured
// output element.
func Run(ctx context.Context, cfg *config.Config, client *http.Client, stdout io.Writer) error {
	var rdb *redis.Client
	if cfg.Output.Target == config.TargetRedis {
		rdb = redisclient.NewClient(cfg.Redis)
		defer rdb.Close()
	}

	target, err := output.Build(cfg.Output, rdb, stdout)
	if err != nil {
		return err
	}

	res, err := widget.New(client, target).Run(ctx)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	log.Printf("[INFO] output element %s updated: %s\n", cfg.Output.Element, b)
	return nil
}
