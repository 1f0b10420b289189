package output

import (
	"fmt"
	"io"

	"github.com/Rin0913/healthping/internal/config"
	"github.com/redis/go-redis/v9"
)

// Build returns the target named by cfg. rdb is only used for the redis
// target and may be nil otherwise.
func Build(cfg config.OutputConfig, rdb *redis.Client, stdout io.Writer) (Target, error) {
	switch cfg.Target {
	case config.TargetStdout:
		return NewWriter(stdout), nil
	case config.TargetMemory:
		return NewMemory(), nil
	case config.TargetRedis:
		if rdb == nil {
			return nil, fmt.Errorf("output: redis target without a redis client")
		}
		return NewRedisTarget(rdb, cfg.Element), nil
	default:
		return nil, fmt.Errorf("output: unknown target %q", cfg.Target)
	}
}
