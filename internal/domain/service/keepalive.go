package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/diegoclair/session-planner-bot/internal/domain/contract"
	"github.com/diegoclair/session-planner-bot/internal/metrics"
)

// keepAlive pings url on a fixed interval so an idle-suspending host keeps
// the process running.
type keepAlive struct {
	pinger   contract.Pinger
	url      string
	interval time.Duration
	log      *zap.Logger
	sleep    sleepFunc
}

func newKeepAlive(pinger contract.Pinger, url string, interval time.Duration, log *zap.Logger) *keepAlive {
	return &keepAlive{
		pinger:   pinger,
		url:      url,
		interval: interval,
		log:      log.Named("keepalive"),
		sleep:    sleep,
	}
}

func (k *keepAlive) Run(ctx context.Context) error {
	k.log.Info("keep-alive started", zap.String("url", k.url), zap.Duration("interval", k.interval))

	for {
		if err := k.sleep(ctx, k.interval); err != nil {
			k.log.Info("keep-alive stopping")
			return err
		}

		err := k.pinger.Ping(ctx, k.url)
		metrics.ObservePing(err)
		if err != nil {
			return fmt.Errorf("keep-alive ping failed: %w", err)
		}
		k.log.Debug("keep-alive ping ok")
	}
}
