package run

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	otlpruntime "go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/mpapenbr/acc-telemetry-bridge/log"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/cmd/util"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/config"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/sampler"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/snapshot"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/source"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/utils"
)

// readyTimeout is the time to wait for the first sample before a warning is logged
const readyTimeout = 10 * time.Second

var ErrAlreadyRunning = errors.New("another sampler is already running")

//nolint:funlen // by design
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "samples the game telemetry and publishes the changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startSampler(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&config.Channel,
		"channel",
		"",
		"channel to publish to")
	cmd.Flags().StringVar(&config.Password,
		"password",
		"",
		"password of the channel")
	cmd.Flags().StringVar(&config.Transport,
		"transport",
		util.TransportHTTP,
		"where to publish events (http, nats, record)")
	cmd.Flags().StringVar(&config.RequestTimeout,
		"request-timeout",
		"5s",
		"timeout of a single publish request")
	cmd.Flags().StringVar(&config.NatsURL,
		"nats-url",
		"nats://localhost:4222",
		"URL of the NATS server")
	cmd.Flags().StringVar(&config.NatsSubjectPrefix,
		"nats-subject-prefix",
		"acc.telemetry",
		"events are published to <prefix>.<channel>")
	cmd.Flags().StringVar(&config.RecordDB,
		"record-db",
		"atb.db",
		"sqlite database used by the record transport")
	cmd.Flags().StringVar(&config.Period,
		"period",
		"1s",
		"target duration of a sampling cycle")
	cmd.Flags().StringVar(&config.Source,
		"source",
		source.KindShared,
		"where to read the pages from (shared, file)")
	cmd.Flags().StringVar(&config.SourceDir,
		"source-dir",
		".",
		"directory of the page files (file source)")
	cmd.Flags().StringVar(&config.LockFile,
		"lock-file",
		filepath.Join(os.TempDir(), "atb.lock"),
		"lock file preventing multiple samplers")
	cmd.Flags().StringVar(&config.WaitForServices,
		"wait-for-services",
		"0s",
		"duration to wait for the publish target to be reachable")
	cmd.Flags().BoolVar(&config.EnableTelemetry,
		"enable-telemetry",
		false,
		"enables telemetry")
	cmd.Flags().StringVar(&config.TelemetryEndpoint,
		"telemetry-endpoint",
		"",
		"otlp endpoint that receives telemetry data (stdout if empty)")
	return cmd
}

//nolint:funlen // by design
func startSampler(ctx context.Context) error {
	logger := util.SetupLogger()
	log.Debug("Config:",
		log.String("url", config.APIURL),
		log.String("channel", config.Channel),
		log.String("transport", config.Transport),
		log.String("source", config.Source),
		log.String("period", config.Period),
	)
	period, err := util.ParseDuration("period", config.Period)
	if err != nil {
		return err
	}

	lock := flock.New(config.LockFile)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("%w (lock %s)", ErrAlreadyRunning, config.LockFile)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warn("failed to release lock", log.ErrorField(err))
		}
	}()

	if config.EnableTelemetry {
		log.Info("Enabling telemetry")
		if telemetry, err := config.SetupTelemetry(ctx); err == nil {
			defer telemetry.Shutdown()
		} else {
			log.Warn("Could not setup telemetry", log.ErrorField(err))
		}
		err = otlpruntime.Start(otlpruntime.WithMinimumReadMemStatsInterval(time.Second))
		if err != nil {
			log.Warn("Could not start runtime metrics", log.ErrorField(err))
		}
	}

	src, err := source.New(config.Source, config.SourceDir)
	if err != nil {
		return err
	}
	buf, err := snapshot.Open(src)
	if err != nil {
		log.Error("shared memory not available", log.ErrorField(err))
		return err
	}
	defer buf.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := waitForTarget(ctx); err != nil {
		return err
	}
	pub, err := util.NewPublisher(ctx, config.Transport)
	if err != nil {
		return err
	}
	defer pub.Close()

	s := sampler.New(buf, pub,
		sampler.WithPeriod(period),
		sampler.WithLogger(logger.Named("sampler")))
	go func() {
		select {
		case <-s.Ready():
			log.Info("Sampler ready")
		case <-time.After(readyTimeout):
			log.Warn("No sample read yet", log.Duration("waited", readyTimeout))
		case <-ctx.Done():
		}
	}()

	log.Info("Starting sampler", log.Duration("period", period))
	if err := s.Run(ctx); err != nil {
		log.Error("Sampler stopped", log.ErrorField(err))
		return err
	}
	log.Info("Sampler terminated")
	return nil
}

func waitForTarget(ctx context.Context) error {
	wait, err := time.ParseDuration(config.WaitForServices)
	if err != nil {
		return fmt.Errorf("invalid wait-for-services %q: %w", config.WaitForServices, err)
	}
	var target string
	switch config.Transport {
	case util.TransportHTTP:
		target = config.APIURL
	case util.TransportNats:
		target = config.NatsURL
	}
	if wait <= 0 || target == "" {
		return nil
	}
	addr, err := utils.ExtractAddr(target)
	if err != nil {
		return err
	}
	return utils.WaitForTCP(ctx, addr, wait)
}
