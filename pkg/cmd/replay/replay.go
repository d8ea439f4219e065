package replay

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/acc-telemetry-bridge/log"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/cmd/replay/util"
	cmdutil "github.com/mpapenbr/acc-telemetry-bridge/pkg/cmd/util"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/config"
	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport/recorder"
)

func NewReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [run-id]",
		Short: "replays a recorded run (lists the recorded runs if no run-id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listRuns(cmd)
			}
			return replayRun(cmd, args[0])
		},
	}

	cmd.Flags().IntVar(&util.Speed, "speed", 1,
		"Replay speed (0 means: go as fast as possible)")
	cmd.Flags().StringVar(&util.FastForward,
		"fast-forward",
		"0s",
		"replay this duration with max speed")
	cmd.Flags().StringVar(&util.Target,
		"transport",
		cmdutil.TransportHTTP,
		"where to publish the replayed events (http, nats)")
	cmd.Flags().StringVar(&config.RecordDB,
		"record-db",
		"atb.db",
		"sqlite database containing the recorded runs")
	cmd.Flags().StringVar(&config.Channel,
		"channel",
		"",
		"channel to publish to")
	cmd.Flags().StringVar(&config.Password,
		"password",
		"",
		"password of the channel")
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
	return cmd
}

func listRuns(cmd *cobra.Command) error {
	cmdutil.SetupLogger()
	db, err := recorder.OpenDB(config.RecordDB)
	if err != nil {
		return err
	}
	defer db.Close()
	runs, err := recorder.Runs(cmd.Context(), db)
	if err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Run", "Channel", "Started", "Events"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.ID, r.Channel, r.StartedAt.Local().Format(time.DateTime), r.Events,
		})
	}
	t.Render()
	return nil
}

func replayRun(cmd *cobra.Command, runID string) error {
	logger := cmdutil.SetupLogger()
	if util.Target == cmdutil.TransportRecord {
		return fmt.Errorf("transport %s is not supported for replay", util.Target)
	}
	if util.Speed < 0 {
		return fmt.Errorf("invalid speed %d", util.Speed)
	}
	fastForward, err := time.ParseDuration(util.FastForward)
	if err != nil {
		return fmt.Errorf("invalid fast-forward %q: %w", util.FastForward, err)
	}
	db, err := recorder.OpenDB(config.RecordDB)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pub, err := cmdutil.NewPublisher(ctx, util.Target)
	if err != nil {
		return err
	}
	defer pub.Close()

	ctx = log.AddToContext(ctx, logger)
	task := util.NewReplayTask(db, pub,
		util.WithSpeed(util.Speed),
		util.WithFastForward(fastForward))
	count, err := task.Replay(ctx, runID)
	if err != nil {
		return err
	}
	log.Info("Replay finished", log.String("run", runID), log.Int("events", count))
	return nil
}
