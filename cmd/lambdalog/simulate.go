package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/trickstertwo/lambdalog"
	"github.com/trickstertwo/lambdalog/sink/writer"
)

// newSimulateCmd runs concurrent fake invocations, each with its own
// Execution, to show queue replay and isolation for a configuration.
func newSimulateCmd(stdout io.Writer, configPath *string) *cobra.Command {
	var (
		invocations int
		concurrency int
		loggerName  string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run simulated invocations against the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if invocations < 1 || concurrency < 1 {
				return fmt.Errorf("--invocations and --concurrency must be positive")
			}
			f := lambdalog.NewBuilder().
				WithSource(lambdalog.File(*configPath)).
				WithErrorHandler(func(err error) { fmt.Fprintf(cmd.ErrOrStderr(), "lambdalog: %v\n", err) }).
				Build()
			base := writer.New(stdout, writer.Options{NewlineReplacement: "\r"})

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(concurrency)
			for i := 0; i < invocations; i++ {
				g.Go(func() error {
					return invoke(ctx, f, base, loggerName, i)
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().IntVar(&invocations, "invocations", 3, "number of invocations")
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "invocations running at once")
	cmd.Flags().StringVar(&loggerName, "logger", "simulate", "logger name to log through")
	return cmd
}

func invoke(ctx context.Context, f *lambdalog.Factory, base *writer.Sink, name string, n int) error {
	exec := lambdalog.NewExecution()
	ctx = lambdalog.NewContext(ctx, exec)
	log := f.Logger(name).WithContext(ctx)

	id := uuid.NewString()
	log.Debug("invocation {} queued before sink", n)
	sink := base.WithPrefix("RequestId: " + id + " ")
	return lambdalog.Scope(exec, sink, func() error {
		for _, level := range []lambdalog.Level{
			lambdalog.LevelTrace, lambdalog.LevelDebug, lambdalog.LevelInfo,
			lambdalog.LevelWarn, lambdalog.LevelError,
		} {
			log.Log(level, "invocation {} at {}", n, level)
		}
		return nil
	})
}
