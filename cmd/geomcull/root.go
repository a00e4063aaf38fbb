// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/hwygeom/geom/batch"
	"github.com/ajroetker/hwygeom/hwy"
	"github.com/ajroetker/hwygeom/hwy/contrib/workerpool"
	"github.com/ajroetker/hwygeom/internal/logging"
	"github.com/ajroetker/hwygeom/internal/scene"
)

type options struct {
	workers  int
	grain    int
	logLevel string
	dev      bool
	format   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "geomcull [flags] scene.yaml...",
		Short: "Frustum-cull the objects of YAML scene files",
		Long: `geomcull loads each scene file, builds the frustum of its camera and
tests every object against it: spheres by center and radius, point hulls by
their points. It prints one report per scene listing visible and culled ids.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.workers, "workers", "w", runtime.GOMAXPROCS(0), "scenes processed at once, and size of the culling worker pool")
	flags.IntVar(&opts.grain, "grain", batch.DefaultGrain, "smallest number of objects handed to one culling worker")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.dev, "dev", false, "human-readable development logging")
	flags.StringVarP(&opts.format, "format", "f", formatYAML, "report format: yaml or text")
	return cmd
}

func run(ctx context.Context, opts *options, paths []string, out io.Writer) error {
	if opts.format != formatYAML && opts.format != formatText {
		return fmt.Errorf("unknown format %q", opts.format)
	}
	logger, err := logging.New(opts.logLevel, opts.dev)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	workers := max(opts.workers, 1)
	pool := workerpool.New(workers)
	defer pool.Close()
	b := batch.New[float64](pool)
	b.Grain = opts.grain

	logger.Info("culling scenes",
		zap.Int("scenes", len(paths)),
		zap.Int("workers", workers),
		zap.String("backend", hwy.CurrentName()))

	reports := make([]Report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			s, err := scene.Load(path)
			if err != nil {
				return err
			}
			reports[i] = cull(s, path, b)
			logger.Debug("scene culled",
				zap.String("path", path),
				zap.Int("objects", reports[i].Objects),
				zap.Int("visible", len(reports[i].Visible)),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("culling failed", zap.Error(err))
		return err
	}
	return writeReports(out, opts.format, reports)
}
