package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/xichen2020/foundation/tools/refstress/config"
	"github.com/xichen2020/foundation/tools/refstress/stress"

	xconfig "github.com/m3db/m3/src/x/config"
	"github.com/m3db/m3/src/x/instrument"
	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("f", "refstress.yaml", "configuration file")
)

func main() {
	// Parse command line args.
	flag.Parse()

	if len(*configFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var cfg config.Configuration
	if err := xconfig.LoadFile(&cfg, *configFile, xconfig.Options{}); err != nil {
		fmt.Printf("error loading config file %s: %v\n", *configFile, err)
		os.Exit(1)
	}

	// Create logger and metrics scope.
	logger, err := cfg.Logging.BuildLogger()
	if err != nil {
		fmt.Printf("error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	scope := tally.NoopScope
	if cfg.Metrics != nil {
		rootScope, closer, err := cfg.Metrics.NewRootScope()
		if err != nil {
			logger.Fatal("error creating metrics root scope", zap.Error(err))
		}
		defer closer.Close()
		scope = rootScope
	}

	iOpts := instrument.NewOptions().
		SetLogger(logger).
		SetMetricsScope(scope.SubScope("refstress"))
	opts, err := cfg.Stress.NewOptions(iOpts)
	if err != nil {
		logger.Fatal("error creating stress options", zap.Error(err))
	}

	ctx := context.Background()
	if cfg.Stress.Timeout != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *cfg.Stress.Timeout)
		defer cancel()
	}

	res, err := stress.Run(ctx, opts)
	if err != nil {
		logger.Error("stress run failed", zap.String("run", res.ID), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("stress run finished",
		zap.String("run", res.ID),
		zap.Int32("releases", res.NumReleases),
		zap.Duration("took", res.Duration),
	)
}
