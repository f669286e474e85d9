package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agenthands/pseudoc/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file.pseudo>",
	Short: "Rebuild the C++ translation whenever the source changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)
		srcPath := args[0]

		// Initial build. A syntax error here is reported but does not
		// stop the watch: the next save gets another chance.
		if out, err := buildFile(srcPath, cfg, logger); err != nil {
			logger.Error("initial build failed", "error", err)
		} else {
			logger.Info("initial build complete", "output", out)
		}

		w, err := watch.New(srcPath, cfg.Watch.DebounceInterval, logger)
		if err != nil {
			return err
		}
		defer w.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		err = w.Run(ctx, func() error {
			_, err := buildFile(srcPath, cfg, logger)
			return err
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
