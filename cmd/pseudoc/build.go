package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/agenthands/pseudoc/pkg/compiler"
	"github.com/agenthands/pseudoc/pkg/config"
	"github.com/agenthands/pseudoc/pkg/fileio"
)

var buildCmd = &cobra.Command{
	Use:   "build <file.pseudo>",
	Short: "Translate a pseudocode file to C++",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		out, err := buildFile(args[0], cfg, logger)
		if err != nil {
			return err
		}

		fmt.Printf("Generated %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

// buildFile runs one compilation: read the source, translate it and
// persist the generated C++. On a syntax error nothing is written.
func buildFile(srcPath string, cfg *config.Config, logger *slog.Logger) (string, error) {
	runID := uuid.NewString()
	logger.Debug("compilation started", "run_id", runID, "source", srcPath)

	source, err := fileio.ReadSource(srcPath)
	if err != nil {
		return "", err
	}

	code, err := compiler.Compile(source)
	if err != nil {
		return "", fmt.Errorf("%s: %w", srcPath, err)
	}

	dest := fileio.OutputPath(srcPath, cfg.Output.Dir, cfg.Output.Extension)
	fallback := fileio.ReplaceExt(srcPath, cfg.Output.Extension)

	out, err := fileio.WriteOutput(dest, fallback, code)
	if err != nil {
		return "", err
	}

	logger.Info("compilation finished", "run_id", runID, "source", srcPath, "output", out)
	return out, nil
}
