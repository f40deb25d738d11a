package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/mvanbeek/rabomut/pkg/config"
	"github.com/mvanbeek/rabomut/pkg/plan"
	"github.com/mvanbeek/rabomut/pkg/schema"
	"github.com/mvanbeek/rabomut/pkg/service"
)

var cfgFile string

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "rabomut",
	})
}

var rootCmd = &cobra.Command{
	Use:   "rabomut",
	Short: "Normalize Rabobank statement exports for ledger import",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <file|dir>...",
	Short: "Convert export files to the per-account import format",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		processor := service.NewProcessor(cfg, logger)

		var failed int
		for _, arg := range args {
			matches, err := filepath.Glob(arg)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				logger.Error("no files found matching pattern", "pattern", arg)
				failed++
				continue
			}

			for _, match := range matches {
				info, err := os.Stat(match)
				if err != nil {
					logger.Error("failed to stat file", "file", match, "error", err)
					failed++
					continue
				}

				if info.IsDir() {
					if err := processor.ProcessDirectory(match); err != nil {
						logger.Error("failed to process directory", "dir", match, "error", err)
						failed++
					}
				} else {
					if err := processor.ProcessFiles([]string{match}); err != nil {
						failed++
					}
				}
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d input(s) failed", failed)
		}
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <plan_file>",
	Short: "Run a YAML plan of export files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}
		if p.OutputDir != "" {
			cfg.OutputDir = p.OutputDir
		}

		fmt.Printf("Plan %s\n", args[0])
		p.Print()

		processor := service.NewProcessor(cfg, logger)

		var failed int
		for _, st := range p.Statements {
			version := schema.Version(cfg.Format)
			if st.Format != "" {
				version = schema.Version(st.Format)
			}

			keys, err := processor.ProcessFileAs(st.File, version)
			if err != nil {
				logger.Error("failed to process statement", "file", st.File, "error", err)
				failed++
				continue
			}
			fmt.Printf("  - %s -> accounts %v\n", st.File, keys)
		}
		if failed > 0 {
			return fmt.Errorf("%d statement(s) failed", failed)
		}
		return nil
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema [version]",
	Short: "Show the column layout of an export format version",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, v := range schema.Versions() {
				fmt.Println(v)
			}
			return nil
		}

		s, err := schema.Get(schema.Version(args[0]))
		if err != nil {
			return err
		}
		pp.Println(s.Fields)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is rabomut.yaml)")

	convertCmd.Flags().StringP("format", "f", "rabo2017", "Export format version (rabo2012, rabo2013, rabo2017)")
	convertCmd.Flags().StringP("output-dir", "o", "", "Output directory (default: next to each input file)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(schemaCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
