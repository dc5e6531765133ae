package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/happyhackingspace/lemmabase"
	"github.com/happyhackingspace/lemmabase/internal/report"
	"github.com/spf13/cobra"
)

func (c *CLI) newEvaluateCommand() *cobra.Command {
	var cf corpusFlags
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "evaluate <train-file> <test-file>",
		Short: "Train the lookup table and report accuracy on held-out data",
		Args:  cobra.ExactArgs(2),
		Example: `  lemmabase evaluate en_ewt-ud-train.conllu en_ewt-ud-test.conllu
  lemmabase evaluate train.conllu test.conllu --output - --format json
  lemmabase evaluate train.conllu test.conllu --normalize nfc --lowercase`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				output = c.cfg.Report.Output
			}
			if !cmd.Flags().Changed("format") {
				format = c.cfg.Report.Format
			}
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			slog.Info("Training", "train", args[0])
			start := time.Now()
			b, err := lemmabase.Train(args[0], cf.options(cmd, c.cfg))
			if err != nil {
				return err
			}
			slog.Debug("Training completed", "duration", time.Since(start))

			slog.Info("Evaluating", "test", args[1])
			start = time.Now()
			out, err := b.Evaluate(args[1])
			if err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "duration", time.Since(start))

			rep := report.New(b.Stats(), out)
			if err := writeReport(rep, output, f); err != nil {
				return err
			}
			if output != "-" {
				slog.Info("Report written", "path", output, "overall-accuracy", out.OverallAccuracy().String())
			}
			return nil
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "lookup-output.txt", "Report file, - for stdout")
	cmd.Flags().StringVar(&format, "format", "text", "Report format (text, json)")
	return cmd
}

func writeReport(rep *report.Report, path string, f report.Format) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer func() { _ = file.Close() }()
		w = file
		if err := rep.Write(w, f); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return file.Close()
	}
	return rep.Write(w, f)
}
