package cli

import (
	"os"

	"github.com/happyhackingspace/lemmabase"
	"github.com/happyhackingspace/lemmabase/internal/report"
	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCommand() *cobra.Command {
	var cf corpusFlags
	var format string

	cmd := &cobra.Command{
		Use:     "stats <train-file>",
		Short:   "Print training statistics and expected accuracies",
		Args:    cobra.ExactArgs(1),
		Example: `  lemmabase stats en_ewt-ud-train.conllu`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = c.cfg.Report.Format
			}
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			b, err := lemmabase.Train(args[0], cf.options(cmd, c.cfg))
			if err != nil {
				return err
			}
			rep := &report.Report{Sections: []report.Section{report.TrainingSection(b.Stats())}}
			return rep.Write(os.Stdout, f)
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json)")
	return cmd
}
