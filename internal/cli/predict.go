package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/happyhackingspace/lemmabase"
	"github.com/spf13/cobra"
)

func (c *CLI) newPredictCommand() *cobra.Command {
	var cf corpusFlags

	cmd := &cobra.Command{
		Use:   "predict <train-file> [form...]",
		Short: "Lemmatize word forms with the lookup table",
		Args:  cobra.MinimumNArgs(1),
		Example: `  # Lemmatize forms given as arguments
  lemmabase predict en_ewt-ud-train.conllu ran geese

  # Lemmatize one form per line from stdin
  printf 'ran\ngeese\n' | lemmabase predict en_ewt-ud-train.conllu`,
		RunE: func(cmd *cobra.Command, args []string) error {
			forms := args[1:]
			if len(forms) == 0 && isStdinTerminal() {
				return cmd.Help()
			}
			b, err := lemmabase.Train(args[0], cf.options(cmd, c.cfg))
			if err != nil {
				return err
			}
			if len(forms) > 0 {
				for _, form := range forms {
					fmt.Printf("%s\t%s\n", form, b.Predict(form))
				}
				return nil
			}
			slog.Debug("Reading forms from stdin")
			return predictLines(b, os.Stdin, os.Stdout)
		},
	}

	cf.register(cmd)
	return cmd
}

func predictLines(b *lemmabase.Baseline, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		form := strings.TrimSpace(sc.Text())
		if form == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", form, b.Predict(form)); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

func isStdinTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
