package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/sarf-quiz/internal/config"
	"github.com/aliskhannn/sarf-quiz/internal/conjugation"
	"github.com/aliskhannn/sarf-quiz/internal/domain/entities"
	"github.com/aliskhannn/sarf-quiz/internal/repository"
)

// newTableCmd prints the conjugation table of a sample verb.
func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <verb>",
		Short: "Print the conjugation table of a sample verb (e.g. kataba)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			repo, err := repository.NewVerbRepository()
			if err != nil {
				return fmt.Errorf("load verbs: %w", err)
			}

			verb, err := repo.GetByTransliteration(args[0])
			if err != nil {
				return err
			}

			conj := newConjugator(cfg, zap.NewNop())
			return writeTable(cmd, conj, verb)
		},
	}
}

func writeTable(cmd *cobra.Command, conj *conjugation.Service, verb entities.Verb) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s), %s: %s\n\n", verb.Past, verb.Transliteration, verb.Bab.Pattern, verb.Meaning)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	slots := entities.Slots()

	fmt.Fprint(tw, "pronoun")
	for _, s := range slots {
		fmt.Fprintf(tw, "\t%s", s.Key())
	}
	fmt.Fprintln(tw)

	tables := make([][]string, len(slots))
	for i, s := range slots {
		tables[i] = conj.Table(verb, s)
	}

	for _, p := range entities.Pronouns() {
		fmt.Fprintf(tw, "%s (%s)", p.Label, p.Arabic)
		for i := range slots {
			form := tables[i][p.Index]
			fmt.Fprintf(tw, "\t%s %s", form, conjugation.Transliterate(form))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
