package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/learner/internal/matcher"
	"codeberg.org/snonux/learner/internal/phrase"
	"codeberg.org/snonux/learner/internal/processor"
	"codeberg.org/snonux/learner/internal/quiz"
)

// withProcessor opens a processor for the duration of fn
func withProcessor(cmd *cobra.Command, fn func(p *processor.Processor) error) error {
	cfg, err := ProcessorConfig(cmd)
	if err != nil {
		return err
	}

	proc, err := processor.NewProcessor(cfg)
	if err != nil {
		return err
	}
	defer proc.Close()

	return fn(proc)
}

func newAddCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add ORIGINAL [TRANSLATED]",
		Short: "Add or update a phrase",
		Long: `Add a phrase pair. A missing translation is filled in by the
configured translator. Passing --id of a stored phrase replaces it.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			original := args[0]
			translated := ""
			if len(args) > 1 {
				translated = args[1]
			}

			group := processor.KeepGroup
			if cmd.Flags().Changed("group") {
				group = flags.Group
			}

			return withProcessor(cmd, func(p *processor.Processor) error {
				ph, err := p.AddPhrase(cmd.Context(), original, translated, flags.ID, group)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s: %s\n", ph.ID, ph)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&flags.ID, "id", "", "Phrase id (generated when empty)")
	cmd.Flags().IntVarP(&flags.Group, "group", "g", phrase.Ungrouped, "Group tag (-1 for ungrouped)")
	return cmd
}

func newListCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored phrases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(cmd, func(p *processor.Processor) error {
				return p.ListPhrases(cmd.Context(), flags.Group, cmd.Flags().Changed("group"))
			})
		},
	}

	cmd.Flags().IntVarP(&flags.Group, "group", "g", phrase.Ungrouped, "Only list this group")
	return cmd
}

func newRemoveCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a phrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(cmd, func(p *processor.Processor) error {
				if err := p.RemovePhrase(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			})
		},
	}
}

func newCheckCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check ID ANSWER",
		Short: "Check an answer against a stored phrase",
		Long: `Check an answer. Direction "to" compares the answer with the original
text, "from" compares it with the translated text.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := matcher.ParseDirection(flags.Direction)
			if err != nil {
				return err
			}

			return withProcessor(cmd, func(p *processor.Processor) error {
				ok, err := p.CheckAnswer(cmd.Context(), args[0], args[1], direction)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("wrong answer")
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Correct")
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&flags.Direction, "direction", "d", flags.Direction, "Direction: to or from")
	return cmd
}

func newQuizCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Drill random phrases",
		Long: fmt.Sprintf(`Ask random phrases until the rounds are done, the input ends
or %s is entered. --rounds 0 keeps asking.`, quiz.QuitCommand),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := matcher.ParseDirection(flags.Direction)
			if err != nil {
				return err
			}

			group := quiz.AnyGroup
			if cmd.Flags().Changed("group") {
				group = flags.Group
			}

			return withProcessor(cmd, func(p *processor.Processor) error {
				_, err := p.Quiz(cmd.Context(), processor.QuizOptions{
					Direction: direction,
					Rounds:    flags.Rounds,
					Group:     group,
					Seed:      flags.Seed,
					In:        cmd.InOrStdin(),
				})
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&flags.Direction, "direction", "d", flags.Direction, "Direction: to or from")
	cmd.Flags().IntVarP(&flags.Rounds, "rounds", "n", flags.Rounds, "Number of questions (0 for unlimited)")
	cmd.Flags().IntVarP(&flags.Group, "group", "g", phrase.Ungrouped, "Only ask this group")
	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "Random seed (0 seeds from the clock)")
	return cmd
}

func newImportCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import phrases from a batch file",
		Long: `Import phrases from a text file with one "original = translated" pair
per line. Lines with only one side are translated. Empty lines and lines
starting with # are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(cmd, func(p *processor.Processor) error {
				stats, err := p.ImportBatch(cmd.Context(), args[0], flags.Group)
				if err != nil {
					return err
				}
				if stats.Errors > 0 {
					return fmt.Errorf("%d of %d lines failed", stats.Errors, stats.Total)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&flags.Group, "group", "g", phrase.Ungrouped, "Group tag for imported phrases")
	return cmd
}

func newExportCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export phrases for Anki",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := flags.Format
			if flags.CSV {
				format = processor.FormatCSV
			}

			return withProcessor(cmd, func(p *processor.Processor) error {
				outputPath, err := p.Export(cmd.Context(), processor.ExportOptions{
					Format:     format,
					OutputPath: flags.OutputPath,
					DeckName:   flags.DeckName,
					Group:      flags.Group,
					FilterBy:   cmd.Flags().Changed("group"),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Export created: %s\n", outputPath)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Output file (default derived from the deck name)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Export format: apkg, csv or txt")
	cmd.Flags().BoolVar(&flags.CSV, "csv", false, "Shortcut for --format csv")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().IntVarP(&flags.Group, "group", "g", phrase.Ungrouped, "Only export this group")
	return cmd
}

func newArchiveCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Move the phrase data into a timestamped archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ProcessorConfig(cmd)
			if err != nil {
				return err
			}
			proc, err := processor.NewProcessor(cfg)
			if err != nil {
				return err
			}

			// Archive closes the store itself
			archived, err := proc.Archive()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived data to %s\n", archived)
			return nil
		},
	}
}

func newModelsCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List OpenAI models usable for translation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProcessor(cmd, func(p *processor.Processor) error {
				return p.ListModels(cmd.Context())
			})
		},
	}
}
