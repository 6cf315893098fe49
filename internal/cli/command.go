package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/learner/internal"
	"codeberg.org/snonux/learner/internal/matcher"
	"codeberg.org/snonux/learner/internal/processor"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "learner",
		Short: "Phrase memorization drill",
		Long: `learner keeps a collection of phrase pairs and drills you on them.

Answers are compared case-insensitively with Polish and German letters
folded to ASCII, so "zolw" is accepted for "Żółw". Several accepted
answers can be stored separated by commas.

Examples:
  learner add "Dzień dobry" "Guten Tag"   # Store a phrase pair
  learner add kot --translator openai     # Translate the missing side
  learner quiz --rounds 5                 # Drill five random phrases
  learner import phrases.txt --group 2    # Import a batch file
  learner export --csv -o phrases.csv     # Export for Anki`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(
		newAddCommand(flags),
		newListCommand(flags),
		newRemoveCommand(flags),
		newCheckCommand(flags),
		newQuizCommand(flags),
		newImportCommand(flags),
		newExportCommand(flags),
		newArchiveCommand(flags),
		newModelsCommand(flags),
	)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.learner.yaml)")
	pf.StringVar(&flags.Backend, "backend", flags.Backend, "Storage backend: file, sqlite or memory")
	pf.StringVar(&flags.DataDir, "data-dir", flags.DataDir, "Directory holding the phrase data")
	pf.StringVar(&flags.Translator, "translator", flags.Translator, "Translation provider for missing sides: openai, gemini or none")
	pf.StringVar(&flags.SourceLang, "source-lang", flags.SourceLang, "Language of the original text")
	pf.StringVar(&flags.TargetLang, "target-lang", flags.TargetLang, "Language of the translated text")
	pf.StringVar(&flags.Policy, "policy", flags.Policy, "Section matching policy: all or last")

	bindFlagsToViper(pf)
}

func bindFlagsToViper(pf *pflag.FlagSet) {
	viper.BindPFlag("storage.backend", pf.Lookup("backend"))
	viper.BindPFlag("storage.data_dir", pf.Lookup("data-dir"))
	viper.BindPFlag("translation.provider", pf.Lookup("translator"))
	viper.BindPFlag("translation.source_lang", pf.Lookup("source-lang"))
	viper.BindPFlag("translation.target_lang", pf.Lookup("target-lang"))
	viper.BindPFlag("check.policy", pf.Lookup("policy"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A missing .env file is fine, a broken one is worth a warning
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".learner" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".learner")
	}

	// Environment variables
	viper.SetEnvPrefix("LEARNER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.gemini_key")
}

// ProcessorConfig merges flags, config file and environment into the
// processor configuration
func ProcessorConfig(cmd *cobra.Command) (processor.Config, error) {
	policy, ok := matcher.ParsePolicy(viper.GetString("check.policy"))
	if !ok {
		return processor.Config{}, fmt.Errorf("unknown matching policy: %s", viper.GetString("check.policy"))
	}

	return processor.Config{
		Backend:    viper.GetString("storage.backend"),
		DataDir:    viper.GetString("storage.data_dir"),
		Translator: viper.GetString("translation.provider"),
		OpenAIKey:  GetOpenAIKey(),
		GeminiKey:  GetGeminiKey(),
		SourceLang: viper.GetString("translation.source_lang"),
		TargetLang: viper.GetString("translation.target_lang"),
		Policy:     policy,
		Out:        cmd.OutOrStdout(),
		ErrOut:     cmd.ErrOrStderr(),
	}, nil
}
