package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/numwords/internal/config"
	"github.com/rpgo/numwords/internal/conversion"
	"github.com/rpgo/numwords/internal/domain"
	"github.com/rpgo/numwords/internal/output"
)

// EnvPrefix is prepended to setting names to form environment variables,
// e.g. NUMWORDS_FORMAT or NUMWORDS_MAX_SPAN.
const EnvPrefix = "NUMWORDS"

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "numwords",
		Short: "Convert numbers to English words and back",
		Long: `numwords spells integers and decimals in English words and parses
such phrases back into numbers.

Examples:
  numwords encode 123 1.5         # one hundred twenty three, one point five
  numwords decode two hundred     # 200
  numwords decode -e "one" "two"  # one phrase per argument
  numwords range 1 10 -f csv      # every number in a range as CSV`,
		Version:      Version,
		SilenceUsage: true,
	}

	setupFlags(rootCmd, flags)
	bindFlagsToViper(v, rootCmd)

	rootCmd.AddCommand(
		newEncodeCommand(v),
		newDecodeCommand(v, flags),
		newRangeCommand(v),
		newFormatsCommand(),
		newConfigCommand(v, flags),
	)
	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "settings file (YAML)")
	cmd.PersistentFlags().StringVarP(&flags.Format, "format", "f", flags.Format, "Output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	cmd.PersistentFlags().Int32Var(&flags.Places, "places", flags.Places, "Round fractions to this many digits (-1 keeps the shortest exact form)")
	cmd.PersistentFlags().Uint64Var(&flags.MaxSpan, "max-span", flags.MaxSpan, "Largest number of values a range may produce")
	cmd.PersistentFlags().BoolVar(&flags.Verbose, "verbose", false, "Log each conversion to stderr")
}

func bindFlagsToViper(v *viper.Viper, cmd *cobra.Command) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, name := range []string{"config", "format", "places", "max-span", "verbose"} {
		v.BindPFlag(name, cmd.PersistentFlags().Lookup(name))
	}
}

// resolveSettings layers defaults, the settings file, environment variables
// and explicitly set flags, in increasing priority.
func resolveSettings(v *viper.Viper) (domain.Settings, error) {
	parser := config.NewInputParser()

	settings := domain.DefaultSettings()
	if cfgFile := v.GetString("config"); cfgFile != "" {
		loaded, err := parser.LoadFromFile(cfgFile)
		if err != nil {
			return settings, err
		}
		settings = *loaded
	}

	if v.IsSet("format") {
		settings.Format = v.GetString("format")
	}
	if v.IsSet("places") {
		settings.FractionPlaces = v.GetInt32("places")
	}
	if v.IsSet("max-span") {
		settings.MaxRangeSpan = v.GetUint64("max-span")
	}

	if err := parser.ValidateSettings(&settings); err != nil {
		return settings, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

type produceFunc func(ctx context.Context, engine *conversion.Engine) (*domain.Report, error)

// runReport builds an engine from the resolved settings, renders the report
// it produces, and fails when any item failed.
func runReport(cmd *cobra.Command, v *viper.Viper, produce produceFunc) error {
	settings, err := resolveSettings(v)
	if err != nil {
		return err
	}

	engine := conversion.NewEngine(settings)
	if v.GetBool("verbose") {
		engine.SetLogger(NewStderrLogger(cmd.ErrOrStderr()))
	}

	report, err := produce(cmd.Context(), engine)
	if err != nil {
		return err
	}
	if err := output.GenerateReport(cmd.OutOrStdout(), report, settings.Format); err != nil {
		return err
	}
	return conversion.Check(report)
}

func newEncodeCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <number>...",
		Short: "Spell numbers in English words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, v, func(ctx context.Context, e *conversion.Engine) (*domain.Report, error) {
				return e.Encode(ctx, args)
			})
		},
	}
}

func newDecodeCommand(v *viper.Viper, flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <phrase>...",
		Short: "Parse English number phrases",
		Long: `Parse English number phrases into numbers.

All arguments form a single phrase unless --each is given, so both
  numwords decode one hundred five
  numwords decode "one hundred five"
print 105.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrases := args
			if !flags.Each {
				phrases = []string{strings.Join(args, " ")}
			}
			return runReport(cmd, v, func(ctx context.Context, e *conversion.Engine) (*domain.Report, error) {
				return e.Decode(ctx, phrases)
			})
		},
	}
	cmd.Flags().BoolVarP(&flags.Each, "each", "e", false, "Treat every argument as a separate phrase")
	return cmd
}

func newRangeCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "range <low> <high>",
		Short: "Spell every integer from low to high inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			low, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid low bound %q: %w", args[0], err)
			}
			high, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid high bound %q: %w", args[1], err)
			}
			return runReport(cmd, v, func(ctx context.Context, e *conversion.Engine) (*domain.Report, error) {
				return e.EncodeRange(ctx, low, high)
			})
		},
	}
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			aliases := output.AvailableFormatAliases()
			pairs := make([]string, 0, len(aliases))
			for _, a := range aliases {
				pairs = append(pairs, a+"="+output.NormalizeFormatName(a))
			}
			fmt.Fprintf(out, "Aliases: %s\n", strings.Join(pairs, ", "))
		},
	}
}

func newConfigCommand(v *viper.Viper, flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [file]",
		Short: "Print the effective settings, or write them to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()

			var settings *domain.Settings
			if flags.Example {
				settings = parser.CreateExampleSettings()
			} else {
				resolved, err := resolveSettings(v)
				if err != nil {
					return err
				}
				settings = &resolved
			}

			if len(args) == 1 {
				if err := parser.SaveToFile(settings, args[0]); err != nil {
					return fmt.Errorf("failed to write settings: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Settings written to %s\n", args[0])
				return nil
			}

			b, err := yaml.Marshal(settings)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().BoolVar(&flags.Example, "example", false, "Use example settings instead of the effective ones")
	return cmd
}
