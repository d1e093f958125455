// Command datecli is an interactive front end for the date recognizers: it
// reads free-form lines and prints the date each one resolves to against a
// reference date.
//
//	$ datecli
//	Today is: 2024-08-04
//	+ 10
//	recognized: 2024-08-14
//	10
//	recognized: 2024-08-10
//	22-04
//	recognized: 2024-04-22
//	yesterday
//	recognized: 2024-08-03
//
// Inputs may also be passed as arguments. The quick offset bundle runs
// before the language bundle: signed inputs like "+10" are day offsets
// from the reference date, bare numbers read as numeric dates.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/syrtcevvi/go-date-parsers/i18n/en"
	"github.com/syrtcevvi/go-date-parsers/i18n/ru"
	"github.com/syrtcevvi/go-date-parsers/parser"
	"github.com/syrtcevvi/go-date-parsers/quick"
)

const dateLayout = "2006-01-02"

var (
	flagLang    string
	flagOrder   string
	flagRef     string
	flagVerbose bool
)

// newRootCmd builds the command and binds its flags, resetting the flag
// variables to their defaults.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datecli [input...]",
		Short: "Resolve free-form text to calendar dates",
		Long: "datecli runs each input (arguments, or stdin lines when no arguments\n" +
			"are given) through the quick offset recognizers and the selected\n" +
			"language bundle, printing the resolved date.",
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().StringVar(&flagLang, "lang", "en", "input language (en or ru)")
	cmd.Flags().StringVar(&flagOrder, "order", "dmy", "numeric field order, en only (dmy or mdy)")
	cmd.Flags().StringVar(&flagRef, "ref", "", "reference date as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "trace rejected bundle alternatives")
	return cmd
}

// versatile builds the recognizer for the selected language and field
// order, quick offsets first.
func versatile(lang, order string) (parser.Recognizer, error) {
	switch lang {
	case "en":
		switch order {
		case "dmy":
			return parser.First("cli/versatile-en-dmy", quick.Bundle, en.BundleDMY), nil
		case "mdy":
			return parser.First("cli/versatile-en-mdy", quick.Bundle, en.BundleMDY), nil
		default:
			return parser.Recognizer{}, fmt.Errorf("unknown field order %q (want dmy or mdy)", order)
		}
	case "ru":
		return parser.First("cli/versatile-ru", quick.Bundle, ru.Bundle), nil
	default:
		return parser.Recognizer{}, fmt.Errorf("unknown language %q (want en or ru)", lang)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := zerolog.Disabled
	if flagVerbose {
		level = zerolog.TraceLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level)

	ref := time.Now()
	if flagRef != "" {
		var err error
		ref, err = time.Parse(dateLayout, flagRef)
		if err != nil {
			return fmt.Errorf("invalid --ref date: %w", err)
		}
	}

	if flagLang != "en" && cmd.Flags().Changed("order") {
		return fmt.Errorf("--order applies only to --lang en")
	}
	rec, err := versatile(flagLang, flagOrder)
	if err != nil {
		return err
	}

	loc, err := newLocalizer(flagLang)
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, msg(loc, "TodayIs", map[string]any{"Date": ref.Format(dateLayout)}))

	resolve := func(line string) {
		match, err := rec.Parse(line, ref)
		if err != nil {
			traceCauses(logger, line, err)
			fmt.Fprintln(out, msg(loc, "Unrecognized", map[string]any{"Error": err}))
			return
		}
		logger.Trace().
			Str("input", line).
			Int("consumed", match.Consumed).
			Msg("matched")
		fmt.Fprintln(out, msg(loc, "Recognized", map[string]any{"Date": match.Date.Format(dateLayout)}))
	}

	if len(args) > 0 {
		for _, arg := range args {
			resolve(arg)
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		resolve(scanner.Text())
	}
	return scanner.Err()
}

// traceCauses logs every rejected bundle alternative, so --verbose shows
// why e.g. "42" is out of day range instead of the flat no-alternative
// error.
func traceCauses(logger zerolog.Logger, line string, err error) {
	var bundleErr *parser.BundleError
	if !errors.As(err, &bundleErr) {
		logger.Trace().Str("input", line).Err(err).Msg("alternative rejected")
		return
	}
	for _, cause := range bundleErr.Causes {
		traceCauses(logger, line, cause)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
