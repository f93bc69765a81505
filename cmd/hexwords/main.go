package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/hexwords/internal/adapters/fs"
	"github.com/bft-labs/hexwords/internal/cliconfig"
	"github.com/bft-labs/hexwords/internal/watch"
	"github.com/bft-labs/hexwords/pkg/hexwords"
	logAdapter "github.com/bft-labs/hexwords/pkg/log"
)

const programName = "hexwords"

var longHelp = strings.TrimSpace(`
Render binary files as delimited hexadecimal text.

Input is read in words of --word-size bytes. Each word is optionally
byte-reversed (--little-endian), split into print-words of --print-size
bytes, and every print-word is written as uppercase hex. Words are grouped
--words-per-line to a line; every word is followed by the word delimiter.

Configuration is read from $HOME/.hexwords/config.toml (or --config), then
HEXWORDS_* environment variables, then flags.
`)

var exampleUsage = strings.TrimSpace(`
  hexwords -w 4 -p 4 --prefix 0x -d ", " -n 4 -i 4 -r --begin "uint32_t data[] = {" --end "};" asset.bin
  hexwords -w 2 -p 1 -l < image.raw
  hexwords --watch -o font.inc font.bin
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := cliconfig.NewLogger(os.Stderr, false)
	root := newRootCmd(ctx, os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		// Per-input failures were already reported as they happened.
		if !errors.Is(err, hexwords.ErrInputFailed) {
			log.Error().Err(err).Msg(programName)
		}
		os.Exit(1)
	}
}

func newRootCmd(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           programName + " [flags] [file ...]",
		Short:         "Render binary files as delimited hexadecimal text",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(args); err != nil {
				return err
			}

			log := cliconfig.NewLogger(stderr, cfg.Verbose)
			log.Debug().Interface("config", cfg).Strs("inputs", args).Msg("configuration")

			opener := fs.NewSourceOpener()
			opener.Stdin = stdin
			conv, err := hexwords.New(cfg.Format(),
				hexwords.WithLogger(logAdapter.NewZerologAdapterWithLogger(log)),
				hexwords.WithOpener(opener),
				hexwords.WithName(programName),
			)
			if err != nil {
				return err
			}

			err = render(conv, args, cfg.Output, stdout)
			if !cfg.Watch {
				return err
			}
			return watchAndRender(ctx, conv, args, cfg, log, err)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.hexwords/config.toml)")

	root.Flags().IntVarP(&cfg.WordSize, "word-size", "w", cfg.WordSize, "bytes read per word")
	root.Flags().IntVarP(&cfg.PrintSize, "print-size", "p", cfg.PrintSize, "bytes rendered per print-word (must divide word-size)")
	root.Flags().BoolVarP(&cfg.LittleEndian, "little-endian", "l", cfg.LittleEndian, "reverse the byte order of each word")
	root.Flags().IntVarP(&cfg.WordsPerLine, "words-per-line", "n", cfg.WordsPerLine, "words per output line")
	root.Flags().IntVarP(&cfg.IndentLevel, "indent", "i", cfg.IndentLevel, "indentation width of data lines")
	root.Flags().BoolVarP(&cfg.UseTab, "tab", "t", cfg.UseTab, "indent with tabs instead of spaces")

	root.Flags().StringVar(&cfg.AddPrefix, "prefix", cfg.AddPrefix, "text written before every print-word (e.g. 0x)")
	root.Flags().StringVar(&cfg.WordPrefix, "word-prefix", cfg.WordPrefix, "text written before every word")
	root.Flags().StringVarP(&cfg.Delim, "delim", "d", cfg.Delim, "delimiter between print-words")
	root.Flags().StringVar(&cfg.WordDelim, "word-delim", cfg.WordDelim, "delimiter after every word (defaults to --delim)")
	root.Flags().BoolVarP(&cfg.RTrim, "rtrim", "r", cfg.RTrim, "strip trailing whitespace from data lines")
	root.Flags().StringVar(&cfg.BeginOfFile, "begin", cfg.BeginOfFile, "line written before the data of each input")
	root.Flags().StringVar(&cfg.EndOfFile, "end", cfg.EndOfFile, "line written after the data of each input")

	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "write to file instead of standard output")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-render --output whenever an input file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before re-rendering in watch mode")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log per-input statistics")

	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}

// render converts every input into output, or into stdout when output is
// empty. The output file is truncated first.
func render(conv *hexwords.Converter, inputs []string, output string, stdout io.Writer) error {
	if output == "" {
		return conv.ConvertAll(inputs, stdout).Err()
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	return closeOutput(f, conv.ConvertAll(inputs, f).Err())
}

// closeOutput closes c and returns err unless the close fails. A close
// failure replaces err so that it is logged; per-input failures were
// already reported and only keep their text.
func closeOutput(c io.Closer, err error) error {
	cerr := c.Close()
	switch {
	case cerr == nil:
		return err
	case err != nil:
		return fmt.Errorf("close output: %w (%v)", cerr, err)
	default:
		return fmt.Errorf("close output: %w", cerr)
	}
}

// watchAndRender re-renders after every burst of input changes until ctx is
// done. The returned error reflects the last render.
func watchAndRender(ctx context.Context, conv *hexwords.Converter, inputs []string, cfg cliconfig.Config, log zerolog.Logger, last error) error {
	w := watch.New(watch.Config{
		Debounce: cfg.Debounce,
		Logger:   logAdapter.NewZerologAdapterWithLogger(log),
	})
	err := w.Run(ctx, inputs, func() {
		last = render(conv, inputs, cfg.Output, nil)
		switch {
		case last == nil:
			log.Info().Str("output", cfg.Output).Msg("rendered")
		case !errors.Is(last, hexwords.ErrInputFailed):
			log.Error().Err(last).Msg(programName)
		}
	})
	if err != nil {
		return err
	}
	return last
}
