// Command decompound splits a compound word into its constituents.
//
// The list of valid single words is read from stdin, one per line, unless
// --lexicon names a file or DECOMPOUND_LEXICON_SOURCE selects another source.
// Constituents are printed one per line on stdout; diagnostics go to stderr.
//
//	printf 'Affen\nGruppen\nÜberfall\n' | decompound -t -s Affengruppen-Überfall
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"decompound/internal/core/decompound"
	"decompound/internal/platform/config"
	perr "decompound/internal/platform/errors"
	"decompound/internal/platform/logger"
	"decompound/internal/services/decompound/domain"
	"decompound/internal/services/decompound/module"

	"github.com/google/uuid"
)

type cliArgs struct {
	word    string
	lexicon string
	options []string
}

func mustSetEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

// parseArgs accepts flags before and after the word; the last positional wins
func parseArgs(args []string, stderr io.Writer) (cliArgs, error) {
	var (
		out       cliArgs
		titlecase bool
		hyphens   bool
		shatter   bool
	)
	fs := flag.NewFlagSet("decompound", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&titlecase, "t", false, "also try titlecased suffixes")
	fs.BoolVar(&titlecase, "try-titlecase-suffix", false, "also try titlecased suffixes")
	fs.BoolVar(&hyphens, "s", false, "split on hyphens and decompose each piece")
	fs.BoolVar(&hyphens, "split-hyphenated", false, "split on hyphens and decompose each piece")
	fs.BoolVar(&shatter, "shatter", false, "prefer the decomposition with the most constituents")
	fs.StringVar(&out.lexicon, "l", "", "read the word list from this file instead of stdin")
	fs.StringVar(&out.lexicon, "lexicon", "", "read the word list from this file instead of stdin")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: decompound [-t] [-s] [--shatter] [-l FILE] WORD")
		fs.PrintDefaults()
	}

	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return out, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "parse arguments")
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		out.word, rest = rest[0], rest[1:]
	}
	if out.word == "" {
		fs.Usage()
		return out, perr.WithField(perr.InvalidArgf("no word given"), "word")
	}

	for _, o := range []struct {
		on  bool
		opt decompound.Options
	}{
		{titlecase, decompound.TryTitlecaseSuffix},
		{hyphens, decompound.SplitHyphenated},
		{shatter, decompound.Shatter},
	} {
		if o.on {
			out.options = append(out.options, o.opt.String())
		}
	}
	return out, nil
}

// run is main without the process exit
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if a.lexicon != "" {
		mustSetEnv("DECOMPOUND_LEXICON_SOURCE", string(module.SourceFile))
		mustSetEnv("DECOMPOUND_LEXICON_PATH", a.lexicon)
	}

	ctx = logger.WithRequest(ctx, uuid.NewString())
	ctx = logger.WithWord(ctx, a.word)
	log := logger.C(ctx)

	m, err := module.New(ctx, module.Deps{
		Cfg:           config.New(),
		Name:          "decompound",
		Stdin:         stdin,
		DefaultSource: module.SourceStdin,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(ctx); err != nil {
			log.Error().Err(err).Msg("close lexicon")
		}
	}()
	log.Debug().Int("words", m.Words()).Strs("options", a.options).Msg("decompounding")

	res, err := m.Svc.Decompose(ctx, domain.Request{Word: a.word, Options: a.options, Strict: true})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, strings.Join(res.Constituents, "\n"))
	return err
}

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		ev := logger.Get().Error().Str("code", perr.CodeOf(err).String())
		if pe, ok := perr.As(err); ok && pe.Field() != "" {
			ev = ev.Str("field", pe.Field())
		}
		ev.Err(err).Msg("decompound failed")
	}
	os.Exit(perr.ExitCode(err))
}
