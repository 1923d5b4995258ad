// Command wikitok tokenizes wikitext from a file or stdin and prints the
// resulting token stream as text, XML, or a filtered subset of either.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/wikitext/tokenizer/config"
	"github.com/wikitext/tokenizer/export"
	"github.com/wikitext/tokenizer/filter"
	"github.com/wikitext/tokenizer/token"
	wikitok "github.com/wikitext/tokenizer"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cmd := &cli.Command{
		Name:  "wikitok",
		Usage: "tokenize MediaWiki wikitext",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a wikitok.toml config file"},
			&cli.StringFlag{Name: "format", Usage: "output format: text, xml, or json (overrides config)"},
			&cli.StringFlag{Name: "filter", Usage: "expr-lang boolean expression to filter emitted tokens"},
			&cli.BoolFlag{Name: "skip-style-tags", Usage: "disable italics/bold parsing"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, log)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("wikitok failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command, log zerolog.Logger) error {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		loaded, err := config.LoadOrDefault(path)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Debug().Str("path", path).Msg("loaded config")
	}
	if f := cmd.String("format"); f != "" {
		cfg.Format = config.Format(f)
	}
	if cmd.Bool("skip-style-tags") {
		cfg.SkipStyleTags = true
	}

	var src []byte
	var err error
	if args := cmd.Args().Slice(); len(args) > 0 {
		src, err = os.ReadFile(args[0])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("wikitok: read input: %w", err)
	}

	toks, err := wikitok.Tokenize(src,
		wikitok.WithSkipStyleTags(cfg.SkipStyleTags),
		wikitok.WithMaxDepth(cfg.MaxDepth),
		wikitok.WithDefinitions(cfg.Definitions()),
	)
	if err != nil {
		return err
	}
	log.Debug().Int("tokens", len(toks)).Msg("tokenized")

	if expression := cmd.String("filter"); expression != "" {
		f, err := filter.Compile(expression)
		if err != nil {
			return err
		}
		toks, err = f.Run(toks)
		if err != nil {
			return err
		}
	}

	return printTokens(os.Stdout, cfg.Format, toks)
}

func printTokens(w io.Writer, format config.Format, toks []token.Token) error {
	switch format {
	case config.FormatXML:
		return export.WriteXML(w, toks)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		for _, tok := range toks {
			if err := enc.Encode(tok); err != nil {
				return fmt.Errorf("wikitok: encode token: %w", err)
			}
		}
		return nil
	case config.FormatText, "":
		for _, tok := range toks {
			if tok.Kind == token.Text {
				fmt.Fprintf(w, "%s %q\n", tok.Kind, tok.Text)
				continue
			}
			fmt.Fprintf(w, "%s\n", tok.Kind)
		}
		return nil
	default:
		return fmt.Errorf("wikitok: unknown format %q", format)
	}
}
