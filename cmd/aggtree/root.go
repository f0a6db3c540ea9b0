package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/aggtree"
	"github.com/npillmayer/aggtree/feed"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Configuration keys
const (
	keyConfig  = "config"
	keyInput   = "input"
	keyTrace   = "trace"
	keyNoColor = "no-color"
	keyQuiet   = "quiet"
)

func rootCommand() *cobra.Command {
	conf := viper.New()
	c := &cobra.Command{
		Use:           "aggtree",
		Short:         "Interactive shell for an ordered aggregate index",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			if err := loadConfig(conf); err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			setupTracing(conf.GetString(keyTrace))
			interactive := c.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd()))
			sh := newShell(c.OutOrStdout(), conf.GetBool(keyNoColor))
			if input := conf.GetString(keyInput); input != "" {
				if err := sh.load(c.Context(), input, !conf.GetBool(keyQuiet)); err != nil {
					return err
				}
			}
			return sh.run(c.InOrStdin(), interactive)
		},
	}
	flags := c.Flags()
	flags.StringP(keyConfig, "c", "", "load configuration from file")
	flags.StringP(keyInput, "i", "", "load key/value records from file")
	flags.String(keyTrace, "error", "trace level (error, info, debug)")
	flags.Bool(keyNoColor, false, "disable colored output")
	flags.BoolP(keyQuiet, "q", false, "do not report loading progress")
	if err := conf.BindPFlags(flags); err != nil {
		panic(err)
	}
	return c
}

// loadConfig lets environment variables and an optional config file provide
// values for flags not set on the command line.
func loadConfig(conf *viper.Viper) error {
	conf.SetEnvPrefix("AGGTREE")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()
	if path := conf.GetString(keyConfig); path != "" {
		conf.SetConfigFile(path)
		if err := conf.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	gtrace.CoreTracer = tracing.Select("aggtree")
	aggtree.T().SetTraceLevel(tracing.TraceLevelFromString(level))
}

// load reads records from a file into the shell's index. If verbose is set,
// progress is reported on stderr.
func (sh *shell) load(ctx context.Context, path string, verbose bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	file, err := feed.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	f := feed.New(path, file, feed.Int64s())
	if verbose {
		if ch, ok := f.Observe(ctx); ok {
			done := make(chan struct{})
			defer func() { <-done }()
			go func() {
				defer close(done)
				sh.report(os.Stderr, ch)
			}()
		}
	}
	_, err = feed.LoadInto(ctx, sh.idx, f)
	return err
}
