package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/confparse"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type loadOptions struct {
	url            bool
	encoding       string
	defaults       string
	collapseSpaces bool
	verbose        bool
}

func newRootCmd() *cobra.Command {
	opts := &loadOptions{}
	cmd := &cobra.Command{
		Use:           "confparse",
		Short:         "Inspect header/key/value config files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	fs := cmd.PersistentFlags()
	fs.BoolVar(&opts.url, "url", false, "treat the source argument as a URL")
	fs.StringVar(&opts.encoding, "encoding", confparse.DefaultEncoding, "source charset")
	fs.StringVar(&opts.defaults, "defaults", "", "TOML or YAML defaults template")
	fs.BoolVar(&opts.collapseSpaces, "collapse-spaces", false, "split key lines on whitespace runs")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log load diagnostics to stderr")

	cmd.AddCommand(newCheckCmd(opts), newHeadersCmd(opts), newGetCmd(opts))
	return cmd
}

// load builds the config named by arg; "-" reads stdin.
func (o *loadOptions) load(cmd *cobra.Command, arg string) (*confparse.Config, error) {
	src := confparse.File(arg)
	switch {
	case arg == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		src = confparse.Text(string(data))
	case o.url:
		src = confparse.URL(arg)
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.WarnLevel)
	if o.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	b := confparse.NewBuilder(src).
		WithEncoding(o.encoding).
		WithCollapseSpaces(o.collapseSpaces).
		WithLogger(logger)
	if o.defaults != "" {
		b = b.WithDefaultsFile(o.defaults)
	}
	return b.BuildContext(cmd.Context())
}

func newCheckCmd(opts *loadOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <source>",
		Short: "Parse a config and report its size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args[0])
			if err != nil {
				return err
			}
			keys := 0
			for _, h := range cfg.Headers() {
				keys += h.Len()
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d headers, %d keys\n", cfg.Len(), keys)
			return err
		},
	}
}

func newHeadersCmd(opts *loadOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "headers <source>",
		Short: "List header names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, h := range cfg.Headers() {
				if _, err := fmt.Fprintln(out, h.Name()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newGetCmd(opts *loadOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <source> <header> [key]",
		Short: "Print the keys of a header, or the values of one key",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args[0])
			if err != nil {
				return err
			}
			h, ok := cfg.Header(args[1])
			if !ok {
				return fmt.Errorf("header %q not found", args[1])
			}

			out := cmd.OutOrStdout()
			if len(args) == 2 {
				for _, k := range h.Keys() {
					line := k.Name()
					if k.HasValues() {
						line += " " + strings.Join(k.Strings(), " ")
					}
					if _, err := fmt.Fprintln(out, line); err != nil {
						return err
					}
				}
				return nil
			}

			k, ok := h.Key(args[2])
			if !ok {
				return fmt.Errorf("key %q not found in header %q", args[2], args[1])
			}
			for _, v := range k.Values() {
				if _, err := fmt.Fprintln(out, v.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
