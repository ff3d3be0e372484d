package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tuannh982/intsets/sets"

	log "github.com/sirupsen/logrus"
)

type rootOptions struct {
	limit   int
	verbose bool
	noColor bool
	logger  *log.Entry
}

func (o *rootOptions) setOptions() []sets.Option {
	return []sets.Option{
		sets.WithLimit(o.limit),
		sets.WithLogger(o.logger),
	}
}

func (o *rootOptions) configure(w io.Writer) {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(log.InfoLevel)
	if o.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	o.logger = logger.WithFields(log.Fields{"component": "sets"})
}

type palette struct {
	errc   *color.Color
	header *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		errc:   color.New(color.FgRed),
		header: color.New(color.FgYellow),
	}
	if noColor {
		p.errc.DisableColor()
		p.header.DisableColor()
	}
	return p
}

// NewRootCmd builds the intsets command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "intsets",
		Short:         "Integer set algebra over linked sets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.configure(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().IntVar(&opts.limit, "limit", 0, "Maximum number of elements per set (0 means unlimited)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log set diagnostics at debug level")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newReplCmd(opts))
	root.AddCommand(newEvalCmd(opts))
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
