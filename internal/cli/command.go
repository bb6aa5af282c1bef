package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/extstat/internal/extstat"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var options extstat.Options

	cmd := &cobra.Command{
		Use:   "extstat",
		Short: "Report total file size per extension",
		Long: heredoc.Doc(`
			extstat walks a directory tree and reports the total size of the
			regular files it contains, grouped by file extension.

			Files without an extension, and dotfiles such as '.bashrc', are
			grouped under the empty extension "".

			With --convert, sizes are shown in binary units (B, KiB, MiB, ...).
			With --want-json, the statistics are also written as indented JSON to
			'file_size_statistics.txt' in the current directory, replacing any
			existing file.
		`),
		Example: heredoc.Doc(`
			extstat -p ./src
			extstat --folder-path ./src --convert --want-json
		`),
		Version:       c.version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic(options, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	registerFlags(flags, &options)

	_ = cmd.MarkFlagRequired("folder-path")

	return cmd
}

func registerFlags(flags *pflag.FlagSet, options *extstat.Options) {
	flags.StringVarP(&options.Path, "folder-path", "p", "", "Path to the folder")
	flags.BoolVarP(&options.Convert, "convert", "c", false, "Convert sizes to binary units")
	flags.BoolVarP(&options.WantJSON, "want-json", "j", false, "Write statistics to "+OutputFile)
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
