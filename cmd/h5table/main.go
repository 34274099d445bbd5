// Command h5table converts one-dimensional datasets stored in an HDF5
// file into a delimited text table, one column per dataset.
//
// Datasets and groups are both supported; only one-dimensional data
// with more than one element is considered.
package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/scigolib/h5table/internal/convert"
	"github.com/scigolib/h5table/internal/serialize"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		output    string
		columns   string
		precision string
		ignore    string
		delimiter string
		padding   string
		fullName  bool
		number    bool
		verbose   bool
		overwrite bool
		showPrev  bool
	)

	cmd := &cobra.Command{
		Use:   "h5table <file.h5>",
		Short: "Convert HDF5 data into a table in text format",
		Long: `Read all one-dimensional data from the given HDF5 file and write it
into a table in text format. Each dataset is converted into a column
inside the table.

Datasets and groups are both supported; only one-dimensional data with
more than one element is considered.`,
		Example: `  h5table results.h5
  h5table -c time,energy --delimiter , results.h5
  h5table -p %.3e -n --preview results.h5`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.Nop()
			if verbose {
				log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
			}

			opts := convert.Options{
				Input:     args[0],
				Output:    output,
				Columns:   splitList(columns),
				Ignore:    splitList(ignore),
				Formats:   splitList(precision),
				Delimiter: delimiter,
				Padding:   padding,
				FullName:  fullName,
				Number:    number,
				Overwrite: overwrite,
			}
			if showPrev {
				opts.Preview = cmd.OutOrStdout()
			}
			return convert.Run(opts, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "",
		"output file (based on input filename if not given)")
	flags.StringVarP(&columns, "columns", "c", "",
		"comma-separated list of columns")
	flags.StringVarP(&precision, "precision", "p", "",
		"format spec (either one for all columns, or a comma-separated list)")
	flags.StringVar(&ignore, "ignore", "",
		"comma-separated list of data entries to be ignored")
	flags.StringVar(&delimiter, "delimiter", serialize.DefaultDelimiter,
		"delimiter (default is four spaces)")
	flags.StringVar(&padding, "padding", "",
		"placeholder text for rows beyond a column's length")
	flags.BoolVarP(&fullName, "full-name", "f", false,
		"use full tree description as name in header")
	flags.BoolVarP(&number, "number", "n", false,
		"number all rows")
	flags.BoolVarP(&verbose, "verbose", "v", false,
		"explain what is being done")
	flags.BoolVar(&overwrite, "overwrite", false,
		"overwrite existing output file")
	flags.BoolVar(&showPrev, "preview", false,
		"preview table in terminal")

	return cmd
}

// splitList splits a comma-separated flag value, returning nil for an
// unset flag.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
