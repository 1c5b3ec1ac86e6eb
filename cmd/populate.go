/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/gndex/internal/iodb"
	"github.com/gnames/gndex/internal/iopopulate"
	"github.com/gnames/gndex/pkg/config"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
func getPopulateCmd() *cobra.Command {
	var (
		batchSize int
		quiet     bool
	)

	populateCmd := &cobra.Command{
		Use:   "populate <dump.yaml>",
		Short: "Populate the dataset from a YAML dump",
		Long: `Import an exported gndex dataset.

This command:
  1. Connects to SQLite or PostgreSQL using configuration settings
  2. Reads the YAML dump
  3. Imports every table in its own transaction, in batches
  4. Records the dataset version

Run 'gndex create' first.

Examples:
  gndex populate dex.yaml
  gndex populate dex.yaml --batch-size 1000 --quiet`,
		Aliases: []string{"add"},
		Args:    cobra.ExactArgs(1),
		RunE: withErrorMessage(func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("batch-size") {
				cfg.Update([]config.Option{config.OptStoreBatchSize(batchSize)})
			}

			ctx := cmd.Context()
			op := iodb.New(cfg)
			if err := op.Connect(ctx); err != nil {
				return err
			}
			defer op.Close()

			gn.Info("Connected to <em>%s</em>", op.Target())

			p := iopopulate.New(op, quiet)
			return p.Populate(ctx, args[0])
		}),
	}

	populateCmd.Flags().IntVarP(&batchSize, "batch-size", "b", 0,
		"rows per insert statement")
	populateCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"do not show progress bars")

	return populateCmd
}
