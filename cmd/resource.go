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
	"slices"

	"github.com/gnames/gndex/internal/iostore"
	"github.com/gnames/gndex/pkg/gndex"
	"github.com/spf13/cobra"
)

// getResourceCmd returns the resource command.
func getResourceCmd() *cobra.Command {
	var delimiter string

	resourceCmd := &cobra.Command{
		Use:   "resource <pokemon|moves|abilities|games|types>",
		Short: "List names of a resource",
		Long: `List all names of a resource, for example to feed shell completion.

Examples:
  gndex resource pokemon
  gndex resource games --delimiter ,`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: resourceNames(),
		RunE: withErrorMessage(func(cmd *cobra.Command, args []string) error {
			res := gndex.Resource(args[0])
			if !slices.Contains(gndex.Resources, res) {
				return iostore.ResourceError(args[0])
			}

			ctx := cmd.Context()
			s, err := openSession(ctx, cmd, "")
			if err != nil {
				return err
			}
			defer s.Close()

			names, err := s.dex.Names(ctx, res)
			if err != nil {
				return err
			}
			return s.view.Names(names, delimiter)
		}),
	}

	resourceCmd.Flags().StringVarP(&delimiter, "delimiter", "d", "\n",
		"delimiter between names")
	return resourceCmd
}

func resourceNames() []string {
	res := make([]string, len(gndex.Resources))
	for i, v := range gndex.Resources {
		res[i] = string(v)
	}
	return res
}
