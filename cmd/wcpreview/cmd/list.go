//go:build !(js && wasm)

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the elements of the manifest and their observed attributes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(manifestPath)
			if err != nil {
				return err
			}
			for _, name := range reg.Names() {
				class, _ := reg.Lookup(name)
				opts := class.Options()
				mode := "light"
				if opts.Shadow {
					mode = "shadow"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t[%s]\n", name, mode, strings.Join(class.ObservedAttributes(), ", "))
			}
			return nil
		},
	}
}
