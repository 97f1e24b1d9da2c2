//go:build !(js && wasm)

// Package cmd implements wcpreview, which renders the custom elements of a
// manifest on the server and prints the resulting HTML, shadow roots
// included as declarative shadow DOM.
package cmd

import (
	"fmt"
	"os"

	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-wc/console"
)

var (
	manifestPath string
	verbosity    int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wcpreview",
	Short: "Preview nojs custom elements without a browser",
	Long: `wcpreview defines the custom elements listed in an elements.yaml manifest,
renders one of them into an in-memory document and prints the HTML.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		console.SetLogger(funcr.New(func(prefix, args string) {
			fmt.Fprintln(cmd.ErrOrStderr(), prefix, args)
		}, funcr.Options{Verbosity: verbosity}))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "elements.yaml", "path to the element manifest")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "log verbosity")
	rootCmd.AddCommand(newRenderCmd(), newListCmd())
}
