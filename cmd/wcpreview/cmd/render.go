//go:build !(js && wasm)

package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-wc/console"
)

func newRenderCmd() *cobra.Command {
	var (
		attrs  []string
		props  []string
		pretty bool
		watch  bool
	)
	c := &cobra.Command{
		Use:   "render <tag>",
		Short: "Render one custom element and print the document",
		Example: `  wcpreview render nojs-greeting --attr name=Ada --attr age=36
  wcpreview render nojs-counter --prop label=Clicks --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request{Tag: args[0], Pretty: pretty}
			var err error
			if req.Attrs, err = parseKeyValues(attrs); err != nil {
				return err
			}
			if req.Props, err = parseKeyValues(props); err != nil {
				return err
			}

			run := func() error {
				reg, err := loadRegistry(manifestPath)
				if err != nil {
					return err
				}
				return preview(cmd.OutOrStdout(), reg, req)
			}
			if err := run(); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watchManifest(ctx, manifestPath, func() {
				if err := run(); err != nil {
					console.Error("render failed:", err)
				}
			})
		},
	}
	c.Flags().StringArrayVar(&attrs, "attr", nil, "attribute to set before connecting, as key=value (repeatable)")
	c.Flags().StringArrayVar(&props, "prop", nil, "property to assign after connecting, as key=value (repeatable)")
	c.Flags().BoolVar(&pretty, "pretty", true, "indent the HTML output")
	c.Flags().BoolVarP(&watch, "watch", "w", false, "render again whenever the manifest directory changes")
	return c
}
