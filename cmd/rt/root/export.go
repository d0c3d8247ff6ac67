package root

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"routine/internal/engine"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	var format string
	var list string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print both task lists with their completion history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			var doc any = svc.Snapshot()
			if list != "" {
				kind, err := engine.ParseListKind(list)
				if err != nil {
					return err
				}
				doc = svc.Snapshot().Tasks(kind)
			}

			out := cmd.OutOrStdout()
			if format == "yaml" {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(doc); err != nil {
					return err
				}
				return enc.Close()
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json|yaml)")
	cmd.Flags().StringVar(&list, "list", "", "Export only one list (daily|weekly)")

	return cmd
}
