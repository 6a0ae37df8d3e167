package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ShowCmd creates the show command.
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one place by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			p, err := a.catalog.Place(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputJSON(cmd) {
				return printJSON(out, p)
			}
			fmt.Fprintln(out, placeLine(&p))
			if p.NameEn != "" {
				fmt.Fprintf(out, "English: %s\n", p.NameEn)
			}
			if p.DescriptionAr != "" {
				fmt.Fprintln(out, p.DescriptionAr)
			}
			if len(p.Audience) > 0 {
				fmt.Fprintf(out, "Audience: %s\n", strings.Join(p.Audience, "، "))
			}
			if len(p.PerfectFor) > 0 {
				fmt.Fprintf(out, "Perfect for: %s\n", strings.Join(p.PerfectFor, "، "))
			}
			if p.GoogleMapsURL != "" {
				fmt.Fprintf(out, "Map: %s\n", p.GoogleMapsURL)
			}
			return nil
		},
	}
}
