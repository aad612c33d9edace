package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func categoriesCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Lista las categorías disponibles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOMBRE\tBASE\tUNIDADES")
			for _, c := range app.uc.ListCategories().Items {
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%d\n", c.ID, c.Icon, c.Name, c.BaseUnit, c.UnitCount)
			}
			return w.Flush()
		},
	}
}

func unitsCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "units <category>",
		Short: "Lista las unidades de una categoría",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.uc.ListUnits(args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNOMBRE\tSÍMBOLO\t")
			for _, u := range out.Items {
				mark := ""
				if u.ID == out.BaseUnit {
					mark = "(base)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Symbol, mark)
			}
			return w.Flush()
		},
	}
}

func catalogCmd(app *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Exporta el catálogo completo (json o yaml)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			export, err := app.uc.ExportCatalog()
			if err != nil {
				return err
			}
			var b []byte
			switch format {
			case "json":
				b, err = json.MarshalIndent(export, "", "  ")
				if err == nil {
					b = append(b, '\n')
				}
			case "yaml", "yml":
				b, err = yaml.Marshal(export)
			default:
				return fmt.Errorf("formato no soportado: %q (use json o yaml)", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Formato de salida: json | yaml")

	return cmd
}
