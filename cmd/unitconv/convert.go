package main

import (
	"fmt"

	"github.com/jhoicas/conversor-api/internal/application/dto"
	"github.com/jhoicas/conversor-api/internal/application/usecase"
	"github.com/spf13/cobra"
)

func convertCmd(app *cli) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "convert <category> <from> <to> <value>",
		Short: "Convierte un valor entre dos unidades",
		Long: `Convierte un valor y lo redondea a 6 decimales.
Un valor no numérico produce 0. Con --raw se muestra el resultado sin redondear.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				v, err := app.engine.ConvertRaw(args[0], args[1], args[2], usecase.ParseInput(args[3]))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), usecase.FormatResult(v))
				return nil
			}
			out, err := app.uc.Convert(dto.ConvertRequest{
				Category: args[0],
				From:     args[1],
				To:       args[2],
				Value:    args[3],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Display)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "No aplicar el redondeo de presentación")

	return cmd
}

func swapCmd(app *cli) *cobra.Command {
	var category, value string

	cmd := &cobra.Command{
		Use:   "swap <from> <to>",
		Short: "Intercambia el par de unidades (y reconvierte si se indica --category)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.uc.Swap(dto.SwapRequest{
				Category: category,
				From:     args[0],
				To:       args[1],
				Value:    value,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", out.From, out.To)
			if out.Conversion != nil {
				fmt.Fprintln(cmd.OutOrStdout(), out.Conversion.Display)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Categoría para reconvertir tras el intercambio")
	cmd.Flags().StringVarP(&value, "value", "v", "", "Valor a reconvertir")

	return cmd
}
