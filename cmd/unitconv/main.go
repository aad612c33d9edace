package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/conversor-api/internal/application/usecase"
	"github.com/jhoicas/conversor-api/internal/domain/catalog"
	"github.com/jhoicas/conversor-api/internal/domain/conversion"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

// cli agrupa lo que necesitan los subcomandos.
type cli struct {
	uc     *usecase.ConversionUseCase
	engine *conversion.Engine
}

func newCLI() *cli {
	cat := catalog.Standard()
	engine := conversion.NewEngine(cat)
	return &cli{
		uc:     usecase.NewConversionUseCase(cat, engine, nil, nil),
		engine: engine,
	}
}

func newRootCmd(app *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unitconv",
		Short: "Conversor de unidades por categoría",
		Long: `unitconv convierte valores entre unidades de una misma categoría
(longitud, temperatura, masa, volumen, datos, consumo, ...).

Para valores negativos separe los argumentos con --:
  unitconv convert temperature celsius fahrenheit -- -40`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		categoriesCmd(app),
		unitsCmd(app),
		convertCmd(app),
		swapCmd(app),
		catalogCmd(app),
		versionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd(newCLI()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
