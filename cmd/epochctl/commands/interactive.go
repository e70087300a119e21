package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marmos91/epochctl/internal/cli/output"
	"github.com/marmos91/epochctl/internal/cli/prompt"
	"github.com/marmos91/epochctl/internal/config"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"repl"},
	Short:   "Convert queries in an interactive loop",
	Long: `Start an interactive loop that converts one query per line.

Each line is classified and converted exactly as with "epochctl convert".
A failed conversion prints the error and keeps the loop running.
Quit with q, quit, exit or Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return err
	}
	if err := InitLogger(cfg); err != nil {
		return err
	}

	conv, err := newConverter(cfg.Convert.Timezone, cfg.Convert.MaxYear)
	if err != nil {
		return err
	}

	fmt.Println("Enter a timestamp or date-time (q to quit).")
	for {
		line, err := prompt.Input("epochctl")
		if prompt.IsAborted(err) {
			return nil
		}
		if err != nil {
			return err
		}

		query := strings.TrimSpace(line)
		switch strings.ToLower(query) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		}

		res, err := conv.Convert(query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if err := output.Print(os.Stdout, output.FormatTable, res); err != nil {
			return err
		}
		fmt.Println()
	}
}
