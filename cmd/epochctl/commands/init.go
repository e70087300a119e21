package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/epochctl/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a sample epochctl configuration file.

The configuration file is created at $XDG_CONFIG_HOME/epochctl/config.yaml.

Examples:
  # Initialize with default location
  epochctl init

  # Force overwrite existing config
  epochctl init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, err := config.InitConfig(initForce)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	fmt.Printf("Configuration file created at: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the configuration file to set a default timezone")
	fmt.Println("  2. Convert something: epochctl convert 1705321800")
	return nil
}
