package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marmos91/epochctl/internal/cli/output"
	"github.com/marmos91/epochctl/internal/config"
	"github.com/marmos91/epochctl/internal/logger"
)

var (
	convertTimezone string
	convertMaxYear  int
	convertOutput   string
	convertCopyAll  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <query>...",
	Short: "Convert a timestamp or date-time to its other representations",
	Long: `Convert a timestamp or date-time query into every other representation.

The query form is detected automatically:
  - a bare integer is a Unix epoch timestamp; its resolution (seconds,
    milliseconds, microseconds or nanoseconds) is inferred from magnitude
  - an integer with an s, ms, us or ns suffix is a Unix timestamp at that
    exact resolution
  - NT, NTFS or LDAP followed by an integer is a count of 100-nanosecond
    ticks since 1601-01-01 UTC
  - anything else is parsed as a calendar date-time, e.g.
    "2024-01-15 12:30:00 Europe/Rome" or "2024-01-15 12:30:00 +0530"

Examples:
  # Unix seconds (inferred)
  epochctl convert 1705321800

  # Unix milliseconds (explicit)
  epochctl convert 1705321800123ms

  # NTFS/LDAP ticks
  epochctl convert NTFS 133497954000000000

  # Calendar date-time with a zone name
  epochctl convert 2024-01-15 12:30:00 America/New_York

  # JSON output
  epochctl convert 1705321800 --output json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertTimezone, "timezone", "z", "", "Timezone for local output (default: system local zone)")
	convertCmd.Flags().IntVar(&convertMaxYear, "max-year", 0, "Upper year bound for resolution inference (default: 9999)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "table", "Output format (table|json|yaml)")
	convertCmd.Flags().BoolVar(&convertCopyAll, "copy-all", false, "Print only the aligned label/value block, ready to paste")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return err
	}
	if err := InitLogger(cfg); err != nil {
		return err
	}

	// Flags override config.
	if convertTimezone == "" {
		convertTimezone = cfg.Convert.Timezone
	}
	if convertMaxYear == 0 {
		convertMaxYear = cfg.Convert.MaxYear
	}

	format, err := output.ParseFormat(convertOutput)
	if err != nil {
		return err
	}

	conv, err := newConverter(convertTimezone, convertMaxYear)
	if err != nil {
		return err
	}

	// Multi-token queries (e.g. calendar date-times) arrive as separate args.
	query := strings.Join(args, " ")
	res, err := conv.Convert(query)
	if err != nil {
		logger.Debug("conversion failed", logger.KeyQuery, query, logger.KeyError, err)
		return err
	}
	logger.Debug("converted", logger.KeyQuery, query, logger.KeyKind, res.Kind)

	if convertCopyAll {
		_, err := fmt.Fprintln(os.Stdout, res.CopyAll())
		return err
	}
	return output.Print(os.Stdout, format, res)
}
