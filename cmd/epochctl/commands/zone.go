package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/epochctl/internal/caltime"
)

var zoneCmd = &cobra.Command{
	Use:   "zone <name> [date]",
	Short: "Inspect a timezone",
	Long: `Resolve a timezone name and show its abbreviation and UTC offset.

Zone names are matched case-insensitively against the IANA database
compiled into the binary, so "europe/rome" and "utc" work as written.
Daylight saving makes the offset date-dependent; pass a YYYY-MM-DD date
to inspect the zone at that date instead of now.

Examples:
  epochctl zone Europe/Rome
  epochctl zone america/new_york 2024-07-01`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runZone,
}

func runZone(cmd *cobra.Command, args []string) error {
	loc, err := (caltime.SystemZones{}).Resolve(args[0])
	if err != nil {
		return err
	}

	at := time.Now()
	if len(args) == 2 {
		at, err = time.ParseInLocation("2006-01-02", args[1], loc)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", args[1])
		}
	}

	local := at.In(loc)
	abbrev, offset := local.Zone()

	fmt.Printf("Zone:   %s\n", loc.String())
	fmt.Printf("Abbrev: %s\n", abbrev)
	fmt.Printf("Offset: %s (%+d seconds)\n", local.Format("-0700"), offset)
	fmt.Printf("Time:   %s\n", local.Format("2006-01-02 15:04:05 -0700"))
	return nil
}
