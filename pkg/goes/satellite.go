package goes

import(
	"fmt"
	"sort"
	"strings"
)

// Product is the ABI level-2 Cloud and Moisture Imagery, full disk.
// Everything this tool renders comes out of that product.
const Product = "ABI-L2-CMIPF"

// A Satellite is one GOES spacecraft we know how to pull imagery
// from. Bucket is the public NOAA archive on S3.
type Satellite struct {
	Name        string
	Bucket      string
	Longitude   float64 // degrees east; negative is west
	Description string
}

// The registry keys are what users type on the command line. The
// positional aliases (goes-east/goes-west) track whichever spacecraft
// currently holds that slot.
var Satellites = map[string]Satellite{
	"goes-east": {
		Name:        "GOES-19",
		Bucket:      "noaa-goes19",
		Longitude:   -75.2,
		Description: "GOES-East (Atlantic, Americas East Coast)",
	},
	"goes-west": {
		Name:        "GOES-18",
		Bucket:      "noaa-goes18",
		Longitude:   -137.2,
		Description: "GOES-West (Pacific, Americas West Coast)",
	},
	"goes-16": {
		Name:        "GOES-16",
		Bucket:      "noaa-goes16",
		Longitude:   -75.2,
		Description: "GOES-16 (former GOES-East, standby)",
	},
	"goes-17": {
		Name:        "GOES-17",
		Bucket:      "noaa-goes17",
		Longitude:   -137.2,
		Description: "GOES-17 (former GOES-West, decommissioned)",
	},
	"goes-18": {
		Name:        "GOES-18",
		Bucket:      "noaa-goes18",
		Longitude:   -137.2,
		Description: "GOES-18 (alias for goes-west)",
	},
	"goes-19": {
		Name:        "GOES-19",
		Bucket:      "noaa-goes19",
		Longitude:   -75.2,
		Description: "GOES-19 (alias for goes-east)",
	},
}

const DefaultSatellite = "goes-west"

// Resolve maps a user-supplied satellite id to its config.
func Resolve(id string) (Satellite, error) {
	sat, ok := Satellites[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		valid := make([]string, 0, len(Satellites))
		for k := range Satellites {
			valid = append(valid, k)
		}
		sort.Strings(valid)
		return Satellite{}, fmt.Errorf("unknown satellite '%s', valid options: %s",
			id, strings.Join(valid, ", "))
	}
	return sat, nil
}
