package helper

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"travel_manager/model"
)

// Legacy packages stored their hotel/room/tour selection only inside an
// auto-generated description string. These regexes recover that structure for the
// one-off backfill in cmd/fixpackages. Rows whose text drifted from the generated
// format are reported, not guessed at.
var (
	hotelLineRe = regexp.MustCompile(`^(.+?)\s*\((\d)★\)\s*$`)
	roomLineRe  = regexp.MustCompile(`^•\s*(.+?)\s*-\s*\$(\d+(?:\.\d{1,2})?)/night\s*\(Max:\s*(\d+)\s*guests?\)\s*$`)
	tourLineRe  = regexp.MustCompile(`^•\s*(.+?)\s*-\s*\$(\d+(?:\.\d{1,2})?)\s*$`)
)

type LegacyPackageData struct {
	Hotels []model.PackageHotel
	Tours  []model.PackageTour
}

func dollarsToMinor(s string) int64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(f * 100))
}

// ParseLegacyDescription scans a generated description line by line. Room bullets
// attach to the hotel line above them; bullets under a "Tours" heading become tour
// entries. ok is false when no hotel could be recovered at all.
func ParseLegacyDescription(description string) (LegacyPackageData, bool) {
	var data LegacyPackageData
	inTours := false

	for _, raw := range strings.Split(description, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		lower := strings.ToLower(strings.TrimSuffix(line, ":"))
		if lower == "tours" || lower == "included tours" {
			inTours = true
			continue
		}
		if lower == "hotels" || lower == "included hotels" {
			inTours = false
			continue
		}

		if m := hotelLineRe.FindStringSubmatch(line); m != nil {
			stars, _ := strconv.Atoi(m[2])
			data.Hotels = append(data.Hotels, model.PackageHotel{
				Name:  strings.TrimSpace(m[1]),
				Stars: stars,
			})
			inTours = false
			continue
		}

		if !inTours {
			if m := roomLineRe.FindStringSubmatch(line); m != nil {
				if len(data.Hotels) == 0 {
					// room bullet with no hotel above it, skip
					continue
				}
				occupancy, _ := strconv.Atoi(m[3])
				last := len(data.Hotels) - 1
				data.Hotels[last].Rooms = append(data.Hotels[last].Rooms, model.PackageRoom{
					Type:          strings.TrimSpace(m[1]),
					PricePerNight: dollarsToMinor(m[2]),
					MaxOccupancy:  occupancy,
				})
				continue
			}
		}

		if inTours {
			if m := tourLineRe.FindStringSubmatch(line); m != nil {
				data.Tours = append(data.Tours, model.PackageTour{
					Name:  strings.TrimSpace(m[1]),
					Price: dollarsToMinor(m[2]),
				})
			}
		}
	}

	return data, len(data.Hotels) > 0
}
