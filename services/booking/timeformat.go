package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"deskly/models"
)

var offsetRe = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)

// FormatTimeWithOffset renders a UTC timestamp as an HH:MM wall-clock
// string shifted by a signed HH:MM offset. The shifted instant is
// always read in UTC so the result never depends on the host timezone.
func FormatTimeWithOffset(ts, offset string) (string, error) {
	t, err := ParseInstant(ts)
	if err != nil {
		return "", err
	}
	if offset != "" {
		m := offsetRe.FindStringSubmatch(offset)
		if m == nil {
			return "", fmt.Errorf("invalid offset %q", offset)
		}
		hours, _ := strconv.Atoi(m[2])
		mins, _ := strconv.Atoi(m[3])
		shift := time.Duration(hours)*time.Hour + time.Duration(mins)*time.Minute
		if m[1] == "-" {
			shift = -shift
		}
		t = t.Add(shift)
	}
	t = t.UTC()
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()), nil
}

// SlotLabel renders the "HH:MM - HH:MM" label of a decomposed slot.
// An unrenderable endpoint yields an empty label rather than an error.
func SlotLabel(item models.TimeIntervalItem) string {
	start, err := FormatTimeWithOffset(item.Start, item.Offset)
	if err != nil {
		return ""
	}
	end, err := FormatTimeWithOffset(item.End, item.Offset)
	if err != nil {
		return ""
	}
	return start + " - " + end
}
