package booking

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"deskly/models"
	"deskly/utils"

	"go.uber.org/zap"
)

// instantLayout is the zone-less ISO form the booking API uses for
// interval endpoints. Inputs without a zone marker are UTC by
// convention.
const instantLayout = "2006-01-02T15:04:05"

var durationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// ParseISODuration parses the PT(nH)(nM) subset of ISO-8601 durations
// used by availability responses. At least one component is required.
func ParseISODuration(s string) (time.Duration, error) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	var d time.Duration
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		d += time.Duration(h) * time.Hour
	}
	if m[2] != "" {
		min, _ := strconv.Atoi(m[2])
		d += time.Duration(min) * time.Minute
	}
	if d <= 0 {
		return 0, fmt.Errorf("non-positive duration %q", s)
	}
	return d, nil
}

// ParseInstant parses an ISO timestamp as a UTC instant, appending a Z
// when no zone marker is present.
func ParseInstant(s string) (time.Time, error) {
	if !hasZoneMarker(s) {
		s += "Z"
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid instant: %w", err)
	}
	return t.UTC(), nil
}

func hasZoneMarker(s string) bool {
	i := strings.IndexByte(s, 'T')
	if i < 0 {
		return false
	}
	rest := s[i+1:]
	return strings.ContainsAny(rest, "Z+-") || strings.HasSuffix(s, "z")
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(instantLayout)
}

// DecomposeInterval expands one coarse availability window into
// duration-sized sub-windows. Unavailable windows, windows with no
// duration list, and windows that produce nothing (bad endpoints or a
// degenerate range) pass through unchanged as a single element.
func DecomposeInterval(item models.TimeIntervalItem) []models.TimeIntervalItem {
	if item.Status != models.SlotAvailable || len(item.AvailableDurations) == 0 {
		return []models.TimeIntervalItem{item}
	}

	start, err := ParseInstant(item.Start)
	if err != nil {
		return []models.TimeIntervalItem{item}
	}
	end, err := ParseInstant(item.End)
	if err != nil {
		return []models.TimeIntervalItem{item}
	}

	logger := utils.GetLogger()
	var out []models.TimeIntervalItem
	for _, raw := range item.AvailableDurations {
		d, err := ParseISODuration(raw)
		if err != nil {
			// Skip just this duration, never the whole window.
			logger.Warn("skipping unparseable duration",
				zap.String("duration", raw), zap.Error(err))
			continue
		}
		for cursor := start; !cursor.Add(d).After(end); cursor = cursor.Add(d) {
			sub := item.Clone()
			sub.Start = formatInstant(cursor)
			sub.End = formatInstant(cursor.Add(d))
			sub.Status = models.SlotAvailable
			sub.AvailableDurations = []string{raw}
			out = append(out, sub)
		}
	}
	if len(out) == 0 {
		return []models.TimeIntervalItem{item}
	}
	return dedupeAndSort(out)
}

// ProcessIntervals decomposes a whole availability batch. Dedup and
// sort run again across the flattened result so no cross-interval
// duplicates survive; both passes are idempotent.
func ProcessIntervals(items []models.TimeIntervalItem) []models.TimeIntervalItem {
	var out []models.TimeIntervalItem
	for _, item := range items {
		out = append(out, DecomposeInterval(item)...)
	}
	return dedupeAndSort(out)
}

func dedupeAndSort(items []models.TimeIntervalItem) []models.TimeIntervalItem {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		key := it.Start + "|" + it.End
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, erri := ParseInstant(out[i].Start)
		tj, errj := ParseInstant(out[j].Start)
		if erri != nil || errj != nil {
			return out[i].Start < out[j].Start
		}
		return ti.Before(tj)
	})
	return out
}
