package csvimport

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pokerbase/bankroll-api/internal/types"
)

const importedNotesDefault = "Imported from PBT Bankroll"

// timestampLayouts covers the formats the PBT exporter has been seen writing,
// most common first.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
}

// MapRowToSession infers a normalized session from one loosely-named export
// row. Numeric fields that fail to parse fall back to their defaults; only a
// present-but-unparsable timestamp is an error, attributed by the caller.
func MapRowToSession(row Row) (types.CreateSessionDTO, error) {
	var dto types.CreateSessionDTO

	// Dates. A missing start time means we only know the session happened
	// "by now", so the import date stands in for the session date.
	if raw := row.Get("starttime"); raw != "" {
		start, err := parseTimestamp(raw)
		if err != nil {
			return dto, fmt.Errorf("invalid start time %q", raw)
		}
		dto.SessionDate = start.Format("2006-01-02")
		dto.ActualStartTime = &start
	} else {
		dto.SessionDate = time.Now().UTC().Format("2006-01-02")
	}

	if raw := row.Get("endtime"); raw != "" {
		end, err := parseTimestamp(raw)
		if err != nil {
			return dto, fmt.Errorf("invalid end time %q", raw)
		}
		dto.ActualEndTime = &end
	}

	// Game type lives in the exporter's "variant" column as free text
	// ("Cash Game", "Tournament ($50 MTT)", "Sit & Go", ...).
	variant := strings.ToLower(row.Get("variant"))
	switch {
	case strings.Contains(variant, "tournament"), strings.Contains(variant, "mtt"):
		dto.GameType = types.GameTypeTournament
	case strings.Contains(variant, "sng"), strings.Contains(variant, "sit"):
		dto.GameType = types.GameTypeSNG
	default:
		dto.GameType = types.GameTypeCash
	}

	// Our variant code comes from the exporter's "game" and "limit" columns.
	game := strings.ToLower(row.Get("game"))
	limit := strings.ToLower(row.Get("limit"))
	dto.Variant = "nlhe"
	if strings.Contains(game, "hold") {
		if !strings.Contains(limit, "no limit") {
			dto.Variant = "lhe"
		}
	} else if strings.Contains(game, "omaha") {
		if strings.Contains(limit, "pot") {
			dto.Variant = "plo"
		} else {
			dto.Variant = "omaha"
		}
	}

	dto.BuyIn = parseFloatOrDefault(row.Get("buyin"), 0)
	dto.CashOut = parseFloatOrDefault(row.Get("cashout"), 0)
	dto.TotalRebuys = parseFloatOrDefault(row.Get("rebuycosts"), 0)
	dto.RebuyCount = parseIntOrDefault(row.Get("rebuys"), 0)

	// Stakes only when both blind columns are present and at least one is a
	// positive number.
	if sbRaw, bbRaw := row.Get("smallblind"), row.Get("bigblind"); sbRaw != "" && bbRaw != "" {
		sb := parseFloatOrDefault(sbRaw, 0)
		bb := parseFloatOrDefault(bbRaw, 0)
		if sb > 0 || bb > 0 {
			stakes := formatAmount(sb) + "/" + formatAmount(bb)
			dto.Stakes = &stakes
		}
	}

	if location := row.Get("location"); location != "" {
		dto.Location = &location
	}
	dto.LocationType = types.LocationTypeLive
	if strings.ToLower(row.Get("type")) == "online" {
		dto.LocationType = types.LocationTypeOnline
	}

	if raw := row.Get("playingminutes"); raw != "" {
		hours := parseFloatOrDefault(raw, 0) / 60
		dto.DurationHours = &hours
	}

	notes := row.Get("sessionnote")
	if original := row.Get("notes"); original != "" {
		if notes != "" {
			notes = notes + "\n\nOriginal notes: " + original
		} else {
			notes = original
		}
	}
	if notes == "" {
		notes = importedNotesDefault
	}
	dto.Notes = &notes

	// Imported sessions are always historical.
	dto.IsOngoing = false

	return dto, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// parseFloatOrDefault is the uniform lenient-parse policy: malformed numbers
// degrade to the documented default instead of failing the row.
func parseFloatOrDefault(raw string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return def
	}
	return v
}

// parseIntOrDefault tolerates decimal text ("2.7" counts as 2 rebuys).
func parseIntOrDefault(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(v)
	}
	return def
}

// formatAmount renders a blind without trailing zeros ("1", "0.5").
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
