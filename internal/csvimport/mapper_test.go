package csvimport

import (
	"testing"
	"time"

	"github.com/pokerbase/bankroll-api/internal/types"
)

func TestMapRowDefaults(t *testing.T) {
	dto, err := MapRowToSession(Row{})
	if err != nil {
		t.Fatalf("MapRowToSession: %v", err)
	}
	if dto.GameType != types.GameTypeCash {
		t.Errorf("GameType = %q, want cash", dto.GameType)
	}
	if dto.Variant != "nlhe" {
		t.Errorf("Variant = %q, want nlhe", dto.Variant)
	}
	if dto.LocationType != types.LocationTypeLive {
		t.Errorf("LocationType = %q, want live", dto.LocationType)
	}
	if dto.BuyIn != 0 || dto.CashOut != 0 {
		t.Errorf("BuyIn/CashOut = %v/%v, want 0/0", dto.BuyIn, dto.CashOut)
	}
	if dto.IsOngoing {
		t.Error("IsOngoing = true, want false")
	}
	if dto.Notes == nil || *dto.Notes != importedNotesDefault {
		t.Errorf("Notes = %v, want default", dto.Notes)
	}
	if dto.SessionDate != time.Now().UTC().Format("2006-01-02") {
		t.Errorf("SessionDate = %q, want today", dto.SessionDate)
	}
	if dto.ActualStartTime != nil || dto.ActualEndTime != nil || dto.DurationHours != nil {
		t.Error("optional timestamps/duration should be unset")
	}
	if dto.Stakes != nil || dto.Location != nil {
		t.Error("stakes and location should be unset")
	}
}

func TestMapRowTimestamps(t *testing.T) {
	dto, err := MapRowToSession(Row{
		"starttime": "2025-10-16 20:52:34",
		"endtime":   "2025-10-17 02:10:00",
	})
	if err != nil {
		t.Fatalf("MapRowToSession: %v", err)
	}
	if dto.SessionDate != "2025-10-16" {
		t.Errorf("SessionDate = %q, want 2025-10-16", dto.SessionDate)
	}
	if dto.ActualStartTime == nil || dto.ActualStartTime.Hour() != 20 {
		t.Errorf("ActualStartTime = %v", dto.ActualStartTime)
	}
	if dto.ActualEndTime == nil || dto.ActualEndTime.Day() != 17 {
		t.Errorf("ActualEndTime = %v", dto.ActualEndTime)
	}
}

func TestMapRowBadTimestampFails(t *testing.T) {
	if _, err := MapRowToSession(Row{"starttime": "not a date"}); err == nil {
		t.Error("bad starttime should be a row error")
	}
	if _, err := MapRowToSession(Row{"endtime": "later"}); err == nil {
		t.Error("bad endtime should be a row error")
	}
}

func TestMapRowGameType(t *testing.T) {
	tests := []struct {
		variant string
		want    types.GameType
	}{
		{"Cash Game", types.GameTypeCash},
		{"Tournament ($50 MTT)", types.GameTypeTournament},
		{"$20 MTT", types.GameTypeTournament},
		{"SNG 6-max", types.GameTypeSNG},
		{"Sit & Go", types.GameTypeSNG},
		{"", types.GameTypeCash},
	}
	for _, tt := range tests {
		dto, err := MapRowToSession(Row{"variant": tt.variant})
		if err != nil {
			t.Fatalf("MapRowToSession(%q): %v", tt.variant, err)
		}
		if dto.GameType != tt.want {
			t.Errorf("variant %q → %q, want %q", tt.variant, dto.GameType, tt.want)
		}
	}
}

func TestMapRowVariantCode(t *testing.T) {
	tests := []struct {
		game, limit string
		want        string
	}{
		{"Holdem", "No Limit", "nlhe"},
		{"Holdem", "Fixed Limit", "lhe"},
		{"Omaha", "Pot Limit", "plo"},
		{"Omaha", "Fixed", "omaha"},
		{"Stud", "", "nlhe"},
		{"", "", "nlhe"},
	}
	for _, tt := range tests {
		dto, err := MapRowToSession(Row{"game": tt.game, "limit": tt.limit})
		if err != nil {
			t.Fatalf("MapRowToSession(%q, %q): %v", tt.game, tt.limit, err)
		}
		if dto.Variant != tt.want {
			t.Errorf("game=%q limit=%q → %q, want %q", tt.game, tt.limit, dto.Variant, tt.want)
		}
	}
}

func TestMapRowStakes(t *testing.T) {
	tests := []struct {
		sb, bb string
		want   string // "" means unset
	}{
		{"1", "2", "1/2"},
		{"0.5", "1", "0.5/1"},
		{"0", "0", ""},
		{"", "", ""},
		{"1", "", ""},
		{"abc", "def", ""},
	}
	for _, tt := range tests {
		row := Row{}
		if tt.sb != "" {
			row["smallblind"] = tt.sb
		}
		if tt.bb != "" {
			row["bigblind"] = tt.bb
		}
		dto, err := MapRowToSession(row)
		if err != nil {
			t.Fatalf("MapRowToSession: %v", err)
		}
		if tt.want == "" {
			if dto.Stakes != nil {
				t.Errorf("sb=%q bb=%q → stakes %q, want unset", tt.sb, tt.bb, *dto.Stakes)
			}
		} else if dto.Stakes == nil || *dto.Stakes != tt.want {
			t.Errorf("sb=%q bb=%q → stakes %v, want %q", tt.sb, tt.bb, dto.Stakes, tt.want)
		}
	}
}

func TestMapRowFinancials(t *testing.T) {
	dto, err := MapRowToSession(Row{
		"buyin":      "150",
		"cashout":    "410.25",
		"rebuys":     "2",
		"rebuycosts": "300",
	})
	if err != nil {
		t.Fatalf("MapRowToSession: %v", err)
	}
	if dto.BuyIn != 150 || dto.CashOut != 410.25 {
		t.Errorf("BuyIn/CashOut = %v/%v", dto.BuyIn, dto.CashOut)
	}
	if dto.RebuyCount != 2 || dto.TotalRebuys != 300 {
		t.Errorf("RebuyCount/TotalRebuys = %v/%v", dto.RebuyCount, dto.TotalRebuys)
	}
}

func TestMapRowUnparsableNumbersDefaultToZero(t *testing.T) {
	dto, err := MapRowToSession(Row{"buyin": "lots", "rebuys": "a few"})
	if err != nil {
		t.Fatalf("MapRowToSession: %v", err)
	}
	if dto.BuyIn != 0 || dto.RebuyCount != 0 {
		t.Errorf("BuyIn = %v RebuyCount = %v, want zeros", dto.BuyIn, dto.RebuyCount)
	}
}

func TestMapRowDuration(t *testing.T) {
	dto, err := MapRowToSession(Row{"playingminutes": "90"})
	if err != nil {
		t.Fatalf("MapRowToSession: %v", err)
	}
	if dto.DurationHours == nil || *dto.DurationHours != 1.5 {
		t.Errorf("DurationHours = %v, want 1.5", dto.DurationHours)
	}
}

func TestMapRowLocation(t *testing.T) {
	dto, err := MapRowToSession(Row{"location": "Bellagio", "type": "Online"})
	if err != nil {
		t.Fatalf("MapRowToSession: %v", err)
	}
	if dto.Location == nil || *dto.Location != "Bellagio" {
		t.Errorf("Location = %v", dto.Location)
	}
	if dto.LocationType != types.LocationTypeOnline {
		t.Errorf("LocationType = %q, want online", dto.LocationType)
	}

	dto, _ = MapRowToSession(Row{"type": "online poker"})
	if dto.LocationType != types.LocationTypeLive {
		t.Errorf("non-exact type should default to live, got %q", dto.LocationType)
	}
}

func TestMapRowNotes(t *testing.T) {
	dto, _ := MapRowToSession(Row{"sessionnote": "ran hot", "notes": "table 5"})
	if dto.Notes == nil || *dto.Notes != "ran hot\n\nOriginal notes: table 5" {
		t.Errorf("Notes = %v", dto.Notes)
	}

	dto, _ = MapRowToSession(Row{"notes": "table 5"})
	if dto.Notes == nil || *dto.Notes != "table 5" {
		t.Errorf("Notes = %v, want bare notes", dto.Notes)
	}

	dto, _ = MapRowToSession(Row{"sessionnote": "ran hot"})
	if dto.Notes == nil || *dto.Notes != "ran hot" {
		t.Errorf("Notes = %v, want session note", dto.Notes)
	}
}
