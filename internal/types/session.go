package types

import (
	"time"
)

// ====== ENUMS ======

type GameType string

const (
	GameTypeCash       GameType = "cash"
	GameTypeTournament GameType = "tournament"
	GameTypeSNG        GameType = "sng"
)

type LocationType string

const (
	LocationTypeLive   LocationType = "live"
	LocationTypeOnline LocationType = "online"
)

type SessionUpdateType string

const (
	UpdateTypeRebuy        SessionUpdateType = "rebuy"
	UpdateTypeAddon        SessionUpdateType = "addon"
	UpdateTypeChipSpend    SessionUpdateType = "chip_spend"
	UpdateTypeBalanceCheck SessionUpdateType = "balance_check"
	UpdateTypeNote         SessionUpdateType = "note"
	UpdateTypeBreak        SessionUpdateType = "break"
)

// ====== CORE TYPES ======

// PokerSession is one recorded playing occasion as stored in poker_sessions.
type PokerSession struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	SessionDate   string   `db:"session_date" json:"sessionDate"`
	DurationHours *float64 `db:"duration_hours" json:"durationHours,omitempty"`

	ActualStartTime *time.Time `db:"actual_start_time" json:"actualStartTime,omitempty"`
	ActualEndTime   *time.Time `db:"actual_end_time" json:"actualEndTime,omitempty"`

	GameType GameType `db:"game_type" json:"gameType"`
	Variant  string   `db:"variant" json:"variant"`
	Stakes   *string  `db:"stakes" json:"stakes,omitempty"`

	Location     *string      `db:"location" json:"location,omitempty"`
	LocationType LocationType `db:"location_type" json:"locationType"`

	BuyIn       float64 `db:"buy_in" json:"buyIn"`
	CashOut     float64 `db:"cash_out" json:"cashOut"`
	TotalRebuys float64 `db:"total_rebuys" json:"totalRebuys"`
	RebuyCount  int     `db:"rebuy_count" json:"rebuyCount"`
	Profit      float64 `db:"profit" json:"profit"`

	HandsPlayed *int `db:"hands_played" json:"handsPlayed,omitempty"`

	Notes       *string `db:"notes" json:"notes,omitempty"`
	SessionName *string `db:"session_name" json:"sessionName,omitempty"`

	IsOngoing bool `db:"is_ongoing" json:"isOngoing"`
}

// SessionUpdate is a live-session event (rebuy, balance check, note, ...).
type SessionUpdate struct {
	ID        string    `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"sessionId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`

	UpdateType   SessionUpdateType `db:"update_type" json:"updateType"`
	Amount       *float64          `db:"amount" json:"amount,omitempty"`
	CurrentStack *float64          `db:"current_stack" json:"currentStack,omitempty"`
	Notes        *string           `db:"notes" json:"notes,omitempty"`
}

type Profile struct {
	ID        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	Currency        string   `db:"currency" json:"currency"`
	DefaultGameType GameType `db:"default_game_type" json:"defaultGameType"`
	DefaultVariant  string   `db:"default_variant" json:"defaultVariant"`
	Timezone        string   `db:"timezone" json:"timezone"`

	TotalSessions   int      `db:"total_sessions" json:"totalSessions"`
	TotalProfit     float64  `db:"total_profit" json:"totalProfit"`
	TotalHours      float64  `db:"total_hours" json:"totalHours"`
	CurrentBankroll float64  `db:"current_bankroll" json:"currentBankroll"`
	LastSessionDate *string  `db:"last_session_date" json:"lastSessionDate,omitempty"`

	IsPublic       bool    `db:"is_public" json:"isPublic"`
	PublicUsername *string `db:"public_username" json:"publicUsername,omitempty"`
	DisplayName    *string `db:"display_name" json:"displayName,omitempty"`
}

// UserStats is one row of the per-breakdown aggregate table. A nil breakdown
// column means "all" for that dimension.
type UserStats struct {
	ID     string `db:"id" json:"id"`
	UserID string `db:"user_id" json:"userId"`

	GameType     *GameType     `db:"game_type" json:"gameType,omitempty"`
	Variant      *string       `db:"variant" json:"variant,omitempty"`
	LocationType *LocationType `db:"location_type" json:"locationType,omitempty"`

	TotalSessions int     `db:"total_sessions" json:"totalSessions"`
	TotalProfit   float64 `db:"total_profit" json:"totalProfit"`
	TotalHours    float64 `db:"total_hours" json:"totalHours"`
	TotalHands    int     `db:"total_hands" json:"totalHands"`

	WinRate *float64 `db:"win_rate" json:"winRate,omitempty"`
	ROI     *float64 `db:"roi" json:"roi,omitempty"`

	LastPlayed *time.Time `db:"last_played" json:"lastPlayed,omitempty"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updatedAt"`
}

// ====== DTOs ======

// CreateSessionDTO is the normalized shape used to create a session record,
// both from the API and from the CSV importer.
type CreateSessionDTO struct {
	SessionDate     string       `json:"sessionDate" binding:"required"`
	DurationHours   *float64     `json:"durationHours,omitempty"`
	ActualStartTime *time.Time   `json:"actualStartTime,omitempty"`
	ActualEndTime   *time.Time   `json:"actualEndTime,omitempty"`
	GameType        GameType     `json:"gameType" binding:"required"`
	Variant         string       `json:"variant" binding:"required"`
	Stakes          *string      `json:"stakes,omitempty"`
	Location        *string      `json:"location,omitempty"`
	LocationType    LocationType `json:"locationType" binding:"required"`
	BuyIn           float64      `json:"buyIn"`
	CashOut         float64      `json:"cashOut"`
	TotalRebuys     float64      `json:"totalRebuys"`
	RebuyCount      int          `json:"rebuyCount"`
	HandsPlayed     *int         `json:"handsPlayed,omitempty"`
	Notes           *string      `json:"notes,omitempty"`
	SessionName     *string      `json:"sessionName,omitempty"`
	IsOngoing       bool         `json:"isOngoing"`
}

type UpdateSessionDTO struct {
	SessionDate     *string       `json:"sessionDate,omitempty"`
	DurationHours   *float64      `json:"durationHours,omitempty"`
	ActualStartTime *time.Time    `json:"actualStartTime,omitempty"`
	ActualEndTime   *time.Time    `json:"actualEndTime,omitempty"`
	GameType        *GameType     `json:"gameType,omitempty"`
	Variant         *string       `json:"variant,omitempty"`
	Stakes          *string       `json:"stakes,omitempty"`
	Location        *string       `json:"location,omitempty"`
	LocationType    *LocationType `json:"locationType,omitempty"`
	BuyIn           *float64      `json:"buyIn,omitempty"`
	CashOut         *float64      `json:"cashOut,omitempty"`
	TotalRebuys     *float64      `json:"totalRebuys,omitempty"`
	RebuyCount      *int          `json:"rebuyCount,omitempty"`
	HandsPlayed     *int          `json:"handsPlayed,omitempty"`
	Notes           *string       `json:"notes,omitempty"`
	SessionName     *string       `json:"sessionName,omitempty"`
	IsOngoing       *bool         `json:"isOngoing,omitempty"`
}

type CreateSessionUpdateDTO struct {
	SessionID    string            `json:"sessionId" binding:"required"`
	UpdateType   SessionUpdateType `json:"updateType" binding:"required"`
	Amount       *float64          `json:"amount,omitempty"`
	CurrentStack *float64          `json:"currentStack,omitempty"`
	Notes        *string           `json:"notes,omitempty"`
}

type UpdateProfileDTO struct {
	Currency        *string   `json:"currency,omitempty"`
	DefaultGameType *GameType `json:"defaultGameType,omitempty"`
	DefaultVariant  *string   `json:"defaultVariant,omitempty"`
	Timezone        *string   `json:"timezone,omitempty"`
	CurrentBankroll *float64  `json:"currentBankroll,omitempty"`
	IsPublic        *bool     `json:"isPublic,omitempty"`
	PublicUsername  *string   `json:"publicUsername,omitempty"`
	DisplayName     *string   `json:"displayName,omitempty"`
}

// ====== HELPERS ======

func (g GameType) Valid() bool {
	switch g {
	case GameTypeCash, GameTypeTournament, GameTypeSNG:
		return true
	}
	return false
}

func (l LocationType) Valid() bool {
	switch l {
	case LocationTypeLive, LocationTypeOnline:
		return true
	}
	return false
}

func (u SessionUpdateType) Valid() bool {
	switch u {
	case UpdateTypeRebuy, UpdateTypeAddon, UpdateTypeChipSpend,
		UpdateTypeBalanceCheck, UpdateTypeNote, UpdateTypeBreak:
		return true
	}
	return false
}
