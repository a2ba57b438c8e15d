package sessions

import (
	"fmt"
	"time"

	"github.com/pokerbase/bankroll-api/internal/types"
)

type CreateSessionRequest struct {
	UserID  string                 `json:"userId" binding:"required"`
	Session types.CreateSessionDTO `json:"session" binding:"required"`
}

type CreateUpdateRequest struct {
	UpdateType   types.SessionUpdateType `json:"updateType" binding:"required"`
	Amount       *float64                `json:"amount,omitempty"`
	CurrentStack *float64                `json:"currentStack,omitempty"`
	Notes        *string                 `json:"notes,omitempty"`
}

type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// validateCreate checks the enum fields and date format gin's binding tags
// cannot express.
func validateCreate(dto types.CreateSessionDTO) error {
	if !dto.GameType.Valid() {
		return fmt.Errorf("invalid game type %q", dto.GameType)
	}
	if !dto.LocationType.Valid() {
		return fmt.Errorf("invalid location type %q", dto.LocationType)
	}
	if _, err := time.Parse("2006-01-02", dto.SessionDate); err != nil {
		return fmt.Errorf("invalid session date %q, expected YYYY-MM-DD", dto.SessionDate)
	}
	if dto.BuyIn < 0 || dto.CashOut < 0 || dto.TotalRebuys < 0 || dto.RebuyCount < 0 {
		return fmt.Errorf("monetary amounts and rebuy count must be non-negative")
	}
	return nil
}

func validateUpdate(dto types.UpdateSessionDTO) error {
	if dto.GameType != nil && !dto.GameType.Valid() {
		return fmt.Errorf("invalid game type %q", *dto.GameType)
	}
	if dto.LocationType != nil && !dto.LocationType.Valid() {
		return fmt.Errorf("invalid location type %q", *dto.LocationType)
	}
	if dto.SessionDate != nil {
		if _, err := time.Parse("2006-01-02", *dto.SessionDate); err != nil {
			return fmt.Errorf("invalid session date %q, expected YYYY-MM-DD", *dto.SessionDate)
		}
	}
	return nil
}

func validateSessionUpdate(req CreateUpdateRequest) error {
	if !req.UpdateType.Valid() {
		return fmt.Errorf("invalid update type %q", req.UpdateType)
	}
	switch req.UpdateType {
	case types.UpdateTypeRebuy, types.UpdateTypeAddon, types.UpdateTypeChipSpend:
		if req.Amount == nil || *req.Amount <= 0 {
			return fmt.Errorf("%s requires a positive amount", req.UpdateType)
		}
	case types.UpdateTypeBalanceCheck:
		if req.CurrentStack == nil {
			return fmt.Errorf("balance_check requires currentStack")
		}
	}
	return nil
}
