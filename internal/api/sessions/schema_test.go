package sessions

import (
	"testing"

	"github.com/pokerbase/bankroll-api/internal/types"
)

func validDTO() types.CreateSessionDTO {
	return types.CreateSessionDTO{
		SessionDate:  "2024-06-01",
		GameType:     types.GameTypeCash,
		Variant:      "nlhe",
		LocationType: types.LocationTypeLive,
		BuyIn:        100,
		CashOut:      250,
	}
}

func TestValidateCreate(t *testing.T) {
	if err := validateCreate(validDTO()); err != nil {
		t.Errorf("valid DTO rejected: %v", err)
	}

	bad := validDTO()
	bad.GameType = "roulette"
	if err := validateCreate(bad); err == nil {
		t.Error("invalid game type accepted")
	}

	bad = validDTO()
	bad.LocationType = "boat"
	if err := validateCreate(bad); err == nil {
		t.Error("invalid location type accepted")
	}

	bad = validDTO()
	bad.SessionDate = "06/01/2024"
	if err := validateCreate(bad); err == nil {
		t.Error("non-ISO session date accepted")
	}

	bad = validDTO()
	bad.BuyIn = -5
	if err := validateCreate(bad); err == nil {
		t.Error("negative buy-in accepted")
	}
}

func TestValidateSessionUpdate(t *testing.T) {
	amount := 50.0
	stack := 320.0

	tests := []struct {
		name    string
		req     CreateUpdateRequest
		wantErr bool
	}{
		{"rebuy with amount", CreateUpdateRequest{UpdateType: types.UpdateTypeRebuy, Amount: &amount}, false},
		{"rebuy without amount", CreateUpdateRequest{UpdateType: types.UpdateTypeRebuy}, true},
		{"balance check with stack", CreateUpdateRequest{UpdateType: types.UpdateTypeBalanceCheck, CurrentStack: &stack}, false},
		{"balance check without stack", CreateUpdateRequest{UpdateType: types.UpdateTypeBalanceCheck}, true},
		{"note", CreateUpdateRequest{UpdateType: types.UpdateTypeNote}, false},
		{"unknown type", CreateUpdateRequest{UpdateType: "jackpot"}, true},
	}
	for _, tt := range tests {
		err := validateSessionUpdate(tt.req)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr = %v", tt.name, err, tt.wantErr)
		}
	}
}
