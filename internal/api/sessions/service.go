package sessions

import (
	"context"
	"fmt"

	"github.com/pokerbase/bankroll-api/internal/loaders"
	"github.com/pokerbase/bankroll-api/internal/types"
	"github.com/pokerbase/bankroll-api/internal/utils"
	"go.uber.org/zap"
)

type Service struct {
	db *loaders.PostgresClient
}

func NewService(db *loaders.PostgresClient) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, userID string, dto types.CreateSessionDTO) (*types.PokerSession, error) {
	if err := validateCreate(dto); err != nil {
		return nil, err
	}
	session, err := s.db.CreateSession(ctx, userID, dto)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	utils.Zlog.Info("Session created",
		zap.String("sessionId", session.ID),
		zap.String("userId", userID),
		zap.String("gameType", string(session.GameType)),
		zap.Bool("ongoing", session.IsOngoing))
	return session, nil
}

func (s *Service) Get(ctx context.Context, sessionID string) (*types.PokerSession, error) {
	return s.db.GetSession(ctx, sessionID)
}

func (s *Service) List(ctx context.Context, userID string, filter loaders.SessionFilter) ([]types.PokerSession, error) {
	return s.db.ListSessions(ctx, userID, filter)
}

func (s *Service) Update(ctx context.Context, sessionID string, dto types.UpdateSessionDTO) (*types.PokerSession, error) {
	if err := validateUpdate(dto); err != nil {
		return nil, err
	}
	return s.db.UpdateSession(ctx, sessionID, dto)
}

func (s *Service) Delete(ctx context.Context, sessionID string) error {
	if err := s.db.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	utils.Zlog.Info("Session deleted", zap.String("sessionId", sessionID))
	return nil
}

// AddUpdate records a live-session event (rebuy, balance check, note, ...).
func (s *Service) AddUpdate(ctx context.Context, sessionID string, req CreateUpdateRequest) (*types.SessionUpdate, error) {
	if err := validateSessionUpdate(req); err != nil {
		return nil, err
	}
	// The session must exist and rebuys only make sense while it runs.
	session, err := s.db.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsOngoing && req.UpdateType != types.UpdateTypeNote {
		return nil, fmt.Errorf("session %s is not ongoing", sessionID)
	}
	return s.db.CreateSessionUpdate(ctx, types.CreateSessionUpdateDTO{
		SessionID:    sessionID,
		UpdateType:   req.UpdateType,
		Amount:       req.Amount,
		CurrentStack: req.CurrentStack,
		Notes:        req.Notes,
	})
}

func (s *Service) ListUpdates(ctx context.Context, sessionID string) ([]types.SessionUpdate, error) {
	return s.db.ListSessionUpdates(ctx, sessionID)
}

func (s *Service) DeleteUpdate(ctx context.Context, updateID string) error {
	return s.db.DeleteSessionUpdate(ctx, updateID)
}
