package loaders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pokerbase/bankroll-api/internal/types"
	"github.com/pokerbase/bankroll-api/internal/utils"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

type PostgresClient struct {
	pool *pgxpool.Pool
}

func NewPostgresClient(ctx context.Context, dsn string, poolSize int32) (*PostgresClient, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if poolSize > 0 {
		cfg.MaxConns = poolSize
	}

	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	utils.Zlog.Info("Connected to PostgreSQL", zap.Int32("maxConns", cfg.MaxConns))
	return &PostgresClient{pool: pool}, nil
}

func (c *PostgresClient) Close() {
	c.pool.Close()
}

const sessionColumns = `id, user_id, created_at, updated_at, session_date, duration_hours,
	actual_start_time, actual_end_time, game_type, variant, stakes,
	location, location_type, buy_in, cash_out, total_rebuys, rebuy_count,
	profit, hands_played, notes, session_name, is_ongoing`

func scanSession(row pgx.Row) (*types.PokerSession, error) {
	var s types.PokerSession
	err := row.Scan(
		&s.ID, &s.UserID, &s.CreatedAt, &s.UpdatedAt, &s.SessionDate, &s.DurationHours,
		&s.ActualStartTime, &s.ActualEndTime, &s.GameType, &s.Variant, &s.Stakes,
		&s.Location, &s.LocationType, &s.BuyIn, &s.CashOut, &s.TotalRebuys, &s.RebuyCount,
		&s.Profit, &s.HandsPlayed, &s.Notes, &s.SessionName, &s.IsOngoing,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	return &s, nil
}

// CreateSession inserts one session record for a user. profit is a generated
// column and comes back from the database.
func (c *PostgresClient) CreateSession(ctx context.Context, userID string, dto types.CreateSessionDTO) (*types.PokerSession, error) {
	row := c.pool.QueryRow(ctx, `
		INSERT INTO poker_sessions (
			user_id, session_date, duration_hours, actual_start_time, actual_end_time,
			game_type, variant, stakes, location, location_type,
			buy_in, cash_out, total_rebuys, rebuy_count, hands_played,
			notes, session_name, is_ongoing
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING `+sessionColumns,
		userID, dto.SessionDate, dto.DurationHours, dto.ActualStartTime, dto.ActualEndTime,
		dto.GameType, dto.Variant, dto.Stakes, dto.Location, dto.LocationType,
		dto.BuyIn, dto.CashOut, dto.TotalRebuys, dto.RebuyCount, dto.HandsPlayed,
		dto.Notes, dto.SessionName, dto.IsOngoing,
	)
	return scanSession(row)
}

func (c *PostgresClient) GetSession(ctx context.Context, sessionID string) (*types.PokerSession, error) {
	row := c.pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM poker_sessions WHERE id = $1`, sessionID)
	return scanSession(row)
}

// SessionFilter narrows ListSessions. Zero values mean "no filter".
type SessionFilter struct {
	GameType     string
	Variant      string
	LocationType string
	StartDate    string
	EndDate      string
	Limit        int
}

func (c *PostgresClient) ListSessions(ctx context.Context, userID string, filter SessionFilter) ([]types.PokerSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM poker_sessions WHERE user_id = $1`
	args := []interface{}{userID}

	addFilter := func(column, value string) {
		if value != "" {
			args = append(args, value)
			query += fmt.Sprintf(" AND %s = $%d", column, len(args))
		}
	}
	addFilter("game_type", filter.GameType)
	addFilter("variant", filter.Variant)
	addFilter("location_type", filter.LocationType)
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		query += fmt.Sprintf(" AND session_date >= $%d", len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		query += fmt.Sprintf(" AND session_date <= $%d", len(args))
	}

	query += " ORDER BY actual_start_time DESC NULLS LAST, session_date DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []types.PokerSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

func (c *PostgresClient) UpdateSession(ctx context.Context, sessionID string, dto types.UpdateSessionDTO) (*types.PokerSession, error) {
	var sets []string
	var args []interface{}

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if dto.SessionDate != nil {
		set("session_date", *dto.SessionDate)
	}
	if dto.DurationHours != nil {
		set("duration_hours", *dto.DurationHours)
	}
	if dto.ActualStartTime != nil {
		set("actual_start_time", *dto.ActualStartTime)
	}
	if dto.ActualEndTime != nil {
		set("actual_end_time", *dto.ActualEndTime)
	}
	if dto.GameType != nil {
		set("game_type", *dto.GameType)
	}
	if dto.Variant != nil {
		set("variant", *dto.Variant)
	}
	if dto.Stakes != nil {
		set("stakes", *dto.Stakes)
	}
	if dto.Location != nil {
		set("location", *dto.Location)
	}
	if dto.LocationType != nil {
		set("location_type", *dto.LocationType)
	}
	if dto.BuyIn != nil {
		set("buy_in", *dto.BuyIn)
	}
	if dto.CashOut != nil {
		set("cash_out", *dto.CashOut)
	}
	if dto.TotalRebuys != nil {
		set("total_rebuys", *dto.TotalRebuys)
	}
	if dto.RebuyCount != nil {
		set("rebuy_count", *dto.RebuyCount)
	}
	if dto.HandsPlayed != nil {
		set("hands_played", *dto.HandsPlayed)
	}
	if dto.Notes != nil {
		set("notes", *dto.Notes)
	}
	if dto.SessionName != nil {
		set("session_name", *dto.SessionName)
	}
	if dto.IsOngoing != nil {
		set("is_ongoing", *dto.IsOngoing)
	}

	if len(sets) == 0 {
		return c.GetSession(ctx, sessionID)
	}
	set("updated_at", time.Now().UTC())

	args = append(args, sessionID)
	query := fmt.Sprintf(
		`UPDATE poker_sessions SET %s WHERE id = $%d RETURNING `+sessionColumns,
		strings.Join(sets, ", "), len(args))

	return scanSession(c.pool.QueryRow(ctx, query, args...))
}

func (c *PostgresClient) DeleteSession(ctx context.Context, sessionID string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM poker_sessions WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ====== SESSION UPDATES ======

const updateColumns = `id, session_id, created_at, update_type, amount, current_stack, notes`

func scanSessionUpdate(row pgx.Row) (*types.SessionUpdate, error) {
	var u types.SessionUpdate
	err := row.Scan(&u.ID, &u.SessionID, &u.CreatedAt, &u.UpdateType, &u.Amount, &u.CurrentStack, &u.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan session update: %w", err)
	}
	return &u, nil
}

func (c *PostgresClient) CreateSessionUpdate(ctx context.Context, dto types.CreateSessionUpdateDTO) (*types.SessionUpdate, error) {
	row := c.pool.QueryRow(ctx, `
		INSERT INTO session_updates (session_id, update_type, amount, current_stack, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+updateColumns,
		dto.SessionID, dto.UpdateType, dto.Amount, dto.CurrentStack, dto.Notes,
	)
	return scanSessionUpdate(row)
}

func (c *PostgresClient) ListSessionUpdates(ctx context.Context, sessionID string) ([]types.SessionUpdate, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT `+updateColumns+` FROM session_updates WHERE session_id = $1 ORDER BY created_at ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session updates: %w", err)
	}
	defer rows.Close()

	var updates []types.SessionUpdate
	for rows.Next() {
		u, err := scanSessionUpdate(rows)
		if err != nil {
			return nil, err
		}
		updates = append(updates, *u)
	}
	return updates, rows.Err()
}

func (c *PostgresClient) DeleteSessionUpdate(ctx context.Context, updateID string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM session_updates WHERE id = $1`, updateID)
	if err != nil {
		return fmt.Errorf("failed to delete session update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ====== PROFILES ======

const profileColumns = `id, created_at, updated_at, currency, default_game_type, default_variant,
	timezone, total_sessions, total_profit, total_hours, current_bankroll,
	last_session_date, is_public, public_username, display_name`

func scanProfile(row pgx.Row) (*types.Profile, error) {
	var p types.Profile
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.Currency, &p.DefaultGameType, &p.DefaultVariant,
		&p.Timezone, &p.TotalSessions, &p.TotalProfit, &p.TotalHours, &p.CurrentBankroll,
		&p.LastSessionDate, &p.IsPublic, &p.PublicUsername, &p.DisplayName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	return &p, nil
}

func (c *PostgresClient) GetProfile(ctx context.Context, userID string) (*types.Profile, error) {
	row := c.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, userID)
	return scanProfile(row)
}

func (c *PostgresClient) GetPublicProfile(ctx context.Context, username string) (*types.Profile, error) {
	row := c.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE public_username = $1 AND is_public = true`,
		username)
	return scanProfile(row)
}

func (c *PostgresClient) UpdateProfile(ctx context.Context, userID string, dto types.UpdateProfileDTO) (*types.Profile, error) {
	var sets []string
	var args []interface{}

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if dto.Currency != nil {
		set("currency", *dto.Currency)
	}
	if dto.DefaultGameType != nil {
		set("default_game_type", *dto.DefaultGameType)
	}
	if dto.DefaultVariant != nil {
		set("default_variant", *dto.DefaultVariant)
	}
	if dto.Timezone != nil {
		set("timezone", *dto.Timezone)
	}
	if dto.CurrentBankroll != nil {
		set("current_bankroll", *dto.CurrentBankroll)
	}
	if dto.IsPublic != nil {
		set("is_public", *dto.IsPublic)
	}
	if dto.PublicUsername != nil {
		set("public_username", *dto.PublicUsername)
	}
	if dto.DisplayName != nil {
		set("display_name", *dto.DisplayName)
	}

	if len(sets) == 0 {
		return c.GetProfile(ctx, userID)
	}
	set("updated_at", time.Now().UTC())

	args = append(args, userID)
	query := fmt.Sprintf(
		`UPDATE profiles SET %s WHERE id = $%d RETURNING `+profileColumns,
		strings.Join(sets, ", "), len(args))

	return scanProfile(c.pool.QueryRow(ctx, query, args...))
}

// ====== STATS ======

const statsColumns = `id, user_id, game_type, variant, location_type, total_sessions,
	total_profit, total_hours, total_hands, win_rate, roi, last_played, updated_at`

func (c *PostgresClient) ListUserStats(ctx context.Context, userID string, gameType string) ([]types.UserStats, error) {
	query := `SELECT ` + statsColumns + ` FROM user_stats WHERE user_id = $1`
	args := []interface{}{userID}
	if gameType != "" {
		args = append(args, gameType)
		query += fmt.Sprintf(" AND game_type = $%d", len(args))
	}
	query += " ORDER BY total_profit DESC"

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list user stats: %w", err)
	}
	defer rows.Close()

	var stats []types.UserStats
	for rows.Next() {
		var s types.UserStats
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.GameType, &s.Variant, &s.LocationType, &s.TotalSessions,
			&s.TotalProfit, &s.TotalHours, &s.TotalHands, &s.WinRate, &s.ROI, &s.LastPlayed, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// OverallSummary is the profile-level aggregate slice shown on the dashboard.
type OverallSummary struct {
	TotalSessions   int      `json:"totalSessions"`
	TotalProfit     float64  `json:"totalProfit"`
	TotalHours      float64  `json:"totalHours"`
	CurrentBankroll float64  `json:"currentBankroll"`
	LastSessionDate *string  `json:"lastSessionDate,omitempty"`
}

func (c *PostgresClient) OverallStats(ctx context.Context, userID string) (*OverallSummary, error) {
	var s OverallSummary
	err := c.pool.QueryRow(ctx, `
		SELECT total_sessions, total_profit, total_hours, current_bankroll, last_session_date
		FROM profiles WHERE id = $1`, userID,
	).Scan(&s.TotalSessions, &s.TotalProfit, &s.TotalHours, &s.CurrentBankroll, &s.LastSessionDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load overall stats: %w", err)
	}
	return &s, nil
}
