package csvimport

import (
	"fmt"

	"github.com/pokerbase/bankroll-api/internal/types"
	"github.com/pokerbase/bankroll-api/internal/utils"
	"go.uber.org/zap"
)

// Result partitions an import batch. Rows are mapped independently, so one
// bad row never costs the others; SkippedRows counts lines the tokenizer
// dropped for a column-count mismatch, which carry no row object to blame an
// error on.
type Result struct {
	Sessions    []types.CreateSessionDTO
	Errors      []string
	SkippedRows int
}

// ImportSessions runs the whole pipeline over raw CSV text: tokenize once,
// map every row on its own, collect successes and per-row errors. A
// tokenizer-level failure yields a single "CSV parsing error" entry and zero
// sessions.
func ImportSessions(csvText string) Result {
	var result Result

	rows, skipped, err := ParseCSV(csvText)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("CSV parsing error: %v", err))
		return result
	}
	result.SkippedRows = skipped

	for i, row := range rows {
		session, err := MapRowToSession(row)
		if err != nil {
			// +2 accounts for 1-based numbering plus the header line.
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+2, err))
			continue
		}
		result.Sessions = append(result.Sessions, session)
	}

	utils.Zlog.Info("CSV import parsed",
		zap.Int("sessions", len(result.Sessions)),
		zap.Int("errors", len(result.Errors)),
		zap.Int("skippedRows", result.SkippedRows))

	return result
}
