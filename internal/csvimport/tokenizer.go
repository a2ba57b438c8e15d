package csvimport

import (
	"errors"
	"strings"

	"github.com/pokerbase/bankroll-api/internal/utils"
	"go.uber.org/zap"
)

// Row is a header-name-keyed view of one CSV data line. If the header carries
// duplicate names the last column wins; exporters have not been seen doing
// this on purpose, so the behavior is observed rather than promised.
type Row map[string]string

// Get returns the value for a column, matching the name case-insensitively
// when no exact key exists.
func (r Row) Get(name string) string {
	if v, ok := r[name]; ok {
		return v
	}
	for k, v := range r {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// ErrEmptyCSV is the only hard tokenizer failure: fewer than three lines
// (title-or-header, header-or-data, data) cannot be a valid export.
var ErrEmptyCSV = errors.New("CSV file is empty or invalid")

// ParseCSV converts raw CSV text into one Row per accepted data line and the
// count of lines dropped for a column-count mismatch.
//
// The dialect is the PBT Bankroll export, not RFC 4180: an optional title
// banner (any first line containing "---") precedes the header, fields are
// whitespace-trimmed, quoted fields may embed commas and "" escapes, blank
// lines are ignored, and a row whose cell count differs from the header's is
// skipped with a warning instead of failing the file.
func ParseCSV(text string) ([]Row, int, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 3 {
		return nil, 0, ErrEmptyCSV
	}

	headerIndex := 0
	if strings.Contains(lines[0], "---") {
		headerIndex = 1
	}

	headers := parseLine(lines[headerIndex])

	var rows []Row
	skipped := 0
	for i := headerIndex + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		values := parseLine(lines[i])
		if len(values) != len(headers) {
			utils.Zlog.Warn("Skipping row: column count mismatch",
				zap.Int("line", i+1),
				zap.Int("expected", len(headers)),
				zap.Int("got", len(values)))
			skipped++
			continue
		}

		row := make(Row, len(headers))
		for j, header := range headers {
			row[header] = values[j]
		}
		rows = append(rows, row)
	}

	return rows, skipped, nil
}

// parseLine splits one line on commas with a single-pass scanner that honors
// double-quoted fields and "" escapes. Every field is trimmed.
func parseLine(line string) []string {
	var result []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				// Escaped quote
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	result = append(result, strings.TrimSpace(current.String()))
	return result
}
