// journal/csv.go
package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rustyeddy/tradestats/pkg/id"
)

var csvHeader = []string{
	"id", "date", "entry_time", "exit_time", "symbol", "direction", "entry_price",
	"exit_price", "pnl", "rr", "status", "exit_date", "setup", "tags", "notes",
}

// WriteTradesCSV writes trades with a header row. Tags are joined with ';'
// and absent exit prices or risk multiples are left empty.
func WriteTradesCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range trades {
		err := cw.Write([]string{
			t.ID,
			t.Date,
			t.EntryTime,
			t.ExitTime,
			t.Symbol,
			string(t.Direction),
			f(t.EntryPrice),
			optF(t.ExitPrice),
			f(t.PnL),
			optF(t.RR),
			string(t.Status),
			t.ExitDate,
			t.Setup,
			strings.Join(t.Tags, ";"),
			t.Notes,
		})
		if err != nil {
			return fmt.Errorf("write %s: %w", t.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadTradesCSV reads trades from a CSV with a header row. Columns are
// matched by name so exports from older layouts still load; unknown
// columns are ignored. Rows without an id get a fresh one.
func ReadTradesCSV(r io.Reader) ([]Trade, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[normalizeColumn(h)] = i
	}
	for _, required := range []string{"date", "symbol", "pnl"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var out []Trade
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		t := Trade{
			ID:        get("id"),
			Date:      get("date"),
			EntryTime: get("entry_time"),
			ExitTime:  get("exit_time"),
			Symbol:    strings.ToUpper(get("symbol")),
			Direction: Direction(strings.ToLower(get("direction"))),
			Status:    Status(strings.ToLower(get("status"))),
			ExitDate:  get("exit_date"),
			Setup:     get("setup"),
			Notes:     get("notes"),
		}
		day, ok := ParseDay(t.Date)
		if !ok {
			return nil, fmt.Errorf("line %d: invalid date %q", line, t.Date)
		}
		if t.ID == "" {
			t.ID = id.NewAt(day)
		}

		if t.EntryPrice, err = parseF(get("entry_price")); err != nil {
			return nil, fmt.Errorf("line %d: entry_price: %w", line, err)
		}
		if t.PnL, err = parseF(get("pnl")); err != nil {
			return nil, fmt.Errorf("line %d: pnl: %w", line, err)
		}
		if t.ExitPrice, err = parseOptF(get("exit_price")); err != nil {
			return nil, fmt.Errorf("line %d: exit_price: %w", line, err)
		}
		if t.RR, err = parseOptF(get("rr")); err != nil {
			return nil, fmt.Errorf("line %d: rr: %w", line, err)
		}

		if tags := get("tags"); tags != "" {
			for _, tag := range strings.Split(tags, ";") {
				if tag = strings.TrimSpace(tag); tag != "" {
					t.Tags = append(t.Tags, tag)
				}
			}
		}

		out = append(out, t)
	}
	return out, nil
}

func normalizeColumn(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	switch h {
	case "trade_id", "tradeid":
		return "id"
	case "entrytime":
		return "entry_time"
	case "exittime":
		return "exit_time"
	case "entryprice":
		return "entry_price"
	case "exitprice":
		return "exit_price"
	case "exitdate":
		return "exit_date"
	case "realized_pl", "p&l":
		return "pnl"
	}
	return h
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func optF(p *float64) string {
	if p == nil {
		return ""
	}
	return f(*p)
}

func parseF(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

func parseOptF(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := parseF(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
