// journal/csv.go
package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"trade_id", "account_id", "date", "asset", "direction",
	"entry_price", "exit_price", "stop_loss", "profit", "notes",
}

// ExportCSV writes trades to w with a header row. An unset stop is written
// as an empty field so re-imports keep the distinction from a zero stop.
func ExportCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range trades {
		stop := ""
		if t.HasStop {
			stop = f(t.StopLoss)
		}
		err := cw.Write([]string{
			t.ID,
			t.AccountID,
			t.Date.Format(time.RFC3339),
			t.Asset,
			string(t.Direction),
			f(t.EntryPrice),
			f(t.ExitPrice),
			stop,
			f(t.Profit),
			t.Notes,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ImportCSV reads trades previously written by ExportCSV.
func ImportCSV(r io.Reader) ([]Trade, error) {
	cr := csv.NewReader(r)

	// header
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var out []Trade
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		t := Trade{
			ID:        rec[0],
			AccountID: rec[1],
			Asset:     rec[3],
			Direction: Direction(rec[4]),
			Notes:     rec[9],
		}
		if t.Date, err = time.Parse(time.RFC3339, rec[2]); err != nil {
			return nil, err
		}
		if t.EntryPrice, err = strconv.ParseFloat(rec[5], 64); err != nil {
			return nil, err
		}
		if t.ExitPrice, err = strconv.ParseFloat(rec[6], 64); err != nil {
			return nil, err
		}
		if rec[7] != "" {
			if t.StopLoss, err = strconv.ParseFloat(rec[7], 64); err != nil {
				return nil, err
			}
			t.HasStop = true
		}
		if t.Profit, err = strconv.ParseFloat(rec[8], 64); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
