package sellergrid

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// This file contains the import/export surface of the ledger.
//
// The JSON snapshot is full fidelity and round-trips the live state,
// transient flags included. The CSV and XLSX tables are derived views of
// the grid and are lossy by design.

// ExportJSON serializes the full live state to w as pretty-printed JSON.
// No validation is performed on export.
func (l *Ledger) ExportJSON(w io.Writer) error {
	return l.EncodeLedger(w)
}

// ImportJSON merges a JSON snapshot into the ledger.
//
// On parse failure an *ImportParseError is returned and the current state
// is left untouched. On success, top-level profile fields present in the
// snapshot overwrite their counterparts (absent fields are left as they
// are), the item list is replaced wholesale when present, and an empty
// resulting grid is refilled with one default item.
func (l *Ledger) ImportJSON(data []byte) error {
	var js struct {
		SellerID        *string `json:"sellerId"`
		DefaultDonation *bool   `json:"defaultDonation"`
		DefaultGender   *Gender `json:"defaultGender"`
		DefaultSize     *string `json:"defaultSize"`
		SelectAll       *bool   `json:"selectAll"`
		Items           *[]Item `json:"items"`
	}
	if err := json.Unmarshal(data, &js); err != nil {
		return &ImportParseError{Err: err}
	}

	l.mu.Lock()
	if js.SellerID != nil {
		l.profile.SellerID = *js.SellerID
	}
	if js.DefaultDonation != nil {
		l.profile.DefaultDonation = *js.DefaultDonation
	}
	if js.DefaultGender != nil {
		l.profile.DefaultGender = *js.DefaultGender
	}
	if js.DefaultSize != nil {
		l.profile.DefaultSize = *js.DefaultSize
	}
	if js.SelectAll != nil {
		l.profile.SelectAll = *js.SelectAll
	}
	if js.Items != nil {
		l.items = *js.Items
	}
	if len(l.items) == 0 {
		l.items = append(l.items, l.defaultItem())
	}
	l.mu.Unlock()
	l.notify()
	return nil
}

// csvHeader lists the grid columns of the tabular exports.
var csvHeader = []string{"Index", "Selected", "Donate", "Gender", "Description", "Size", "Price"}

var newlines = regexp.MustCompile(`[\r\n]+`)

// flatten collapses newlines in a description to single spaces and trims
// the result, so a multi-line description stays one CSV row.
func flatten(s string) string {
	return strings.TrimSpace(newlines.ReplaceAllString(s, " "))
}

// quote encodes a single CSV field. Every field is double-quoted and
// embedded quotes are escaped by doubling.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func writeCSVRow(w io.Writer, fields ...string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quote(f)
	}
	_, err := fmt.Fprintln(w, strings.Join(quoted, ","))
	return err
}

// ExportCSV writes the grid as a CSV table: one row per item followed by
// two summary rows holding the total amount over valid items and over
// selected valid items, both with two decimals.
func (l *Ledger) ExportCSV(w io.Writer) error {
	if err := writeCSVRow(w, csvHeader...); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for i, it := range l.Items() {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatBool(it.Selected),
			strconv.FormatBool(it.Donation),
			it.Gender.String(),
			flatten(it.ItemDescription),
			it.Size,
			strconv.FormatInt(int64(it.Price), 10),
		}
		if err := writeCSVRow(w, row...); err != nil {
			return fmt.Errorf("cannot write csv row %d: %w", i+1, err)
		}
	}

	valid := l.Totals(Valid)
	selected := l.Totals(SelectedAndValid)
	if err := writeCSVRow(w, "Total (valid items)", valid.Amount.StringFixed()); err != nil {
		return fmt.Errorf("cannot write csv summary: %w", err)
	}
	if err := writeCSVRow(w, "Total (selected valid items)", selected.Amount.StringFixed()); err != nil {
		return fmt.Errorf("cannot write csv summary: %w", err)
	}
	return nil
}

// CSVFilename builds the conventional download name of a CSV export: the
// seller id (or "unknown") and an ISO timestamp with ':' and '.' replaced
// by '-' so the name stays filesystem-safe.
func CSVFilename(sellerID string, now time.Time) string {
	id := sellerID
	if id == "" {
		id = "unknown"
	}
	ts := now.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return fmt.Sprintf("seller-grid-%s-%s.csv", id, ts)
}

// ExportXLSX writes the same table as ExportCSV into a spreadsheet file.
func (l *Ledger) ExportXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	setRow := func(row int, values ...any) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	header := make([]any, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := setRow(1, header...); err != nil {
		return fmt.Errorf("cannot write xlsx header: %w", err)
	}

	row := 2
	for i, it := range l.Items() {
		err := setRow(row, i+1, it.Selected, it.Donation, it.Gender.String(),
			flatten(it.ItemDescription), it.Size, int64(it.Price))
		if err != nil {
			return fmt.Errorf("cannot write xlsx row %d: %w", row, err)
		}
		row++
	}

	valid := l.Totals(Valid)
	selected := l.Totals(SelectedAndValid)
	if err := setRow(row, "Total (valid items)", valid.Amount.StringFixed()); err != nil {
		return fmt.Errorf("cannot write xlsx summary: %w", err)
	}
	if err := setRow(row+1, "Total (selected valid items)", selected.Amount.StringFixed()); err != nil {
		return fmt.Errorf("cannot write xlsx summary: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save spreadsheet %q: %w", path, err)
	}
	return nil
}
