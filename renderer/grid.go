package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/etnz/sellergrid"
)

// mark renders a boolean column entry.
func mark(b bool) string {
	if b {
		return "x"
	}
	return ""
}

// gridDoc writes the grid table and its totals paragraph for the given
// items.
func gridDoc(seller string, items []sellergrid.Item, currency string) string {
	if seller == "" {
		seller = "unknown"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Seller Grid for %s", seller))

	var rows [][]string
	var valid, selected sellergrid.Totals
	for i, it := range items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			mark(it.Selected),
			mark(it.Donation),
			it.Gender.String(),
			it.ItemDescription,
			it.Size,
			it.Price.Display(currency),
		})
		if it.IsValid() {
			valid.Count++
			valid.Amount += it.Price
			if it.Selected {
				selected.Count++
				selected.Amount += it.Price
			}
		}
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Sel", "Donate", "Gender", "Description", "Size", "Price"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("Valid: %d items, %s. Selected and valid: %d items, %s.",
		valid.Count, valid.Amount.Display(currency),
		selected.Count, selected.Amount.Display(currency)))

	return doc.String()
}

// GridMarkdown renders the working grid to a markdown document: one table
// row per item matching pred (nil means every item), in grid order,
// followed by the valid and selected-valid totals. Prices are displayed in
// the given ISO currency.
func GridMarkdown(l *sellergrid.Ledger, pred func(sellergrid.Item) bool, currency string) string {
	if pred == nil {
		pred = sellergrid.AcceptAll
	}
	var items []sellergrid.Item
	for _, it := range l.Items() {
		if pred(it) {
			items = append(items, it)
		}
	}
	return gridDoc(l.Profile().SellerID, items, currency)
}

// ItemsMarkdown renders a plain item list as a grid document, for the
// grid-scoped print variant.
func ItemsMarkdown(seller string, items []sellergrid.Item, currency string) string {
	return gridDoc(seller, items, currency)
}

// TotalsMarkdown renders a count/amount aggregate with a caption.
func TotalsMarkdown(caption string, t sellergrid.Totals, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(caption)
	doc.Table(md.TableSet{
		Header: []string{"Count", "Amount"},
		Rows:   [][]string{{strconv.Itoa(t.Count), t.Amount.Display(currency)}},
	})
	return doc.String()
}
