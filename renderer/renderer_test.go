package renderer

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/etnz/sellergrid"
)

// barcodeBlocks parses a markdown document and returns the content of every
// fenced code block tagged "barcode".
func barcodeBlocks(t *testing.T, doc string) []string {
	t.Helper()
	src := []byte(doc)
	root := goldmark.DefaultParser().Parse(text.NewReader(src))

	var payloads []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fc, ok := n.(*ast.FencedCodeBlock)
		if !ok || string(fc.Language(src)) != "barcode" {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fc.Lines().Len(); i++ {
			seg := fc.Lines().At(i)
			b.Write(seg.Value(src))
		}
		payloads = append(payloads, strings.TrimSpace(b.String()))
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("cannot walk document: %v", err)
	}
	return payloads
}

func TestTagsMarkdown(t *testing.T) {
	tags := []sellergrid.Tag{
		{Description: "red dress", Size: "8", Gender: sellergrid.Girl, Price: 12, Payload: "abc123$12.00"},
		{Description: "toy truck", Donation: true, Price: 3, Payload: "abc123$3.00"},
	}
	doc := TagsMarkdown("abc123", tags, "USD")

	if !strings.Contains(doc, "# Price Tags for abc123") {
		t.Errorf("sheet must carry the seller heading, got:\n%s", doc)
	}
	if !strings.Contains(doc, "**red dress** (size 8)") {
		t.Errorf("sheet must describe the tag, got:\n%s", doc)
	}
	if !strings.Contains(doc, "girl - $12.00") {
		t.Errorf("sheet must show the gender tag and price, got:\n%s", doc)
	}
	if !strings.Contains(doc, "donate - $3.00") {
		t.Errorf("sheet must show the donation mark, got:\n%s", doc)
	}

	payloads := barcodeBlocks(t, doc)
	if len(payloads) != len(tags) {
		t.Fatalf("sheet has %d barcode blocks, want one per tag (%d)", len(payloads), len(tags))
	}
	for i, tag := range tags {
		if payloads[i] != tag.Payload {
			t.Errorf("barcode block %d = %q, want %q", i, payloads[i], tag.Payload)
		}
	}
}

func TestGridMarkdown(t *testing.T) {
	l := sellergrid.NewLedger()
	l.SetProfile(sellergrid.Profile{SellerID: "abc123"})
	if _, _, err := l.SetPrice(0, 5); err != nil {
		t.Fatal(err)
	}
	if err := l.SetDescription(0, "blue pants"); err != nil {
		t.Fatal(err)
	}
	i := l.AddItem()
	if _, _, err := l.SetPrice(i, 7); err != nil {
		t.Fatal(err)
	}
	if err := l.SetSelected(i, true); err != nil {
		t.Fatal(err)
	}

	doc := GridMarkdown(l, nil, "USD")
	if !strings.Contains(doc, "# Seller Grid for abc123") {
		t.Errorf("grid must carry the seller heading, got:\n%s", doc)
	}
	if !strings.Contains(doc, "blue pants") || !strings.Contains(doc, "$5.00") {
		t.Errorf("grid must list the item row, got:\n%s", doc)
	}
	if !strings.Contains(doc, "Valid: 2 items, $12.00. Selected and valid: 1 items, $7.00.") {
		t.Errorf("grid must end with the totals, got:\n%s", doc)
	}
}

func TestGridMarkdown_Filtered(t *testing.T) {
	l := sellergrid.NewLedger()
	if _, _, err := l.SetPrice(0, 5); err != nil {
		t.Fatal(err)
	}
	if err := l.SetDescription(0, "keep me"); err != nil {
		t.Fatal(err)
	}
	i := l.AddItem()
	if err := l.SetDescription(i, "drop me"); err != nil {
		t.Fatal(err)
	}

	doc := GridMarkdown(l, sellergrid.Valid, "USD")
	if !strings.Contains(doc, "keep me") || strings.Contains(doc, "drop me") {
		t.Errorf("grid must only list items matching the predicate, got:\n%s", doc)
	}
	if !strings.Contains(doc, "Seller Grid for unknown") {
		t.Errorf("an empty seller id must render as unknown, got:\n%s", doc)
	}
}

func TestTotalsMarkdown(t *testing.T) {
	doc := TotalsMarkdown("Valid items", sellergrid.Totals{Count: 3, Amount: 450}, "USD")
	if !strings.Contains(doc, "## Valid items") {
		t.Errorf("totals must carry the caption, got:\n%s", doc)
	}
	if !strings.Contains(doc, "$450.00") {
		t.Errorf("totals must display the amount in currency, got:\n%s", doc)
	}
}
