package renderer

import (
	"github.com/etnz/sellergrid"
)

// tagView is the template-facing shape of one tag.
type tagView struct {
	Description string
	Size        string
	Gender      string
	Donation    bool
	Price       string
	Payload     string
}

// tagSheet is the data handed to the tag sheet template.
type tagSheet struct {
	SellerID string
	Tags     []tagView
}

// TagsMarkdown renders the price-tag sheet: one tag per entry, each
// carrying the payload string a barcode renderer turns into a scannable
// symbol.
func TagsMarkdown(sellerID string, tags []sellergrid.Tag, currency string) string {
	sheet := tagSheet{SellerID: sellerID}
	for _, t := range tags {
		sheet.Tags = append(sheet.Tags, tagView{
			Description: t.Description,
			Size:        t.Size,
			Gender:      t.Gender.String(),
			Donation:    t.Donation,
			Price:       t.Price.Display(currency),
			Payload:     t.Payload,
		})
	}
	return renderTemplate("tags", "templates/tags.md", sheet)
}
