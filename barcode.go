package sellergrid

import "fmt"

// EncodePayload builds the text payload encoded into the scannable symbol
// of a price tag: the seller id, a '$' separator, and the price with
// exactly two decimal places.
//
// The payload string is the sole contract with the external barcode
// renderer; a missing or invalid price is substituted with 0 before
// formatting. Pure function, no side effects.
func EncodePayload(sellerID string, p Price) string {
	if p < MinPrice || p > MaxPrice {
		p = 0
	}
	return fmt.Sprintf("%s$%s", sellerID, p.StringFixed())
}

// Tag is a single price tag ready for an external renderer. Rendering
// failures (a slot left blank) are the renderer's concern and must never
// propagate back into the ledger.
type Tag struct {
	Description string
	Size        string
	Gender      Gender
	Donation    bool
	Price       Price
	Payload     string
}

// SelectedTags builds one tag per selected item, in grid order.
func (l *Ledger) SelectedTags() []Tag {
	sellerID := l.Profile().SellerID
	var tags []Tag
	for _, it := range l.Items() {
		if !it.Selected {
			continue
		}
		tags = append(tags, Tag{
			Description: it.ItemDescription,
			Size:        it.Size,
			Gender:      it.Gender,
			Donation:    it.Donation,
			Price:       it.Price,
			Payload:     EncodePayload(sellerID, it.Price),
		})
	}
	return tags
}
