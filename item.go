package sellergrid

import (
	"encoding/json"
	"fmt"
)

// Item is a single priced article in the seller's grid.
//
// Selected and Highlight are transient session flags: they are written in
// full-fidelity snapshots but stripped when a durable snapshot is loaded.
type Item struct {
	ItemDescription string
	Size            string
	Gender          Gender
	Donation        bool
	Price           Price
	Selected        bool
	Highlight       bool

	// highlightSeq ties the flag to its pending clear, so that a newer
	// correction is not cleared by an older timer.
	highlightSeq uint64
}

// IsValid reports whether the item can be printed: a valid item has a
// strictly positive price.
func (it Item) IsValid() bool {
	return it.Price > 0
}

// MarshalJSON writes the item with a stable field order matching the
// on-disk snapshot shape.
func (it Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("itemDescription", it.ItemDescription)
	w.Append("size", it.Size)
	w.Append("gender", it.Gender)
	w.Append("donation", it.Donation)
	w.Append("price", it.Price)
	w.Append("selected", it.Selected)
	w.Append("highlight", it.Highlight)
	return w.MarshalJSON()
}

// UnmarshalJSON decodes an item, tolerating malformed external input: a
// fractional or out-of-range price is corrected the same way live price
// input is.
func (it *Item) UnmarshalJSON(data []byte) error {
	var temp struct {
		ItemDescription string  `json:"itemDescription"`
		Size            string  `json:"size"`
		Gender          Gender  `json:"gender"`
		Donation        bool    `json:"donation"`
		Price           float64 `json:"price"`
		Selected        bool    `json:"selected"`
		Highlight       bool    `json:"highlight"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("cannot parse item: %w", err)
	}
	price, _ := ValidatePrice(temp.Price)
	*it = Item{
		ItemDescription: temp.ItemDescription,
		Size:            temp.Size,
		Gender:          temp.Gender,
		Donation:        temp.Donation,
		Price:           price,
		Selected:        temp.Selected,
		Highlight:       temp.Highlight,
	}
	return nil
}
