package sellergrid

// Profile holds the seller identity and the defaults copied onto newly
// created items.
//
// SelectAll is a maintained aggregate over the items' selection flags, not
// an independent source of truth: it is recomputed by the ledger and
// stripped when a durable snapshot is loaded.
type Profile struct {
	SellerID        string `json:"sellerId"`
	DefaultDonation bool   `json:"defaultDonation"`
	DefaultGender   Gender `json:"defaultGender"`
	DefaultSize     string `json:"defaultSize"`
	SelectAll       bool   `json:"selectAll"`
}
