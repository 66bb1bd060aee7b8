package sellergrid

import (
	"fmt"
	"iter"
	"sync"
	"time"
)

// highlightDuration is how long a corrected item stays highlighted.
const highlightDuration = 5000 * time.Millisecond

// Ledger is the seller profile plus the ordered list of items.
//
// The order of items is user-visible and meaningful: insertion order is
// preserved and never implicitly changed. A ledger is never empty: every
// operation that would leave zero items appends one default item.
//
// All mutations are serialized internally, and each one ends by invoking
// the change callback registered with OnChange, so a persistence layer can
// re-save the full state after every mutation.
type Ledger struct {
	mu      sync.Mutex
	profile Profile
	items   []Item

	onChange func()
	schedule func(d time.Duration, f func())

	// highlightSeq invalidates pending highlight clears when an item is
	// corrected again before the previous highlight expired.
	highlightSeq uint64
}

// Totals aggregates a subset of the grid.
type Totals struct {
	Count  int
	Amount Price
}

// Item predicates for Totals and exports.

// AcceptAll matches every item.
func AcceptAll(Item) bool { return true }

// Valid matches items with a strictly positive price.
func Valid(it Item) bool { return it.IsValid() }

// SelectedAndValid matches items that are both selected and valid.
func SelectedAndValid(it Item) bool { return it.Selected && it.IsValid() }

// NewLedger creates a fresh ledger holding exactly one default item.
func NewLedger() *Ledger {
	l := &Ledger{schedule: func(d time.Duration, f func()) { time.AfterFunc(d, f) }}
	l.items = append(l.items, l.defaultItem())
	return l
}

// OnChange registers the callback invoked after every mutation. The
// callback runs outside the ledger's internal lock, so it may safely read
// or marshal the ledger.
func (l *Ledger) OnChange(fn func()) {
	l.onChange = fn
}

func (l *Ledger) notify() {
	if l.onChange != nil {
		l.onChange()
	}
}

// defaultItem seeds a new item from the profile defaults. Callers must hold mu.
func (l *Ledger) defaultItem() Item {
	return Item{
		Donation: l.profile.DefaultDonation,
		Gender:   l.profile.DefaultGender,
		Size:     l.profile.DefaultSize,
		Price:    MinPrice,
	}
}

// Profile returns a copy of the seller profile.
func (l *Ledger) Profile() Profile {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.profile
}

// SetProfile overwrites the seller identity and defaults. The select-all
// aggregate is managed by the ledger itself and is left untouched.
func (l *Ledger) SetProfile(p Profile) {
	l.mu.Lock()
	p.SelectAll = l.profile.SelectAll
	l.profile = p
	l.mu.Unlock()
	l.notify()
}

// Len returns the number of items in the grid.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// At returns a copy of the item at position i.
func (l *Ledger) At(i int) (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.items) {
		return Item{}, fmt.Errorf("item %d out of range [0..%d]", i, len(l.items)-1)
	}
	return l.items[i], nil
}

// Items returns an iterator yielding each item in grid order.
func (l *Ledger) Items() iter.Seq2[int, Item] {
	l.mu.Lock()
	snapshot := make([]Item, len(l.items))
	copy(snapshot, l.items)
	l.mu.Unlock()
	return func(yield func(int, Item) bool) {
		for i, it := range snapshot {
			if !yield(i, it) {
				return
			}
		}
	}
}

// AddItem appends an item seeded from the profile defaults and returns its
// position.
func (l *Ledger) AddItem() int {
	l.mu.Lock()
	l.items = append(l.items, l.defaultItem())
	i := len(l.items) - 1
	l.mu.Unlock()
	l.notify()
	return i
}

// update applies f to the item at i and notifies. Shared by field setters.
func (l *Ledger) update(i int, f func(*Item)) error {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		l.mu.Unlock()
		return fmt.Errorf("item %d out of range [0..%d]", i, len(l.items)-1)
	}
	f(&l.items[i])
	l.mu.Unlock()
	l.notify()
	return nil
}

// SetDescription updates the description of item i.
func (l *Ledger) SetDescription(i int, s string) error {
	return l.update(i, func(it *Item) { it.ItemDescription = s })
}

// SetSize updates the size of item i.
func (l *Ledger) SetSize(i int, s string) error {
	return l.update(i, func(it *Item) { it.Size = s })
}

// SetGender updates the gender tag of item i.
func (l *Ledger) SetGender(i int, g Gender) error {
	return l.update(i, func(it *Item) { it.Gender = g })
}

// SetDonation updates the donation flag of item i.
func (l *Ledger) SetDonation(i int, donate bool) error {
	return l.update(i, func(it *Item) { it.Donation = donate })
}

// SetSelected updates the selection flag of item i and recomputes the
// select-all aggregate.
func (l *Ledger) SetSelected(i int, selected bool) error {
	err := l.update(i, func(it *Item) { it.Selected = selected })
	if err != nil {
		return err
	}
	l.RecomputeSelectAll()
	return nil
}

// SetPrice validates raw and stores the corrected price on item i. It
// returns the stored price and whether a correction was applied. On
// correction, the item's highlight flag is restarted and scheduled to clear
// after highlightDuration.
func (l *Ledger) SetPrice(i int, raw float64) (Price, bool, error) {
	price, corrected := ValidatePrice(raw)

	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		l.mu.Unlock()
		return 0, false, fmt.Errorf("item %d out of range [0..%d]", i, len(l.items)-1)
	}
	l.items[i].Price = price
	if corrected {
		// Drop then raise the flag so a fresh one-shot starts even when
		// the item was already highlighted.
		l.items[i].Highlight = false
		l.highlightSeq++
		seq := l.highlightSeq
		l.items[i].Highlight = true
		l.items[i].highlightSeq = seq
		l.schedule(highlightDuration, func() { l.clearHighlight(seq) })
	}
	l.mu.Unlock()
	l.notify()
	return price, corrected, nil
}

// clearHighlight clears the highlight raised under seq, if it is still the
// most recent one for its item.
func (l *Ledger) clearHighlight(seq uint64) {
	l.mu.Lock()
	cleared := false
	for i := range l.items {
		if l.items[i].highlightSeq == seq && l.items[i].Highlight {
			l.items[i].Highlight = false
			cleared = true
		}
	}
	l.mu.Unlock()
	if cleared {
		l.notify()
	}
}

// RemoveItem removes the item at position i. Removal is irreversible, so
// callers must obtain explicit user confirmation first. If the grid becomes
// empty a default item is appended immediately.
func (l *Ledger) RemoveItem(i int) error {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		l.mu.Unlock()
		return fmt.Errorf("item %d out of range [0..%d]", i, len(l.items)-1)
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	if len(l.items) == 0 {
		l.items = append(l.items, l.defaultItem())
	}
	l.mu.Unlock()
	l.notify()
	return nil
}

// RemoveSelected removes every selected item. It returns ErrNoSelection,
// leaving the grid untouched, when nothing is selected. Callers must obtain
// explicit user confirmation first. Items are removed from the end toward
// the start so positions stay stable while deleting.
func (l *Ledger) RemoveSelected() error {
	l.mu.Lock()
	any := false
	for _, it := range l.items {
		if it.Selected {
			any = true
			break
		}
	}
	if !any {
		l.mu.Unlock()
		return ErrNoSelection
	}
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.items[i].Selected {
			l.items = append(l.items[:i], l.items[i+1:]...)
		}
	}
	if len(l.items) == 0 {
		l.profile.SelectAll = false
		l.items = append(l.items, l.defaultItem())
	}
	l.mu.Unlock()
	l.notify()
	return nil
}

// ClearAll empties the grid, resets the select-all aggregate and appends
// one default item. Callers must obtain explicit user confirmation first.
func (l *Ledger) ClearAll() {
	l.mu.Lock()
	l.items = l.items[:0]
	l.profile.SelectAll = false
	l.items = append(l.items, l.defaultItem())
	l.mu.Unlock()
	l.notify()
}

// SetSelectAll sets the aggregate select-all flag without touching the
// items. Follow with ToggleSelectAll to propagate it.
func (l *Ledger) SetSelectAll(v bool) {
	l.mu.Lock()
	l.profile.SelectAll = v
	l.mu.Unlock()
	l.notify()
}

// ToggleSelectAll sets every item's selection flag to the current value of
// the select-all aggregate.
func (l *Ledger) ToggleSelectAll() {
	l.mu.Lock()
	for i := range l.items {
		l.items[i].Selected = l.profile.SelectAll
	}
	l.mu.Unlock()
	l.notify()
}

// RecomputeSelectAll re-derives the select-all aggregate: true iff every
// item is selected. It must be called after any external mutation of a
// single item's selection before the aggregate can be trusted.
func (l *Ledger) RecomputeSelectAll() {
	l.mu.Lock()
	all := true
	for _, it := range l.items {
		if !it.Selected {
			all = false
			break
		}
	}
	l.profile.SelectAll = all
	l.mu.Unlock()
	l.notify()
}

// SelectionSnapshot returns the positions of the currently selected items.
func (l *Ledger) SelectionSnapshot() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	var snapshot []int
	for i, it := range l.items {
		if it.Selected {
			snapshot = append(snapshot, i)
		}
	}
	return snapshot
}

// RestoreSelection clears all selection flags, re-applies a snapshot taken
// with SelectionSnapshot and re-derives the select-all aggregate.
func (l *Ledger) RestoreSelection(snapshot []int) {
	l.mu.Lock()
	l.profile.SelectAll = false
	for i := range l.items {
		l.items[i].Selected = false
	}
	for _, i := range snapshot {
		if i >= 0 && i < len(l.items) {
			l.items[i].Selected = true
		}
	}
	all := len(l.items) > 0
	for _, it := range l.items {
		if !it.Selected {
			all = false
			break
		}
	}
	l.profile.SelectAll = all
	l.mu.Unlock()
	l.notify()
}

// Totals computes the count and summed amount of the items matching pred.
func (l *Ledger) Totals(pred func(Item) bool) Totals {
	l.mu.Lock()
	defer l.mu.Unlock()
	var t Totals
	for _, it := range l.items {
		if pred(it) {
			t.Count++
			t.Amount += it.Price
		}
	}
	return t
}
