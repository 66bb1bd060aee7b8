package sellergrid

import (
	"context"
	"fmt"
)

// PrintState names the phase a print cycle is in.
type PrintState int

const (
	// StateIdle means no print cycle is running.
	StateIdle PrintState = iota
	// StateConfirming means everything is selected and the user is being asked.
	StateConfirming
	// StatePrinting means the external print action is running.
	StatePrinting
	// StateRestoring means the pre-print selection is being reinstated.
	StateRestoring
)

func (s PrintState) String() string {
	switch s {
	case StateConfirming:
		return "confirming"
	case StatePrinting:
		return "printing"
	case StateRestoring:
		return "restoring"
	default:
		return "idle"
	}
}

// Confirmer asks the user a yes/no question before a commit.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Printer is the external print action. PrintTags receives one tag per
// selected item; PrintGrid receives the whole working grid for the
// grid-scoped variant.
type Printer interface {
	PrintTags(ctx context.Context, tags []Tag) error
	PrintGrid(ctx context.Context, items []Item) error
}

// Orchestrator drives one print cycle over a shared ledger:
//
//	Idle -> Confirming -> Printing -> Restoring -> Idle
//
// The cycle snapshots the current selection, temporarily selects every
// item, validates and confirms, triggers the external print action, and
// restores the prior selection exactly. Run returns only after the
// restoration completed or the cycle was aborted; on any non-committed
// exit the snapshot is restored as well, so no selection change ever
// leaks out of an aborted print.
type Orchestrator struct {
	ledger    *Ledger
	confirmer Confirmer
	printer   Printer

	// flush, when set, runs right before the print action so any pending
	// output of the host can be flushed.
	flush func()

	state PrintState
}

// NewOrchestrator creates a print orchestrator over the given ledger.
func NewOrchestrator(l *Ledger, c Confirmer, p Printer) *Orchestrator {
	return &Orchestrator{ledger: l, confirmer: c, printer: p}
}

// SetFlush registers a hook run right before the external print action.
func (o *Orchestrator) SetFlush(f func()) { o.flush = f }

// State returns the current phase of the orchestrator.
func (o *Orchestrator) State() PrintState { return o.state }

// Run executes one full print cycle. A declined confirmation resolves
// without error and without printing.
func (o *Orchestrator) Run(ctx context.Context) error {
	snapshot := o.ledger.SelectionSnapshot()

	restore := func() {
		o.state = StateRestoring
		o.ledger.RestoreSelection(snapshot)
		o.state = StateIdle
	}

	o.state = StateConfirming
	o.ledger.SetSelectAll(true)
	o.ledger.ToggleSelectAll()

	profile := o.ledger.Profile()
	if profile.SellerID == "" {
		restore()
		return ErrMissingSellerID
	}
	count := o.ledger.Totals(SelectedAndValid).Count
	if count == 0 {
		restore()
		return ErrNoValidItems
	}

	prompt := fmt.Sprintf("Print %d price tags for seller %q?", count, profile.SellerID)
	ok, err := o.confirmer.Confirm(prompt)
	if err != nil {
		restore()
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !ok {
		restore()
		return nil
	}

	o.state = StatePrinting
	if o.flush != nil {
		o.flush()
	}
	if err := o.printer.PrintTags(ctx, o.ledger.SelectedTags()); err != nil {
		restore()
		return fmt.Errorf("print action failed: %w", err)
	}

	restore()
	return nil
}

// RunGrid prints the working grid itself. This variant scopes what is
// printed instead of the selection: it never touches selection flags and
// needs no confirmation.
func (o *Orchestrator) RunGrid(ctx context.Context) error {
	o.state = StatePrinting
	defer func() { o.state = StateIdle }()

	if o.flush != nil {
		o.flush()
	}
	var items []Item
	for _, it := range o.ledger.Items() {
		items = append(items, it)
	}
	if err := o.printer.PrintGrid(ctx, items); err != nil {
		return fmt.Errorf("print action failed: %w", err)
	}
	return nil
}
