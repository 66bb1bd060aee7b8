package sellergrid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
)

// This file persists the ledger as a single JSON file, in a way that is
// still human-readable and git-friendly.
//
// Save writes the current live state verbatim, transient flags included.
// Load sanitizes the snapshot: the select-all aggregate and each item's
// selected/highlight flags are session-only and are stripped before the
// state is handed back to a new session.

// MarshalJSON writes the ledger in the durable snapshot shape: the profile
// fields at the top level followed by the ordered item list.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	l.mu.Lock()
	profile := l.profile
	items := make([]Item, len(l.items))
	copy(items, l.items)
	l.mu.Unlock()

	var w jsonObjectWriter
	w.EmbedFrom(profile)
	w.Append("items", items)
	return w.MarshalJSON()
}

// EncodeLedger writes the full live state of the ledger to w as
// pretty-printed JSON (2-space indent).
func (l *Ledger) EncodeLedger(w io.Writer) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal ledger: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads a durable snapshot from r and returns a sanitized
// ledger: transient selection and highlight flags are stripped, and an
// empty item list is replaced with one default item.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger snapshot: %w", err)
	}

	var js struct {
		Profile
		Items []Item `json:"items"`
	}
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("cannot parse ledger snapshot: %w", err)
	}

	l := NewLedger()
	js.Profile.SelectAll = false
	l.profile = js.Profile
	if len(js.Items) > 0 {
		for i := range js.Items {
			js.Items[i].Selected = false
			js.Items[i].Highlight = false
		}
		l.items = js.Items
	} else {
		// NewLedger seeded one item before the profile defaults were
		// known. Reseed it.
		l.items = []Item{l.defaultItem()}
	}
	return l, nil
}

// SaveLedger durably persists the ledger to path. The write is atomic: the
// snapshot goes to a temporary file first and is renamed over the target.
func SaveLedger(path string, l *Ledger) error {
	var buf bytes.Buffer
	if err := l.EncodeLedger(&buf); err != nil {
		return fmt.Errorf("persist error: %w", err)
	}

	tmp := fmt.Sprintf("%s.tmp-%s", path, uuid.NewString())
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("persist error: cannot create file %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("persist error: cannot replace file %q: %w", path, err)
	}
	log.Printf("save-ledger file=%q items=%d", path, l.Len())
	return nil
}

// LoadLedger reads a sanitized ledger from path.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("load error: cannot read ledger file %q: %w", path, err)
	}
	return l, nil
}
