// Package editor owns the invoice of one editing session. Every mutation
// replaces the whole invoice value, keeps the totals consistent with the
// items, and notifies subscribers before the next read can observe it.
package editor

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ridwanfathin/whatsapp-billing/internal/domain"
)

// Op names the operation that produced a change
type Op string

const (
	OpSetField        Op = "set_field"
	OpUpdateLineItem  Op = "update_line_item"
	OpAddLineItem     Op = "add_line_item"
	OpRemoveLineItem  Op = "remove_line_item"
	OpRecomputeTotals Op = "recompute_totals"
	OpReset           Op = "reset"
)

// Change is delivered to subscribers after a mutation is committed
type Change struct {
	Op      Op
	Version uint64
	Invoice domain.Invoice
}

// Editor holds the invoice state of a single session
type Editor struct {
	mu          sync.Mutex
	current     domain.Invoice
	version     uint64
	issued      map[string]struct{}
	subscribers map[int]func(Change)
	nextSubID   int

	newID    func() string
	now      func() time.Time
	defaults domain.Defaults
}

// Option configures an Editor
type Option func(*Editor)

// WithIDGenerator replaces the UUID generator used for line item ids
func WithIDGenerator(gen func() string) Option {
	return func(e *Editor) { e.newID = gen }
}

// WithClock replaces the clock used for the default bill and due dates
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// WithDefaults sets the values a new invoice starts from
func WithDefaults(d domain.Defaults) Option {
	return func(e *Editor) { e.defaults = d }
}

// New creates an editor holding a fresh invoice
func New(opts ...Option) *Editor {
	e := &Editor{
		issued:      make(map[string]struct{}),
		subscribers: make(map[int]func(Change)),
		newID:       uuid.NewString,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.current = domain.NewInvoice(e.now(), e.defaults, e.issueID())
	return e
}

// Snapshot returns a copy of the current invoice
func (e *Editor) Snapshot() domain.Invoice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current.Clone()
}

// Version increases by one with every committed change
func (e *Editor) Version() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.version
}

// Subscribe registers fn for every committed change and returns a function
// that removes it. fn runs outside the editor lock and may read the editor.
func (e *Editor) Subscribe(fn func(Change)) func() {
	e.mu.Lock()
	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.subscribers, id)
		e.mu.Unlock()
	}
}

// SetField overwrites one scalar field. No cross-field validation happens here.
func (e *Editor) SetField(field domain.Field, value string) error {
	return e.apply(OpSetField, func(prev domain.Invoice) (domain.Invoice, bool, error) {
		next, err := prev.With(field, value)
		if err != nil {
			return prev, false, err
		}
		return next, true, nil
	})
}

// UpdateLineItem edits one field of the item with the given id. Quantity and
// price are coerced to numbers (invalid input becomes 0) and the amount is
// recomputed. An unknown id is silently ignored.
func (e *Editor) UpdateLineItem(id string, field domain.ItemField, value string) error {
	return e.apply(OpUpdateLineItem, func(prev domain.Invoice) (domain.Invoice, bool, error) {
		idx := prev.FindItem(id)
		if idx < 0 {
			// Still reject a bad field name so API callers learn about it.
			if _, err := domain.NewLineItem(id).With(field, value); err != nil {
				return prev, false, err
			}
			return prev, false, nil
		}

		updated, err := prev.Items[idx].With(field, value)
		if err != nil {
			return prev, false, err
		}

		items := make([]domain.LineItem, len(prev.Items))
		copy(items, prev.Items)
		items[idx] = updated

		next := prev
		next.Items = items
		return next, true, nil
	})
}

// AddLineItem appends a blank item with a fresh id and returns it
func (e *Editor) AddLineItem() domain.LineItem {
	var added domain.LineItem
	_ = e.apply(OpAddLineItem, func(prev domain.Invoice) (domain.Invoice, bool, error) {
		added = domain.NewLineItem(e.issueID())

		items := make([]domain.LineItem, len(prev.Items), len(prev.Items)+1)
		copy(items, prev.Items)
		items = append(items, added)

		next := prev
		next.Items = items
		return next, true, nil
	})
	return added
}

// RemoveLineItem deletes the item with the given id and reports whether it
// existed. Remaining items keep their ids; display numbers are positional.
func (e *Editor) RemoveLineItem(id string) bool {
	var removed bool
	_ = e.apply(OpRemoveLineItem, func(prev domain.Invoice) (domain.Invoice, bool, error) {
		idx := prev.FindItem(id)
		if idx < 0 {
			return prev, false, nil
		}
		removed = true

		items := make([]domain.LineItem, 0, len(prev.Items)-1)
		items = append(items, prev.Items[:idx]...)
		items = append(items, prev.Items[idx+1:]...)

		next := prev
		next.Items = items
		return next, true, nil
	})
	return removed
}

// RecomputeTotals recalculates subtotal, tax and total from the items. The
// editor already does this after every item change.
func (e *Editor) RecomputeTotals() {
	_ = e.apply(OpRecomputeTotals, func(prev domain.Invoice) (domain.Invoice, bool, error) {
		next := prev
		next.CalculateTotalDue()
		return next, true, nil
	})
}

// Reset replaces the invoice with a fresh one. Ids issued before the reset
// are never handed out again.
func (e *Editor) Reset() {
	_ = e.apply(OpReset, func(domain.Invoice) (domain.Invoice, bool, error) {
		return domain.NewInvoice(e.now(), e.defaults, e.issueID()), true, nil
	})
}

// apply runs fn against the current invoice and commits its result. Totals
// are recomputed whenever the item list differs from the previous one.
func (e *Editor) apply(op Op, fn func(prev domain.Invoice) (domain.Invoice, bool, error)) error {
	e.mu.Lock()
	prev := e.current
	next, changed, err := fn(prev)
	if err != nil || !changed {
		e.mu.Unlock()
		return err
	}

	if !sameItems(prev.Items, next.Items) {
		next.CalculateTotalDue()
	}
	e.current = next
	e.version++

	change := Change{Op: op, Version: e.version, Invoice: next.Clone()}
	subs := make([]func(Change), 0, len(e.subscribers))
	for _, sub := range e.subscribers {
		subs = append(subs, sub)
	}
	e.mu.Unlock()

	for _, sub := range subs {
		sub(change)
	}
	return nil
}

// issueID returns an id that this editor has never handed out. Callers hold
// the lock or run before the editor is shared.
func (e *Editor) issueID() string {
	for {
		id := e.newID()
		if _, used := e.issued[id]; !used {
			e.issued[id] = struct{}{}
			return id
		}
	}
}

// sameItems reports whether two item slices are the same copy-on-write value.
func sameItems(a, b []domain.LineItem) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
