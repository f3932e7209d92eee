package inventory

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"
	"time"
)

var (
	// ErrEmptyItem reports a validation failure on an empty item name.
	ErrEmptyItem = errors.New("item name cannot be empty")
	// ErrUnknownItem reports an operation on an item absent from the ledger.
	ErrUnknownItem = errors.New("unknown item")
	// ErrInvalidQuantity reports a value that cannot be coerced to an integer quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Change is a human-readable record of a single mutation of the ledger.
type Change struct {
	Item     string
	Previous int64 // quantity before the change, 0 for a new item.
	Current  int64 // quantity after the change, 0 when the entry was deleted.
	Deleted  bool
	When     time.Time
}

func (c Change) String() string {
	when := c.When.Format(time.DateTime)
	switch {
	case c.Deleted:
		return fmt.Sprintf("%s: removed %q from stock (was %d)", when, c.Item, c.Previous)
	case c.Current >= c.Previous:
		return fmt.Sprintf("%s: added %d of %q (now %d)", when, c.Current-c.Previous, c.Item, c.Current)
	default:
		return fmt.Sprintf("%s: removed %d of %q (now %d)", when, c.Previous-c.Current, c.Item, c.Current)
	}
}

// Journal is an append-only sequence of rendered change records.
type Journal []string

// Record appends the change record to the journal.
func (j *Journal) Record(c Change) { *j = append(*j, c.String()) }

// Ledger maps item names to their stock quantity.
//
// Iteration follows insertion order. An entry never holds a quantity of zero
// or below: a removal that would reach that point deletes the entry instead.
// A Ledger is not safe for concurrent use; callers needing that must guard it
// with their own synchronization.
type Ledger struct {
	quantities map[string]int64
	order      []string // iteration order, first insertion wins.

	// Journal, when non nil, receives a record for every successful mutation.
	Journal *Journal
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{quantities: make(map[string]int64)}
}

// Add increases the stock of item by qty, creating the entry at qty when the
// item is new, and returns the change record. A validation failure leaves the
// ledger untouched and returns a typed error, never a panic.
func (l *Ledger) Add(item string, qty int64) (Change, error) {
	if item == "" {
		return Change{}, fmt.Errorf("add: %w", ErrEmptyItem)
	}
	previous, exists := l.quantities[item]
	if !exists {
		l.order = append(l.order, item)
	}
	l.quantities[item] = previous + qty
	c := Change{Item: item, Previous: previous, Current: previous + qty, When: time.Now()}
	l.record(c)
	return c, nil
}

// Remove decreases the stock of item by qty. When the remaining quantity
// would be zero or below, the entry is deleted entirely. Removing an unknown
// item is a no-op reported as ErrUnknownItem, which callers are expected to
// treat as a warning.
func (l *Ledger) Remove(item string, qty int64) (Change, error) {
	if item == "" {
		return Change{}, fmt.Errorf("remove: %w", ErrEmptyItem)
	}
	current, ok := l.quantities[item]
	if !ok {
		return Change{}, fmt.Errorf("remove %q: %w", item, ErrUnknownItem)
	}
	remaining := current - qty
	c := Change{Item: item, Previous: current, Current: remaining, When: time.Now()}
	if remaining <= 0 {
		l.deleteItem(item)
		c.Deleted = true
		c.Current = 0
	} else {
		l.quantities[item] = remaining
	}
	l.record(c)
	return c, nil
}

// Quantity returns the stock for item, or 0 if the item is absent.
// An empty item name is reported on the log and yields 0.
func (l *Ledger) Quantity(item string) int64 {
	if item == "" {
		log.Printf("quantity: item name cannot be empty")
		return 0
	}
	return l.quantities[item]
}

// Below returns the items whose quantity is strictly below threshold,
// in ledger iteration order.
func (l *Ledger) Below(threshold int64) []string {
	low := []string{}
	for item, qty := range l.Items() {
		if qty < threshold {
			low = append(low, item)
		}
	}
	return low
}

// Items returns an iterator over items and quantities in insertion order.
func (l *Ledger) Items() iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		for _, item := range l.order {
			if !yield(item, l.quantities[item]) {
				return
			}
		}
	}
}

// Len returns the number of items in the ledger.
func (l *Ledger) Len() int { return len(l.quantities) }

// Map returns a snapshot of the ledger as a plain map.
func (l *Ledger) Map() map[string]int64 { return maps.Clone(l.quantities) }

// put stores a quantity as-is, preserving first-insertion order.
// It is the codec path into the ledger and performs no validation.
func (l *Ledger) put(item string, qty int64) {
	if _, exists := l.quantities[item]; !exists {
		l.order = append(l.order, item)
	}
	l.quantities[item] = qty
}

func (l *Ledger) deleteItem(item string) {
	delete(l.quantities, item)
	if i := slices.Index(l.order, item); i >= 0 {
		l.order = slices.Delete(l.order, i, i+1)
	}
}

func (l *Ledger) record(c Change) {
	if l.Journal != nil {
		l.Journal.Record(c)
	}
}
