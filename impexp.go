package inventory

// this file contains functions to import stock quantities from third-party
// JSON exports. The documents are arbitrary; a JSONPath expression selects
// the object holding the item name to quantity mapping.

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"maps"
	"slices"

	"github.com/PaesslerAG/jsonpath"
)

// ImportInventory extracts an item-to-quantity object out of an arbitrary
// JSON document read from r.
//
// The path is a JSONPath expression selecting the object to import; an empty
// path selects the whole document. Selected values go through the same
// per-key coercion as DecodeInventory, and non-coercible keys are skipped and
// reported in the second result. Keys are inserted in sorted order, since the
// source document order is lost in the JSONPath evaluation.
func ImportInventory(r io.Reader, path string) (*Ledger, []string, error) {
	if path == "" {
		path = "$"
	}

	var jobj any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return NewLedger(), nil, fmt.Errorf("could not parse import document: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return NewLedger(), nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	jmap, ok := jval.(map[string]any)
	if !ok {
		return NewLedger(), nil, fmt.Errorf("%q does not select a JSON object (got %T)", path, jval)
	}

	ledger := NewLedger()
	var skipped []string
	for _, key := range slices.Sorted(maps.Keys(jmap)) {
		if key == "" {
			log.Printf("import: skipping entry with empty item name")
			skipped = append(skipped, key)
			continue
		}
		// Marshaling the value back gives the raw literal (UseNumber keeps
		// numbers verbatim), so the codec coercion applies unchanged.
		raw, err := json.Marshal(jmap[key])
		if err != nil {
			log.Printf("import: skipping item %q: %v", key, err)
			skipped = append(skipped, key)
			continue
		}
		qty, err := coerceQuantity(raw)
		if err != nil {
			log.Printf("import: skipping item %q: %v", key, err)
			skipped = append(skipped, key)
			continue
		}
		ledger.put(key, qty)
	}
	return ledger, skipped, nil
}
