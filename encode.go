package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// EncodeInventory writes the ledger to w as a single JSON object whose keys
// are item names and values are integer quantities, in ledger iteration
// order, pretty-printed with 2-space indentation.
func EncodeInventory(w io.Writer, l *Ledger) error {
	var obj jsonObjectWriter
	for item, qty := range l.Items() {
		obj.Append(item, qty)
	}
	raw, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not marshal inventory: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("could not format inventory: %w", err)
	}
	pretty.WriteByte('\n')

	if _, err := w.Write(pretty.Bytes()); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}

// DecodeInventory reads a JSON object from r and returns the ledger it
// describes, preserving the key order of the document.
//
// The decode is tolerant per entry: values are coerced to integers, and keys
// whose values cannot be coerced are skipped with a warning and reported in
// the second result, so a partially bad file still yields a partial ledger.
// A document whose top level is not a JSON object is an error, and yields an
// empty ledger.
func DecodeInventory(r io.Reader) (*Ledger, []string, error) {
	ledger := NewLedger()
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return NewLedger(), nil, fmt.Errorf("could not parse inventory: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return NewLedger(), nil, fmt.Errorf("inventory must be a JSON object, got %v", tok)
	}

	var skipped []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return NewLedger(), nil, fmt.Errorf("could not parse inventory: %w", err)
		}
		// Inside an object, the decoder guarantees keys are strings.
		key := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return NewLedger(), nil, fmt.Errorf("could not parse value for item %q: %w", key, err)
		}

		if key == "" {
			log.Printf("decode: skipping entry with empty item name")
			skipped = append(skipped, key)
			continue
		}
		qty, err := coerceQuantity(raw)
		if err != nil {
			log.Printf("decode: skipping item %q: %v", key, err)
			skipped = append(skipped, key)
			continue
		}
		ledger.put(key, qty)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return NewLedger(), nil, fmt.Errorf("could not parse inventory: %w", err)
	}

	return ledger, skipped, nil
}

// coerceQuantity converts a raw JSON value into an integer quantity.
// Numbers are truncated toward zero; strings must spell an integer.
// Anything else (booleans, null, arrays, objects) cannot be coerced.
func coerceQuantity(raw json.RawMessage) (int64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidQuantity)
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidQuantity, err)
		}
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil || !d.IsInteger() {
			return 0, fmt.Errorf("%w: %q does not spell an integer", ErrInvalidQuantity, s)
		}
		return d.IntPart(), nil
	}

	// JSON numbers start with a digit or a minus sign; anything else
	// (booleans, null, arrays, objects) is not coercible.
	if c := trimmed[0]; c != '-' && (c < '0' || c > '9') {
		return 0, fmt.Errorf("%w: %s", ErrInvalidQuantity, trimmed)
	}
	var d decimal.Decimal
	if err := json.Unmarshal(trimmed, &d); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidQuantity, trimmed)
	}
	return d.IntPart(), nil
}
