package inventory

import (
	"maps"
	"reflect"
	"strings"
	"testing"
)

func TestImportInventory(t *testing.T) {
	document := `{
	  "supplier": "acme",
	  "stock": {"banana": "2", "apple": 10, "bad": true}
	}`

	ledger, skipped, err := ImportInventory(strings.NewReader(document), "$.stock")
	if err != nil {
		t.Fatalf("ImportInventory() returned an unexpected error: %v", err)
	}

	if want := map[string]int64{"apple": 10, "banana": 2}; !maps.Equal(ledger.Map(), want) {
		t.Errorf("ImportInventory() ledger = %v, want %v", ledger.Map(), want)
	}
	if want := []string{"bad"}; !reflect.DeepEqual(skipped, want) {
		t.Errorf("ImportInventory() skipped = %v, want %v", skipped, want)
	}

	// Keys are inserted in sorted order.
	var order []string
	for item := range ledger.Items() {
		order = append(order, item)
	}
	if want := []string{"apple", "banana"}; !reflect.DeepEqual(order, want) {
		t.Errorf("ImportInventory() order = %v, want %v", order, want)
	}
}

func TestImportInventory_WholeDocument(t *testing.T) {
	document := `{"apple": 10, "banana": 2}`

	ledger, skipped, err := ImportInventory(strings.NewReader(document), "")
	if err != nil {
		t.Fatalf("ImportInventory() returned an unexpected error: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("ImportInventory() skipped %v", skipped)
	}
	if want := map[string]int64{"apple": 10, "banana": 2}; !maps.Equal(ledger.Map(), want) {
		t.Errorf("ImportInventory() ledger = %v, want %v", ledger.Map(), want)
	}
}

func TestImportInventory_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		document string
		path     string
	}{
		{name: "invalid document", document: `not json`, path: "$"},
		{name: "path selects a scalar", document: `{"stock": 5}`, path: "$.stock"},
		{name: "path selects an array", document: `{"stock": [1, 2]}`, path: "$.stock"},
		{name: "path does not match", document: `{"stock": {}}`, path: "$.missing"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger, _, err := ImportInventory(strings.NewReader(tc.document), tc.path)
			if err == nil {
				t.Fatalf("ImportInventory(%q, %q) should have failed", tc.document, tc.path)
			}
			if ledger == nil || ledger.Len() != 0 {
				t.Errorf("ImportInventory() should yield an empty ledger on error, got %v", ledger.Map())
			}
		})
	}
}
