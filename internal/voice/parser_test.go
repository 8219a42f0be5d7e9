package voice

import (
	"testing"

	"home-inventory/internal/models"
)

var catalog = []models.Product{
	{ID: 7, Name: "Milk 3% Tnuva", Aliases: []string{"חלב", "milk"}},
	{ID: 12, Name: "Eggs L", Aliases: []string{"ביצים"}},
	{ID: 20, Name: "Bread", Aliases: []string{"לחם"}},
}

func TestParse_AddWithQuantity(t *testing.T) {
	cmd := Parse("3 milk", catalog)

	if cmd.Intent != IntentAdd {
		t.Errorf("expected ADD intent, got %v", cmd.Intent)
	}
	if cmd.Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", cmd.Quantity)
	}
	if cmd.Product == nil || cmd.Product.ID != 7 {
		t.Errorf("expected product 7, got %+v", cmd.Product)
	}
}

func TestParse_RemoveTriggerNegatesQuantity(t *testing.T) {
	cmd := Parse("תוציא 2 חלב", catalog)

	if cmd.Intent != IntentRemove {
		t.Errorf("expected REMOVE intent, got %v", cmd.Intent)
	}
	if cmd.Quantity != -2 {
		t.Errorf("expected quantity -2, got %d", cmd.Quantity)
	}
	if cmd.Product == nil || cmd.Product.ID != 7 {
		t.Errorf("expected product 7 via alias, got %+v", cmd.Product)
	}
}

func TestParse_RemoveTriggers(t *testing.T) {
	for _, transcript := range []string{
		"נגמר לחם",
		"חסר לחם",
		"הורד לחם",
		"סיימתי עם הלחם",
	} {
		cmd := Parse(transcript, catalog)
		if cmd.Intent != IntentRemove {
			t.Errorf("transcript %q: expected REMOVE intent, got %v", transcript, cmd.Intent)
		}
		if cmd.Quantity != -1 {
			t.Errorf("transcript %q: expected quantity -1, got %d", transcript, cmd.Quantity)
		}
		if cmd.Product == nil || cmd.Product.ID != 20 {
			t.Errorf("transcript %q: expected bread, got %+v", transcript, cmd.Product)
		}
	}
}

func TestParse_DefaultQuantityIsOne(t *testing.T) {
	cmd := Parse("ביצים", catalog)

	if cmd.Quantity != 1 {
		t.Errorf("expected default quantity 1, got %d", cmd.Quantity)
	}
	if cmd.Intent != IntentAdd {
		t.Errorf("expected ADD intent, got %v", cmd.Intent)
	}
	if cmd.Product == nil || cmd.Product.ID != 12 {
		t.Errorf("expected eggs, got %+v", cmd.Product)
	}
}

func TestParse_NoMatchLeavesProductNil(t *testing.T) {
	cmd := Parse("5 bananas", catalog)

	if cmd.Product != nil {
		t.Errorf("expected nil product, got %+v", cmd.Product)
	}
	if cmd.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", cmd.Quantity)
	}
	if cmd.RawText != "5 bananas" {
		t.Errorf("expected raw text preserved, got %q", cmd.RawText)
	}
}

func TestParse_EmptyNameNeverMatches(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "", Aliases: []string{""}},
		{ID: 2, Name: "Bread"},
	}

	cmd := Parse("bread", products)
	if cmd.Product == nil || cmd.Product.ID != 2 {
		t.Errorf("expected bread, got %+v", cmd.Product)
	}

	cmd = Parse("something else", products)
	if cmd.Product != nil {
		t.Errorf("expected no match, got %+v", cmd.Product)
	}
}

func TestParse_FirstCatalogMatchWins(t *testing.T) {
	// Both milk and eggs occur; the earlier catalog entry is picked.
	cmd := Parse("milk and ביצים", catalog)

	if cmd.Product == nil || cmd.Product.ID != 7 {
		t.Errorf("expected first match (milk), got %+v", cmd.Product)
	}
}

func TestParse_CaseInsensitiveNameMatch(t *testing.T) {
	cmd := Parse("MILK 3% TNUVA please", catalog)

	if cmd.Product == nil || cmd.Product.ID != 7 {
		t.Errorf("expected product 7, got %+v", cmd.Product)
	}
}

func TestParse_Deterministic(t *testing.T) {
	a := Parse("תוציא 2 חלב", catalog)
	b := Parse("תוציא 2 חלב", catalog)

	if a.Quantity != b.Quantity || a.Intent != b.Intent {
		t.Errorf("expected identical results, got %+v and %+v", a, b)
	}
	if (a.Product == nil) != (b.Product == nil) {
		t.Fatal("expected identical product match")
	}
	if a.Product != nil && a.Product.ID != b.Product.ID {
		t.Errorf("expected same product, got %d and %d", a.Product.ID, b.Product.ID)
	}
}
