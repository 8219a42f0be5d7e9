package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"home-inventory/internal/models"
)

var testInstallation = uuid.MustParse("0d4cbd7a-9f5e-4c73-9a3e-000000000001")

func TestInventoryClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/inventory/items" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("X-Installation-Id"); got != testInstallation.String() {
			t.Errorf("expected installation header, got %q", got)
		}
		json.NewEncoder(w).Encode([]models.InventoryItem{
			{ID: 1, ProductID: 7, ProductName: "Milk 3% Tnuva", Quantity: 2},
		})
	}))
	defer srv.Close()

	ic := NewInventoryClient(New(srv.URL, nil))
	sess := &Session{InstallationID: testInstallation}

	items, err := ic.List(context.Background(), sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ProductName != "Milk 3% Tnuva" {
		t.Errorf("unexpected items %+v", items)
	}
}

func TestInventoryClient_BearerTokenPreferred(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("expected bearer token, got %q", got)
		}
		if got := r.Header.Get("X-Installation-Id"); got != "" {
			t.Errorf("expected no installation header alongside token, got %q", got)
		}
		json.NewEncoder(w).Encode([]models.InventoryItem{})
	}))
	defer srv.Close()

	ic := NewInventoryClient(New(srv.URL, nil))
	sess := &Session{InstallationID: testInstallation, Token: "tok-123"}

	if _, err := ic.List(context.Background(), sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInventoryClient_AddOmitsEmptyOptionalFields(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.InventoryItem{ID: 1, ProductID: 7, Quantity: 1})
	}))
	defer srv.Close()

	ic := NewInventoryClient(New(srv.URL, nil))
	sess := &Session{InstallationID: testInstallation}

	_, err := ic.Add(context.Background(), sess, AddItemParams{
		ProductID:   7,
		ProductName: "Milk 3% Tnuva",
		Quantity:    1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, key := range []string{"bestBefore", "location", "notes"} {
		if strings.Contains(body, key) {
			t.Errorf("expected %q omitted from payload, got %s", key, body)
		}
	}
	if !strings.Contains(body, testInstallation.String()) {
		t.Errorf("expected installation id in payload, got %s", body)
	}
}

func TestInventoryClient_AddSendsOptionalFieldsWhenSet(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.InventoryItem{ID: 1})
	}))
	defer srv.Close()

	ic := NewInventoryClient(New(srv.URL, nil))
	sess := &Session{InstallationID: testInstallation}

	best := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	_, err := ic.Add(context.Background(), sess, AddItemParams{
		ProductID:   7,
		ProductName: "Milk 3% Tnuva",
		Quantity:    1,
		BestBefore:  &best,
		Location:    "fridge",
		Notes:       "open",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, key := range []string{"bestBefore", "fridge", "open"} {
		if !strings.Contains(body, key) {
			t.Errorf("expected %q in payload, got %s", key, body)
		}
	}
}

func TestInventoryClient_UpdateSendsOnlyChangedFields(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/inventory/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		json.NewEncoder(w).Encode(models.InventoryItem{ID: 1, ProductID: 7, Quantity: 5})
	}))
	defer srv.Close()

	ic := NewInventoryClient(New(srv.URL, nil))
	sess := &Session{InstallationID: testInstallation}

	q := 5
	item, err := ic.Update(context.Background(), sess, 7, ItemUpdate{Quantity: &q})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", item.Quantity)
	}
	if strings.Contains(body, "location") || strings.Contains(body, "notes") {
		t.Errorf("expected untouched fields omitted, got %s", body)
	}
}

func TestInventoryClient_DeleteNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/inventory/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ic := NewInventoryClient(New(srv.URL, nil))
	sess := &Session{InstallationID: testInstallation}

	if err := ic.Delete(context.Background(), sess, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_ErrorNamesOperationAndStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "item not found", http.StatusNotFound)
	}))
	defer srv.Close()

	ic := NewInventoryClient(New(srv.URL, nil))
	sess := &Session{InstallationID: testInstallation}

	err := ic.Delete(context.Background(), sess, 99)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "delete inventory item") || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected operation and status in error, got %q", err)
	}
}

func TestRequirementsClient_ShoppingList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/inventory/requirements/shopping-list" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]models.ShoppingListItem{
			{ProductID: 7, ProductName: "Milk 3% Tnuva", CurrentQuantity: 1, MinimumQuantity: 3, MissingQuantity: 2},
		})
	}))
	defer srv.Close()

	rc := NewRequirementsClient(New(srv.URL, nil))
	sess := &Session{InstallationID: testInstallation}

	list, err := rc.ShoppingList(context.Background(), sess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].MissingQuantity != 2 {
		t.Errorf("unexpected list %+v", list)
	}
}

func TestInstallationClient_JoinSendsCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/installations/join" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Code string `json:"code"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Code != "AB12CD" {
			t.Errorf("expected code AB12CD, got %q", req.Code)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"installationId": testInstallation,
			"token":          "tok-456",
		})
	}))
	defer srv.Close()

	icl := NewInstallationClient(New(srv.URL, nil))

	result, err := icl.Join(context.Background(), "AB12CD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.InstallationID != testInstallation || result.Token != "tok-456" {
		t.Errorf("unexpected result %+v", result)
	}
}
