// Package view holds the UI-facing coordinators: list state, optimistic
// mutations and the quick-select autosaver. No rendering lives here.
package view

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"home-inventory/internal/client"
	"home-inventory/internal/models"
)

// SortMode orders the displayed inventory list.
type SortMode string

const (
	SortByName   SortMode = "name"
	SortByDate   SortMode = "date"
	SortByExpiry SortMode = "expiry"
)

// ItemAPI is the slice of the inventory client the list view needs.
type ItemAPI interface {
	List(ctx context.Context, sess *client.Session) ([]models.InventoryItem, error)
	Update(ctx context.Context, sess *client.Session, productID int64, update client.ItemUpdate) (models.InventoryItem, error)
	Delete(ctx context.Context, sess *client.Session, productID int64) error
}

// InventoryList is the main screen's state: the cached item list plus
// search and sort settings. Mutations are optimistic where the original
// flow is (delete), and refetch-after-resolve otherwise.
type InventoryList struct {
	api  ItemAPI
	sess *client.Session

	mu     sync.Mutex
	items  []models.InventoryItem
	query  string
	sortBy SortMode
}

func NewInventoryList(api ItemAPI, sess *client.Session) *InventoryList {
	return &InventoryList{
		api:    api,
		sess:   sess,
		sortBy: SortByExpiry,
	}
}

// Refresh refetches the list from the service and replaces the cache.
func (l *InventoryList) Refresh(ctx context.Context) error {
	items, err := l.api.List(ctx, l.sess)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
	return nil
}

func (l *InventoryList) SetQuery(query string) {
	l.mu.Lock()
	l.query = query
	l.mu.Unlock()
}

func (l *InventoryList) SetSort(mode SortMode) {
	l.mu.Lock()
	l.sortBy = mode
	l.mu.Unlock()
}

// Items returns the filtered, sorted list for display.
func (l *InventoryList) Items() []models.InventoryItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	q := strings.ToLower(l.query)
	filtered := make([]models.InventoryItem, 0, len(l.items))
	for _, item := range l.items {
		if q == "" || strings.Contains(strings.ToLower(item.ProductName), q) {
			filtered = append(filtered, item)
		}
	}

	switch l.sortBy {
	case SortByName:
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].ProductName < filtered[j].ProductName
		})
	case SortByDate:
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	case SortByExpiry:
		sort.Slice(filtered, func(i, j int) bool {
			return expiryOf(filtered[i]).Before(expiryOf(filtered[j]))
		})
	}
	return filtered
}

// Count returns the number of tracked items, unfiltered.
func (l *InventoryList) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// ExpiringSoonCount counts items whose best-before date falls within the
// next three days.
func (l *InventoryList) ExpiringSoonCount(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, item := range l.items {
		if item.BestBefore == nil {
			continue
		}
		days := int(item.BestBefore.Sub(now).Hours() / 24)
		if days >= 0 && days <= 3 {
			count++
		}
	}
	return count
}

// DeleteItem removes the item from the displayed list immediately and then
// issues the delete call; the local removal does not wait for, nor is it
// undone by, the call's outcome.
func (l *InventoryList) DeleteItem(ctx context.Context, productID int64) error {
	l.mu.Lock()
	for i, item := range l.items {
		if item.ProductID == productID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	l.mu.Unlock()

	return l.api.Delete(ctx, l.sess, productID)
}

// AdjustQuantity changes an item's quantity by delta. A change that would
// land below zero is never sent: the request is clamped away client-side.
func (l *InventoryList) AdjustQuantity(ctx context.Context, productID int64, delta int) error {
	l.mu.Lock()
	var current *models.InventoryItem
	for i := range l.items {
		if l.items[i].ProductID == productID {
			current = &l.items[i]
			break
		}
	}
	if current == nil {
		l.mu.Unlock()
		return nil
	}
	newQuantity := current.Quantity + delta
	l.mu.Unlock()

	if newQuantity < 0 {
		return nil
	}

	updated, err := l.api.Update(ctx, l.sess, productID, client.ItemUpdate{Quantity: &newQuantity})
	if err != nil {
		return err
	}

	l.mu.Lock()
	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items[i].Quantity = updated.Quantity
			l.items[i].UpdatedAt = updated.UpdatedAt
			break
		}
	}
	l.mu.Unlock()
	return nil
}

func expiryOf(item models.InventoryItem) time.Time {
	if item.BestBefore == nil {
		// Items without a date sort to the end of the expiry view.
		return time.Unix(1<<40, 0)
	}
	return *item.BestBefore
}
