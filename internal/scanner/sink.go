package scanner

import (
	"context"

	"home-inventory/internal/client"
)

// ClientSink submits confirmed counts through the inventory service client.
type ClientSink struct {
	Inventory *client.InventoryClient
	Session   *client.Session
}

func (s ClientSink) AddItem(ctx context.Context, productID int64, productName string, quantity int) error {
	_, err := s.Inventory.Add(ctx, s.Session, client.AddItemParams{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
	})
	return err
}
