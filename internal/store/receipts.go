package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rewardworks/receipt-points/internal/models"
)

// SaveReceipt assigns a fresh identifier to the receipt and persists it.
// The stored receipt is never updated afterwards.
func (s *Store) SaveReceipt(receipt models.Receipt) (string, error) {
	id := uuid.NewString()
	receipt.ID = id

	if err := s.Put(BucketReceipts, id, &receipt); err != nil {
		return "", fmt.Errorf("failed to save receipt: %w", err)
	}

	return id, nil
}

// GetReceipt retrieves a receipt by its identifier.
// Returns ErrNotFound for an identifier that was never issued.
func (s *Store) GetReceipt(id string) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := s.Get(BucketReceipts, id, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}
