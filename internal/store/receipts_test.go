package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/rewardworks/receipt-points/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "receipts.db")
	st, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	return st
}

func TestSaveAndGetReceipt(t *testing.T) {
	st := newTestStore(t)

	receipt := models.Receipt{
		Retailer:     "Target",
		PurchaseDate: "2022-01-01",
		PurchaseTime: "13:01",
		Items: []models.Item{
			{ShortDescription: "Mountain Dew 12PK", Price: "6.49"},
		},
		Total: "6.49",
	}

	id, err := st.SaveReceipt(receipt)
	if err != nil {
		t.Fatalf("SaveReceipt() error: %v", err)
	}
	if id == "" {
		t.Fatal("Expected non-empty receipt ID")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Expected a UUID identifier, got %q: %v", id, err)
	}

	stored, err := st.GetReceipt(id)
	if err != nil {
		t.Fatalf("GetReceipt() error: %v", err)
	}

	if stored.ID != id {
		t.Errorf("Expected stored ID %q, got %q", id, stored.ID)
	}
	if stored.Retailer != receipt.Retailer {
		t.Errorf("Expected retailer %q, got %q", receipt.Retailer, stored.Retailer)
	}
	if stored.Total != receipt.Total {
		t.Errorf("Expected total %q, got %q", receipt.Total, stored.Total)
	}
	if len(stored.Items) != 1 || stored.Items[0].Price != "6.49" {
		t.Errorf("Stored items do not match submission: %+v", stored.Items)
	}
}

func TestGetReceiptNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetReceipt(uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown ID, got %v", err)
	}
}

func TestSaveReceiptAssignsUniqueIDs(t *testing.T) {
	st := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := st.SaveReceipt(models.Receipt{Retailer: "Target", Total: "1.00"})
		if err != nil {
			t.Fatalf("SaveReceipt() error: %v", err)
		}
		if seen[id] {
			t.Fatalf("Duplicate ID issued: %s", id)
		}
		seen[id] = true
	}

	count, err := st.Count(BucketReceipts)
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 50 {
		t.Errorf("Expected 50 stored receipts, got %d", count)
	}
}

func TestReceiptsSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "receipts.db")

	st, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}

	id, err := st.SaveReceipt(models.Receipt{Retailer: "M&M Corner Market", Total: "9.00"})
	if err != nil {
		t.Fatalf("SaveReceipt() error: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	st, err = New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer st.Close()

	stored, err := st.GetReceipt(id)
	if err != nil {
		t.Fatalf("GetReceipt() after reopen error: %v", err)
	}
	if stored.Retailer != "M&M Corner Market" {
		t.Errorf("Expected retailer to survive reopen, got %q", stored.Retailer)
	}
}
