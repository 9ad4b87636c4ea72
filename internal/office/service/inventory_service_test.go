package service

import (
	"context"
	"errors"
	"testing"

	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/testutil"
)

func setupInventoryTest(t *testing.T) *InventoryService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	return NewInventoryService(repos.Inventory)
}

func TestAdjustInventory(t *testing.T) {
	svc := setupInventoryTest(t)

	item, err := svc.Create(context.Background(), CreateInventoryItemReq{
		SKU:      "TYRE-315-80",
		Name:     "Michelin 315/80 R22.5",
		Quantity: 10,
	}, "staff-001", "org-001")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	item, err = svc.Adjust(context.Background(), "org-001", item.ID, -4)
	if err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}
	if item.Quantity != 6 {
		t.Errorf("expected quantity 6, got %v", item.Quantity)
	}

	item, err = svc.Adjust(context.Background(), "org-001", item.ID, 14)
	if err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}
	if item.Quantity != 20 {
		t.Errorf("expected quantity 20, got %v", item.Quantity)
	}
}

func TestAdjustRejectsNegativeStock(t *testing.T) {
	svc := setupInventoryTest(t)

	item, err := svc.Create(context.Background(), CreateInventoryItemReq{
		SKU:      "OIL-15W40",
		Name:     "Engine oil 15W40",
		Quantity: 3,
	}, "staff-001", "org-001")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Adjust(context.Background(), "org-001", item.ID, -5); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// 失败的调整不得改变数量
	current, err := svc.Get(context.Background(), "org-001", item.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if current.Quantity != 3 {
		t.Errorf("expected quantity unchanged at 3, got %v", current.Quantity)
	}
}

func TestAdjustToExactlyZero(t *testing.T) {
	svc := setupInventoryTest(t)

	item, err := svc.Create(context.Background(), CreateInventoryItemReq{
		SKU:      "FILTER-AF25",
		Name:     "Air filter AF25",
		Quantity: 2,
	}, "staff-001", "org-001")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	item, err = svc.Adjust(context.Background(), "org-001", item.ID, -2)
	if err != nil {
		t.Fatalf("Adjust to zero failed: %v", err)
	}
	if item.Quantity != 0 {
		t.Errorf("expected quantity 0, got %v", item.Quantity)
	}
}
