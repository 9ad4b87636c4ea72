package service

import (
	"testing"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
)

func TestAppliersCoverAllEntityTypes(t *testing.T) {
	types := []string{
		entity.EditEntityTruck,
		entity.EditEntityDriver,
		entity.EditEntityTrip,
		entity.EditEntityExpense,
		entity.EditEntityCustomer,
		entity.EditEntityInvoice,
		entity.EditEntityEmployee,
		entity.EditEntityInventory,
	}
	for _, typ := range types {
		if _, ok := appliers[typ]; !ok {
			t.Errorf("no applier registered for entity type %s", typ)
		}
	}
	if len(appliers) != len(types) {
		t.Errorf("expected %d appliers, got %d", len(types), len(appliers))
	}
}

func TestFilterProposedFields(t *testing.T) {
	ap := appliers[entity.EditEntityTruck]

	updates := filterProposedFields(ap, entity.JSONB{
		"mileage":    120000.0,
		"status":     "maintenance",
		"org_id":     "org-evil",
		"id":         "truck-evil",
		"created_by": "someone",
	})

	if len(updates) != 2 {
		t.Fatalf("expected 2 whitelisted fields, got %d: %v", len(updates), updates)
	}
	if updates["mileage"] != 120000.0 {
		t.Errorf("expected mileage passthrough, got %v", updates["mileage"])
	}
	if updates["status"] != "maintenance" {
		t.Errorf("expected status passthrough, got %v", updates["status"])
	}
	for _, forbidden := range []string{"org_id", "id", "created_by"} {
		if _, ok := updates[forbidden]; ok {
			t.Errorf("field %s must never be updatable", forbidden)
		}
	}
}

func TestFilterProposedFieldsEmpty(t *testing.T) {
	ap := appliers[entity.EditEntityDriver]

	if got := filterProposedFields(ap, entity.JSONB{}); len(got) != 0 {
		t.Errorf("expected no updates for empty proposal, got %v", got)
	}
	if got := filterProposedFields(ap, entity.JSONB{"unknown": 1}); len(got) != 0 {
		t.Errorf("expected no updates for unknown fields, got %v", got)
	}
}

func TestImmutableColumnsNeverWhitelisted(t *testing.T) {
	for typ, ap := range appliers {
		for _, forbidden := range []string{"id", "org_id", "created_by", "created_at", "deleted_at"} {
			if _, ok := ap.columns[forbidden]; ok {
				t.Errorf("applier %s whitelists immutable column %s", typ, forbidden)
			}
		}
	}
}
