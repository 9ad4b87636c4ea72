package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/testutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupEditRequestTest(t *testing.T) (*gorm.DB, *EditRequestService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewEditRequestService(db, repos.EditRequest, nil, zap.NewNop())
	return db, svc
}

func seedPendingRequest(t *testing.T, svc *EditRequestService, orgID, entityType, entityID string, proposed entity.JSONB) *entity.EditRequest {
	t.Helper()
	req, err := svc.Create(context.Background(), CreateEditRequestReq{
		EntityType:   entityType,
		EntityID:     entityID,
		Reason:       "correction",
		ProposedData: proposed,
	}, "staff-001", orgID)
	if err != nil {
		t.Fatalf("Create edit request failed: %v", err)
	}
	if req.Status != entity.EditRequestStatusPending {
		t.Fatalf("expected pending status, got %s", req.Status)
	}
	return req
}

func TestCreateRejectsUnknownEntityType(t *testing.T) {
	_, svc := setupEditRequestTest(t)

	_, err := svc.Create(context.Background(), CreateEditRequestReq{
		EntityType:   "warehouse",
		EntityID:     "w-001",
		ProposedData: entity.JSONB{"name": "x"},
	}, "staff-001", "org-001")
	if !errors.Is(err, ErrUnknownEntityType) {
		t.Fatalf("expected ErrUnknownEntityType, got %v", err)
	}
}

func TestApproveUnknownEntityTypeStaysPending(t *testing.T) {
	db, svc := setupEditRequestTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")

	// 绕过 Create 的枚举校验，直接落库一条未注册类型的待审批申请
	stale := &entity.EditRequest{
		ID:           "req-legacy-001",
		OrgID:        "org-001",
		EntityType:   "warehouse",
		EntityID:     "w-001",
		ProposedData: entity.JSONB{"name": "x"},
		Status:       entity.EditRequestStatusPending,
		RequestedBy:  "staff-001",
	}
	if err := db.Create(stale).Error; err != nil {
		t.Fatalf("seed edit request: %v", err)
	}

	_, err := svc.Approve(context.Background(), stale.ID, "supervisor-001", "org-001")
	if !errors.Is(err, ErrUnknownEntityType) {
		t.Fatalf("expected ErrUnknownEntityType, got %v", err)
	}
	if errors.Is(err, ErrAlreadyReviewed) {
		t.Fatal("unknown entity type must not surface as already reviewed")
	}

	current, err := svc.Get(context.Background(), "org-001", stale.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if current.Status != entity.EditRequestStatusPending {
		t.Errorf("expected request to stay pending, got %s", current.Status)
	}
}

func TestApproveAppliesProposedChange(t *testing.T) {
	db, svc := setupEditRequestTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UAT 123X")

	req := seedPendingRequest(t, svc, "org-001", entity.EditEntityTruck, truck.ID, entity.JSONB{
		"mileage": 152000.5,
		"status":  entity.TruckStatusMaintenance,
	})

	approved, err := svc.Approve(context.Background(), req.ID, "supervisor-001", "org-001")
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if approved.Status != entity.EditRequestStatusApproved {
		t.Errorf("expected approved status, got %s", approved.Status)
	}
	if approved.ApprovedBy == nil || *approved.ApprovedBy != "supervisor-001" {
		t.Errorf("expected approver supervisor-001, got %v", approved.ApprovedBy)
	}
	if approved.ApprovedAt == nil {
		t.Error("expected approved_at to be set")
	}

	var updated entity.Truck
	if err := db.First(&updated, "id = ?", truck.ID).Error; err != nil {
		t.Fatalf("load truck: %v", err)
	}
	if updated.Mileage != 152000.5 {
		t.Errorf("expected mileage 152000.5, got %v", updated.Mileage)
	}
	if updated.Status != entity.TruckStatusMaintenance {
		t.Errorf("expected status maintenance, got %s", updated.Status)
	}
	// 未提议的字段保持原值
	if updated.PlateNo != "UAT 123X" {
		t.Errorf("expected plate unchanged, got %s", updated.PlateNo)
	}
}

func TestApproveIgnoresNonWhitelistedFields(t *testing.T) {
	db, svc := setupEditRequestTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UAT 123X")

	req := seedPendingRequest(t, svc, "org-001", entity.EditEntityTruck, truck.ID, entity.JSONB{
		"mileage": 99000.0,
		"org_id":  "org-evil", // 白名单外，必须被忽略
	})

	if _, err := svc.Approve(context.Background(), req.ID, "supervisor-001", "org-001"); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	var updated entity.Truck
	if err := db.First(&updated, "id = ?", truck.ID).Error; err != nil {
		t.Fatalf("load truck: %v", err)
	}
	if updated.OrgID != "org-001" {
		t.Errorf("org_id must not be updatable, got %s", updated.OrgID)
	}
	if updated.Mileage != 99000.0 {
		t.Errorf("expected mileage 99000, got %v", updated.Mileage)
	}
}

func TestApproveWithNoUpdatableFields(t *testing.T) {
	db, svc := setupEditRequestTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UAT 123X")

	req := seedPendingRequest(t, svc, "org-001", entity.EditEntityTruck, truck.ID, entity.JSONB{
		"org_id": "org-evil",
	})

	_, err := svc.Approve(context.Background(), req.ID, "supervisor-001", "org-001")
	if !errors.Is(err, ErrNoUpdatableFields) {
		t.Fatalf("expected ErrNoUpdatableFields, got %v", err)
	}

	// 申请保持 pending，可再次处理
	current, err := svc.Get(context.Background(), "org-001", req.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if current.Status != entity.EditRequestStatusPending {
		t.Errorf("expected request to stay pending, got %s", current.Status)
	}
}

func TestApproveMissingEntityRollsBack(t *testing.T) {
	db, svc := setupEditRequestTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")

	req := seedPendingRequest(t, svc, "org-001", entity.EditEntityTruck, "no-such-truck", entity.JSONB{
		"mileage": 5.0,
	})

	_, err := svc.Approve(context.Background(), req.ID, "supervisor-001", "org-001")
	if !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}

	current, err := svc.Get(context.Background(), "org-001", req.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if current.Status != entity.EditRequestStatusPending {
		t.Errorf("expected request to stay pending, got %s", current.Status)
	}
	if err := db.First(&entity.Truck{}, "id = ?", "no-such-truck").Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("no truck should have been created, got %v", err)
	}
}

func TestRejectLeavesEntityUnchanged(t *testing.T) {
	db, svc := setupEditRequestTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UAT 123X")

	req := seedPendingRequest(t, svc, "org-001", entity.EditEntityTruck, truck.ID, entity.JSONB{
		"mileage": 777777.0,
	})

	rejected, err := svc.Reject(context.Background(), req.ID, "supervisor-001", "org-001", "figure looks wrong")
	if err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if rejected.Status != entity.EditRequestStatusRejected {
		t.Errorf("expected rejected status, got %s", rejected.Status)
	}
	if rejected.RejectionReason != "figure looks wrong" {
		t.Errorf("expected rejection reason recorded, got %q", rejected.RejectionReason)
	}

	var updated entity.Truck
	if err := db.First(&updated, "id = ?", truck.ID).Error; err != nil {
		t.Fatalf("load truck: %v", err)
	}
	if updated.Mileage != 0 {
		t.Errorf("rejected change must not touch the entity, mileage = %v", updated.Mileage)
	}
}

func TestApproveTwiceReturnsAlreadyReviewed(t *testing.T) {
	db, svc := setupEditRequestTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UAT 123X")

	req := seedPendingRequest(t, svc, "org-001", entity.EditEntityTruck, truck.ID, entity.JSONB{
		"mileage": 100.0,
	})

	if _, err := svc.Approve(context.Background(), req.ID, "supervisor-001", "org-001"); err != nil {
		t.Fatalf("first Approve failed: %v", err)
	}
	if _, err := svc.Approve(context.Background(), req.ID, "supervisor-002", "org-001"); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
	if _, err := svc.Reject(context.Background(), req.ID, "supervisor-002", "org-001", "late"); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed on reject after approve, got %v", err)
	}

	// 第一个审批人保留
	current, err := svc.Get(context.Background(), "org-001", req.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if current.ApprovedBy == nil || *current.ApprovedBy != "supervisor-001" {
		t.Errorf("expected first reviewer to be recorded, got %v", current.ApprovedBy)
	}
}

func TestConcurrentApproveOnlyOneWins(t *testing.T) {
	db, svc := setupEditRequestTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UAT 123X")

	req := seedPendingRequest(t, svc, "org-001", entity.EditEntityTruck, truck.ID, entity.JSONB{
		"mileage": 42.0,
	})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Approve(context.Background(), req.ID, "supervisor-00"+string(rune('1'+i)), "org-001")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, ErrAlreadyReviewed) {
			t.Fatalf("unexpected error from concurrent approve: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one approval to win, got %d", succeeded)
	}

	var updated entity.Truck
	if err := db.First(&updated, "id = ?", truck.ID).Error; err != nil {
		t.Fatalf("load truck: %v", err)
	}
	if updated.Mileage != 42.0 {
		t.Errorf("expected winning change applied once, mileage = %v", updated.Mileage)
	}
}

func TestGetNotFound(t *testing.T) {
	_, svc := setupEditRequestTest(t)

	_, err := svc.Get(context.Background(), "org-001", "11111111-1111-1111-1111-111111111111")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetIsOrgScoped(t *testing.T) {
	db, svc := setupEditRequestTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UAT 123X")

	req := seedPendingRequest(t, svc, "org-001", entity.EditEntityTruck, truck.ID, entity.JSONB{
		"mileage": 1.0,
	})

	if _, err := svc.Get(context.Background(), "org-other", req.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound across orgs, got %v", err)
	}
}

func TestListFiltersByStatusAndRequester(t *testing.T) {
	db, svc := setupEditRequestTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UAT 123X")

	first := seedPendingRequest(t, svc, "org-001", entity.EditEntityTruck, truck.ID, entity.JSONB{"mileage": 1.0})
	seedPendingRequest(t, svc, "org-001", entity.EditEntityTruck, truck.ID, entity.JSONB{"mileage": 2.0})

	if _, err := svc.Approve(context.Background(), first.ID, "supervisor-001", "org-001"); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	pending, total, err := svc.List(context.Background(), "org-001", repository.EditRequestListParams{
		Status: entity.EditRequestStatusPending,
		Page:   1,
		Size:   20,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(pending) != 1 {
		t.Fatalf("expected 1 pending request, got total=%d len=%d", total, len(pending))
	}

	count, err := svc.CountPending(context.Background(), "org-001")
	if err != nil {
		t.Fatalf("CountPending failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected pending count 1, got %d", count)
	}
}
