package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/codewithkin/wd-logistics/internal/middleware"
	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/service"
	"github.com/codewithkin/wd-logistics/internal/office/testutil"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupEditRequestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := service.NewEditRequestService(db, repos.EditRequest, nil, zap.NewNop())
	h := NewEditRequestHandler(svc)

	r := testutil.SetupRouter()
	group := testutil.AuthGroup(r, "/api/v1/edit-requests")
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/pending-count", h.PendingCount)
	group.GET("/:id", h.Get)
	group.POST("/:id/approve", middleware.RequireRole(entity.RoleSupervisor), h.Approve)
	group.POST("/:id/reject", middleware.RequireRole(entity.RoleSupervisor), h.Reject)
	return r, db
}

func staffToken() string {
	return testutil.GenerateTestToken("staff-001", "Okello James", "okello@acme.test", "org-001", entity.RoleStaff)
}

func supervisorToken() string {
	return testutil.GenerateTestToken("supervisor-001", "Nankya Ruth", "ruth@acme.test", "org-001", entity.RoleSupervisor)
}

func createRequestOverHTTP(t *testing.T, r *gin.Engine, entityID string) string {
	t.Helper()
	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/edit-requests", map[string]interface{}{
		"entity_type": entity.EditEntityTruck,
		"entity_id":   entityID,
		"reason":      "odometer was misread",
		"proposed_data": map[string]interface{}{
			"mileage": 88000.0,
		},
	}, staffToken())
	if w.Code != http.StatusCreated {
		t.Fatalf("create edit request: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	return data["id"].(string)
}

func TestCreateAndApproveFlow(t *testing.T) {
	r, db := setupEditRequestRouter(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UBH 442K")

	id := createRequestOverHTTP(t, r, truck.ID)

	w := testutil.DoRequest(r, http.MethodPost, fmt.Sprintf("/api/v1/edit-requests/%s/approve", id), nil, supervisorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["status"] != entity.EditRequestStatusApproved {
		t.Errorf("expected approved status, got %v", data["status"])
	}
	if data["approved_by"] != "supervisor-001" {
		t.Errorf("expected approver recorded, got %v", data["approved_by"])
	}

	var updated entity.Truck
	if err := db.First(&updated, "id = ?", truck.ID).Error; err != nil {
		t.Fatalf("load truck: %v", err)
	}
	if updated.Mileage != 88000.0 {
		t.Errorf("expected mileage applied, got %v", updated.Mileage)
	}
}

func TestStaffCannotApprove(t *testing.T) {
	r, db := setupEditRequestRouter(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UBH 442K")

	id := createRequestOverHTTP(t, r, truck.ID)

	w := testutil.DoRequest(r, http.MethodPost, fmt.Sprintf("/api/v1/edit-requests/%s/approve", id), nil, staffToken())
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for staff approve, got %d", w.Code)
	}

	// 申请保持 pending
	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/edit-requests/"+id, nil, staffToken())
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["status"] != entity.EditRequestStatusPending {
		t.Errorf("expected request to stay pending, got %v", data["status"])
	}
}

func TestAdminCanApprove(t *testing.T) {
	r, db := setupEditRequestRouter(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UBH 442K")

	id := createRequestOverHTTP(t, r, truck.ID)

	adminToken := testutil.GenerateTestToken("admin-001", "Admin", "admin@acme.test", "org-001", entity.RoleAdmin)
	w := testutil.DoRequest(r, http.MethodPost, fmt.Sprintf("/api/v1/edit-requests/%s/approve", id), nil, adminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("admin approve: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRejectRequiresNoBody(t *testing.T) {
	r, db := setupEditRequestRouter(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UBH 442K")

	id := createRequestOverHTTP(t, r, truck.ID)

	w := testutil.DoRequest(r, http.MethodPost, fmt.Sprintf("/api/v1/edit-requests/%s/reject", id), map[string]interface{}{
		"rejection_reason": "not plausible",
	}, supervisorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("reject: expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["status"] != entity.EditRequestStatusRejected {
		t.Errorf("expected rejected status, got %v", data["status"])
	}
	if data["rejection_reason"] != "not plausible" {
		t.Errorf("expected rejection reason recorded, got %v", data["rejection_reason"])
	}
}

func TestDoubleApproveReturnsConflict(t *testing.T) {
	r, db := setupEditRequestRouter(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UBH 442K")

	id := createRequestOverHTTP(t, r, truck.ID)
	path := fmt.Sprintf("/api/v1/edit-requests/%s/approve", id)

	if w := testutil.DoRequest(r, http.MethodPost, path, nil, supervisorToken()); w.Code != http.StatusOK {
		t.Fatalf("first approve: expected 200, got %d", w.Code)
	}
	w := testutil.DoRequest(r, http.MethodPost, path, nil, supervisorToken())
	if w.Code != http.StatusConflict {
		t.Fatalf("second approve: expected 409, got %d body=%s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40901 {
		t.Errorf("expected business code 40901, got %v", resp["code"])
	}
}

func TestUnknownEntityTypeRejected(t *testing.T) {
	r, _ := setupEditRequestRouter(t)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/edit-requests", map[string]interface{}{
		"entity_type":   "warehouse",
		"entity_id":     "w-001",
		"proposed_data": map[string]interface{}{"name": "x"},
	}, staffToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown entity type, got %d", w.Code)
	}
}

func TestPendingCount(t *testing.T) {
	r, db := setupEditRequestRouter(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UBH 442K")

	createRequestOverHTTP(t, r, truck.ID)
	createRequestOverHTTP(t, r, truck.ID)

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/edit-requests/pending-count", nil, supervisorToken())
	if w.Code != http.StatusOK {
		t.Fatalf("pending-count: expected 200, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["pending"].(float64) != 2 {
		t.Errorf("expected 2 pending, got %v", data["pending"])
	}
}

func TestUnauthenticatedRequestRejected(t *testing.T) {
	r, _ := setupEditRequestRouter(t)

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/edit-requests", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}
