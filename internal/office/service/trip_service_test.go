package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codewithkin/wd-logistics/internal/office/entity"
	"github.com/codewithkin/wd-logistics/internal/office/repository"
	"github.com/codewithkin/wd-logistics/internal/office/testutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTripTest(t *testing.T) (*gorm.DB, *TripService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewTripService(repos.Trip, repos.Truck, repos.Driver, zap.NewNop())
	return db, svc
}

func seedDriver(t *testing.T, db *gorm.DB, id, orgID, name, licenseNo string) *entity.Driver {
	t.Helper()
	driver := &entity.Driver{
		ID:        id,
		OrgID:     orgID,
		Name:      name,
		LicenseNo: licenseNo,
		Status:    entity.DriverStatusAvailable,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(driver).Error; err != nil {
		t.Fatalf("seed driver: %v", err)
	}
	return driver
}

func scheduleTrip(t *testing.T, svc *TripService, truckID, driverID string, distanceKm float64) *entity.Trip {
	t.Helper()
	trip, err := svc.Create(context.Background(), CreateTripReq{
		TruckID:     truckID,
		DriverID:    driverID,
		Origin:      "Kampala",
		Destination: "Gulu",
		DistanceKm:  distanceKm,
	}, "staff-001", "org-001")
	if err != nil {
		t.Fatalf("Create trip failed: %v", err)
	}
	return trip
}

func TestTripLifecycle(t *testing.T) {
	db, svc := setupTripTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UBH 442K")
	driver := seedDriver(t, db, "driver-001", "org-001", "Okello James", "DL-1001")

	trip := scheduleTrip(t, svc, truck.ID, driver.ID, 340)
	if trip.Status != entity.TripStatusScheduled {
		t.Fatalf("expected scheduled, got %s", trip.Status)
	}
	if trip.Code == "" {
		t.Error("expected a generated trip code")
	}

	// 发车
	trip, err := svc.Dispatch(context.Background(), "org-001", trip.ID)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if trip.Status != entity.TripStatusInTransit {
		t.Errorf("expected in_transit, got %s", trip.Status)
	}
	if trip.DepartedAt == nil {
		t.Error("expected departed_at set")
	}
	var d entity.Driver
	db.First(&d, "id = ?", driver.ID)
	if d.Status != entity.DriverStatusOnTrip {
		t.Errorf("expected driver on_trip, got %s", d.Status)
	}

	// 送达
	trip, err = svc.Complete(context.Background(), "org-001", trip.ID)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if trip.Status != entity.TripStatusDelivered {
		t.Errorf("expected delivered, got %s", trip.Status)
	}
	db.First(&d, "id = ?", driver.ID)
	if d.Status != entity.DriverStatusAvailable {
		t.Errorf("expected driver available after delivery, got %s", d.Status)
	}

	// 车辆里程累计
	var tk entity.Truck
	db.First(&tk, "id = ?", truck.ID)
	if tk.Mileage != 340 {
		t.Errorf("expected mileage 340, got %v", tk.Mileage)
	}
}

func TestDispatchRequiresScheduled(t *testing.T) {
	db, svc := setupTripTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UBH 442K")
	driver := seedDriver(t, db, "driver-001", "org-001", "Okello James", "DL-1001")

	trip := scheduleTrip(t, svc, truck.ID, driver.ID, 100)
	if _, err := svc.Dispatch(context.Background(), "org-001", trip.ID); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if _, err := svc.Dispatch(context.Background(), "org-001", trip.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on double dispatch, got %v", err)
	}
	if _, err := svc.Complete(context.Background(), "org-001", trip.ID); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if _, err := svc.Cancel(context.Background(), "org-001", trip.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition cancelling delivered trip, got %v", err)
	}
}

func TestCreateRejectsBusyTruckOrDriver(t *testing.T) {
	db, svc := setupTripTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UBH 442K")
	driver := seedDriver(t, db, "driver-001", "org-001", "Okello James", "DL-1001")
	other := seedDriver(t, db, "driver-002", "org-001", "Nankya Ruth", "DL-1002")

	scheduleTrip(t, svc, truck.ID, driver.ID, 100)

	// 同一辆车不可再排新行程
	_, err := svc.Create(context.Background(), CreateTripReq{
		TruckID:     truck.ID,
		DriverID:    other.ID,
		Origin:      "Kampala",
		Destination: "Mbale",
	}, "staff-001", "org-001")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for busy truck, got %v", err)
	}
}

func TestCreateRejectsUnavailableTruck(t *testing.T) {
	db, svc := setupTripTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UBH 442K")
	driver := seedDriver(t, db, "driver-001", "org-001", "Okello James", "DL-1001")

	db.Model(&entity.Truck{}).Where("id = ?", truck.ID).Update("status", entity.TruckStatusMaintenance)

	_, err := svc.Create(context.Background(), CreateTripReq{
		TruckID:     truck.ID,
		DriverID:    driver.ID,
		Origin:      "Kampala",
		Destination: "Gulu",
	}, "staff-001", "org-001")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for truck in maintenance, got %v", err)
	}
}

func TestCancelInTransitFreesDriver(t *testing.T) {
	db, svc := setupTripTest(t)
	testutil.SeedTestOrg(t, db, "org-001", "Acme Haulage")
	truck := testutil.SeedTestTruck(t, db, "truck-001", "org-001", "UBH 442K")
	driver := seedDriver(t, db, "driver-001", "org-001", "Okello James", "DL-1001")

	trip := scheduleTrip(t, svc, truck.ID, driver.ID, 100)
	if _, err := svc.Dispatch(context.Background(), "org-001", trip.ID); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if _, err := svc.Cancel(context.Background(), "org-001", trip.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	var d entity.Driver
	db.First(&d, "id = ?", driver.ID)
	if d.Status != entity.DriverStatusAvailable {
		t.Errorf("expected driver freed after cancel, got %s", d.Status)
	}

	// 取消不累计里程
	var tk entity.Truck
	db.First(&tk, "id = ?", truck.ID)
	if tk.Mileage != 0 {
		t.Errorf("cancelled trip must not add mileage, got %v", tk.Mileage)
	}
}
