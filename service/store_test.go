package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/claimpilot/backend/config"
	"github.com/claimpilot/backend/model"
)

func newTestStore(maxCases int) *CaseStore {
	return &CaseStore{
		sessions: make(map[string]*CaseSession),
		maxCases: maxCases,
	}
}

func TestCaseStoreSaveAndGetRecord(t *testing.T) {
	store := newTestStore(100)

	record := &model.CaseRecord{
		ClaimantName:  "Jane Doe",
		State:         "CA",
		AmountClaimed: 5000,
	}
	store.SaveRecord("tenant1", record)

	retrieved := store.GetRecord("tenant1")
	if retrieved == nil {
		t.Fatal("Expected to retrieve record")
	}
	if retrieved.ClaimantName != "Jane Doe" {
		t.Errorf("Expected claimant Jane Doe, got %s", retrieved.ClaimantName)
	}

	// Replacing overwrites, never merges
	store.SaveRecord("tenant1", &model.CaseRecord{ClaimantName: "John Roe"})
	if got := store.GetRecord("tenant1").ClaimantName; got != "John Roe" {
		t.Errorf("Expected replaced record, got claimant %s", got)
	}

	if store.GetRecord("non-existent") != nil {
		t.Error("Expected nil record for unknown tenant")
	}
}

func TestCaseStoreEvidence(t *testing.T) {
	store := newTestStore(100)

	store.AddEvidence("tenant1", model.EvidenceItem{ItemID: "ev-1", Label: "Receipt"})
	store.AddEvidence("tenant1", model.EvidenceItem{ItemID: "ev-2", Label: "Photo"})
	store.AddEvidence("tenant2", model.EvidenceItem{ItemID: "ev-3"})

	items := store.ListEvidence("tenant1")
	if len(items) != 2 {
		t.Fatalf("Expected 2 items for tenant1, got %d", len(items))
	}
	if items[0].ItemID != "ev-1" || items[1].ItemID != "ev-2" {
		t.Error("Evidence should keep upload order")
	}

	if len(store.ListEvidence("tenant3")) != 0 {
		t.Error("Expected no items for unknown tenant")
	}

	removed, ok := store.DeleteEvidence("tenant1", "ev-1")
	if !ok || removed.Label != "Receipt" {
		t.Fatalf("Expected to remove ev-1, got %v %v", removed, ok)
	}
	if len(store.ListEvidence("tenant1")) != 1 {
		t.Error("Expected 1 item after delete")
	}

	if _, ok := store.DeleteEvidence("tenant1", "ev-999"); ok {
		t.Error("Deleting an unknown item should report false")
	}
	if _, ok := store.DeleteEvidence("nobody", "ev-1"); ok {
		t.Error("Deleting from an unknown tenant should report false")
	}
}

func TestCaseStoreListEvidenceReturnsCopy(t *testing.T) {
	store := newTestStore(100)
	store.AddEvidence("tenant1", model.EvidenceItem{ItemID: "ev-1", Label: "Receipt"})

	items := store.ListEvidence("tenant1")
	items[0].Label = "mutated"

	if store.ListEvidence("tenant1")[0].Label != "Receipt" {
		t.Error("Mutating the returned slice must not change the store")
	}
}

func TestCaseStoreSnapshot(t *testing.T) {
	store := newTestStore(100)

	// Snapshot without a saved record yields an empty record, not nil
	record, items := store.Snapshot("tenant1")
	if record == nil {
		t.Fatal("Expected empty record, got nil")
	}
	if len(items) != 0 {
		t.Errorf("Expected no evidence, got %d", len(items))
	}

	store.SaveRecord("tenant1", &model.CaseRecord{ClaimantName: "Jane Doe"})
	store.AddEvidence("tenant1", model.EvidenceItem{ItemID: "ev-1"})

	record, items = store.Snapshot("tenant1")
	if record.ClaimantName != "Jane Doe" {
		t.Errorf("Expected Jane Doe, got %s", record.ClaimantName)
	}
	if len(items) != 1 {
		t.Errorf("Expected 1 evidence item, got %d", len(items))
	}

	// The snapshot is detached from the store
	record.ClaimantName = "mutated"
	if store.GetRecord("tenant1").ClaimantName != "Jane Doe" {
		t.Error("Mutating the snapshot must not change the store")
	}
}

func TestCaseStoreDeleteTenant(t *testing.T) {
	store := newTestStore(100)

	store.SaveRecord("tenant1", &model.CaseRecord{ClaimantName: "Jane Doe"})
	store.AddEvidence("tenant1", model.EvidenceItem{ItemID: "ev-1"})
	store.AddEvidence("tenant1", model.EvidenceItem{ItemID: "ev-2"})

	removed := store.DeleteTenant("tenant1")
	if len(removed) != 2 {
		t.Errorf("Expected 2 removed evidence items, got %d", len(removed))
	}
	if store.GetRecord("tenant1") != nil {
		t.Error("Expected record to be gone after delete")
	}
	if store.Count() != 0 {
		t.Errorf("Expected 0 sessions, got %d", store.Count())
	}

	if removed := store.DeleteTenant("nobody"); removed != nil {
		t.Error("Deleting an unknown tenant should return nil")
	}
}

func TestCaseStoreAutoCleanup(t *testing.T) {
	store := newTestStore(3) // Max 3 sessions

	for i := 0; i < 5; i++ {
		store.SaveRecord(fmt.Sprintf("tenant%d", i), &model.CaseRecord{})
		time.Sleep(10 * time.Millisecond) // Ensure different timestamps
	}

	if store.Count() != 3 {
		t.Errorf("Expected 3 sessions after cleanup, got %d", store.Count())
	}

	if store.GetRecord("tenant0") != nil {
		t.Error("Expected oldest session tenant0 to be removed")
	}
	if store.GetRecord("tenant1") != nil {
		t.Error("Expected second oldest session tenant1 to be removed")
	}
	if store.GetRecord("tenant4") == nil {
		t.Error("Expected newest session tenant4 to survive")
	}
}

func TestCaseStoreUnlimitedSessions(t *testing.T) {
	store := newTestStore(0) // Unlimited

	for i := 0; i < 10; i++ {
		store.SaveRecord(fmt.Sprintf("tenant%d", i), &model.CaseRecord{})
	}

	if store.Count() != 10 {
		t.Errorf("Expected 10 sessions, got %d", store.Count())
	}
}

func TestCaseStoreCount(t *testing.T) {
	store := newTestStore(100)

	if store.Count() != 0 {
		t.Error("Expected 0 sessions initially")
	}

	store.SaveRecord("tenant1", &model.CaseRecord{})
	store.AddEvidence("tenant2", model.EvidenceItem{ItemID: "ev-1"})

	if store.Count() != 2 {
		t.Errorf("Expected 2 sessions, got %d", store.Count())
	}
}

func TestGetCaseStore(t *testing.T) {
	// Just test that GetCaseStore returns a non-nil store
	store := GetCaseStore()
	if store == nil {
		t.Fatal("Expected non-nil store")
	}
}

func TestInitCaseStoreConfig(t *testing.T) {
	// Test InitCaseStore with config
	cfg := &config.StoreConfig{MaxCases: 50}
	InitCaseStore(cfg)
	// Should not panic
}
