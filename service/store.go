package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/claimpilot/backend/config"
	"github.com/claimpilot/backend/model"
)

// CaseSession holds one tenant's intake record and evidence metadata.
// In production, this should be replaced with a database.
type CaseSession struct {
	Tenant    string
	Record    *model.CaseRecord
	Evidence  []model.EvidenceItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CaseStore is an in-memory store of case sessions keyed by tenant.
type CaseStore struct {
	sessions map[string]*CaseSession
	mu       sync.RWMutex
	maxCases int // Maximum sessions to keep, 0 = unlimited
}

var (
	globalStore *CaseStore
	storeOnce   sync.Once
)

// InitCaseStore initializes the global case store with configuration
func InitCaseStore(cfg *config.StoreConfig) {
	storeOnce.Do(func() {
		maxCases := cfg.MaxCases
		if maxCases < 0 {
			maxCases = 0
		}
		globalStore = &CaseStore{
			sessions: make(map[string]*CaseSession),
			maxCases: maxCases,
		}
		slog.Info("case store initialized", "max_cases", maxCases)
	})
}

// GetCaseStore returns the global case store
func GetCaseStore() *CaseStore {
	if globalStore == nil {
		// Fallback initialization with default settings
		globalStore = &CaseStore{
			sessions: make(map[string]*CaseSession),
			maxCases: 500, // Default: keep 500 sessions
		}
	}
	return globalStore
}

// session returns the tenant's session, creating it if needed.
// Must be called with the write lock held.
func (s *CaseStore) session(tenant string) *CaseSession {
	sess, ok := s.sessions[tenant]
	if !ok {
		sess = &CaseSession{Tenant: tenant, CreatedAt: time.Now()}
		s.sessions[tenant] = sess
		s.cleanupIfNeeded()
	}
	return sess
}

// SaveRecord replaces the tenant's intake record.
func (s *CaseStore) SaveRecord(tenant string, record *model.CaseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(tenant)
	sess.Record = record
	sess.UpdatedAt = time.Now()
}

// GetRecord returns the tenant's intake record, nil if none saved.
func (s *CaseStore) GetRecord(tenant string) *model.CaseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess, ok := s.sessions[tenant]; ok {
		return sess.Record
	}
	return nil
}

// AddEvidence appends an evidence item to the tenant's session.
func (s *CaseStore) AddEvidence(tenant string, item model.EvidenceItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(tenant)
	sess.Evidence = append(sess.Evidence, item)
	sess.UpdatedAt = time.Now()
}

// ListEvidence returns the tenant's evidence items in upload order.
func (s *CaseStore) ListEvidence(tenant string) []model.EvidenceItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[tenant]
	if !ok {
		return nil
	}
	items := make([]model.EvidenceItem, len(sess.Evidence))
	copy(items, sess.Evidence)
	return items
}

// DeleteEvidence removes one evidence item by ID. Returns the removed
// item so the caller can clean up the stored file.
func (s *CaseStore) DeleteEvidence(tenant, itemID string) (model.EvidenceItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[tenant]
	if !ok {
		return model.EvidenceItem{}, false
	}
	for i, item := range sess.Evidence {
		if item.ItemID == itemID {
			sess.Evidence = append(sess.Evidence[:i], sess.Evidence[i+1:]...)
			sess.UpdatedAt = time.Now()
			return item, true
		}
	}
	return model.EvidenceItem{}, false
}

// Snapshot returns a copy of the tenant's record and evidence for
// export. A tenant with no saved record gets an empty record so export
// still succeeds.
func (s *CaseStore) Snapshot(tenant string) (*model.CaseRecord, []model.EvidenceItem) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[tenant]
	if !ok || sess.Record == nil {
		var items []model.EvidenceItem
		if ok {
			items = make([]model.EvidenceItem, len(sess.Evidence))
			copy(items, sess.Evidence)
		}
		return &model.CaseRecord{}, items
	}

	record := *sess.Record
	items := make([]model.EvidenceItem, len(sess.Evidence))
	copy(items, sess.Evidence)
	return &record, items
}

// DeleteTenant removes the tenant's whole session. Returns the evidence
// items that were stored so their files can be deleted too.
func (s *CaseStore) DeleteTenant(tenant string) []model.EvidenceItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[tenant]
	if !ok {
		return nil
	}
	delete(s.sessions, tenant)
	return sess.Evidence
}

// cleanupIfNeeded removes oldest sessions if store exceeds maxCases
// Must be called with lock held
func (s *CaseStore) cleanupIfNeeded() {
	if s.maxCases <= 0 {
		return // Unlimited
	}

	if len(s.sessions) <= s.maxCases {
		return
	}

	sessions := make([]*CaseSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	removeCount := len(sessions) - s.maxCases
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old case session",
			"tenant", sessions[i].Tenant,
			"created_at", sessions[i].CreatedAt,
		)
		delete(s.sessions, sessions[i].Tenant)
	}
}

// Count returns the number of sessions in the store
func (s *CaseStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
