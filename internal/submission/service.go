package submission

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pawsteady/pba-grader/internal/grading"
)

var ErrNotFound = errors.New("submission not found")

type Store interface {
	Put(s Submission) error
	Get(id string) (Submission, error)
	List(limit, offset int) ([]Submission, error)
}

// Service grades incoming assignments and persists the outcome.
type Service struct {
	store     Store
	normalize grading.Normalizer
	seq       atomic.Int64
}

func NewService(store Store, normalize grading.Normalizer) *Service {
	return &Service{store: store, normalize: normalize}
}

// Create grades answers and stores the record. Grading never fails on bad
// input; the only errors here come from the store.
func (svc *Service) Create(ctx context.Context, name, email string, answers grading.Answers) (Submission, error) {
	results := grading.GradeSubmission(ctx, answers, svc.normalize)
	verdict, flagged := grading.Decide(results)
	s := Submission{
		ID:           svc.newID(),
		StudentName:  name,
		StudentEmail: email,
		Answers:      answers,
		Results:      results,
		Verdict:      verdict,
		Flagged:      flagged,
		CreatedAt:    time.Now().Unix(),
	}
	if err := svc.store.Put(s); err != nil {
		return Submission{}, err
	}
	return s, nil
}

func (svc *Service) Get(id string) (Submission, error) { return svc.store.Get(id) }

func (svc *Service) List(limit, offset int) ([]Submission, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return svc.store.List(limit, offset)
}

func (svc *Service) newID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.FormatInt(svc.seq.Add(1), 36)
}

type memoryStore struct {
	mu   sync.RWMutex
	subs map[string]Submission
}

func NewInMemoryStore() Store {
	return &memoryStore{subs: map[string]Submission{}}
}

func (m *memoryStore) Put(s Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs[s.ID] = s
	return nil
}

func (m *memoryStore) Get(id string) (Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.subs[id]
	if !ok {
		return Submission{}, ErrNotFound
	}
	return s, nil
}

func (m *memoryStore) List(limit, offset int) ([]Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]Submission, 0, len(m.subs))
	for _, s := range m.subs {
		all = append(all, s)
	}
	// newest first, ID as the tiebreaker for a stable order
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt != all[j].CreatedAt {
			return all[i].CreatedAt > all[j].CreatedAt
		}
		return all[i].ID > all[j].ID
	})
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
