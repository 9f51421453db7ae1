package usecase

import (
	"context"
	"encoding/json"
	"time"

	"career-bridge/internal/domain/application"
	"career-bridge/internal/domain/candidate"
	"career-bridge/internal/domain/company"
	"career-bridge/internal/domain/job"
	"career-bridge/internal/domain/notification"
	"career-bridge/internal/domain/savedjob"
	"career-bridge/internal/domain/user"
	"career-bridge/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	jobs        map[uuid.UUID]job.Job
	lastFilter  *job.ListFilter
	createErr   error
	listErr     error
	incremented int
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: map[uuid.UUID]job.Job{}}
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) List(_ context.Context, f job.ListFilter) ([]job.Job, error) {
	m.lastFilter = &f
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]job.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (m *mockJobRepo) Update(_ context.Context, j job.Job) error {
	if _, ok := m.jobs[j.ID]; !ok {
		return job.ErrNotFound
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.jobs[id]; !ok {
		return job.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

func (m *mockJobRepo) SetApprovalStatus(_ context.Context, id uuid.UUID, s job.ApprovalStatus) error {
	j, ok := m.jobs[id]
	if !ok {
		return job.ErrNotFound
	}
	j.ApprovalStatus = s
	m.jobs[id] = j
	return nil
}

func (m *mockJobRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	j, ok := m.jobs[id]
	if !ok {
		return job.ErrNotFound
	}
	j.Views++
	m.jobs[id] = j
	m.incremented++
	return nil
}

type mockApplicationRepo struct {
	apps map[uuid.UUID]application.Application
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{apps: map[uuid.UUID]application.Application{}}
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) error {
	for _, existing := range m.apps {
		if existing.JobID == a.JobID && existing.CandidateID == a.CandidateID {
			return application.ErrDuplicate
		}
	}
	m.apps[a.ID] = a
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	a, ok := m.apps[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	var out []application.Application
	for _, a := range m.apps {
		if a.CandidateID == candidateID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	var out []application.Application
	for _, a := range m.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) ExistsByJobAndCandidate(_ context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	for _, a := range m.apps {
		if a.JobID == jobID && a.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockApplicationRepo) UpdateReview(_ context.Context, id uuid.UUID, status application.Status, notes string, rating int16) error {
	a, ok := m.apps[id]
	if !ok {
		return application.ErrNotFound
	}
	a.Status = status
	a.Notes = notes
	a.Rating = rating
	a.UpdatedAt = time.Now().UTC()
	m.apps[id] = a
	return nil
}

type mockSavedJobRepo struct {
	saved map[uuid.UUID]savedjob.SavedJob
}

func newMockSavedJobRepo() *mockSavedJobRepo {
	return &mockSavedJobRepo{saved: map[uuid.UUID]savedjob.SavedJob{}}
}

func (m *mockSavedJobRepo) Find(_ context.Context, candidateID, jobID uuid.UUID) (savedjob.SavedJob, error) {
	for _, s := range m.saved {
		if s.CandidateID == candidateID && s.JobID == jobID {
			return s, nil
		}
	}
	return savedjob.SavedJob{}, savedjob.ErrNotFound
}

func (m *mockSavedJobRepo) Insert(_ context.Context, s savedjob.SavedJob) error {
	m.saved[s.ID] = s
	return nil
}

func (m *mockSavedJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.saved[id]; !ok {
		return savedjob.ErrNotFound
	}
	delete(m.saved, id)
	return nil
}

func (m *mockSavedJobRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]savedjob.SavedJob, error) {
	var out []savedjob.SavedJob
	for _, s := range m.saved {
		if s.CandidateID == candidateID {
			out = append(out, s)
		}
	}
	return out, nil
}

type mockNotificationRepo struct {
	created []notification.Notification
}

func (m *mockNotificationRepo) Create(_ context.Context, n notification.Notification) error {
	m.created = append(m.created, n)
	return nil
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ int) ([]notification.Notification, error) {
	var out []notification.Notification
	for _, n := range m.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id, userID uuid.UUID) error {
	for i, n := range m.created {
		if n.ID == id && n.UserID == userID {
			m.created[i].Read = true
			return nil
		}
	}
	return notification.ErrNotFound
}

func (m *mockNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for i, n := range m.created {
		if n.UserID == userID && !n.Read {
			m.created[i].Read = true
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, n := range m.created {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[uuid.UUID]user.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) Update(_ context.Context, u user.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Active = active
	m.users[id] = u
	return nil
}

type mockCandidateRepo struct {
	profiles map[uuid.UUID]candidate.Profile
}

func newMockCandidateRepo() *mockCandidateRepo {
	return &mockCandidateRepo{profiles: map[uuid.UUID]candidate.Profile{}}
}

func (m *mockCandidateRepo) GetByUserID(_ context.Context, userID uuid.UUID) (candidate.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return candidate.Profile{}, candidate.ErrNotFound
	}
	return p, nil
}

func (m *mockCandidateRepo) Upsert(_ context.Context, p candidate.Profile) error {
	m.profiles[p.UserID] = p
	return nil
}

func (m *mockCandidateRepo) SetCVURL(_ context.Context, userID uuid.UUID, url string) error {
	p, ok := m.profiles[userID]
	if !ok {
		return candidate.ErrNotFound
	}
	p.CVURL = url
	m.profiles[userID] = p
	return nil
}

type mockCompanyRepo struct {
	profiles map[uuid.UUID]company.Profile
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{profiles: map[uuid.UUID]company.Profile{}}
}

func (m *mockCompanyRepo) GetByUserID(_ context.Context, userID uuid.UUID) (company.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return company.Profile{}, company.ErrNotFound
	}
	return p, nil
}

func (m *mockCompanyRepo) Upsert(_ context.Context, p company.Profile) error {
	m.profiles[p.UserID] = p
	return nil
}

func (m *mockCompanyRepo) SetVerified(_ context.Context, userID uuid.UUID, verifiedAt time.Time) error {
	p, ok := m.profiles[userID]
	if !ok {
		return company.ErrNotFound
	}
	p.Verified = true
	p.VerifiedAt = &verifiedAt
	m.profiles[userID] = p
	return nil
}

func (m *mockCompanyRepo) List(_ context.Context, onlyUnverified bool, _, _ int) ([]company.Profile, error) {
	var out []company.Profile
	for _, p := range m.profiles {
		if onlyUnverified && p.Verified {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type mockStatsRepo struct {
	collect func() repository.PlatformStats
	calls   int
}

func (m *mockStatsRepo) Collect(_ context.Context) (repository.PlatformStats, error) {
	m.calls++
	if m.collect == nil {
		return repository.PlatformStats{}, nil
	}
	return m.collect(), nil
}

type mockSearchCache struct {
	store           map[string][]byte
	deletedPatterns []string
	locked          map[string]bool
}

func newMockSearchCache() *mockSearchCache {
	return &mockSearchCache{store: map[string][]byte{}, locked: map[string]bool{}}
}

func (m *mockSearchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockSearchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockSearchCache) Delete(_ context.Context, key string) error {
	delete(m.store, key)
	return nil
}

func (m *mockSearchCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deletedPatterns = append(m.deletedPatterns, pattern)
	m.store = map[string][]byte{}
	return nil
}

func (m *mockSearchCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	if m.locked[key] {
		return false, nil
	}
	m.locked[key] = true
	return true, nil
}
