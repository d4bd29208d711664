package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	apperrors "localhire/internal/errors"
	"localhire/internal/model"
)

// MemoryStore is the map-backed storage fallback. It satisfies the same
// repository contracts as the GORM implementations and is used when no
// database is reachable, and by tests that want an isolated store per case.
// Construct one per process (or per test) and hand it to the New*Memory
// constructors; it is never package-level state.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[uuid.UUID]model.User
	companies    map[uuid.UUID]model.Company
	jobs         map[uuid.UUID]model.Job
	applications map[uuid.UUID]model.Application
	messages     map[uuid.UUID]model.Message
	experiences  map[uuid.UUID]model.Experience
	stories      map[uuid.UUID]model.Story
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[uuid.UUID]model.User),
		companies:    make(map[uuid.UUID]model.Company),
		jobs:         make(map[uuid.UUID]model.Job),
		applications: make(map[uuid.UUID]model.Application),
		messages:     make(map[uuid.UUID]model.Message),
		experiences:  make(map[uuid.UUID]model.Experience),
		stories:      make(map[uuid.UUID]model.Story),
	}
}

// Missing records surface as gorm.ErrRecordNotFound on this backend too, so
// the service layer handles both adapters identically.

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func ensureTime(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// --- users ---

type memoryUserRepository struct {
	store *MemoryStore
}

// NewMemoryUserRepository builds a map-backed user repository.
func NewMemoryUserRepository(store *MemoryStore) UserRepository {
	return &memoryUserRepository{store: store}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ensureID(&user.ID)
	ensureTime(&user.CreatedAt)
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user.UpdatedAt = time.Now()
	r.store.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, user := range r.store.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) List(ctx context.Context) ([]model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	users := lo.Values(r.store.users)
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID.String() > users[j].ID.String()
	})
	return users, nil
}

func (r *memoryUserRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.users)), nil
}

func (r *memoryUserRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	n := lo.CountBy(lo.Values(r.store.users), func(u model.User) bool {
		return !u.CreatedAt.Before(since)
	})
	return int64(n), nil
}

// --- companies ---

type memoryCompanyRepository struct {
	store *MemoryStore
}

// NewMemoryCompanyRepository builds a map-backed company repository.
func NewMemoryCompanyRepository(store *MemoryStore) CompanyRepository {
	return &memoryCompanyRepository{store: store}
}

func (r *memoryCompanyRepository) Create(ctx context.Context, company *model.Company) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ensureID(&company.ID)
	ensureTime(&company.CreatedAt)
	company.UpdatedAt = company.CreatedAt
	r.store.companies[company.ID] = *company
	return nil
}

func (r *memoryCompanyRepository) Update(ctx context.Context, company *model.Company) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	company.UpdatedAt = time.Now()
	r.store.companies[company.ID] = *company
	return nil
}

func (r *memoryCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	company, ok := r.store.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &company, nil
}

func (r *memoryCompanyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Company, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	companies := lo.Filter(lo.Values(r.store.companies), func(c model.Company, _ int) bool {
		return c.OwnerID != nil && *c.OwnerID == ownerID
	})
	sortCompaniesNewestFirst(companies)
	return companies, nil
}

func (r *memoryCompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	companies := lo.Values(r.store.companies)
	sortCompaniesNewestFirst(companies)
	return companies, nil
}

func (r *memoryCompanyRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.companies)), nil
}

func (r *memoryCompanyRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	n := lo.CountBy(lo.Values(r.store.companies), func(c model.Company) bool {
		return !c.CreatedAt.Before(since)
	})
	return int64(n), nil
}

func sortCompaniesNewestFirst(companies []model.Company) {
	sort.Slice(companies, func(i, j int) bool {
		if !companies[i].CreatedAt.Equal(companies[j].CreatedAt) {
			return companies[i].CreatedAt.After(companies[j].CreatedAt)
		}
		return companies[i].ID.String() > companies[j].ID.String()
	})
}

// --- jobs ---

type memoryJobRepository struct {
	store *MemoryStore
}

// NewMemoryJobRepository builds a map-backed job repository.
func NewMemoryJobRepository(store *MemoryStore) JobRepository {
	return &memoryJobRepository{store: store}
}

func (r *memoryJobRepository) Create(ctx context.Context, job *model.Job) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ensureID(&job.ID)
	ensureTime(&job.CreatedAt)
	job.UpdatedAt = job.CreatedAt
	if job.IsActive == nil {
		active := true
		job.IsActive = &active
	}
	r.store.jobs[job.ID] = *job
	return nil
}

func (r *memoryJobRepository) Update(ctx context.Context, job *model.Job) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	job.UpdatedAt = time.Now()
	r.store.jobs[job.ID] = *job
	return nil
}

func (r *memoryJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	job, ok := r.store.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &job, nil
}

// Find evaluates the full filter predicate in Go; jobMatches is shared with
// the GORM backend's skills post-filter, which keeps the two adapters from
// drifting apart.
func (r *memoryJobRepository) Find(ctx context.Context, filters JobFilters) ([]model.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	jobs := lo.Filter(lo.Values(r.store.jobs), func(j model.Job, _ int) bool {
		return jobMatches(&j, filters)
	})
	sortJobsNewestFirst(jobs)
	return jobs, nil
}

func (r *memoryJobRepository) FindByEmployer(ctx context.Context, employerID uuid.UUID) ([]model.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	jobs := lo.Filter(lo.Values(r.store.jobs), func(j model.Job, _ int) bool {
		return j.EmployerID != nil && *j.EmployerID == employerID
	})
	sortJobsNewestFirst(jobs)
	return jobs, nil
}

func (r *memoryJobRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	jobs := lo.Filter(lo.Values(r.store.jobs), func(j model.Job, _ int) bool {
		return j.CompanyID != nil && *j.CompanyID == companyID
	})
	sortJobsNewestFirst(jobs)
	return jobs, nil
}

func (r *memoryJobRepository) CountActive(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	n := lo.CountBy(lo.Values(r.store.jobs), func(j model.Job) bool {
		return j.Active()
	})
	return int64(n), nil
}

func (r *memoryJobRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	n := lo.CountBy(lo.Values(r.store.jobs), func(j model.Job) bool {
		return !j.CreatedAt.Before(since)
	})
	return int64(n), nil
}

// --- applications ---

type memoryApplicationRepository struct {
	store *MemoryStore
}

// NewMemoryApplicationRepository builds a map-backed application repository.
func NewMemoryApplicationRepository(store *MemoryStore) ApplicationRepository {
	return &memoryApplicationRepository{store: store}
}

func (r *memoryApplicationRepository) Create(ctx context.Context, application *model.Application) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.applications {
		if existing.JobID == application.JobID && existing.ApplicantID == application.ApplicantID {
			return apperrors.ErrDuplicateApplication
		}
	}
	ensureID(&application.ID)
	ensureTime(&application.AppliedAt)
	application.UpdatedAt = application.AppliedAt
	if application.Status == "" {
		application.Status = model.ApplicationStatusApplied
	}
	r.store.applications[application.ID] = *application
	return nil
}

func (r *memoryApplicationRepository) Update(ctx context.Context, application *model.Application) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	application.UpdatedAt = time.Now()
	r.store.applications[application.ID] = *application
	return nil
}

func (r *memoryApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	application, ok := r.store.applications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &application, nil
}

func (r *memoryApplicationRepository) FindByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	applications := lo.Filter(lo.Values(r.store.applications), func(a model.Application, _ int) bool {
		return a.JobID == jobID
	})
	sortApplicationsOldestFirst(applications)
	return applications, nil
}

func (r *memoryApplicationRepository) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Application, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	applications := lo.Filter(lo.Values(r.store.applications), func(a model.Application, _ int) bool {
		return a.ApplicantID == applicantID
	})
	sortApplicationsOldestFirst(applications)
	return applications, nil
}

func (r *memoryApplicationRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.applications)), nil
}

func (r *memoryApplicationRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	n := lo.CountBy(lo.Values(r.store.applications), func(a model.Application) bool {
		return !a.AppliedAt.Before(since)
	})
	return int64(n), nil
}

func sortApplicationsOldestFirst(applications []model.Application) {
	sort.Slice(applications, func(i, j int) bool {
		if !applications[i].AppliedAt.Equal(applications[j].AppliedAt) {
			return applications[i].AppliedAt.Before(applications[j].AppliedAt)
		}
		return applications[i].ID.String() < applications[j].ID.String()
	})
}

// --- messages ---

type memoryMessageRepository struct {
	store *MemoryStore
}

// NewMemoryMessageRepository builds a map-backed message repository.
func NewMemoryMessageRepository(store *MemoryStore) MessageRepository {
	return &memoryMessageRepository{store: store}
}

func (r *memoryMessageRepository) Create(ctx context.Context, message *model.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ensureID(&message.ID)
	ensureTime(&message.CreatedAt)
	r.store.messages[message.ID] = *message
	return nil
}

func (r *memoryMessageRepository) Update(ctx context.Context, message *model.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.messages[message.ID] = *message
	return nil
}

func (r *memoryMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	message, ok := r.store.messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &message, nil
}

func (r *memoryMessageRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	messages := lo.Filter(lo.Values(r.store.messages), func(m model.Message, _ int) bool {
		return m.SenderID == userID || m.ReceiverID == userID
	})
	sort.Slice(messages, func(i, j int) bool {
		if !messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].CreatedAt.After(messages[j].CreatedAt)
		}
		return messages[i].ID.String() > messages[j].ID.String()
	})
	return messages, nil
}

func (r *memoryMessageRepository) FindConversation(ctx context.Context, userID, otherUserID uuid.UUID) ([]model.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	messages := lo.Filter(lo.Values(r.store.messages), func(m model.Message, _ int) bool {
		return (m.SenderID == userID && m.ReceiverID == otherUserID) ||
			(m.SenderID == otherUserID && m.ReceiverID == userID)
	})
	sort.Slice(messages, func(i, j int) bool {
		if !messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].CreatedAt.Before(messages[j].CreatedAt)
		}
		return messages[i].ID.String() < messages[j].ID.String()
	})
	return messages, nil
}

// --- experiences ---

type memoryExperienceRepository struct {
	store *MemoryStore
}

// NewMemoryExperienceRepository builds a map-backed experience repository.
func NewMemoryExperienceRepository(store *MemoryStore) ExperienceRepository {
	return &memoryExperienceRepository{store: store}
}

func (r *memoryExperienceRepository) Create(ctx context.Context, experience *model.Experience) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ensureID(&experience.ID)
	r.store.experiences[experience.ID] = *experience
	return nil
}

func (r *memoryExperienceRepository) Update(ctx context.Context, experience *model.Experience) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.experiences[experience.ID] = *experience
	return nil
}

func (r *memoryExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.experiences, id)
	return nil
}

func (r *memoryExperienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Experience, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	experience, ok := r.store.experiences[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &experience, nil
}

func (r *memoryExperienceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Experience, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	experiences := lo.Filter(lo.Values(r.store.experiences), func(e model.Experience, _ int) bool {
		return e.UserID == userID
	})
	sort.Slice(experiences, func(i, j int) bool {
		return experiences[i].ID.String() < experiences[j].ID.String()
	})
	return experiences, nil
}

// --- stories ---

type memoryStoryRepository struct {
	store *MemoryStore
}

// NewMemoryStoryRepository builds a map-backed story repository.
func NewMemoryStoryRepository(store *MemoryStore) StoryRepository {
	return &memoryStoryRepository{store: store}
}

func (r *memoryStoryRepository) Create(ctx context.Context, story *model.Story) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ensureID(&story.ID)
	ensureTime(&story.CreatedAt)
	r.store.stories[story.ID] = *story
	return nil
}

func (r *memoryStoryRepository) List(ctx context.Context) ([]model.Story, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	stories := lo.Values(r.store.stories)
	sort.Slice(stories, func(i, j int) bool {
		if !stories[i].CreatedAt.Equal(stories[j].CreatedAt) {
			return stories[i].CreatedAt.After(stories[j].CreatedAt)
		}
		return stories[i].ID.String() > stories[j].ID.String()
	})
	return stories, nil
}
