package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "localhire/internal/errors"
	"localhire/internal/model"
)

// backendRepos bundles one backend's repositories for the contract suite.
// Both adapters must pass every test in this file with identical results.
type backendRepos struct {
	users        UserRepository
	companies    CompanyRepository
	jobs         JobRepository
	applications ApplicationRepository
	messages     MessageRepository
	experiences  ExperienceRepository
	stories      StoryRepository
}

func newSQLiteBackend(t *testing.T) backendRepos {
	t.Helper()
	// A named shared in-memory database keeps every pooled connection on the
	// same data; the uuid isolates tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Job{},
		&model.Application{},
		&model.Message{},
		&model.Experience{},
		&model.Story{},
	))
	return backendRepos{
		users:        NewUserRepository(db),
		companies:    NewCompanyRepository(db),
		jobs:         NewJobRepository(db),
		applications: NewApplicationRepository(db),
		messages:     NewMessageRepository(db),
		experiences:  NewExperienceRepository(db),
		stories:      NewStoryRepository(db),
	}
}

func newMemoryBackend(t *testing.T) backendRepos {
	t.Helper()
	store := NewMemoryStore()
	return backendRepos{
		users:        NewMemoryUserRepository(store),
		companies:    NewMemoryCompanyRepository(store),
		jobs:         NewMemoryJobRepository(store),
		applications: NewMemoryApplicationRepository(store),
		messages:     NewMemoryMessageRepository(store),
		experiences:  NewMemoryExperienceRepository(store),
		stories:      NewMemoryStoryRepository(store),
	}
}

func forEachBackend(t *testing.T, test func(t *testing.T, repos backendRepos)) {
	t.Run("sqlite", func(t *testing.T) {
		test(t, newSQLiteBackend(t))
	})
	t.Run("memory", func(t *testing.T) {
		test(t, newMemoryBackend(t))
	})
}

func boolPtr(v bool) *bool { return &v }

// seedJob inserts a job with an explicit creation time so ordering is under
// the test's control.
func seedJob(t *testing.T, repos backendRepos, job model.Job, createdAt time.Time) model.Job {
	t.Helper()
	job.CreatedAt = createdAt
	require.NoError(t, repos.jobs.Create(context.Background(), &job))
	return job
}

func jobTitles(jobs []model.Job) []string {
	titles := make([]string, 0, len(jobs))
	for _, j := range jobs {
		titles = append(titles, j.Title)
	}
	return titles
}

func TestJobFind_ExcludesInactive(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		seedJob(t, repos, model.Job{Title: "Live", Description: "d", Location: "Pune", JobType: model.JobTypeFullTime}, now)
		seedJob(t, repos, model.Job{Title: "Closed", Description: "d", Location: "Pune", JobType: model.JobTypeFullTime, IsActive: boolPtr(false)}, now.Add(time.Minute))

		jobs, err := repos.jobs.Find(ctx, JobFilters{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Live"}, jobTitles(jobs))

		// Inactive jobs stay fetchable by id.
		count, err := repos.jobs.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestJobFind_NewestFirst(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		seedJob(t, repos, model.Job{Title: "Oldest", Description: "d", Location: "Pune", JobType: model.JobTypeFullTime}, base)
		seedJob(t, repos, model.Job{Title: "Middle", Description: "d", Location: "Pune", JobType: model.JobTypeFullTime}, base.Add(time.Hour))
		seedJob(t, repos, model.Job{Title: "Newest", Description: "d", Location: "Pune", JobType: model.JobTypeFullTime}, base.Add(2*time.Hour))

		jobs, err := repos.jobs.Find(ctx, JobFilters{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Newest", "Middle", "Oldest"}, jobTitles(jobs))
	})
}

func TestJobFind_LocationSubstringCaseInsensitive(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		seedJob(t, repos, model.Job{Title: "Electrician", Description: "wiring", Location: "Pune, Maharashtra", JobType: model.JobTypeFullTime}, now)
		seedJob(t, repos, model.Job{Title: "Designer", Description: "brand work", Location: "Mumbai", JobType: model.JobTypeContract}, now.Add(time.Minute))

		jobs, err := repos.jobs.Find(ctx, JobFilters{Location: "pune"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Electrician"}, jobTitles(jobs))

		jobs, err = repos.jobs.Find(ctx, JobFilters{Location: "MUMBAI"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Designer"}, jobTitles(jobs))
	})
}

func TestJobFind_SentinelsDisableFilter(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		seedJob(t, repos, model.Job{Title: "A", Description: "d", Location: "Pune", JobType: model.JobTypeFullTime}, now)
		seedJob(t, repos, model.Job{Title: "B", Description: "d", Location: "Mumbai", JobType: model.JobTypeContract}, now.Add(time.Minute))

		jobs, err := repos.jobs.Find(ctx, JobFilters{Location: SentinelAllLocations, JobType: SentinelAllJobs})
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})
}

func TestJobFind_JobTypeExactMatch(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		seedJob(t, repos, model.Job{Title: "FT", Description: "d", Location: "Pune", JobType: model.JobTypeFullTime}, now)
		seedJob(t, repos, model.Job{Title: "PT", Description: "d", Location: "Pune", JobType: model.JobTypePartTime}, now.Add(time.Minute))

		jobs, err := repos.jobs.Find(ctx, JobFilters{JobType: string(model.JobTypePartTime)})
		require.NoError(t, err)
		assert.Equal(t, []string{"PT"}, jobTitles(jobs))

		// "full" is not an exact job type and matches nothing.
		jobs, err = repos.jobs.Find(ctx, JobFilters{JobType: "full"})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestJobFind_SearchTitleAndDescriptionOnly(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		seedJob(t, repos, model.Job{Title: "Senior Electrician", Description: "residential wiring", Location: "Pune", JobType: model.JobTypeFullTime}, now)
		seedJob(t, repos, model.Job{Title: "Plumber", Description: "pipe repair and fittings", Location: "Pune", JobType: model.JobTypeFullTime}, now.Add(time.Minute))
		seedJob(t, repos, model.Job{Title: "Handyman", Description: "general work", Location: "Pune", JobType: model.JobTypeFullTime,
			Skills: []string{"Wiring"}}, now.Add(2*time.Minute))

		jobs, err := repos.jobs.Find(ctx, JobFilters{Search: "wiring"})
		require.NoError(t, err)
		// Skill text alone does not satisfy the search term.
		assert.Equal(t, []string{"Senior Electrician"}, jobTitles(jobs))

		jobs, err = repos.jobs.Find(ctx, JobFilters{Search: "PIPE"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Plumber"}, jobTitles(jobs))
	})
}

func TestJobFind_SkillsAnyMatch(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		seedJob(t, repos, model.Job{Title: "Frontend", Description: "d", Location: "Pune", JobType: model.JobTypeFullTime,
			Skills: []string{"React", "CSS"}}, now)
		seedJob(t, repos, model.Job{Title: "Backend", Description: "d", Location: "Pune", JobType: model.JobTypeFullTime,
			Skills: []string{"Go", "Postgres"}}, now.Add(time.Minute))

		// Any-of: one matching skill is enough, case-insensitively.
		jobs, err := repos.jobs.Find(ctx, JobFilters{Skills: []string{"react", "kubernetes"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"Frontend"}, jobTitles(jobs))

		jobs, err = repos.jobs.Find(ctx, JobFilters{Skills: []string{"nonexistent"}})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestJobFind_FiltersNarrowResults(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		for i := 0; i < 5; i++ {
			location := "Pune"
			if i%2 == 1 {
				location = "Mumbai"
			}
			seedJob(t, repos, model.Job{
				Title:       fmt.Sprintf("Job %d", i),
				Description: "d",
				Location:    location,
				JobType:     model.JobTypeFullTime,
			}, base.Add(time.Duration(i)*time.Minute))
		}

		all, err := repos.jobs.Find(ctx, JobFilters{})
		require.NoError(t, err)
		narrowed, err := repos.jobs.Find(ctx, JobFilters{Location: "Pune"})
		require.NoError(t, err)

		// Adding a filter never grows the result set, and every narrowed
		// result appears in the unfiltered listing.
		assert.LessOrEqual(t, len(narrowed), len(all))
		allIDs := make(map[uuid.UUID]bool, len(all))
		for _, j := range all {
			allIDs[j.ID] = true
		}
		for _, j := range narrowed {
			assert.True(t, allIDs[j.ID])
		}
	})
}

func TestJobFind_RepeatedQueryIsStable(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
		// Same createdAt forces the id tie-break.
		for i := 0; i < 4; i++ {
			seedJob(t, repos, model.Job{Title: fmt.Sprintf("Job %d", i), Description: "d", Location: "Pune", JobType: model.JobTypeFullTime}, base)
		}

		first, err := repos.jobs.Find(ctx, JobFilters{})
		require.NoError(t, err)
		second, err := repos.jobs.Find(ctx, JobFilters{})
		require.NoError(t, err)
		assert.Equal(t, jobTitles(first), jobTitles(second))
	})
}

func TestJobFind_LikeMetacharactersMatchLiterally(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		seedJob(t, repos, model.Job{Title: "Sales Lead", Description: "d", Location: "Pune",
			JobType: model.JobTypeFullTime}, base)
		percent := seedJob(t, repos, model.Job{Title: "100% Remote Support", Description: "covers on_call shifts",
			Location: "Pune", JobType: model.JobTypeFullTime}, base.Add(time.Minute))

		// "%" and "_" in a term are plain characters, not wildcards.
		wildcard, err := repos.jobs.Find(ctx, JobFilters{Search: "%a%"})
		require.NoError(t, err)
		assert.Empty(t, wildcard)

		literalPercent, err := repos.jobs.Find(ctx, JobFilters{Search: "100%"})
		require.NoError(t, err)
		require.Len(t, literalPercent, 1)
		assert.Equal(t, percent.ID, literalPercent[0].ID)

		literalUnderscore, err := repos.jobs.Find(ctx, JobFilters{Search: "on_call"})
		require.NoError(t, err)
		require.Len(t, literalUnderscore, 1)
		assert.Equal(t, percent.ID, literalUnderscore[0].ID)

		byLocation, err := repos.jobs.Find(ctx, JobFilters{Location: "_"})
		require.NoError(t, err)
		assert.Empty(t, byLocation)
	})
}

func TestJobFind_TwoCityListingScenario(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		j1 := seedJob(t, repos, model.Job{Title: "Electrician Wanted", Description: "d", Location: "Pune",
			JobType: model.JobTypeFullTime, Skills: []string{"Electrician"}}, base)
		j2 := seedJob(t, repos, model.Job{Title: "Designer Wanted", Description: "d", Location: "Mumbai",
			JobType: model.JobTypePartTime, Skills: []string{"Design"}}, base.Add(time.Hour))

		byLocation, err := repos.jobs.Find(ctx, JobFilters{Location: "pune"})
		require.NoError(t, err)
		require.Len(t, byLocation, 1)
		assert.Equal(t, j1.ID, byLocation[0].ID)

		bySkill, err := repos.jobs.Find(ctx, JobFilters{Skills: []string{"elect"}})
		require.NoError(t, err)
		require.Len(t, bySkill, 1)
		assert.Equal(t, j1.ID, bySkill[0].ID)

		byType, err := repos.jobs.Find(ctx, JobFilters{JobType: string(model.JobTypeFullTime)})
		require.NoError(t, err)
		require.Len(t, byType, 1)
		assert.Equal(t, j1.ID, byType[0].ID)

		all, err := repos.jobs.Find(ctx, JobFilters{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, j2.ID, all[0].ID)
		assert.Equal(t, j1.ID, all[1].ID)
	})
}

func TestApplicationCreate_DuplicateRejected(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		jobID := uuid.New()
		applicantID := uuid.New()

		first := model.Application{JobID: jobID, ApplicantID: applicantID}
		require.NoError(t, repos.applications.Create(ctx, &first))

		second := model.Application{JobID: jobID, ApplicantID: applicantID}
		err := repos.applications.Create(ctx, &second)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)

		// Same applicant, different job is fine.
		third := model.Application{JobID: uuid.New(), ApplicantID: applicantID}
		assert.NoError(t, repos.applications.Create(ctx, &third))

		// Different applicant, same job is fine.
		fourth := model.Application{JobID: jobID, ApplicantID: uuid.New()}
		assert.NoError(t, repos.applications.Create(ctx, &fourth))

		applications, err := repos.applications.FindByApplicant(ctx, applicantID)
		require.NoError(t, err)
		assert.Len(t, applications, 2)

		forJob, err := repos.applications.FindByJob(ctx, jobID)
		require.NoError(t, err)
		assert.Len(t, forJob, 2)
	})
}

func TestApplicationFind_OldestFirst(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		jobID := uuid.New()
		base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		for i := 0; i < 3; i++ {
			app := model.Application{
				JobID:       jobID,
				ApplicantID: uuid.New(),
				Notes:       fmt.Sprintf("applicant %d", i),
				AppliedAt:   base.Add(time.Duration(2-i) * time.Hour),
			}
			require.NoError(t, repos.applications.Create(ctx, &app))
		}

		applications, err := repos.applications.FindByJob(ctx, jobID)
		require.NoError(t, err)
		require.Len(t, applications, 3)
		assert.Equal(t, "applicant 2", applications[0].Notes)
		assert.Equal(t, "applicant 0", applications[2].Notes)
	})
}

func TestMessageConversation_SymmetricAndOrdered(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		alice := uuid.New()
		bob := uuid.New()
		carol := uuid.New()
		base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		send := func(from, to uuid.UUID, content string, offset time.Duration) {
			msg := model.Message{SenderID: from, ReceiverID: to, Content: content, CreatedAt: base.Add(offset)}
			require.NoError(t, repos.messages.Create(ctx, &msg))
		}
		send(alice, bob, "hello", 0)
		send(bob, alice, "hi back", time.Minute)
		send(alice, bob, "free this week?", 2*time.Minute)
		send(carol, alice, "unrelated thread", 3*time.Minute)

		// Thread ordering is oldest first and identical from either side.
		fromAlice, err := repos.messages.FindConversation(ctx, alice, bob)
		require.NoError(t, err)
		fromBob, err := repos.messages.FindConversation(ctx, bob, alice)
		require.NoError(t, err)
		require.Len(t, fromAlice, 3)
		assert.Equal(t, fromAlice, fromBob)
		assert.Equal(t, "hello", fromAlice[0].Content)
		assert.Equal(t, "free this week?", fromAlice[2].Content)

		// Inbox covers every conversation, newest first.
		inbox, err := repos.messages.FindByUser(ctx, alice)
		require.NoError(t, err)
		require.Len(t, inbox, 4)
		assert.Equal(t, "unrelated thread", inbox[0].Content)
	})
}

func TestUserFindByEmail(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		user := model.User{Email: "ravi@example.com", PasswordHash: "x", FirstName: "Ravi", LastName: "Kumar", UserType: model.UserTypeJobSeeker}
		require.NoError(t, repos.users.Create(ctx, &user))
		assert.NotEqual(t, uuid.Nil, user.ID)

		found, err := repos.users.FindByEmail(ctx, "ravi@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		_, err = repos.users.FindByEmail(ctx, "missing@example.com")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		_, err = repos.users.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestCompanyFindByOwner(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		owner := uuid.New()

		mine := model.Company{Name: "BrightSpark", OwnerID: &owner}
		require.NoError(t, repos.companies.Create(ctx, &mine))
		other := uuid.New()
		theirs := model.Company{Name: "Other Co", OwnerID: &other}
		require.NoError(t, repos.companies.Create(ctx, &theirs))
		unowned := model.Company{Name: "Unowned"}
		require.NoError(t, repos.companies.Create(ctx, &unowned))

		companies, err := repos.companies.FindByOwner(ctx, owner)
		require.NoError(t, err)
		require.Len(t, companies, 1)
		assert.Equal(t, "BrightSpark", companies[0].Name)
	})
}

func TestExperienceDelete(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		userID := uuid.New()

		exp := model.Experience{UserID: userID, Title: "Electrician", Company: "BrightSpark", StartDate: "2019-01"}
		require.NoError(t, repos.experiences.Create(ctx, &exp))

		require.NoError(t, repos.experiences.Delete(ctx, exp.ID))

		_, err := repos.experiences.FindByID(ctx, exp.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		remaining, err := repos.experiences.FindByUser(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})
}

func TestStoryList_NewestFirst(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		for i := 0; i < 3; i++ {
			story := model.Story{Name: fmt.Sprintf("Author %d", i), Email: fmt.Sprintf("a%d@example.com", i), Title: "t", Content: "c", CreatedAt: base.Add(time.Duration(i) * time.Hour)}
			require.NoError(t, repos.stories.Create(ctx, &story))
		}

		stories, err := repos.stories.List(ctx)
		require.NoError(t, err)
		require.Len(t, stories, 3)
		assert.Equal(t, "Author 2", stories[0].Name)
		assert.Equal(t, "Author 0", stories[2].Name)
	})
}

func TestAdminCounts(t *testing.T) {
	forEachBackend(t, func(t *testing.T, repos backendRepos) {
		ctx := context.Background()
		base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

		old := model.User{Email: "old@example.com", PasswordHash: "x", FirstName: "Old", LastName: "User", UserType: model.UserTypeJobSeeker, CreatedAt: base.AddDate(0, 0, -30)}
		require.NoError(t, repos.users.Create(ctx, &old))
		recent := model.User{Email: "new@example.com", PasswordHash: "x", FirstName: "New", LastName: "User", UserType: model.UserTypeJobSeeker, CreatedAt: base.AddDate(0, 0, -1)}
		require.NoError(t, repos.users.Create(ctx, &recent))

		total, err := repos.users.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		since, err := repos.users.CountSince(ctx, base.AddDate(0, 0, -7))
		require.NoError(t, err)
		assert.Equal(t, int64(1), since)
	})
}
