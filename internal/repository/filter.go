package repository

import (
	"sort"
	"strings"

	"localhire/internal/model"
)

// Frontend sentinel values meaning "no filter". The storage layer holds the
// sentinel check so every caller gets the same semantics on both backends.
const (
	SentinelAllLocations = "All Locations"
	SentinelAllJobs      = "All Jobs"
)

// JobFilters narrows a job listing. A zero-value field (or sentinel) is a
// no-op. Categories combine with AND; the skills list matches with ANY.
type JobFilters struct {
	Location string
	Skills   []string
	JobType  string
	Search   string
}

// LocationFilter returns the effective location filter, if any.
func (f JobFilters) LocationFilter() (string, bool) {
	if f.Location == "" || f.Location == SentinelAllLocations {
		return "", false
	}
	return f.Location, true
}

// JobTypeFilter returns the effective job-type filter, if any.
func (f JobFilters) JobTypeFilter() (string, bool) {
	if f.JobType == "" || f.JobType == SentinelAllJobs {
		return "", false
	}
	return f.JobType, true
}

// SearchFilter returns the effective search term, if any.
func (f JobFilters) SearchFilter() (string, bool) {
	if f.Search == "" {
		return "", false
	}
	return f.Search, true
}

// containsFold reports whether substr occurs in s, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike quotes LIKE metacharacters so filter terms match literally.
// Queries using it must carry an ESCAPE '\' clause. Without this the SQL
// backend would treat "%" and "_" as wildcards while the in-memory backend
// matches them as plain characters.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// jobMatchesSkills reports whether any requested skill is a case-insensitive
// substring of any of the job's skills. An empty request matches everything.
// This is deliberately ANY-of, not ALL-of: exact set intersection would
// under-match (a job tagged "React" must match a filter for "react").
func jobMatchesSkills(jobSkills, requested []string) bool {
	if len(requested) == 0 {
		return true
	}
	for _, want := range requested {
		for _, have := range jobSkills {
			if containsFold(have, want) {
				return true
			}
		}
	}
	return false
}

// jobMatchesSearch reports whether the search term occurs in the job's title
// or description. Skills are intentionally not searched.
func jobMatchesSearch(job *model.Job, search string) bool {
	return containsFold(job.Title, search) || containsFold(job.Description, search)
}

// jobMatches evaluates the full filter predicate against one job, including
// the always-on isActive check. The in-memory backend runs this directly;
// the GORM backend pushes everything except skills into SQL and must stay
// semantically equivalent.
func jobMatches(job *model.Job, f JobFilters) bool {
	if !job.Active() {
		return false
	}
	if loc, ok := f.LocationFilter(); ok && !containsFold(job.Location, loc) {
		return false
	}
	if jt, ok := f.JobTypeFilter(); ok && string(job.JobType) != jt {
		return false
	}
	if search, ok := f.SearchFilter(); ok && !jobMatchesSearch(job, search) {
		return false
	}
	return jobMatchesSkills(job.Skills, f.Skills)
}

// sortJobsNewestFirst orders jobs by createdAt descending, ties broken by id
// so results are deterministic.
func sortJobsNewestFirst(jobs []model.Job) {
	sort.Slice(jobs, func(i, j int) bool {
		if !jobs[i].CreatedAt.Equal(jobs[j].CreatedAt) {
			return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
		}
		return jobs[i].ID.String() > jobs[j].ID.String()
	})
}
