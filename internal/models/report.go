package models

import "time"

// UserTypeStat is a user count per user type. Admin accounts are excluded
// from user statistics.
type UserTypeStat struct {
	UserType string `json:"user_type" db:"user_type"`
	Count    int64  `json:"count" db:"count"`
}

// JobStat is a per-status job aggregate. Statuses with no jobs are omitted
// rather than zero-filled; the average is taken over jobs with a budget.
type JobStat struct {
	Status    string  `json:"status" db:"status"`
	Count     int64   `json:"count" db:"count"`
	AvgBudget float64 `json:"avg_budget" db:"avg_budget"`
}

// ApplicationStat is a per-status application aggregate.
type ApplicationStat struct {
	Status          string  `json:"status" db:"status"`
	Count           int64   `json:"count" db:"count"`
	AvgProposedRate float64 `json:"avg_proposed_rate" db:"avg_proposed_rate"`
}

// Activity event types surfaced in the recent-activity feed.
const (
	ActivityJobPosted            = "job_posted"
	ActivityApplicationSubmitted = "application_submitted"
	ActivityNewMessage           = "new_message"
)

// ActivityItem is one entry of the recent-activity feed: a job posting or
// an application submission, with the acting user's name.
type ActivityItem struct {
	EventType  string    `json:"event_type" db:"event_type"`
	Username   string    `json:"username" db:"username"`
	Title      string    `json:"title" db:"title"` // Title of the job involved
	OccurredAt time.Time `json:"occurred_at" db:"occurred_at"`
}

// PopularJob is a job with its application count. Jobs with no applications
// are included with a count of zero.
type PopularJob struct {
	JobID             int64  `json:"job_id" db:"job_id"`
	Title             string `json:"title" db:"title"`
	RecruiterUsername string `json:"recruiter_username" db:"recruiter_username"`
	ApplicationCount  int64  `json:"application_count" db:"application_count"`
}

// DashboardTotals holds the overall entity counts shown on the admin
// dashboard. Users excludes admin accounts.
type DashboardTotals struct {
	Users        int64 `json:"users" db:"users"`
	Jobs         int64 `json:"jobs" db:"jobs"`
	Applications int64 `json:"applications" db:"applications"`
	Messages     int64 `json:"messages" db:"messages"`
}

// AdminDashboard aggregates every admin report into one response. All parts
// are computed within a single request transaction so the counts are
// mutually consistent.
type AdminDashboard struct {
	UserStats         []UserTypeStat         `json:"user_stats"`
	JobStats          []JobStat              `json:"job_stats"`
	ApplicationStats  []ApplicationStat      `json:"application_stats"`
	RecentActivity    []ActivityItem         `json:"recent_activity"`
	PopularJobs       []PopularJob           `json:"popular_jobs"`
	Totals            DashboardTotals        `json:"totals"`
	RecentValidations []EmailValidationLogDB `json:"recent_validations"`
}
