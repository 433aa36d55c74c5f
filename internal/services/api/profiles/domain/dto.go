// Package domain holds DTOs for profile http and service contracts
package domain

// UserSummary is the profile owner block
type UserSummary struct {
	ID       string `json:"id" example:"2b7c9f0e-65cf-44dd-9f10-4f2b9a7c0d11"`
	Username string `json:"username" example:"lan.pham"`
	FullName string `json:"full_name" example:"Pham Thi Lan"`
	Email    string `json:"email" example:"lan.pham@example.org"`
	JoinedAt string `json:"joined_at" example:"2024-02-11"`
}

// ActivityRef is one owned record inside a profile
type ActivityRef struct {
	ID        string `json:"id" example:"7f0a2c4d-18be-4b61-a7fb-0c6f6b1f4e02"`
	Name      string `json:"name" example:"Bamboo flute workshop"`
	Views     int64  `json:"views" example:"87"`
	CreatedAt string `json:"created_at" example:"2025-03-02"`
}

// Activities groups owned records per content domain
type Activities struct {
	Traditions         []ActivityRef `json:"traditions"`
	PublicPolicies     []ActivityRef `json:"public_policies"`
	EthnicGroups       []ActivityRef `json:"ethnic_groups"`
	CreativeActivities []ActivityRef `json:"creative_activities"`
}

// Breakdown carries the raw per domain activity counts
type Breakdown struct {
	Traditions         int `json:"traditions" example:"2"`
	PublicPolicies     int `json:"public_policies" example:"0"`
	EthnicGroups       int `json:"ethnic_groups" example:"1"`
	CreativeActivities int `json:"creative_activities" example:"3"`
}

// MonthlyBucket is one month of the activity trend
type MonthlyBucket struct {
	Label string `json:"label" example:"Jan 24"`
	Count int    `json:"count" example:"2"`
}

// Stats summarizes the profile activity
type Stats struct {
	TotalActivities   int             `json:"total_activities" example:"6"`
	ActivityBreakdown Breakdown       `json:"activity_breakdown"`
	MonthlyActivities []MonthlyBucket `json:"monthly_activities"`
}

// Profile is the full per user report
type Profile struct {
	User       UserSummary `json:"user"`
	Activities Activities  `json:"activities"`
	Statistics Stats       `json:"statistics"`
}
