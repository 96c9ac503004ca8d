package models

import "time"

// DefaultStatus is assigned to a job created without an explicit status.
const DefaultStatus = "Applied"

// Job represents a single tracked job application, owned by one account.
type Job struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	Status    string    `json:"status"` // free-form, e.g. "Applied", "Interviewing", "Offer", "Rejected"
	Link      string    `json:"link,omitempty"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
	OwnerID   string    `json:"ownerId"`
}
