package models

import (
	"time"
)

// JobFormState is the mutable draft of a job posting before it is
// persisted. Field names mirror the JSON wire format used by the
// frontend wizard. Free-text fields that are optional in practice keep
// the empty string as their "absent" value; ContactPerson is a pointer
// because the whole record may be omitted.
type JobFormState struct {
	// Basic Info
	Title            string   `json:"title" gorm:"not null" validate:"required"`
	Category         string   `json:"category" validate:"required"`
	OtherCategory    string   `json:"otherCategory" validate:"required_if=Category other"`
	Description      string   `json:"description" gorm:"type:text" validate:"required"`
	Responsibilities []string `json:"responsibilities" gorm:"serializer:json"`

	// Location & Schedule
	Location            string `json:"location"`
	IsRemote            bool   `json:"isRemote"`
	StartDateTime       string `json:"startDateTime"`
	EndDateTime         string `json:"endDateTime"`
	IsFlexibleTiming    bool   `json:"isFlexibleTiming"`
	Duration            string `json:"duration"`
	ScheduleDescription string `json:"scheduleDescription"`

	// Compensation
	PayRateAmount      float64 `json:"payRateAmount" validate:"gte=0"`
	PayRateDescription string  `json:"payRateDescription" validate:"required"`
	Perks              string  `json:"perks"`
	SpecialNotes       string  `json:"specialNotes"`

	// Requirements (all optional in practice)
	RequiredSkills         string `json:"requiredSkills"`
	Languages              string `json:"languages"`
	DressCode              string `json:"dressCode"`
	AdditionalRequirements string `json:"additionalRequirements"`

	// Additional Details
	ContactPerson *ContactPerson `json:"contactPerson,omitempty" gorm:"serializer:json"`

	// Visibility
	VisibilityDuration string                  `json:"visibilityDuration" validate:"required"`
	Notifications      NotificationPreferences `json:"notifications" gorm:"serializer:json"`
}

type ContactPerson struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// NotificationPreferences holds three independent flags; none implies
// the others.
type NotificationPreferences struct {
	NewApplication  bool `json:"newApplication"`
	MessageResponse bool `json:"messageResponse"`
	JobExpiry       bool `json:"jobExpiry"`
}

type JobStats struct {
	Views       int `json:"views"`
	Applicants  int `json:"applicants"`
	Shortlisted int `json:"shortlisted"`
}

// Job is a persisted posting. ID is assigned exactly once by the
// repository; the client never supplies it. UpdatedAt strictly
// increases on every successful mutation.
type Job struct {
	JobFormState `gorm:"embedded"`

	ID        string    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Status    JobStatus `json:"status" gorm:"default:'draft'"`
	Stats     *JobStats `json:"stats,omitempty" gorm:"serializer:json"`
}

type Attachment struct {
	Name string         `json:"name"`
	URL  string         `json:"url"`
	Type AttachmentKind `json:"type"`
}

type AttachmentKind string

const (
	AttachmentImage    AttachmentKind = "image"
	AttachmentDocument AttachmentKind = "document"
)

// Applicant is a candidate's application to a job.
type Applicant struct {
	ID        string            `json:"id" gorm:"primaryKey"`
	JobID     string            `json:"jobId" gorm:"index"`
	Name      string            `json:"name"`
	Status    ApplicationStatus `json:"status" gorm:"default:'pending'"`
	AppliedAt time.Time         `json:"appliedAt"`

	Age          int          `json:"age"`
	Education    string       `json:"education"`
	Skills       string       `json:"skills"`
	Languages    string       `json:"languages"`
	Introduction string       `json:"introduction" gorm:"type:text"`
	Experience   string       `json:"experience" gorm:"type:text"`
	Attachments  []Attachment `json:"attachments,omitempty" gorm:"serializer:json"`
}

// BusinessProfile is the employer-facing completeness record shown on
// the profile page.
type BusinessProfile struct {
	IsComplete          bool            `json:"isComplete"`
	BusinessName        string          `json:"businessName"`
	BusinessLogo        string          `json:"businessLogo,omitempty"`
	BusinessDescription string          `json:"businessDescription,omitempty"`
	ContactPerson       *ProfileContact `json:"contactPerson,omitempty"`
}

type ProfileContact struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}
