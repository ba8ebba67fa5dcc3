package dtos

import "github.com/amirulafiq/kerjago/internal/models"

// JobPatch is the partial-update body for PUT /api/jobs. Every field is
// a pointer so the handler can tell "absent" from "set to zero": absent
// fields keep their stored values (shallow merge).
type JobPatch struct {
	Title            *string   `json:"title"`
	Category         *string   `json:"category"`
	OtherCategory    *string   `json:"otherCategory"`
	Description      *string   `json:"description"`
	Responsibilities *[]string `json:"responsibilities"`

	Location            *string `json:"location"`
	IsRemote            *bool   `json:"isRemote"`
	StartDateTime       *string `json:"startDateTime"`
	EndDateTime         *string `json:"endDateTime"`
	IsFlexibleTiming    *bool   `json:"isFlexibleTiming"`
	Duration            *string `json:"duration"`
	ScheduleDescription *string `json:"scheduleDescription"`

	PayRateAmount      *float64 `json:"payRateAmount"`
	PayRateDescription *string  `json:"payRateDescription"`
	Perks              *string  `json:"perks"`
	SpecialNotes       *string  `json:"specialNotes"`

	RequiredSkills         *string `json:"requiredSkills"`
	Languages              *string `json:"languages"`
	DressCode              *string `json:"dressCode"`
	AdditionalRequirements *string `json:"additionalRequirements"`

	ContactPerson *models.ContactPerson `json:"contactPerson"`

	VisibilityDuration *string                         `json:"visibilityDuration"`
	Notifications      *models.NotificationPreferences `json:"notifications"`

	// Status changes ride along with the patch but are checked against
	// the transition table before Apply runs.
	Status *models.JobStatus `json:"status"`
}

// Apply merges the set fields onto the job draft. Status is deliberately
// not applied here; the caller validates and assigns it.
func (p *JobPatch) Apply(j *models.Job) {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Category != nil {
		j.Category = *p.Category
	}
	if p.OtherCategory != nil {
		j.OtherCategory = *p.OtherCategory
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Responsibilities != nil {
		j.Responsibilities = *p.Responsibilities
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.IsRemote != nil {
		j.IsRemote = *p.IsRemote
	}
	if p.StartDateTime != nil {
		j.StartDateTime = *p.StartDateTime
	}
	if p.EndDateTime != nil {
		j.EndDateTime = *p.EndDateTime
	}
	if p.IsFlexibleTiming != nil {
		j.IsFlexibleTiming = *p.IsFlexibleTiming
	}
	if p.Duration != nil {
		j.Duration = *p.Duration
	}
	if p.ScheduleDescription != nil {
		j.ScheduleDescription = *p.ScheduleDescription
	}
	if p.PayRateAmount != nil {
		j.PayRateAmount = *p.PayRateAmount
	}
	if p.PayRateDescription != nil {
		j.PayRateDescription = *p.PayRateDescription
	}
	if p.Perks != nil {
		j.Perks = *p.Perks
	}
	if p.SpecialNotes != nil {
		j.SpecialNotes = *p.SpecialNotes
	}
	if p.RequiredSkills != nil {
		j.RequiredSkills = *p.RequiredSkills
	}
	if p.Languages != nil {
		j.Languages = *p.Languages
	}
	if p.DressCode != nil {
		j.DressCode = *p.DressCode
	}
	if p.AdditionalRequirements != nil {
		j.AdditionalRequirements = *p.AdditionalRequirements
	}
	if p.ContactPerson != nil {
		j.ContactPerson = p.ContactPerson
	}
	if p.VisibilityDuration != nil {
		j.VisibilityDuration = *p.VisibilityDuration
	}
	if p.Notifications != nil {
		j.Notifications = *p.Notifications
	}
}

// ApplicantStatusRequest moves an applicant to a new review stage.
type ApplicantStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}

// ProfileRequest is the POST /api/profile body: the business details
// plus the contact person completing the profile.
type ProfileRequest struct {
	BusinessID          string `json:"businessId"`
	BusinessName        string `json:"businessName" binding:"required"`
	BusinessAddress     string `json:"businessAddress"`
	BusinessDescription string `json:"businessDescription"`
	BusinessLogo        string `json:"businessLogo"`

	ContactPerson struct {
		Name       string `json:"name" binding:"required"`
		Role       string `json:"role"`
		Department string `json:"department"`
	} `json:"contactPerson" binding:"required"`
}

// ErrorResponse is the uniform error body: "error" names what failed,
// "message" carries detail when there is any.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
