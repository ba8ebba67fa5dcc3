package models

// JobStatus labels a posting's lifecycle stage.
type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
)

// jobTransitions is the legal move set. A closed job is terminal.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusDraft:     {JobStatusPublished, JobStatusClosed},
	JobStatusPublished: {JobStatusClosed},
	JobStatusClosed:    {},
}

func (s JobStatus) Valid() bool {
	_, ok := jobTransitions[s]
	return ok
}

// CanTransition reports whether moving from s to next is allowed.
// Staying on the same status is always allowed (updates that don't
// touch the status resubmit it unchanged).
func (s JobStatus) CanTransition(next JobStatus) bool {
	if s == next {
		return true
	}
	for _, t := range jobTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// ApplicationStatus labels an applicant's review stage.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// An applicant must be shortlisted before being accepted; rejection is
// allowed from any non-terminal stage.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:     {ApplicationShortlisted, ApplicationRejected},
	ApplicationShortlisted: {ApplicationAccepted, ApplicationRejected},
	ApplicationAccepted:    {},
	ApplicationRejected:    {},
}

func (s ApplicationStatus) Valid() bool {
	_, ok := applicationTransitions[s]
	return ok
}

func (s ApplicationStatus) CanTransition(next ApplicationStatus) bool {
	if s == next {
		return true
	}
	for _, t := range applicationTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
