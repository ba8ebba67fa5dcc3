// Package stores holds process-wide observable application state. Each
// cell is a single shared value with synchronous reads and change
// notification; writers replace the whole value or patch it through an
// updater. Set is last-write-wins; Update applies its patch atomically,
// so writers on different fields of the same slice can run concurrently.
package stores

import (
	"sync"

	"github.com/amirulafiq/kerjago/internal/models"
)

// Atom is an observable value cell. Set replaces the value and notifies
// every subscriber synchronously, in subscription order.
type Atom[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   map[int]func(T)
}

func NewAtom[T any](initial T) *Atom[T] {
	return &Atom[T]{value: initial, subs: make(map[int]func(T))}
}

func (a *Atom[T]) Get() T {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

func (a *Atom[T]) Set(v T) {
	a.mu.Lock()
	a.value = v
	// Snapshot subscribers so callbacks can touch the atom without
	// deadlocking.
	subs := make([]func(T), 0, len(a.subs))
	for _, fn := range a.subs {
		subs = append(subs, fn)
	}
	a.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Update patches the value through fn, the map-store style of write:
// read the current value, change the fields you own, write it back.
// The read-modify-write is a single critical section, so concurrent
// patches to different fields never lose each other.
func (a *Atom[T]) Update(fn func(T) T) {
	a.mu.Lock()
	v := fn(a.value)
	a.value = v
	subs := make([]func(T), 0, len(a.subs))
	for _, fn := range a.subs {
		subs = append(subs, fn)
	}
	a.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers fn for change notifications and returns an
// unsubscribe func. The current value is not replayed; call Get for it.
func (a *Atom[T]) Subscribe(fn func(T)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextID
	a.nextID++
	a.subs[id] = fn

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subs, id)
	}
}

// JobFilters narrows the jobs list view.
type JobFilters struct {
	Search   string           `json:"search"`
	Category string           `json:"category"`
	Status   models.JobStatus `json:"status"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// JobLoading flags one in-flight operation per kind.
type JobLoading struct {
	List    bool `json:"list"`
	Details bool `json:"details"`
	Create  bool `json:"create"`
	Update  bool `json:"update"`
	Delete  bool `json:"delete"`
}

type ApplicantFilters struct {
	Search string                   `json:"search"`
	Status models.ApplicationStatus `json:"status"`
	JobID  string                   `json:"jobId"`
}

type ApplicantLoading struct {
	List    bool `json:"list"`
	Details bool `json:"details"`
	Update  bool `json:"update"`
}

// AppState aggregates every state slice the views consume. It is built
// once at startup and passed down explicitly; nothing in this package
// is a package-level singleton.
type AppState struct {
	Jobs        *Atom[[]models.Job]
	SelectedJob *Atom[*models.Job]
	JobFilters  *Atom[JobFilters]
	JobLoading  *Atom[JobLoading]

	Applicants        *Atom[[]models.Applicant]
	SelectedApplicant *Atom[*models.Applicant]
	ApplicantFilters  *Atom[ApplicantFilters]
	ApplicantLoading  *Atom[ApplicantLoading]

	Profile *Atom[models.BusinessProfile]
}

func NewAppState() *AppState {
	return &AppState{
		Jobs:        NewAtom([]models.Job(nil)),
		SelectedJob: NewAtom[*models.Job](nil),
		JobFilters:  NewAtom(JobFilters{Page: 1, Limit: 10}),
		JobLoading:  NewAtom(JobLoading{}),

		Applicants:        NewAtom([]models.Applicant(nil)),
		SelectedApplicant: NewAtom[*models.Applicant](nil),
		ApplicantFilters:  NewAtom(ApplicantFilters{}),
		ApplicantLoading:  NewAtom(ApplicantLoading{}),

		Profile: NewAtom(models.BusinessProfile{}),
	}
}
