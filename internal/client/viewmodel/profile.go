// Package viewmodel holds the UI-bound state of the profilehub screens.
//
// View-models issue remote calls sequentially and never hold their lock
// across one; accessors return copies so a renderer on another goroutine
// can read them at any time.
package viewmodel

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/ahmetcoskunkizilkaya/profilehub/internal/client/records"
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/geocode"
)

var ErrUnknownRecord = errors.New("record is not in the current list")

// Notifier shows a blocking alert to the user.
type Notifier interface {
	Alert(title, message string)
}

// Store is the record store the profile screen drives; *records.Store implements it.
type Store interface {
	List(ctx context.Context) ([]records.Record, error)
	Create(ctx context.Context, f records.Fields) (string, error)
	Update(ctx context.Context, id string, f records.Fields) error
	Delete(ctx context.Context, id string) error
}

// Resolver turns a coordinate into display text; *geocode.Resolver implements it.
type Resolver interface {
	Resolve(ctx context.Context, lat, lng float64) string
}

type Variant int

const (
	// Basic submits name, email and age only.
	Basic Variant = iota
	// LocationEnabled also requires a location picked on the map.
	LocationEnabled
)

// Mode is Create when EditingID is empty, Edit(EditingID) otherwise.
type Mode struct {
	EditingID string
}

func (m Mode) Editing() bool { return m.EditingID != "" }

type Form struct {
	Name     string
	Email    string
	Age      string
	Location *records.Location
	Address  string
}

func (f Form) clone() Form {
	if f.Location != nil {
		loc := *f.Location
		f.Location = &loc
	}
	return f
}

type Profile struct {
	store    Store
	resolver Resolver
	notifier Notifier
	variant  Variant
	logger   *slog.Logger

	mu      sync.Mutex
	records []records.Record
	mode    Mode
	form    Form
}

// NewProfile builds the profile screen state. resolver may be nil for the Basic variant.
func NewProfile(store Store, resolver Resolver, notifier Notifier, variant Variant, logger *slog.Logger) *Profile {
	if logger == nil {
		logger = slog.Default()
	}
	return &Profile{
		store:    store,
		resolver: resolver,
		notifier: notifier,
		variant:  variant,
		logger:   logger,
	}
}

func (p *Profile) Records() []records.Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]records.Record, len(p.records))
	copy(out, p.records)
	return out
}

func (p *Profile) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

func (p *Profile) Form() Form {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form.clone()
}

func (p *Profile) SubmitLabel() string {
	if p.Mode().Editing() {
		return "Update User"
	}
	return "Add User"
}

// MapURL links the pending location to an external map, or is empty without one.
func (p *Profile) MapURL() string {
	f := p.Form()
	if f.Location == nil {
		return ""
	}
	return geocode.MapLink(f.Location.Latitude, f.Location.Longitude)
}

func (p *Profile) SetName(v string)  { p.set(func(f *Form) { f.Name = v }) }
func (p *Profile) SetEmail(v string) { p.set(func(f *Form) { f.Email = v }) }
func (p *Profile) SetAge(v string)   { p.set(func(f *Form) { f.Age = v }) }

func (p *Profile) set(fn func(*Form)) {
	p.mu.Lock()
	fn(&p.form)
	p.mu.Unlock()
}

// Load replaces the list with a fresh one. On failure the previous list stays.
func (p *Profile) Load(ctx context.Context) error {
	list, err := p.store.List(ctx)
	if err != nil {
		p.fail(ctx, "profile.load", err)
		return err
	}

	p.mu.Lock()
	p.records = list
	p.mu.Unlock()
	return nil
}

// BeginEdit switches to Edit(id) and fills the form from the listed record.
func (p *Profile) BeginEdit(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, r := range p.records {
		if r.ID == id {
			p.mode = Mode{EditingID: id}
			p.form = Form{
				Name:     r.Name,
				Email:    r.Email,
				Age:      r.Age,
				Location: r.Location,
				Address:  r.Address,
			}.clone()
			return nil
		}
	}
	return ErrUnknownRecord
}

// CancelEdit goes back to Create with an empty form.
func (p *Profile) CancelEdit() {
	p.mu.Lock()
	p.mode = Mode{}
	p.form = Form{}
	p.mu.Unlock()
}

// CanSubmit reports whether Submit would reach the store.
func (p *Profile) CanSubmit() bool {
	f := p.Form()
	return p.complete(f)
}

func (p *Profile) complete(f Form) bool {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || strings.TrimSpace(f.Age) == "" {
		return false
	}
	if p.variant == LocationEnabled && f.Location == nil {
		return false
	}
	return true
}

// Submit creates or updates depending on the mode, then resets the form and
// re-lists. An incomplete form is a silent no-op.
func (p *Profile) Submit(ctx context.Context) error {
	p.mu.Lock()
	mode, form := p.mode, p.form.clone()
	p.mu.Unlock()

	if !p.complete(form) {
		return nil
	}

	fields := records.Fields{Name: form.Name, Email: form.Email, Age: form.Age}
	if p.variant == LocationEnabled {
		fields.Location = form.Location
		fields.Address = form.Address
	}

	var err error
	if mode.Editing() {
		err = p.store.Update(ctx, mode.EditingID, fields)
	} else {
		_, err = p.store.Create(ctx, fields)
	}
	if err != nil {
		p.fail(ctx, "profile.submit", err)
		return err
	}

	p.CancelEdit()
	return p.Load(ctx)
}

// Delete removes a record and re-lists. The form mode is left alone.
func (p *Profile) Delete(ctx context.Context, id string) error {
	if err := p.store.Delete(ctx, id); err != nil {
		p.fail(ctx, "profile.delete", err)
		return err
	}
	return p.Load(ctx)
}

// TapMap records a pending location and resolves its address.
// The address is a sentinel string when resolution fails.
func (p *Profile) TapMap(ctx context.Context, lat, lng float64) {
	loc := &records.Location{Latitude: lat, Longitude: lng}
	p.set(func(f *Form) {
		f.Location = loc
		f.Address = ""
	})

	if p.resolver == nil {
		return
	}
	address := p.resolver.Resolve(ctx, lat, lng)

	p.mu.Lock()
	// A later tap wins.
	if p.form.Location == loc {
		p.form.Address = address
	}
	p.mu.Unlock()
}

func (p *Profile) fail(ctx context.Context, action string, err error) {
	p.logger.ErrorContext(ctx, "profile store call failed", "action", action, "error", err.Error())
	if p.notifier != nil {
		p.notifier.Alert("Error", err.Error())
	}
}
