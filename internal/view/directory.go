package view

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/models"
)

// Directory renders the employee list with an optional department filter
// and hosts the add/edit form.
type Directory struct {
	store  Store
	logger *zap.Logger

	// generation stamps each fetch; a response whose stamp no longer
	// matches was superseded by a later filter change and is discarded.
	generation atomic.Int64

	Employees []models.Employee
	Filter    string
	Loaded    bool

	// FormOpen and Editing describe the form state. Editing is nil when
	// the form creates a new record.
	FormOpen bool
	Editing  *models.Employee
	Form     EmployeeForm
}

// NewDirectory creates an unmounted employee directory view.
func NewDirectory(store Store, logger *zap.Logger) *Directory {
	return &Directory{store: store, logger: logger}
}

// Load fetches the employee list for the current filter. A failed fetch is
// logged and keeps whatever list was already shown.
func (d *Directory) Load(ctx context.Context) {
	gen := d.generation.Add(1)

	employees, err := d.store.Employees(ctx, d.Filter)
	if d.generation.Load() != gen {
		return
	}
	d.Loaded = true
	if err != nil {
		d.logger.Error("Failed to fetch employees", zap.Error(err))
		return
	}
	d.Employees = employees
}

// SetFilter changes the department filter and re-fetches. An empty filter
// means all departments.
func (d *Directory) SetFilter(ctx context.Context, department string) {
	d.Filter = department
	d.Load(ctx)
}

// OpenAdd opens the form empty for a new employee.
func (d *Directory) OpenAdd() {
	d.Editing = nil
	d.Form = EmployeeForm{}
	d.FormOpen = true
}

// OpenEdit opens the form pre-filled from an existing record.
func (d *Directory) OpenEdit(e models.Employee) {
	copied := e
	d.Editing = &copied
	d.Form = FormForEmployee(e)
	d.FormOpen = true
}

// CloseForm discards the form without saving.
func (d *Directory) CloseForm() {
	d.FormOpen = false
	d.Editing = nil
	d.Form = EmployeeForm{}
}

// Submit saves the form: create when no record is being edited, full update
// otherwise. On success the form closes and the list re-fetches; on failure
// the form stays open and the Alert carries the message.
func (d *Directory) Submit(ctx context.Context) *Alert {
	payload, err := d.Form.Payload()
	if err != nil {
		return &Alert{Message: err.Error()}
	}

	if d.Editing == nil {
		_, err = d.store.CreateEmployee(ctx, payload)
	} else {
		_, err = d.store.UpdateEmployee(ctx, d.Editing.ID, payload)
	}
	if err != nil {
		d.logger.Error("Failed to save employee", zap.Error(err))
		return &Alert{Message: "Failed to save employee"}
	}

	d.CloseForm()
	d.Load(ctx)
	return nil
}
