package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"coworking-admin/internal/domain/calendar"
	"coworking-admin/internal/domain/rental"
	"coworking-admin/internal/domain/resource"
	"coworking-admin/internal/domain/schedule"
	"coworking-admin/internal/pkg/clock"
	"coworking-admin/internal/pkg/config"
	"coworking-admin/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// ResourceForm is the register/edit modal's input state.
type ResourceForm struct {
	Number int
	Name   string
}

// RentalForm is the rental modal's input state. ResourceID is zero when
// the modal was opened without a pre-selected resource.
type RentalForm struct {
	ResourceID int64
	CustomerID int64
	PlanID     int64
	StartDate  schedule.Date
}

// Panel is the stateful controller behind one admin screen. Desks and
// stands each get their own instance over their own Gateway; everything
// else is shared.
//
// A single mutex serializes state mutation. Guard flags make re-entrant
// calls no-ops while an operation is in flight; network calls run outside
// the lock so a slow backend never blocks readers.
type Panel struct {
	mu sync.Mutex

	name  string
	gw    Gateway
	clock clock.Clock
	log   *slog.Logger
	msgs  Messages

	notifications *NotificationCenter
	publisher     Publisher

	resources []resource.Resource
	rentals   []rental.Record
	customers []rental.Customer
	plans     []rental.Plan
	shifts    []rental.Shift

	loading         bool
	saving          bool
	savingRental    bool
	loadingCalendar bool

	registerOpen bool
	editing      *resource.Resource
	form         ResourceForm

	rentalOpen   bool
	rentalFor    *resource.Resource
	rentalForm   RentalForm
	startDisplay string
	quote        rental.Quote

	calendarOpen     bool
	calendarResource *resource.Resource
	calendarMonth    schedule.YearMonth
	calendarRentals  []rental.Record
}

// Panels groups the two controller instances for injection.
type Panels struct {
	Desks  *Panel
	Stands *Panel
}

func NewPanel(
	name string,
	msgs Messages,
	gw Gateway,
	cfg config.Config,
	clk clock.Clock,
	publisher Publisher,
	log *slog.Logger,
) *Panel {
	if publisher == nil {
		publisher = NopPublisher()
	}
	return &Panel{
		name:          name,
		gw:            gw,
		clock:         clk,
		log:           log.With("panel", name),
		msgs:          msgs,
		notifications: NewNotificationCenter(name, cfg.Panel, publisher),
		publisher:     publisher,
		calendarMonth: schedule.YearMonthOf(clk.Now()),
	}
}

func (p *Panel) Name() string {
	return p.name
}

func (p *Panel) Messages() Messages {
	return p.msgs
}

func (p *Panel) Notifications() []Notification {
	return p.notifications.All()
}

func (p *Panel) DismissNotification(id int64) {
	p.notifications.Dismiss(id)
}

func (p *Panel) notify(kind NotificationKind, message string) {
	p.notifications.Push(kind, message)
}

// AnnounceCustomerRegistration is the placeholder behind the "new customer"
// button; customer registration still belongs to the backend owners.
func (p *Panel) AnnounceCustomerRegistration() {
	p.notify(KindInfo, msgCustomerSoon)
}

// ---------------------------------------------------------------------------
// Loading

// Load performs the initial fetch: resources with their derived status,
// then the catalogs. Catalog failures are logged and tolerated so the
// panel stays usable with whatever loaded.
func (p *Panel) Load(ctx context.Context) error {
	err := p.RefreshResources(ctx)
	p.loadCatalogs(ctx)
	return err
}

// RefreshResources re-fetches the resource list and re-resolves status.
// Re-entrant calls while a refresh is in flight are no-ops.
func (p *Panel) RefreshResources(ctx context.Context) error {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return nil
	}
	p.loading = true
	p.mu.Unlock()
	defer p.clearFlag(&p.loading)

	resources, err := p.gw.ListResources(ctx)
	if err != nil {
		p.log.Error("failed to fetch resources", "error", err)
		p.notify(KindError, p.msgs.LoadFailedPrefix+backendMessage(err))
		return err
	}

	p.mu.Lock()
	p.resources = resources
	p.mu.Unlock()

	p.refreshStatus(ctx)
	return nil
}

// refreshStatus derives occupancy from the full rental list. A fetch
// failure falls back to rendering everything available rather than
// blocking the list; the failure is only logged.
func (p *Panel) refreshStatus(ctx context.Context) {
	records, err := p.gw.ListRentals(ctx)

	p.mu.Lock()
	if err != nil {
		p.log.Error("failed to fetch rental records", "error", err)
		p.resources = resource.ResetStatus(p.resources)
	} else {
		p.rentals = records
		p.resources = resource.ResolveStatus(p.resources, records, p.clock.Now())
	}
	snapshot := make([]resource.Resource, len(p.resources))
	copy(snapshot, p.resources)
	p.mu.Unlock()

	p.publisher.PublishResources(p.name, snapshot)
}

func (p *Panel) loadCatalogs(ctx context.Context) {
	customers, err := p.gw.ListCustomers(ctx)
	if err != nil {
		p.log.Error("failed to fetch customers", "error", err)
	}
	plans, err := p.gw.ListPlans(ctx)
	if err != nil {
		p.log.Error("failed to fetch rental plans", "error", err)
	}
	shifts, err := p.gw.ListShifts(ctx)
	if err != nil {
		p.log.Error("failed to fetch shifts", "error", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if customers != nil {
		p.customers = customers
	}
	if plans != nil {
		p.plans = plans
	}
	if shifts != nil {
		p.shifts = shifts
	}
}

func (p *Panel) clearFlag(flag *bool) {
	p.mu.Lock()
	*flag = false
	p.mu.Unlock()
}

// ---------------------------------------------------------------------------
// Register/edit modal

func (p *Panel) OpenRegister() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.editing = nil
	p.form = ResourceForm{}
	p.registerOpen = true
}

func (p *Panel) OpenEdit(id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	res, ok := p.findResourceLocked(id)
	if !ok {
		return errs.ErrResourceNotFound
	}

	var clone resource.Resource
	if err := copier.Copy(&clone, &res); err != nil {
		return errs.Wrap(err, "failed to clone resource")
	}

	p.editing = &clone
	p.form = ResourceForm{Number: res.Number, Name: res.Name}
	p.registerOpen = true
	return nil
}

func (p *Panel) CloseRegister() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.registerOpen = false
	p.editing = nil
	p.form = ResourceForm{}
	p.saving = false
}

func (p *Panel) SetForm(form ResourceForm) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = form
}

// SaveResource creates or updates depending on whether the modal was
// opened for editing. The backend's message wins over the local default.
// On success the modal closes and the list is re-fetched before the call
// completes.
func (p *Panel) SaveResource(ctx context.Context) error {
	p.mu.Lock()
	if p.saving {
		p.mu.Unlock()
		return nil
	}
	p.saving = true
	editing := p.editing
	form := p.form
	p.mu.Unlock()
	defer p.clearFlag(&p.saving)

	if err := resource.ValidateNumber(form.Number); err != nil {
		p.notify(KindError, p.msgs.SaveFailed)
		return err
	}

	var (
		message  string
		fallback string
		err      error
	)
	if editing != nil {
		message, err = p.gw.UpdateResource(ctx, editing.ID, form.Number, form.Name)
		fallback = p.msgs.Updated
	} else {
		message, err = p.gw.CreateResource(ctx, form.Number, form.Name)
		fallback = p.msgs.Created
	}
	if err != nil {
		p.log.Error("failed to save resource", "error", err)
		p.notify(KindError, fallbackMessage(err, p.msgs.SaveFailed))
		return err
	}

	if message == "" {
		message = fallback
	}
	p.notify(KindSuccess, message)
	p.CloseRegister()
	return p.RefreshResources(ctx)
}

// ---------------------------------------------------------------------------
// Rental modal

// OpenRental opens the rental modal for one resource.
func (p *Panel) OpenRental(id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	res, ok := p.findResourceLocked(id)
	if !ok {
		return errs.ErrResourceNotFound
	}

	var clone resource.Resource
	if err := copier.Copy(&clone, &res); err != nil {
		return errs.Wrap(err, "failed to clone resource")
	}

	p.rentalFor = &clone
	p.initRentalFormLocked()
	p.rentalOpen = true
	return nil
}

// OpenRentalGeneral opens the rental modal with the resource chosen in
// the form instead of up front.
func (p *Panel) OpenRentalGeneral() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.rentalFor = nil
	p.initRentalFormLocked()
	p.rentalOpen = true
}

func (p *Panel) initRentalFormLocked() {
	today := schedule.DateOf(p.clock.Now())
	p.startDisplay = today.Display()
	p.rentalForm = RentalForm{StartDate: today}
	if p.rentalFor != nil {
		p.rentalForm.ResourceID = p.rentalFor.ID
	}
	p.quote = rental.Quote{}
}

func (p *Panel) CloseRental() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.rentalOpen = false
	p.rentalFor = nil
	p.rentalForm = RentalForm{}
	p.startDisplay = ""
	p.quote = rental.Quote{}
	p.savingRental = false
}

func (p *Panel) ChangeRentalResource(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rentalForm.ResourceID = id
}

func (p *Panel) ChangeCustomer(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rentalForm.CustomerID = id
}

// ChangePlan selects a plan and recomputes the quote.
func (p *Panel) ChangePlan(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.rentalForm.PlanID = id
	p.recomputeQuoteLocked()
}

// ChangeStartDate applies a dd/mm/yyyy input, zero-padding loose d/m/yyyy
// entry first. Invalid input is rejected and the previous display value is
// returned so the caller can restore the field; no state changes and
// nothing hits the network. An empty string clears the date.
func (p *Panel) ChangeStartDate(input string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	input = schedule.NormalizeDisplay(input)
	if !schedule.ValidateDisplay(input) {
		return p.startDisplay
	}

	p.startDisplay = input
	if input == "" {
		p.rentalForm.StartDate = schedule.Date{}
	} else {
		p.rentalForm.StartDate = schedule.ParseDisplay(input)
	}
	p.recomputeQuoteLocked()
	return p.startDisplay
}

func (p *Panel) recomputeQuoteLocked() {
	p.quote = rental.QuoteFor(p.findPlanLocked(p.rentalForm.PlanID), p.rentalForm.StartDate)
}

// SaveRental resolves the form's resource, customer and plan against the
// loaded lists before anything hits the network, then posts the booking
// with the complete entities and the quoted period and price.
func (p *Panel) SaveRental(ctx context.Context) error {
	p.mu.Lock()
	if p.savingRental {
		p.mu.Unlock()
		return nil
	}
	p.savingRental = true
	form := p.rentalForm
	if p.rentalFor != nil {
		form.ResourceID = p.rentalFor.ID
	}
	res, resOK := p.findResourceLocked(form.ResourceID)
	customer, custOK := p.findCustomerLocked(form.CustomerID)
	plan := p.findPlanLocked(form.PlanID)
	p.mu.Unlock()
	defer p.clearFlag(&p.savingRental)

	if !resOK {
		p.notify(KindError, p.msgs.ResourceNotFound)
		return errs.ErrResourceNotFound
	}
	if !custOK {
		p.notify(KindError, msgCustomerNotFound)
		return errs.ErrCustomerNotFound
	}
	if plan == nil {
		p.notify(KindError, msgPlanNotFound)
		return errs.ErrPlanNotFound
	}
	if form.StartDate.IsZero() {
		p.notify(KindError, msgRentFailed)
		return errs.ErrInvalidStartDate
	}

	quote := rental.QuoteFor(plan, form.StartDate)
	booking := Booking{
		Resource:   res,
		Customer:   customer,
		Plan:       *plan,
		StartAt:    quote.StartAt,
		EndAt:      quote.EndAt,
		TotalPrice: quote.TotalPrice,
	}

	message, err := p.gw.CreateRental(ctx, booking)
	if err != nil {
		p.log.Error("failed to create rental", "error", err)
		p.notify(KindError, fallbackMessage(err, msgRentFailed))
		return err
	}

	if message == "" {
		message = msgRentalCreated
	}
	p.notify(KindSuccess, message)
	p.CloseRental()
	return p.RefreshResources(ctx)
}

// Quote computes a booking preview without touching the modal state. An
// empty display date defaults to today; an invalid one is rejected.
func (p *Panel) Quote(planID int64, display string) (rental.Quote, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	plan := p.findPlanLocked(planID)
	if plan == nil {
		return rental.Quote{}, errs.ErrPlanNotFound
	}

	start := schedule.DateOf(p.clock.Now())
	if display != "" {
		display = schedule.NormalizeDisplay(display)
		if !schedule.ValidateDisplay(display) {
			return rental.Quote{}, errs.ErrInvalidStartDate
		}
		start = schedule.ParseDisplay(display)
	}
	return rental.QuoteFor(plan, start), nil
}

// ---------------------------------------------------------------------------
// Deletion

// Delete removes a resource, but only after confirming it has no rental
// records. When records exist nothing is deleted and the caller gets
// errs.ErrResourceHasRentals alongside an error notification.
func (p *Panel) Delete(ctx context.Context, id int64) error {
	records, err := p.gw.ListResourceRentals(ctx, id)
	if err != nil {
		p.log.Error("failed to check resource rentals", "error", err)
		p.notify(KindError, fallbackMessage(err, p.msgs.DeleteFailed))
		return err
	}
	if len(records) > 0 {
		p.notify(KindError, p.msgs.HasRentals)
		return errs.ErrResourceHasRentals
	}

	message, err := p.gw.DeleteResource(ctx, id)
	if err != nil {
		p.log.Error("failed to delete resource", "error", err)
		p.notify(KindError, fallbackMessage(err, p.msgs.DeleteFailed))
		return err
	}

	if message == "" {
		message = p.msgs.Deleted
	}
	p.notify(KindSuccess, message)
	return p.RefreshResources(ctx)
}

// ---------------------------------------------------------------------------
// Calendar modal

func (p *Panel) OpenCalendar(ctx context.Context, id int64) error {
	p.mu.Lock()
	res, ok := p.findResourceLocked(id)
	if !ok {
		p.mu.Unlock()
		return errs.ErrResourceNotFound
	}

	var clone resource.Resource
	if err := copier.Copy(&clone, &res); err != nil {
		p.mu.Unlock()
		return errs.Wrap(err, "failed to clone resource")
	}

	p.calendarResource = &clone
	p.calendarOpen = true
	p.calendarMonth = schedule.YearMonthOf(p.clock.Now())
	p.mu.Unlock()

	return p.loadCalendarRentals(ctx, id)
}

// ChangeCalendarResource switches the calendar to another resource.
// Unknown ids are ignored, matching the select-driven UI.
func (p *Panel) ChangeCalendarResource(ctx context.Context, id int64) error {
	p.mu.Lock()
	res, ok := p.findResourceLocked(id)
	if !ok {
		p.mu.Unlock()
		return nil
	}

	var clone resource.Resource
	if err := copier.Copy(&clone, &res); err != nil {
		p.mu.Unlock()
		return errs.Wrap(err, "failed to clone resource")
	}
	p.calendarResource = &clone
	p.mu.Unlock()

	return p.loadCalendarRentals(ctx, id)
}

func (p *Panel) loadCalendarRentals(ctx context.Context, id int64) error {
	p.mu.Lock()
	if p.loadingCalendar {
		p.mu.Unlock()
		return nil
	}
	p.loadingCalendar = true
	p.mu.Unlock()
	defer p.clearFlag(&p.loadingCalendar)

	records, err := p.gw.ListResourceRentals(ctx, id)
	if err != nil {
		p.log.Error("failed to fetch calendar rentals", "error", err)
		p.notify(KindError, p.msgs.CalendarFailedPrefix+backendMessage(err))
		return err
	}

	p.mu.Lock()
	p.calendarRentals = records
	p.mu.Unlock()
	return nil
}

func (p *Panel) CloseCalendar() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calendarOpen = false
	p.calendarResource = nil
	p.calendarRentals = nil
	p.calendarMonth = schedule.YearMonthOf(p.clock.Now())
}

func (p *Panel) PrevMonth() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calendarMonth = p.calendarMonth.Prev()
}

func (p *Panel) NextMonth() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calendarMonth = p.calendarMonth.Next()
}

// CalendarDays renders the current month's occupancy grid.
func (p *Panel) CalendarDays() []calendar.Day {
	p.mu.Lock()
	defer p.mu.Unlock()

	today := schedule.DateOf(p.clock.Now())
	return calendar.MonthGrid(p.calendarRentals, p.calendarMonth, today)
}

func (p *Panel) CalendarMonthLabel() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calendarMonth.Label()
}

// ---------------------------------------------------------------------------
// Lookups and snapshot

func (p *Panel) findResourceLocked(id int64) (resource.Resource, bool) {
	for _, r := range p.resources {
		if r.ID == id {
			return r, true
		}
	}
	return resource.Resource{}, false
}

func (p *Panel) findCustomerLocked(id int64) (rental.Customer, bool) {
	for _, c := range p.customers {
		if c.ID == id {
			return c, true
		}
	}
	return rental.Customer{}, false
}

func (p *Panel) findPlanLocked(id int64) *rental.Plan {
	for i := range p.plans {
		if p.plans[i].ID == id {
			return &p.plans[i]
		}
	}
	return nil
}

// Snapshot is a consistent copy of the panel's visible state.
type Snapshot struct {
	Resources []resource.Resource
	Customers []rental.Customer
	Plans     []rental.Plan
	Shifts    []rental.Shift

	Loading         bool
	Saving          bool
	SavingRental    bool
	LoadingCalendar bool

	RegisterOpen bool
	Editing      *resource.Resource
	Form         ResourceForm

	RentalOpen   bool
	RentalFor    *resource.Resource
	RentalForm   RentalForm
	StartDisplay string
	Quote        rental.Quote

	CalendarOpen     bool
	CalendarResource *resource.Resource
	CalendarMonth    schedule.YearMonth

	Notifications []Notification
}

func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := Snapshot{
		Loading:         p.loading,
		Saving:          p.saving,
		SavingRental:    p.savingRental,
		LoadingCalendar: p.loadingCalendar,

		RegisterOpen: p.registerOpen,
		Editing:      p.editing,
		Form:         p.form,

		RentalOpen:   p.rentalOpen,
		RentalFor:    p.rentalFor,
		RentalForm:   p.rentalForm,
		StartDisplay: p.startDisplay,
		Quote:        p.quote,

		CalendarOpen:     p.calendarOpen,
		CalendarResource: p.calendarResource,
		CalendarMonth:    p.calendarMonth,
	}
	_ = copier.Copy(&snap.Resources, &p.resources)
	_ = copier.Copy(&snap.Customers, &p.customers)
	_ = copier.Copy(&snap.Plans, &p.plans)
	_ = copier.Copy(&snap.Shifts, &p.shifts)
	snap.Notifications = p.notifications.All()
	return snap
}

// backendMessage prefers the message the backend responded with over the
// transport error's text.
type backendMessenger interface {
	BackendMessage() string
}

func backendMessage(err error) string {
	var m backendMessenger
	if errors.As(err, &m) && m.BackendMessage() != "" {
		return m.BackendMessage()
	}
	return err.Error()
}

func fallbackMessage(err error, fallback string) string {
	var m backendMessenger
	if errors.As(err, &m) && m.BackendMessage() != "" {
		return m.BackendMessage()
	}
	return fallback
}
