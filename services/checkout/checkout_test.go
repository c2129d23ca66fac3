package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"lablink/models"

	"github.com/stretchr/testify/require"
)

// In-memory doubles for the session stores and repositories.

type memDraftStore struct {
	drafts map[string]*models.BookingDraft
	states map[string]*models.CheckoutState
}

func newMemDraftStore() *memDraftStore {
	return &memDraftStore{
		drafts: map[string]*models.BookingDraft{},
		states: map[string]*models.CheckoutState{},
	}
}

func (m *memDraftStore) LoadDraft(_ context.Context, sid string) (*models.BookingDraft, error) {
	if d, ok := m.drafts[sid]; ok {
		cp := *d
		return &cp, nil
	}
	return &models.BookingDraft{Step: models.StepPatientDetails}, nil
}

func (m *memDraftStore) SaveDraft(_ context.Context, sid string, d *models.BookingDraft) error {
	cp := *d
	m.drafts[sid] = &cp
	return nil
}

func (m *memDraftStore) DeleteDraft(_ context.Context, sid string) error {
	delete(m.drafts, sid)
	return nil
}

func (m *memDraftStore) LoadState(_ context.Context, sid string) (*models.CheckoutState, error) {
	if s, ok := m.states[sid]; ok {
		cp := *s
		return &cp, nil
	}
	return &models.CheckoutState{Phase: models.CommitPhaseIdle}, nil
}

func (m *memDraftStore) SaveState(_ context.Context, sid string, s *models.CheckoutState) error {
	cp := *s
	m.states[sid] = &cp
	return nil
}

type memCart struct {
	carts map[string]*models.Cart
}

func newMemCart() *memCart { return &memCart{carts: map[string]*models.Cart{}} }

func (m *memCart) Get(_ context.Context, sid string) (*models.Cart, error) {
	if c, ok := m.carts[sid]; ok {
		return c, nil
	}
	return &models.Cart{}, nil
}

func (m *memCart) AddItem(_ context.Context, sid string, item models.CartItem) (*models.Cart, error) {
	c, ok := m.carts[sid]
	if !ok {
		c = &models.Cart{}
		m.carts[sid] = c
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	c.Items = append(c.Items, item)
	return c, nil
}

func (m *memCart) RemoveItem(_ context.Context, sid, _, _ string) (*models.Cart, error) {
	return m.carts[sid], nil
}

func (m *memCart) UpdateQuantity(_ context.Context, sid, _, _ string, _ int) (*models.Cart, error) {
	return m.carts[sid], nil
}

func (m *memCart) Clear(_ context.Context, sid string) error {
	delete(m.carts, sid)
	return nil
}

type memFallback struct {
	lists map[string][]models.Booking
}

func newMemFallback() *memFallback { return &memFallback{lists: map[string][]models.Booking{}} }

func (m *memFallback) Append(_ context.Context, pid string, b *models.Booking) error {
	m.lists[pid] = append(m.lists[pid], *b)
	return nil
}

func (m *memFallback) List(_ context.Context, pid string) ([]models.Booking, error) {
	return m.lists[pid], nil
}

func (m *memFallback) Remove(_ context.Context, pid, bookingID string) error {
	kept := m.lists[pid][:0]
	for _, b := range m.lists[pid] {
		if b.ID != bookingID {
			kept = append(kept, b)
		}
	}
	m.lists[pid] = kept
	return nil
}

type fakeBookingRepo struct {
	failBundle  bool
	bookings    map[string]*models.Booking
	commissions []*models.Commission
	patients    []*models.Patient
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (f *fakeBookingRepo) CreateBundle(_ context.Context, p *models.Patient, b *models.Booking, c *models.Commission) error {
	if f.failBundle {
		return errors.New("backend unreachable")
	}
	f.patients = append(f.patients, p)
	f.bookings[b.ID] = b
	f.commissions = append(f.commissions, c)
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		return b, nil
	}
	return nil, errors.New("booking not found")
}

func (f *fakeBookingRepo) GetByPartnerID(_ context.Context, pid string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.PartnerID == pid {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetAll(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id, status string) error {
	if b, ok := f.bookings[id]; ok {
		b.Status = status
		return nil
	}
	return errors.New("booking not found")
}

func (f *fakeBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

type fakePartnerRepo struct {
	partners map[string]*models.Partner
	failGet  bool
}

func (f *fakePartnerRepo) Create(_ context.Context, p *models.Partner) error {
	f.partners[p.ID] = p
	return nil
}

func (f *fakePartnerRepo) GetByID(_ context.Context, id string) (*models.Partner, error) {
	if f.failGet {
		return nil, errors.New("backend unreachable")
	}
	if p, ok := f.partners[id]; ok {
		return p, nil
	}
	return nil, errors.New("partner not found")
}

func (f *fakePartnerRepo) GetByEmail(_ context.Context, _ string) (*models.Partner, error) {
	return nil, errors.New("partner not found")
}

func (f *fakePartnerRepo) GetAll(_ context.Context) ([]models.Partner, error) { return nil, nil }

func (f *fakePartnerRepo) UpdateWithDocument(_ context.Context, _ string, _ map[string]any) error {
	return nil
}

func (f *fakePartnerRepo) Count(_ context.Context) (int64, error) { return 0, nil }

func futureDate() string {
	return time.Now().AddDate(0, 0, 2).Format("2006-01-02")
}

func validPatient() models.PatientDetails {
	return models.PatientDetails{
		FullName:     "Asha Rao",
		Age:          34,
		Gender:       "female",
		Phone:        "9876543210",
		Relationship: "self",
	}
}

func labCollection() models.CollectionDetails {
	return models.CollectionDetails{
		Type:     models.CollectionLab,
		Date:     futureDate(),
		TimeSlot: "morning",
	}
}

func newTestService(t *testing.T) (*DefaultCheckoutService, *memCart, *fakeBookingRepo, *memFallback, *memDraftStore) {
	t.Helper()
	drafts := newMemDraftStore()
	carts := newMemCart()
	bookings := newFakeBookingRepo()
	fallback := newMemFallback()
	partners := &fakePartnerRepo{partners: map[string]*models.Partner{
		"p1": {ID: "p1", Email: "p1@example.com", CommissionPercentage: 15, Active: true},
	}}
	svc := &DefaultCheckoutService{
		Drafts:        drafts,
		Carts:         carts,
		PartnerRepo:   partners,
		BookingRepo:   bookings,
		Fallback:      fallback,
		CommitTimeout: time.Second,
	}
	return svc, carts, bookings, fallback, drafts
}

func seedCompletedWizard(t *testing.T, svc *DefaultCheckoutService, carts *memCart) {
	t.Helper()
	ctx := context.Background()
	_, err := carts.AddItem(ctx, "p1", models.CartItem{
		ID: "t1", Type: models.ServiceTypeTest, Name: "CBC",
		Price: 500, Quantity: 2, CentreID: "c1", CentreName: "City Diagnostics",
	})
	require.NoError(t, err)
	require.NoError(t, svc.SetPatientDetails(ctx, "p1", validPatient()))
	require.NoError(t, svc.SetCollectionDetails(ctx, "p1", labCollection()))
	require.NoError(t, svc.SetPaymentMethod(ctx, "p1", models.PaymentPayAtLab))
}

func TestHomeCollectionRequiresAddress(t *testing.T) {
	details := models.CollectionDetails{
		Type:     models.CollectionHome,
		Date:     futureDate(),
		TimeSlot: "evening",
	}
	err := ValidateCollectionDetails(details, time.Now())
	require.Error(t, err)

	var ce *CheckoutError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "validationError", ce.Code)

	details.Address = "12 MG Road"
	details.City = "Bengaluru"
	details.Pincode = "560001"
	require.NoError(t, ValidateCollectionDetails(details, time.Now()))
}

func TestLabCollectionAcceptsMissingAddress(t *testing.T) {
	require.NoError(t, ValidateCollectionDetails(labCollection(), time.Now()))
}

func TestCollectionDateMustBeFuture(t *testing.T) {
	details := labCollection()
	details.Date = time.Now().Format("2006-01-02")
	require.Error(t, ValidateCollectionDetails(details, time.Now()))
}

func TestPatientValidation(t *testing.T) {
	p := validPatient()
	require.NoError(t, ValidatePatientDetails(p))

	p.Phone = "12345"
	require.Error(t, ValidatePatientDetails(p))

	p = validPatient()
	p.Age = 130
	require.Error(t, ValidatePatientDetails(p))

	p = validPatient()
	p.Relationship = "cousin"
	require.Error(t, ValidatePatientDetails(p))
}

func TestAdvanceGatesOnStepValidation(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Advance(ctx, "p1")
	require.Error(t, err, "cannot advance without patient details")

	require.NoError(t, svc.SetPatientDetails(ctx, "p1", validPatient()))
	step, err := svc.Advance(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, models.StepCollectionDetails, step)

	_, err = svc.Advance(ctx, "p1")
	require.Error(t, err, "cannot advance without collection details")

	require.NoError(t, svc.SetCollectionDetails(ctx, "p1", labCollection()))
	step, err = svc.Advance(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, models.StepReview, step)

	_, err = svc.Advance(ctx, "p1")
	require.Error(t, err, "review is the last step")
}

func TestSetStepIsUnguarded(t *testing.T) {
	svc, _, _, _, drafts := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetStep(ctx, "p1", models.StepReview))
	require.Equal(t, models.StepReview, drafts.drafts["p1"].Step)

	require.Error(t, svc.SetStep(ctx, "p1", 4))
}

func TestSubmitDurablePath(t *testing.T) {
	svc, carts, bookings, fallback, drafts := newTestService(t)
	ctx := context.Background()
	seedCompletedWizard(t, svc, carts)

	outcome, err := svc.Submit(ctx, "p1")
	require.NoError(t, err)
	require.False(t, outcome.Fallback)
	require.Regexp(t, regexp.MustCompile(`^BK\d+$`), outcome.BookingID)

	booking, ok := bookings.bookings[outcome.BookingID]
	require.True(t, ok)
	require.InDelta(t, 1000, booking.TotalAmount, 1e-9)
	require.Equal(t, models.BookingStatusPending, booking.Status)
	require.Equal(t, models.PaymentPayAtLab, booking.PaymentMethod)

	require.Len(t, bookings.commissions, 1)
	require.InDelta(t, 150, bookings.commissions[0].Amount, 1e-9, "15 percent of 1000")
	require.Equal(t, models.CommissionStatusPending, bookings.commissions[0].Status)
	require.Equal(t, outcome.BookingID, bookings.commissions[0].BookingID)

	require.Len(t, bookings.patients, 1)
	require.Equal(t, "p1", bookings.patients[0].PartnerID)

	// Cart and draft are cleared, FSM lands in committed.
	c, err := carts.Get(ctx, "p1")
	require.NoError(t, err)
	require.Empty(t, c.Items)
	require.NotContains(t, drafts.drafts, "p1")
	require.Equal(t, models.CommitPhaseCommitted, drafts.states["p1"].Phase)
	require.Empty(t, fallback.lists["p1"])
}

func TestSubmitFallbackPath(t *testing.T) {
	svc, carts, bookings, fallback, drafts := newTestService(t)
	ctx := context.Background()
	seedCompletedWizard(t, svc, carts)
	bookings.failBundle = true

	outcome, err := svc.Submit(ctx, "p1")
	require.NoError(t, err, "durable failure must not escape to the caller")
	require.True(t, outcome.Fallback)
	require.Regexp(t, regexp.MustCompile(`^BK\d+$`), outcome.BookingID)

	require.Empty(t, bookings.bookings, "no durable write happened")
	require.Len(t, fallback.lists["p1"], 1)

	local := fallback.lists["p1"][0]
	require.Equal(t, outcome.BookingID, local.ID)
	require.Equal(t, models.BookingStatusPending, local.Status)
	require.InDelta(t, 100, local.PartnerCommission, 1e-9, "fallback uses the default 10 percent rate")

	// Stores are cleared identically to the durable path.
	c, err := carts.Get(ctx, "p1")
	require.NoError(t, err)
	require.Empty(t, c.Items)
	require.NotContains(t, drafts.drafts, "p1")
	require.Equal(t, models.CommitPhaseCommitted, drafts.states["p1"].Phase)
}

// Documents the current behavior: retrying a commit after failure mints a new
// identifier each time. Duplicate submissions under client retry remain possible;
// flagged for review rather than silently changed.
func TestCommitIsNotIdempotent(t *testing.T) {
	svc, carts, bookings, fallback, _ := newTestService(t)
	ctx := context.Background()
	bookings.failBundle = true

	seedCompletedWizard(t, svc, carts)
	first, err := svc.Submit(ctx, "p1")
	require.NoError(t, err)

	seedCompletedWizard(t, svc, carts)
	second, err := svc.Submit(ctx, "p1")
	require.NoError(t, err)

	require.NotEqual(t, first.BookingID, second.BookingID)
	require.Len(t, fallback.lists["p1"], 2)
}

func TestSubmitRejectsWhileInFlight(t *testing.T) {
	svc, carts, _, _, drafts := newTestService(t)
	ctx := context.Background()
	seedCompletedWizard(t, svc, carts)

	require.NoError(t, drafts.SaveState(ctx, "p1", &models.CheckoutState{Phase: models.CommitPhaseSubmitting}))

	_, err := svc.Submit(ctx, "p1")
	require.ErrorIs(t, err, ErrCommitInFlight)
}

func TestSubmitFailsWhenBothPathsFail(t *testing.T) {
	svc, carts, bookings, _, drafts := newTestService(t)
	ctx := context.Background()
	seedCompletedWizard(t, svc, carts)
	bookings.failBundle = true
	svc.Fallback = failingFallback{}

	_, err := svc.Submit(ctx, "p1")
	require.ErrorIs(t, err, ErrCommitFailed)
	require.Equal(t, models.CommitPhaseFailed, drafts.states["p1"].Phase)
}

type failingFallback struct{}

func (failingFallback) Append(context.Context, string, *models.Booking) error {
	return errors.New("local storage unavailable")
}

func (failingFallback) List(context.Context, string) ([]models.Booking, error) { return nil, nil }

func (failingFallback) Remove(context.Context, string, string) error { return nil }

func TestSubmitRequiresCompleteDraftAndCart(t *testing.T) {
	svc, carts, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "p1")
	require.Error(t, err, "empty draft must not commit")

	seedCompletedWizard(t, svc, carts)
	require.NoError(t, carts.Clear(ctx, "p1"))
	_, err = svc.Submit(ctx, "p1")
	require.Error(t, err, "empty cart must not commit")
}

func TestResolveBooking(t *testing.T) {
	svc, carts, bookings, _, _ := newTestService(t)
	ctx := context.Background()

	seedCompletedWizard(t, svc, carts)
	durable, err := svc.Submit(ctx, "p1")
	require.NoError(t, err)

	got, err := svc.ResolveBooking(ctx, "p1", durable.BookingID)
	require.NoError(t, err)
	require.Equal(t, durable.BookingID, got.ID)

	bookings.failBundle = true
	seedCompletedWizard(t, svc, carts)
	local, err := svc.Submit(ctx, "p1")
	require.NoError(t, err)

	got, err = svc.ResolveBooking(ctx, "p1", local.BookingID)
	require.NoError(t, err)
	require.Equal(t, local.BookingID, got.ID)

	_, err = svc.ResolveBooking(ctx, "p1", "BK0")
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDraftSerializationRoundTrip(t *testing.T) {
	patient := validPatient()
	collection := labCollection()
	draft := &models.BookingDraft{
		Patient:       &patient,
		Collection:    &collection,
		PaymentMethod: models.PaymentPrepaid,
		Step:          models.StepReview,
	}

	data, err := json.Marshal(draft)
	require.NoError(t, err)

	var reloaded models.BookingDraft
	require.NoError(t, json.Unmarshal(data, &reloaded))
	require.Equal(t, draft, &reloaded)
}
