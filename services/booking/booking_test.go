package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	bookingRepo "github.com/sHubh-blip/hd-booking/database/repository/booking"
	"github.com/sHubh-blip/hd-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Fakes ----------

type fakeExperienceRepo struct {
	exp *models.Experience
	err error
}

func (f *fakeExperienceRepo) GetAll() ([]models.Experience, error) {
	if f.exp == nil {
		return nil, f.err
	}
	return []models.Experience{*f.exp}, f.err
}

func (f *fakeExperienceRepo) GetByID(id string) (*models.Experience, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.exp != nil && f.exp.ID == id {
		return f.exp, nil
	}
	return nil, nil
}

func (f *fakeExperienceRepo) Insert(*models.Experience) error { return nil }
func (f *fakeExperienceRepo) DeleteAll() error                { return nil }

type fakePromoRepo struct {
	promos map[string]*models.PromoCode
	err    error
}

func (f *fakePromoRepo) GetValidByCode(code string) (*models.PromoCode, error) {
	if f.err != nil {
		return nil, f.err
	}
	promo, ok := f.promos[code]
	if !ok || !promo.Valid {
		return nil, nil
	}
	return promo, nil
}

func (f *fakePromoRepo) Insert(*models.PromoCode) error          { return nil }
func (f *fakePromoRepo) DeleteAll() error                        { return nil }
func (f *fakePromoRepo) ExpireOutdated(time.Time) (int64, error) { return 0, nil }

type fakeBookingRepo struct {
	exp *models.Experience

	calls           int
	duplicateBudget int // return ErrDuplicateRefID this many times first
	slotUnavailable bool
	created         []*models.Booking
}

func (f *fakeBookingRepo) CreateConfirmed(_ context.Context, booking *models.Booking) error {
	f.calls++
	if f.duplicateBudget > 0 {
		f.duplicateBudget--
		return bookingRepo.ErrDuplicateRefID
	}
	if f.slotUnavailable {
		return bookingRepo.ErrSlotUnavailable
	}
	// Mirror the transactional decrement the real repo performs.
	if f.exp != nil {
		if slot := f.exp.FindSlot(booking.Date, booking.Time); slot != nil {
			slot.Available -= booking.Quantity
			slot.SoldOut = slot.Available <= 0
		}
	}
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookingRepo) GetByRefID(refID string) (*models.Booking, error) {
	for _, b := range f.created {
		if b.RefID == refID {
			return b, nil
		}
	}
	return nil, nil
}

type fakeInvalidator struct {
	ids []string
}

func (f *fakeInvalidator) InvalidateExperience(id string) {
	f.ids = append(f.ids, id)
}

// ---------- Helpers ----------

func kayaking() *models.Experience {
	return &models.Experience{
		ID:       "exp-1",
		Title:    "Kayaking",
		Location: "Udupi",
		Price:    999,
		Slots: []models.Slot{
			{Date: "2025-10-22", Time: "07:00 am", Available: 4},
			{Date: "2025-10-22", Time: "1:00 pm", Available: 0, SoldOut: true},
		},
	}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		ExperienceID: "exp-1",
		Date:         "2025-10-22",
		Time:         "07:00 am",
		Quantity:     2,
		FullName:     "Asha Rao",
		Email:        "asha@example.com",
	}
}

func newTestService(exp *models.Experience, promos map[string]*models.PromoCode) (*DefaultBookingService, *fakeBookingRepo, *fakeInvalidator) {
	bookings := &fakeBookingRepo{exp: exp}
	invalidator := &fakeInvalidator{}
	svc := &DefaultBookingService{
		Experiences:    &fakeExperienceRepo{exp: exp},
		Promos:         &fakePromoRepo{promos: promos},
		Bookings:       bookings,
		Catalog:        invalidator,
		TaxRatePercent: 6,
	}
	return svc, bookings, invalidator
}

func requireRejection(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	be, ok := AsBookingError(err)
	require.True(t, ok, "expected a booking rejection, got %v", err)
	assert.Equal(t, code, be.Code)
}

// ---------- Tests ----------

func TestCreateBookingMissingFields(t *testing.T) {
	svc, bookings, _ := newTestService(kayaking(), nil)

	mutations := []func(*models.BookingRequest){
		func(r *models.BookingRequest) { r.ExperienceID = "" },
		func(r *models.BookingRequest) { r.Date = "" },
		func(r *models.BookingRequest) { r.Time = "" },
		func(r *models.BookingRequest) { r.Quantity = 0 },
		func(r *models.BookingRequest) { r.FullName = "" },
		func(r *models.BookingRequest) { r.Email = "" },
	}
	for _, mutate := range mutations {
		req := validRequest()
		mutate(&req)
		_, err := svc.CreateBooking(req)
		requireRejection(t, err, CodeMalformedRequest)
	}
	assert.Zero(t, bookings.calls, "no commit on a malformed request")
}

func TestCreateBookingUnknownExperience(t *testing.T) {
	svc, _, _ := newTestService(kayaking(), nil)

	req := validRequest()
	req.ExperienceID = "missing"
	_, err := svc.CreateBooking(req)
	requireRejection(t, err, CodeExperienceNotFound)
}

func TestCreateBookingUnknownSlot(t *testing.T) {
	svc, _, _ := newTestService(kayaking(), nil)

	req := validRequest()
	req.Time = "3:00 pm"
	_, err := svc.CreateBooking(req)
	requireRejection(t, err, CodeInvalidSlot)
}

func TestCreateBookingSoldOutSlot(t *testing.T) {
	svc, _, _ := newTestService(kayaking(), nil)

	req := validRequest()
	req.Time = "1:00 pm"
	req.Quantity = 1
	_, err := svc.CreateBooking(req)
	requireRejection(t, err, CodeInsufficientCapacity)
}

func TestCreateBookingQuantityExceedsCapacity(t *testing.T) {
	exp := kayaking()
	svc, bookings, _ := newTestService(exp, nil)

	req := validRequest()
	req.Quantity = 5
	_, err := svc.CreateBooking(req)
	requireRejection(t, err, CodeInsufficientCapacity)

	assert.Zero(t, bookings.calls)
	assert.Equal(t, 4, exp.Slots[0].Available, "slot unchanged on rejection")
}

func TestCreateBookingUnknownPromoAbortsBooking(t *testing.T) {
	svc, bookings, _ := newTestService(kayaking(), nil)

	req := validRequest()
	req.PromoCode = "NOPE"
	_, err := svc.CreateBooking(req)
	requireRejection(t, err, CodeInvalidPromo)
	assert.Zero(t, bookings.calls, "failing promo must not fall back to full price")
}

func TestCreateBookingExpiredPromo(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	promos := map[string]*models.PromoCode{
		"SAVE10": {Code: "SAVE10", Discount: 10, DiscountType: models.DiscountTypePercentage, Valid: true, ExpiryDate: &past},
	}
	svc, bookings, _ := newTestService(kayaking(), promos)

	req := validRequest()
	req.PromoCode = "save10"
	_, err := svc.CreateBooking(req)
	requireRejection(t, err, CodeExpiredPromo)
	assert.Zero(t, bookings.calls)
}

func TestCreateBookingSuccess(t *testing.T) {
	exp := kayaking()
	svc, bookings, invalidator := newTestService(exp, nil)

	resp, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), resp.RefID)
	assert.NotEmpty(t, resp.BookingID)
	assert.Equal(t, "Booking confirmed successfully", resp.Message)

	require.Len(t, bookings.created, 1)
	created := bookings.created[0]
	assert.Equal(t, models.BookingStatusConfirmed, created.Status)
	assert.Equal(t, 1998, created.Subtotal)
	assert.Equal(t, 120, created.Taxes)
	assert.Equal(t, 0, created.Discount)
	assert.Equal(t, 2118, created.Total)

	assert.Equal(t, 2, exp.Slots[0].Available)
	assert.False(t, exp.Slots[0].SoldOut)
	assert.Equal(t, []string{"exp-1"}, invalidator.ids, "catalog cache invalidated")
}

func TestCreateBookingExhaustsSlot(t *testing.T) {
	exp := kayaking()
	svc, _, _ := newTestService(exp, nil)

	req := validRequest()
	req.Quantity = 4
	resp, err := svc.CreateBooking(req)
	require.NoError(t, err)
	require.True(t, resp.Success)

	assert.Equal(t, 0, exp.Slots[0].Available)
	assert.True(t, exp.Slots[0].SoldOut)
}

func TestCreateBookingWithPercentagePromo(t *testing.T) {
	promos := map[string]*models.PromoCode{
		"SAVE10": {Code: "SAVE10", Discount: 10, DiscountType: models.DiscountTypePercentage, Valid: true},
	}
	svc, bookings, _ := newTestService(kayaking(), promos)

	req := validRequest()
	req.PromoCode = "save10"
	resp, err := svc.CreateBooking(req)
	require.NoError(t, err)
	require.True(t, resp.Success)

	created := bookings.created[0]
	assert.Equal(t, "SAVE10", created.PromoCode, "stored uppercase")
	assert.Equal(t, 200, created.Discount)
	assert.Equal(t, 1918, created.Total)
}

func TestCreateBookingRetriesOnDuplicateRef(t *testing.T) {
	svc, bookings, _ := newTestService(kayaking(), nil)
	bookings.duplicateBudget = 2

	resp, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, 3, bookings.calls, "two collisions then success")
}

func TestCreateBookingRefRetriesAreBounded(t *testing.T) {
	svc, bookings, _ := newTestService(kayaking(), nil)
	bookings.duplicateBudget = 1 << 30

	_, err := svc.CreateBooking(validRequest())
	require.Error(t, err)
	_, isRejection := AsBookingError(err)
	assert.False(t, isRejection, "exhaustion is an unexpected failure, not a client error")
	assert.Equal(t, maxRefIDAttempts, bookings.calls)
}

func TestCreateBookingLostInventoryRace(t *testing.T) {
	// The pre-check passed but the transactional decrement found the slot
	// drained by a concurrent booking.
	svc, bookings, _ := newTestService(kayaking(), nil)
	bookings.slotUnavailable = true

	_, err := svc.CreateBooking(validRequest())
	requireRejection(t, err, CodeInsufficientCapacity)
}

func TestGetBookingByRef(t *testing.T) {
	svc, _, _ := newTestService(kayaking(), nil)

	resp, err := svc.CreateBooking(validRequest())
	require.NoError(t, err)

	booking, err := svc.GetBookingByRef(resp.RefID)
	require.NoError(t, err)
	assert.Equal(t, resp.BookingID, booking.ID)

	_, err = svc.GetBookingByRef("ZZZZ9999")
	requireRejection(t, err, CodeBookingNotFound)
}
