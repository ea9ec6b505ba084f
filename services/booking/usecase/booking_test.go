package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deveshjhaq/gaddi24x7/internal/pkg/models"
	"github.com/deveshjhaq/gaddi24x7/services/booking"
	"github.com/deveshjhaq/gaddi24x7/services/booking/mocks"
	"github.com/deveshjhaq/gaddi24x7/services/users"
)

func testConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			SearchTimeout: 2,
			SearchRetries: 1,
			OfferTTL:      1,
		},
		Booking: models.BookingConfig{
			FreeCancelWindow: 60,
			CancellationFee:  50,
			CommissionRate:   0.20,
		},
	}
}

type ucMocks struct {
	repo     *mocks.MockBookingRepo
	gw       *mocks.MockBookingGW
	dispatch *mocks.MockDispatchService
	fares    *mocks.MockFareService
	wallet   *mocks.MockWalletService
	users    *mocks.MockUserService
}

func newUC(t *testing.T) (booking.BookingUC, *ucMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := &ucMocks{
		repo:     mocks.NewMockBookingRepo(ctrl),
		gw:       mocks.NewMockBookingGW(ctrl),
		dispatch: mocks.NewMockDispatchService(ctrl),
		fares:    mocks.NewMockFareService(ctrl),
		wallet:   mocks.NewMockWalletService(ctrl),
		users:    mocks.NewMockUserService(ctrl),
	}
	uc := NewBookingUC(testConfig(), m.repo, m.gw, m.dispatch, m.fares, m.wallet, m.users)
	return uc, m, ctrl
}

func createRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		PickupLocation: "Connaught Place",
		DropLocation:   "IGI Airport T3",
		PickupLat:      28.6315,
		PickupLng:      77.2167,
		VehicleClassID: "sedan",
		TripTypeID:     "one-way",
		DistanceKm:     10,
		DurationMin:    20,
	}
}

func TestCreateBooking(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	m.repo.EXPECT().GetActiveByCustomer(gomock.Any(), customerID).Return(nil, nil)
	m.fares.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(&models.Quote{
		VehicleClassID: "sedan",
		TripTypeID:     "one-way",
		Amount:         340,
	}, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	b, err := uc.CreateBooking(context.Background(), customerID, createRequest())
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirming, b.Status)
	assert.Equal(t, 340, b.QuotedFare)
	assert.Equal(t, 1, b.StatusVersion)
	assert.Empty(t, b.Passcode, "passcode is not issued until a driver is matched")
}

func TestCreateBooking_ActiveBookingExists(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	m.repo.EXPECT().GetActiveByCustomer(gomock.Any(), customerID).
		Return(&models.Booking{ID: uuid.New(), Status: models.BookingStatusSearching}, nil)

	_, err := uc.CreateBooking(context.Background(), customerID, createRequest())
	assert.ErrorIs(t, err, booking.ErrActiveBookingExists)
}

func TestCreateBooking_InvalidInput(t *testing.T) {
	uc, _, ctrl := newUC(t)
	defer ctrl.Finish()

	req := createRequest()
	req.DropLocation = ""
	_, err := uc.CreateBooking(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, booking.ErrInvalidBookingInput)

	req = createRequest()
	req.DistanceKm = 0
	_, err = uc.CreateBooking(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, booking.ErrInvalidBookingInput)
}

func TestConfirmBooking_MatchesDriver(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	driverID := uuid.New()
	b := &models.Booking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Status:        models.BookingStatusConfirming,
		StatusVersion: 1,
		QuotedFare:    340,
	}

	matched := make(chan string, 1)

	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusConfirming, models.BookingStatusSearching, "customer", gomock.Any()).
		DoAndReturn(func(_ context.Context, bk *models.Booking, _, to models.BookingStatus, _, _ string) error {
			bk.Status = to
			bk.StatusVersion++
			return nil
		})
	m.gw.EXPECT().PublishBookingConfirmed(gomock.Any(), gomock.Any()).Return(nil)

	m.users.EXPECT().GetProfile(gomock.Any(), customerID).Return(&models.User{FullName: "Asha"}, nil)
	m.dispatch.EXPECT().FindDriver(gomock.Any(), gomock.Any()).
		Return(&models.DriverAssignment{DriverID: driverID, Name: "Ravi"}, nil)

	searching := *b
	searching.Status = models.BookingStatusSearching
	searching.StatusVersion = 2
	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(&searching, nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusSearching, models.BookingStatusMatched, "system", gomock.Any()).
		Return(nil)
	m.gw.EXPECT().PublishMatchFound(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bk *models.Booking) error {
			matched <- bk.Passcode
			return nil
		})

	confirmed, err := uc.ConfirmBooking(context.Background(), customerID, b.ID,
		models.ConfirmBookingRequest{PaymentMethod: models.PaymentMethodWallet})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusSearching, confirmed.Status)
	assert.Empty(t, confirmed.Passcode, "passcode is not issued until a driver is matched")

	select {
	case passcode := <-matched:
		assert.Len(t, passcode, 4)
	case <-time.After(3 * time.Second):
		t.Fatal("driver was never matched")
	}
}

func TestConfirmBooking_WrongStatus(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	b := &models.Booking{ID: uuid.New(), CustomerID: customerID, Status: models.BookingStatusSearching}
	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)

	_, err := uc.ConfirmBooking(context.Background(), customerID, b.ID,
		models.ConfirmBookingRequest{PaymentMethod: models.PaymentMethodCash})
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}

func TestConfirmBooking_NotOwner(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	b := &models.Booking{ID: uuid.New(), CustomerID: uuid.New(), Status: models.BookingStatusConfirming}
	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)

	_, err := uc.ConfirmBooking(context.Background(), uuid.New(), b.ID,
		models.ConfirmBookingRequest{PaymentMethod: models.PaymentMethodCash})
	assert.ErrorIs(t, err, booking.ErrNotBookingOwner)
}

func TestConfirmBooking_SearchFailsWithoutDriver(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	b := &models.Booking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Status:        models.BookingStatusConfirming,
		StatusVersion: 1,
	}

	failed := make(chan struct{})

	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusConfirming, models.BookingStatusSearching, "customer", gomock.Any()).
		Return(nil)
	m.gw.EXPECT().PublishBookingConfirmed(gomock.Any(), gomock.Any()).Return(nil)

	m.users.EXPECT().GetProfile(gomock.Any(), customerID).Return(&models.User{FullName: "Asha"}, nil)
	m.dispatch.EXPECT().FindDriver(gomock.Any(), gomock.Any()).
		Return(nil, booking.ErrNoDriverAvailable)

	searching := *b
	searching.Status = models.BookingStatusSearching
	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(&searching, nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusSearching, models.BookingStatusFailed, "system", gomock.Any()).
		Return(nil)
	m.gw.EXPECT().PublishBookingFailed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Booking) error {
			close(failed)
			return nil
		})

	_, err := uc.ConfirmBooking(context.Background(), customerID, b.ID,
		models.ConfirmBookingRequest{PaymentMethod: models.PaymentMethodCash})
	require.NoError(t, err)

	select {
	case <-failed:
	case <-time.After(3 * time.Second):
		t.Fatal("booking was never marked failed")
	}
}

func TestStartRide(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	b := &models.Booking{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     models.BookingStatusMatched,
		Passcode:   "4821",
		Driver:     &models.DriverAssignment{DriverID: driverID},
	}

	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusMatched, models.BookingStatusInProgress, "driver", gomock.Any()).
		Return(nil)
	m.gw.EXPECT().PublishRideStarted(gomock.Any(), gomock.Any()).Return(nil)

	started, err := uc.StartRide(context.Background(), driverID, b.ID, "4821")
	require.NoError(t, err)
	assert.NotNil(t, started.StartedAt)
}

func TestStartRide_WrongPasscode(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	b := &models.Booking{
		ID:       uuid.New(),
		Status:   models.BookingStatusMatched,
		Passcode: "4821",
		Driver:   &models.DriverAssignment{DriverID: driverID},
	}
	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)

	_, err := uc.StartRide(context.Background(), driverID, b.ID, "0000")
	assert.ErrorIs(t, err, booking.ErrInvalidPasscode)
}

func TestStartRide_BeforeMatchIsRejected(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	b := &models.Booking{
		ID:       uuid.New(),
		Status:   models.BookingStatusSearching,
		Passcode: "4821",
		Driver:   &models.DriverAssignment{DriverID: driverID},
	}
	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)

	_, err := uc.StartRide(context.Background(), driverID, b.ID, "4821")
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}

func TestCompleteRide_WalletSettlement(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	customerID := uuid.New()
	b := &models.Booking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Status:        models.BookingStatusInProgress,
		PaymentMethod: models.PaymentMethodWallet,
		Driver:        &models.DriverAssignment{DriverID: driverID},
	}

	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	m.fares.EXPECT().GenerateBill(gomock.Any(), gomock.Any()).
		Return(&models.Bill{Total: 612, Currency: "INR"}, nil)
	m.wallet.EXPECT().
		Debit(gomock.Any(), customerID, 612, models.TransactionRidePayment, b.ID.String()).
		Return(nil)
	// 20% commission: 612 - 122 = 490 to the driver
	m.wallet.EXPECT().
		Credit(gomock.Any(), driverID, 490, models.TransactionDriverEarning, b.ID.String()).
		Return(nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusInProgress, models.BookingStatusCompleted, "driver", gomock.Any()).
		Return(nil)
	m.dispatch.EXPECT().ReleaseDriver(gomock.Any(), driverID).Return(nil)
	m.gw.EXPECT().PublishRideCompleted(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.CompleteRide(context.Background(), driverID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 612, result.Booking.FinalFare)
	assert.Equal(t, 612, result.Bill.Total)
}

func TestCompleteRide_InsufficientBalanceLeavesRideRunning(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	customerID := uuid.New()
	b := &models.Booking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Status:        models.BookingStatusInProgress,
		PaymentMethod: models.PaymentMethodWallet,
		Driver:        &models.DriverAssignment{DriverID: driverID},
	}

	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	m.fares.EXPECT().GenerateBill(gomock.Any(), gomock.Any()).
		Return(&models.Bill{Total: 612}, nil)
	m.wallet.EXPECT().
		Debit(gomock.Any(), customerID, 612, models.TransactionRidePayment, b.ID.String()).
		Return(users.ErrInsufficientBalance)
	// no UpdateStatus: the booking stays IN_PROGRESS so the rider can
	// top up and the driver can retry

	_, err := uc.CompleteRide(context.Background(), driverID, b.ID)
	assert.ErrorIs(t, err, users.ErrInsufficientBalance)
}

func TestCompleteRide_CashSkipsWallet(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	b := &models.Booking{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		Status:        models.BookingStatusInProgress,
		PaymentMethod: models.PaymentMethodCash,
		Driver:        &models.DriverAssignment{DriverID: driverID},
	}

	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	m.fares.EXPECT().GenerateBill(gomock.Any(), gomock.Any()).
		Return(&models.Bill{Total: 340}, nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusInProgress, models.BookingStatusCompleted, "driver", gomock.Any()).
		Return(nil)
	m.dispatch.EXPECT().ReleaseDriver(gomock.Any(), driverID).Return(nil)
	m.gw.EXPECT().PublishRideCompleted(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.CompleteRide(context.Background(), driverID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 340, result.Booking.FinalFare)
}

func TestCancelBooking_FreeWithinWindow(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	confirmedAt := time.Now().Add(-10 * time.Second)
	b := &models.Booking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Status:        models.BookingStatusSearching,
		PaymentMethod: models.PaymentMethodWallet,
		ConfirmedAt:   &confirmedAt,
	}

	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusSearching, models.BookingStatusCancelled, "customer", "changed plans").
		Return(nil)
	m.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any(), "customer", 0).Return(nil)

	cancelled, err := uc.CancelBooking(context.Background(), customerID, b.ID, "changed plans")
	require.NoError(t, err)
	assert.NotNil(t, cancelled.CancelledAt)
}

func TestCancelBooking_FeeAfterWindow(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	driverID := uuid.New()
	confirmedAt := time.Now().Add(-5 * time.Minute)
	b := &models.Booking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Status:        models.BookingStatusMatched,
		PaymentMethod: models.PaymentMethodWallet,
		ConfirmedAt:   &confirmedAt,
		Driver:        &models.DriverAssignment{DriverID: driverID},
	}

	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusMatched, models.BookingStatusCancelled, "customer", gomock.Any()).
		Return(nil)
	m.wallet.EXPECT().
		Debit(gomock.Any(), customerID, 50, models.TransactionCancellationFee, b.ID.String()).
		Return(nil)
	m.dispatch.EXPECT().ReleaseDriver(gomock.Any(), driverID).Return(nil)
	m.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any(), "customer", 50).Return(nil)

	_, err := uc.CancelBooking(context.Background(), customerID, b.ID, "waited too long")
	require.NoError(t, err)
}

func TestCancelBooking_FeeDueWhenDebitFails(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	confirmedAt := time.Now().Add(-5 * time.Minute)
	b := &models.Booking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Status:        models.BookingStatusSearching,
		PaymentMethod: models.PaymentMethodWallet,
		ConfirmedAt:   &confirmedAt,
	}

	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusSearching, models.BookingStatusCancelled, "customer", gomock.Any()).
		Return(nil)
	m.wallet.EXPECT().
		Debit(gomock.Any(), customerID, 50, models.TransactionCancellationFee, b.ID.String()).
		Return(users.ErrInsufficientBalance)
	// the fee stays on the event as an amount due even though the debit failed
	m.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any(), "customer", 50).Return(nil)

	_, err := uc.CancelBooking(context.Background(), customerID, b.ID, "waited too long")
	require.NoError(t, err)
}

func TestCancelBooking_ByDriverIsFree(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	confirmedAt := time.Now().Add(-5 * time.Minute)
	b := &models.Booking{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		Status:        models.BookingStatusMatched,
		PaymentMethod: models.PaymentMethodWallet,
		ConfirmedAt:   &confirmedAt,
		Driver:        &models.DriverAssignment{DriverID: driverID},
	}

	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusMatched, models.BookingStatusCancelled, "driver", gomock.Any()).
		Return(nil)
	m.dispatch.EXPECT().ReleaseDriver(gomock.Any(), driverID).Return(nil)
	m.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any(), "driver", 0).Return(nil)

	_, err := uc.CancelBooking(context.Background(), driverID, b.ID, "vehicle breakdown")
	require.NoError(t, err)
}

func TestCancelBooking_CompletedIsFinal(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	b := &models.Booking{
		ID:         uuid.New(),
		CustomerID: customerID,
		Status:     models.BookingStatusCompleted,
	}
	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)

	_, err := uc.CancelBooking(context.Background(), customerID, b.ID, "oops")
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}

func TestCancelBooking_StopsRunningSearch(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	b := &models.Booking{
		ID:            uuid.New(),
		CustomerID:    customerID,
		Status:        models.BookingStatusConfirming,
		StatusVersion: 1,
	}

	searchDone := make(chan struct{})

	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusConfirming, models.BookingStatusSearching, "customer", gomock.Any()).
		DoAndReturn(func(_ context.Context, bk *models.Booking, _, to models.BookingStatus, _, _ string) error {
			bk.Status = to
			return nil
		})
	m.gw.EXPECT().PublishBookingConfirmed(gomock.Any(), gomock.Any()).Return(nil)
	m.users.EXPECT().GetProfile(gomock.Any(), customerID).Return(&models.User{FullName: "Asha"}, nil)

	// the search blocks until the rider's cancellation cancels its context
	m.dispatch.EXPECT().FindDriver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.DispatchRequest) (*models.DriverAssignment, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	searching := *b
	searching.Status = models.BookingStatusSearching
	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(&searching, nil)
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusSearching, models.BookingStatusCancelled, "customer", gomock.Any()).
		Return(nil)
	m.gw.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any(), "customer", 0).Return(nil)

	// after cancellation the timer goroutine re-reads the booking, sees it
	// left SEARCHING, and must not mark it FAILED
	cancelledCopy := *b
	cancelledCopy.Status = models.BookingStatusCancelled
	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (*models.Booking, error) {
			defer close(searchDone)
			return &cancelledCopy, nil
		})

	_, err := uc.ConfirmBooking(context.Background(), customerID, b.ID,
		models.ConfirmBookingRequest{PaymentMethod: models.PaymentMethodCash})
	require.NoError(t, err)

	_, err = uc.CancelBooking(context.Background(), customerID, b.ID, "changed plans")
	require.NoError(t, err)

	select {
	case <-searchDone:
	case <-time.After(3 * time.Second):
		t.Fatal("search goroutine never observed the cancellation")
	}
}

func TestAssignDriver_IssuesPasscode(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	b := &models.Booking{
		ID:            uuid.New(),
		Status:        models.BookingStatusSearching,
		StatusVersion: 2,
	}
	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)

	var persisted string
	m.repo.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any(), models.BookingStatusSearching, models.BookingStatusMatched, "system", gomock.Any()).
		DoAndReturn(func(_ context.Context, bk *models.Booking, _, to models.BookingStatus, _, _ string) error {
			persisted = bk.Passcode
			bk.Status = to
			bk.StatusVersion++
			return nil
		})
	m.gw.EXPECT().PublishMatchFound(gomock.Any(), gomock.Any()).Return(nil)

	matched, err := uc.AssignDriver(context.Background(), b.ID, &models.DriverAssignment{DriverID: uuid.New(), Name: "Ravi"})
	require.NoError(t, err)
	assert.Len(t, matched.Passcode, 4)
	assert.Equal(t, matched.Passcode, persisted, "passcode must be written with the MATCHED transition")
	assert.NotNil(t, matched.MatchedAt)
}

func TestAssignDriver_AfterCancelIsRejected(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	b := &models.Booking{
		ID:     uuid.New(),
		Status: models.BookingStatusCancelled,
	}
	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)

	_, err := uc.AssignDriver(context.Background(), b.ID, &models.DriverAssignment{DriverID: uuid.New()})
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}

func TestGetBooking_OwnerChecks(t *testing.T) {
	uc, m, ctrl := newUC(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	driverID := uuid.New()
	b := &models.Booking{
		ID:         uuid.New(),
		CustomerID: customerID,
		Driver:     &models.DriverAssignment{DriverID: driverID},
	}

	m.repo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil).Times(3)

	_, err := uc.GetBooking(context.Background(), customerID, b.ID)
	assert.NoError(t, err)

	_, err = uc.GetBooking(context.Background(), driverID, b.ID)
	assert.NoError(t, err)

	_, err = uc.GetBooking(context.Background(), uuid.New(), b.ID)
	assert.ErrorIs(t, err, booking.ErrNotBookingOwner)
}
