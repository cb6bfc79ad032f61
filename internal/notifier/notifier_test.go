package notifier_test

import (
	"context"
	"errors"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/metrics"
	"github.com/feral-file/ff-hotwallet/internal/mocks"
	"github.com/feral-file/ff-hotwallet/internal/notifier"
	"github.com/feral-file/ff-hotwallet/internal/registry"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
	"github.com/feral-file/ff-hotwallet/internal/webhook"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const (
	depositAddress = "0x5555555555555555555555555555555555555555"
	otherAddress   = "0x6666666666666666666666666666666666666666"
	callbackURL    = "https://project.example.com/deposit"
	secretKey      = "project-secret"
)

var now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type testNotifierMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	registry *mocks.MockRegistry
	http     *mocks.MockHTTPClient
	clock    *mocks.MockClock
	metrics  *metrics.Metrics
	notifier notifier.Notifier
}

func setupTestNotifier(t *testing.T, pageSize int) *testNotifierMocks {
	ctrl := gomock.NewController(t)
	tm := &testNotifierMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		registry: mocks.NewMockRegistry(ctrl),
		http:     mocks.NewMockHTTPClient(ctrl),
		clock:    mocks.NewMockClock(ctrl),
		metrics:  metrics.New(),
	}
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	signer := webhook.NewSigner(adapter.NewJSON(), adapter.NewJCS())
	tm.notifier = notifier.New(
		notifier.Config{PageSize: pageSize, PoolSize: 2, QueueSize: 10},
		tm.store, tm.registry, tm.http, signer, tm.clock, tm.metrics,
	)
	return tm
}

func deposit(id uint64, receiver string) schema.Transaction {
	return schema.Transaction{
		ID:       id,
		CoinID:   1,
		TxHash:   "0xhash" + strconv.FormatUint(id, 10),
		Height:   120,
		Amount:   "1000000000000000000",
		Receiver: receiver,
		IsSend:   domain.SendStatusNotPush,
	}
}

func project() *schema.Project {
	return &schema.Project{ID: 1, CallbackURL: callbackURL, SecretKey: secretKey}
}

func (tm *testNotifierMocks) expectOwner(address string) {
	tm.registry.EXPECT().LookupAddress(address).
		Return(registry.AddressEntry{Address: address, ProjectID: 1, CoinID: 1}, true).AnyTimes()
}

func TestRunOnceDelivered(t *testing.T) {
	tm := setupTestNotifier(t, 10)
	ctx := context.Background()
	row := deposit(7, depositAddress)

	tm.store.EXPECT().ListPendingNotifications(gomock.Any(), uint64(0), 10).Return([]schema.Transaction{row}, nil)
	tm.expectOwner(depositAddress)
	tm.store.EXPECT().GetProject(gomock.Any(), uint64(1)).Return(project(), nil)

	tm.http.EXPECT().Post(gomock.Any(), callbackURL, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers map[string]string, body []byte) (*adapter.HTTPResponse, error) {
			assert.Equal(t, strconv.FormatInt(now.Unix(), 10), headers[webhook.HeaderTimestamp])
			assert.Len(t, headers[webhook.HeaderEventID], 26)
			assert.True(t, webhook.VerifySignature(secretKey, now.Unix(), headers[webhook.HeaderEventID], body, headers[webhook.HeaderSignature]))
			assert.Contains(t, string(body), `"txHash":"0xhash7"`)
			assert.Contains(t, string(body), `"blockHeight":120`)
			assert.Regexp(t, `"orderId":"[0-9a-f]{32}"`, string(body))
			return &adapter.HTTPResponse{StatusCode: 200, Body: []byte("ok")}, nil
		})
	tm.store.EXPECT().MarkTransactionPushed(gomock.Any(), uint64(7)).Return(true, nil)
	tm.store.EXPECT().CreateProjectDeposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *schema.ProjectDeposit) error {
			assert.True(t, d.Delivered)
			assert.Equal(t, uint64(7), d.TransactionID)
			assert.Equal(t, uint64(1), d.ProjectID)
			assert.Equal(t, depositAddress, d.Address)
			require.NotNil(t, d.ResponseStatus)
			assert.Equal(t, 200, *d.ResponseStatus)
			assert.Equal(t, "ok", d.ResponseBody)
			assert.Len(t, d.OrderID, 32)
			assert.NotEmpty(t, d.Payload)
			return nil
		})

	require.NoError(t, tm.notifier.RunOnce(ctx))
	assert.Equal(t, float64(1), testutil.ToFloat64(tm.metrics.Notifications.WithLabelValues("delivered")))
}

func TestRunOnceNotAcknowledged(t *testing.T) {
	ctx := context.Background()

	t.Run("non-200 status leaves row pending", func(t *testing.T) {
		tm := setupTestNotifier(t, 10)
		row := deposit(8, depositAddress)

		tm.store.EXPECT().ListPendingNotifications(gomock.Any(), uint64(0), 10).Return([]schema.Transaction{row}, nil)
		tm.expectOwner(depositAddress)
		tm.store.EXPECT().GetProject(gomock.Any(), uint64(1)).Return(project(), nil)
		tm.http.EXPECT().Post(gomock.Any(), callbackURL, gomock.Any(), gomock.Any()).
			Return(&adapter.HTTPResponse{StatusCode: 500, Body: []byte("boom")}, nil)
		tm.store.EXPECT().MarkTransactionPushed(gomock.Any(), gomock.Any()).Times(0)
		tm.store.EXPECT().CreateProjectDeposit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *schema.ProjectDeposit) error {
				assert.False(t, d.Delivered)
				require.NotNil(t, d.ResponseStatus)
				assert.Equal(t, 500, *d.ResponseStatus)
				assert.Contains(t, d.ErrorMessage, domain.ErrNotifyFailure.Error())
				return nil
			})

		require.NoError(t, tm.notifier.RunOnce(ctx))
		assert.Equal(t, float64(1), testutil.ToFloat64(tm.metrics.Notifications.WithLabelValues("rejected")))
	})

	t.Run("2xx other than 200 is not delivered", func(t *testing.T) {
		tm := setupTestNotifier(t, 10)
		row := deposit(9, depositAddress)

		tm.store.EXPECT().ListPendingNotifications(gomock.Any(), uint64(0), 10).Return([]schema.Transaction{row}, nil)
		tm.expectOwner(depositAddress)
		tm.store.EXPECT().GetProject(gomock.Any(), uint64(1)).Return(project(), nil)
		tm.http.EXPECT().Post(gomock.Any(), callbackURL, gomock.Any(), gomock.Any()).
			Return(&adapter.HTTPResponse{StatusCode: 204}, nil)
		tm.store.EXPECT().MarkTransactionPushed(gomock.Any(), gomock.Any()).Times(0)
		tm.store.EXPECT().CreateProjectDeposit(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, tm.notifier.RunOnce(ctx))
	})

	t.Run("transport error records no status", func(t *testing.T) {
		tm := setupTestNotifier(t, 10)
		row := deposit(10, depositAddress)

		tm.store.EXPECT().ListPendingNotifications(gomock.Any(), uint64(0), 10).Return([]schema.Transaction{row}, nil)
		tm.expectOwner(depositAddress)
		tm.store.EXPECT().GetProject(gomock.Any(), uint64(1)).Return(project(), nil)
		tm.http.EXPECT().Post(gomock.Any(), callbackURL, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))
		tm.store.EXPECT().CreateProjectDeposit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *schema.ProjectDeposit) error {
				assert.False(t, d.Delivered)
				assert.Nil(t, d.ResponseStatus)
				assert.Equal(t, "connection refused", d.ErrorMessage)
				return nil
			})

		require.NoError(t, tm.notifier.RunOnce(ctx))
		assert.Equal(t, float64(1), testutil.ToFloat64(tm.metrics.Notifications.WithLabelValues("failed")))
	})
}

func TestRunOnceSkips(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown receiver", func(t *testing.T) {
		tm := setupTestNotifier(t, 10)

		tm.store.EXPECT().ListPendingNotifications(gomock.Any(), uint64(0), 10).
			Return([]schema.Transaction{deposit(1, otherAddress)}, nil)
		tm.registry.EXPECT().LookupAddress(otherAddress).Return(registry.AddressEntry{}, false)

		require.NoError(t, tm.notifier.RunOnce(ctx))
		assert.Equal(t, float64(1), testutil.ToFloat64(tm.metrics.Notifications.WithLabelValues("skipped")))
	})

	t.Run("empty callback url", func(t *testing.T) {
		tm := setupTestNotifier(t, 10)

		tm.store.EXPECT().ListPendingNotifications(gomock.Any(), uint64(0), 10).
			Return([]schema.Transaction{deposit(1, depositAddress), deposit(2, depositAddress)}, nil)
		tm.expectOwner(depositAddress)
		tm.store.EXPECT().GetProject(gomock.Any(), uint64(1)).Return(&schema.Project{ID: 1}, nil).Times(1)

		require.NoError(t, tm.notifier.RunOnce(ctx))
		assert.Equal(t, float64(2), testutil.ToFloat64(tm.metrics.Notifications.WithLabelValues("skipped")))
	})

	t.Run("missing project", func(t *testing.T) {
		tm := setupTestNotifier(t, 10)

		tm.store.EXPECT().ListPendingNotifications(gomock.Any(), uint64(0), 10).
			Return([]schema.Transaction{deposit(1, depositAddress)}, nil)
		tm.expectOwner(depositAddress)
		tm.store.EXPECT().GetProject(gomock.Any(), uint64(1)).Return(nil, nil)

		require.NoError(t, tm.notifier.RunOnce(ctx))
	})
}

func TestRunOncePaging(t *testing.T) {
	tm := setupTestNotifier(t, 2)
	ctx := context.Background()

	gomock.InOrder(
		tm.store.EXPECT().ListPendingNotifications(gomock.Any(), uint64(0), 2).
			Return([]schema.Transaction{deposit(3, depositAddress), deposit(5, depositAddress)}, nil),
		tm.store.EXPECT().ListPendingNotifications(gomock.Any(), uint64(5), 2).
			Return([]schema.Transaction{deposit(9, depositAddress)}, nil),
	)
	tm.expectOwner(depositAddress)
	tm.store.EXPECT().GetProject(gomock.Any(), uint64(1)).Return(project(), nil).Times(1)
	tm.http.EXPECT().Post(gomock.Any(), callbackURL, gomock.Any(), gomock.Any()).
		Return(&adapter.HTTPResponse{StatusCode: 200}, nil).Times(3)
	tm.store.EXPECT().MarkTransactionPushed(gomock.Any(), uint64(3)).Return(true, nil)
	tm.store.EXPECT().MarkTransactionPushed(gomock.Any(), uint64(5)).Return(true, nil)
	tm.store.EXPECT().MarkTransactionPushed(gomock.Any(), uint64(9)).Return(false, nil)
	tm.store.EXPECT().CreateProjectDeposit(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	require.NoError(t, tm.notifier.RunOnce(ctx))
	assert.Equal(t, float64(3), testutil.ToFloat64(tm.metrics.Notifications.WithLabelValues("delivered")))
}

func TestRunOnceErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("list failure", func(t *testing.T) {
		tm := setupTestNotifier(t, 10)
		tm.store.EXPECT().ListPendingNotifications(gomock.Any(), uint64(0), 10).Return(nil, errors.New("db down"))

		err := tm.notifier.RunOnce(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list pending notifications")
	})

	t.Run("project lookup failure", func(t *testing.T) {
		tm := setupTestNotifier(t, 10)
		tm.store.EXPECT().ListPendingNotifications(gomock.Any(), uint64(0), 10).
			Return([]schema.Transaction{deposit(1, depositAddress)}, nil)
		tm.expectOwner(depositAddress)
		tm.store.EXPECT().GetProject(gomock.Any(), uint64(1)).Return(nil, errors.New("db down"))

		require.Error(t, tm.notifier.RunOnce(ctx))
	})

	t.Run("audit failure is not fatal", func(t *testing.T) {
		tm := setupTestNotifier(t, 10)
		tm.store.EXPECT().ListPendingNotifications(gomock.Any(), uint64(0), 10).
			Return([]schema.Transaction{deposit(1, depositAddress)}, nil)
		tm.expectOwner(depositAddress)
		tm.store.EXPECT().GetProject(gomock.Any(), uint64(1)).Return(project(), nil)
		tm.http.EXPECT().Post(gomock.Any(), callbackURL, gomock.Any(), gomock.Any()).
			Return(&adapter.HTTPResponse{StatusCode: 200}, nil)
		tm.store.EXPECT().MarkTransactionPushed(gomock.Any(), uint64(1)).Return(true, nil)
		tm.store.EXPECT().CreateProjectDeposit(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		require.NoError(t, tm.notifier.RunOnce(ctx))
	})

	t.Run("canceled context", func(t *testing.T) {
		tm := setupTestNotifier(t, 10)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, tm.notifier.RunOnce(canceled), context.Canceled)
	})
}
