package notifier

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/domain"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/metrics"
	"github.com/feral-file/ff-hotwallet/internal/registry"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/store/schema"
	"github.com/feral-file/ff-hotwallet/internal/webhook"
)

const (
	DefaultPageSize  = 500
	DefaultPoolSize  = 10
	DefaultQueueSize = 1000
)

// Delivery outcomes recorded in metrics
const (
	outcomeDelivered = "delivered"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
	outcomeSkipped   = "skipped"
)

// Config holds the notifier configuration
type Config struct {
	// PageSize is the number of pending rows read per query
	PageSize int
	// PoolSize bounds concurrent deliveries
	PoolSize int
	// QueueSize bounds deliveries waiting for a worker
	QueueSize int
}

// Notifier announces newly ingested deposits to project callbacks
//
//go:generate mockgen -source=notifier.go -destination=../mocks/notifier.go -package=mocks -mock_names=Notifier=MockNotifier
type Notifier interface {
	// RunOnce delivers every pending deposit once
	RunOnce(ctx context.Context) error
}

type notifier struct {
	config   Config
	store    store.Store
	registry registry.Registry
	http     adapter.HTTPClient
	signer   *webhook.Signer
	clock    adapter.Clock
	metrics  *metrics.Metrics
}

// New creates a new deposit notifier
func New(cfg Config, st store.Store, reg registry.Registry, httpClient adapter.HTTPClient, signer *webhook.Signer, clock adapter.Clock, m *metrics.Metrics) Notifier {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = DefaultPoolSize
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}

	return &notifier{
		config:   cfg,
		store:    st,
		registry: reg,
		http:     httpClient,
		signer:   signer,
		clock:    clock,
		metrics:  m,
	}
}

// projectCache holds project rows for the duration of one cycle
type projectCache struct {
	mu       sync.Mutex
	projects map[uint64]*schema.Project
}

func (c *projectCache) get(ctx context.Context, st store.Store, projectID uint64) (*schema.Project, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if project, ok := c.projects[projectID]; ok {
		return project, nil
	}

	project, err := st.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	c.projects[projectID] = project
	return project, nil
}

// RunOnce pages through rows waiting to be pushed in id order and delivers them concurrently
func (n *notifier) RunOnce(ctx context.Context) error {
	cache := &projectCache{projects: make(map[uint64]*schema.Project)}

	var afterID uint64
	var total int
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rows, err := n.store.ListPendingNotifications(ctx, afterID, n.config.PageSize)
		if err != nil {
			return fmt.Errorf("failed to list pending notifications: %w", err)
		}
		if len(rows) == 0 {
			break
		}

		if err := n.deliverPage(ctx, cache, rows); err != nil {
			return err
		}

		total += len(rows)
		afterID = rows[len(rows)-1].ID
		if len(rows) < n.config.PageSize {
			break
		}
	}

	if total > 0 {
		logger.InfoCtx(ctx, "Notification cycle completed", zap.Int("pending", total))
	}
	return nil
}

// deliverPage resolves the owner of each row and posts the callbacks on a bounded pool
func (n *notifier) deliverPage(ctx context.Context, cache *projectCache, rows []schema.Transaction) error {
	pool := pond.NewPool(
		n.config.PoolSize,
		pond.WithQueueSize(n.config.QueueSize),
		pond.WithContext(ctx),
	)

	for i := range rows {
		row := rows[i]

		entry, ok := n.registry.LookupAddress(row.Receiver)
		if !ok {
			logger.DebugCtx(ctx, "Skipping deposit to unknown address",
				zap.String("txHash", row.TxHash),
				zap.String("address", row.Receiver))
			n.metrics.Notifications.WithLabelValues(outcomeSkipped).Inc()
			continue
		}

		project, err := cache.get(ctx, n.store, entry.ProjectID)
		if err != nil {
			pool.StopAndWait()
			return fmt.Errorf("failed to get project %d: %w", entry.ProjectID, err)
		}
		if project == nil || project.CallbackURL == "" {
			logger.DebugCtx(ctx, "Skipping deposit without callback",
				zap.String("txHash", row.TxHash),
				zap.Uint64("projectID", entry.ProjectID))
			n.metrics.Notifications.WithLabelValues(outcomeSkipped).Inc()
			continue
		}

		pool.Submit(func() {
			n.deliver(ctx, project, row)
		})
	}

	pool.StopAndWait()
	return nil
}

// deliver posts one signed callback and marks the row pushed on HTTP 200
func (n *notifier) deliver(ctx context.Context, project *schema.Project, row schema.Transaction) {
	payload := webhook.DepositPayload{
		TxHash:      row.TxHash,
		BlockHeight: row.Height,
		Amount:      row.Amount,
		Address:     row.Receiver,
		OrderID:     strings.ReplaceAll(uuid.NewString(), "-", ""),
	}
	eventID := ulid.Make().String()

	signed, err := n.signer.Sign(project.SecretKey, eventID, n.clock.Now().Unix(), payload)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to sign callback: %w", err), zap.String("txHash", row.TxHash))
		n.metrics.Notifications.WithLabelValues(outcomeFailed).Inc()
		return
	}

	result := n.post(ctx, project.CallbackURL, signed)
	if result.Success {
		pushed, err := n.store.MarkTransactionPushed(ctx, row.ID)
		switch {
		case err != nil:
			logger.ErrorCtx(ctx, fmt.Errorf("failed to mark transaction pushed: %w", err), zap.Uint64("transactionID", row.ID))
		case !pushed:
			logger.WarnCtx(ctx, "Transaction was no longer pending", zap.Uint64("transactionID", row.ID))
		}
		n.metrics.Notifications.WithLabelValues(outcomeDelivered).Inc()
	} else {
		logger.WarnCtx(ctx, domain.ErrNotifyFailure.Error(),
			zap.Uint64("projectID", project.ID),
			zap.String("txHash", row.TxHash),
			zap.Int("statusCode", result.StatusCode),
			zap.String("error", result.Error))
		if result.StatusCode != 0 {
			n.metrics.Notifications.WithLabelValues(outcomeRejected).Inc()
		} else {
			n.metrics.Notifications.WithLabelValues(outcomeFailed).Inc()
		}
	}

	n.audit(ctx, project, row, payload, signed, result)
}

// post sends the request once; only HTTP 200 counts as delivered
func (n *notifier) post(ctx context.Context, url string, signed *webhook.SignedRequest) webhook.DeliveryResult {
	resp, err := n.http.Post(ctx, url, signed.Headers, signed.Body)
	if err != nil {
		return webhook.DeliveryResult{Error: err.Error()}
	}

	result := webhook.DeliveryResult{
		Success:    resp.StatusCode == http.StatusOK,
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
	}
	if !result.Success {
		result.Error = fmt.Sprintf("%s: status %d", domain.ErrNotifyFailure, resp.StatusCode)
	}
	return result
}

// audit appends the attempt to project_deposits. Failures are logged only.
func (n *notifier) audit(ctx context.Context, project *schema.Project, row schema.Transaction, payload webhook.DepositPayload, signed *webhook.SignedRequest, result webhook.DeliveryResult) {
	deposit := &schema.ProjectDeposit{
		ProjectID:     project.ID,
		TransactionID: row.ID,
		TxHash:        row.TxHash,
		OrderID:       payload.OrderID,
		EventID:       signed.EventID,
		Address:       row.Receiver,
		Delivered:     result.Success,
		Payload:       datatypes.JSON(signed.Body),
		ResponseBody:  result.Body,
		ErrorMessage:  result.Error,
	}
	if result.StatusCode != 0 {
		status := result.StatusCode
		deposit.ResponseStatus = &status
	}

	if err := n.store.CreateProjectDeposit(ctx, deposit); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record callback attempt: %w", err), zap.String("txHash", row.TxHash))
	}
}
