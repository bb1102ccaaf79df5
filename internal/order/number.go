package order

import (
	"context"
	"fmt"
	"time"

	"github.com/mohammad516/lc-website/internal/logger"
	"github.com/mohammad516/lc-website/internal/metrics"

	"go.uber.org/zap"
)

const numberPrefix = "ORD"

// numberStore is the slice of the repository the assigner needs: count
// today's orders and look one up by exact number.
type numberStore interface {
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int, error)
	FindByOrderNumber(ctx context.Context, number string) (*Order, error)
}

// NumberAssigner mints human-readable order numbers in the form
// ORD-YYYYMMDD-NNNN, sequence starting at 0001 each day.
type NumberAssigner struct {
	store numberStore
	now   func() time.Time
}

func NewNumberAssigner(store numberStore) *NumberAssigner {
	return &NumberAssigner{store: store, now: time.Now}
}

func NewNumberAssignerWithClock(store numberStore, now func() time.Time) *NumberAssigner {
	return &NumberAssigner{store: store, now: now}
}

// Assign computes the next number from today's order count. The count
// and the later insert are not atomic, so two concurrent checkouts can
// read the same count; when the candidate already exists the next slot
// (count+2) is taken without re-checking. That keeps numbering behavior
// stable for the rare race instead of guaranteeing uniqueness.
func (a *NumberAssigner) Assign(ctx context.Context) (string, error) {
	now := a.now()

	// Date portion is the UTC calendar date; the day window for counting
	// uses the server's local day, matching how orders have always been
	// numbered.
	dateStr := now.UTC().Format("20060102")

	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	endOfDay := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), now.Location())

	todayCount, err := a.store.CountCreatedBetween(ctx, startOfDay, endOfDay)
	if err != nil {
		return "", err
	}

	candidate := fmt.Sprintf("%s-%s-%04d", numberPrefix, dateStr, todayCount+1)

	existing, err := a.store.FindByOrderNumber(ctx, candidate)
	if err != nil {
		return "", err
	}

	if existing != nil {
		metrics.OrderNumberConflicts.Inc()
		logger.FromCtx(ctx).Warn("order number collision, taking next slot",
			zap.String("candidate", candidate),
		)
		return fmt.Sprintf("%s-%s-%04d", numberPrefix, dateStr, todayCount+2), nil
	}

	return candidate, nil
}
