package operator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/operator/actions"
	"github.com/carson-networks/property-ledger/internal/storage"
)

type writeStorage interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage writeStorage
	queue   chan ActionItem
	log     *logrus.Logger
}

func NewOperator(s writeStorage, queue chan ActionItem, log *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		log:     log,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}
	item.response <- ActionItemResponse{err: o.execute(item.ctx, item.action)}
}

// execute runs the action in its own transaction. On any failure the transaction is rolled back
// and the action's compensation, if any, is run.
func (o *Operator) execute(ctx context.Context, action actions.IAction) (err error) {
	defer logging.StartTiming(ctx, "operatorMs")()

	writer, err := o.storage.Write(ctx)
	if err != nil {
		return err
	}

	cleanupCtx := context.WithoutCancel(ctx)
	committed := false
	defer func() {
		if r := recover(); r != nil {
			err = apperr.Internal(fmt.Errorf("action panicked: %v", r))
		}
		if committed && err == nil {
			return
		}
		if !committed {
			if rbErr := writer.Rollback(cleanupCtx); rbErr != nil {
				o.entry(ctx).WithError(rbErr).Warn("Operator.Rollback")
			}
		}
		o.compensate(cleanupCtx, action)
	}()

	if err = action.Perform(ctx, writer); err != nil {
		return err
	}

	committed = true
	return writer.Commit(ctx)
}

func (o *Operator) compensate(ctx context.Context, action actions.IAction) {
	compensator, ok := action.(actions.ICompensator)
	if !ok {
		return
	}
	if err := compensator.Compensate(ctx); err != nil {
		o.entry(ctx).WithError(err).Error("Operator.Compensate")
	}
}

func (o *Operator) entry(ctx context.Context) *logrus.Entry {
	return o.log.WithField("requestID", logging.RequestID(ctx))
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
