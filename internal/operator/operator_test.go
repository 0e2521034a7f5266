package operator

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/storage"
)

type fakeStorage struct {
	tx  *storage.MockTx
	err error
}

func (f *fakeStorage) Write(context.Context) (*storage.Writer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return storage.NewWriter(f.tx), nil
}

type fakeAction struct {
	err         error
	panicWith   any
	performed   bool
	compensated bool
}

func (a *fakeAction) Perform(context.Context, *storage.Writer) error {
	a.performed = true
	if a.panicWith != nil {
		panic(a.panicWith)
	}
	return a.err
}

func (a *fakeAction) Compensate(context.Context) error {
	a.compensated = true
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestOperator(t *testing.T) (*Operator, *storage.MockTx) {
	t.Helper()
	tx := storage.NewMockTx(t)
	return NewOperator(&fakeStorage{tx: tx}, nil, quietLogger()), tx
}

func TestExecute_Commits(t *testing.T) {
	op, tx := newTestOperator(t)
	tx.On("Commit", mock.Anything).Return(nil)

	action := &fakeAction{}
	require.NoError(t, op.execute(context.Background(), action))

	assert.True(t, action.performed)
	assert.False(t, action.compensated)
	tx.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestExecute_PerformFailureRollsBackAndCompensates(t *testing.T) {
	op, tx := newTestOperator(t)
	tx.On("Rollback", mock.Anything).Return(nil)

	action := &fakeAction{err: apperr.BusinessRule("Amount must be greater than zero")}
	err := op.execute(context.Background(), action)

	assert.True(t, apperr.Is(err, apperr.KindBusinessRule))
	assert.True(t, action.compensated)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestExecute_CommitFailureCompensates(t *testing.T) {
	op, tx := newTestOperator(t)
	tx.On("Commit", mock.Anything).Return(errors.New("connection lost"))

	action := &fakeAction{}
	err := op.execute(context.Background(), action)

	assert.True(t, apperr.Is(err, apperr.KindPersistence))
	assert.True(t, action.compensated)
	tx.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestExecute_PanicBecomesInternalError(t *testing.T) {
	op, tx := newTestOperator(t)
	tx.On("Rollback", mock.Anything).Return(nil)

	action := &fakeAction{panicWith: "boom"}
	err := op.execute(context.Background(), action)

	assert.True(t, apperr.Is(err, apperr.KindInternal))
	assert.True(t, action.compensated)
}

func TestExecute_BeginFailure(t *testing.T) {
	op := NewOperator(&fakeStorage{err: errors.New("pool exhausted")}, nil, quietLogger())

	action := &fakeAction{}
	assert.Error(t, op.execute(context.Background(), action))
	assert.False(t, action.performed)
}

func TestDelegator_Process(t *testing.T) {
	tx := storage.NewMockTx(t)
	tx.On("Commit", mock.Anything).Return(nil).Twice()
	delegator := NewOperatorDelegator(&fakeStorage{tx: tx}, quietLogger(), 2)
	delegator.Start()
	defer delegator.Stop()

	first, second := &fakeAction{}, &fakeAction{}
	assert.NoError(t, delegator.Process(context.Background(), first))
	assert.NoError(t, delegator.Process(context.Background(), second))
	assert.True(t, first.performed)
	assert.True(t, second.performed)
}

func TestDelegator_CancelledContextSkipsAction(t *testing.T) {
	delegator := NewOperatorDelegator(&fakeStorage{tx: storage.NewMockTx(t)}, quietLogger(), 1)
	delegator.Start()
	defer delegator.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	cancel()

	action := &fakeAction{}
	assert.ErrorIs(t, delegator.Process(ctx, action), context.Canceled)
	delegator.Stop()
	assert.False(t, action.performed)
}
