package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:      http.StatusNotFound,
		KindBusinessRule:  http.StatusBadRequest,
		KindForeignKey:    http.StatusBadRequest,
		KindFileOperation: http.StatusInternalServerError,
		KindPersistence:   http.StatusInternalServerError,
		KindValidation:    http.StatusUnprocessableEntity,
		KindInternal:      http.StatusInternalServerError,
		Kind("Bogus"):     http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, kind.Status(), string(kind))
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("Credit", "abc")

	assert.Equal(t, KindNotFound, err.Kind)
	assert.Equal(t, "Credit not found", err.Error())
	assert.Equal(t, "Credit", err.Details["resource_type"])
	assert.Equal(t, "abc", err.Details["resource_id"])
}

func TestText_FormatsArgs(t *testing.T) {
	err := ForeignKey("Credit", "Transaction", "Cannot delete credit with %d linked transactions", 3)

	assert.Equal(t, "Cannot delete credit with 3 linked transactions", err.Text())
	assert.Equal(t, "Cannot delete credit with %d linked transactions", err.Message)
	assert.Equal(t, "Credit", err.Details["parent"])
}

func TestPersistence_KeepsCauseOutOfText(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := Persistence("create", cause)

	assert.Equal(t, "Database operation failed", err.Text())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "create", err.Details["operation"])
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", BusinessRule("Amount must be greater than zero"))

	assert.Equal(t, KindBusinessRule, KindOf(wrapped))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.True(t, Is(wrapped, KindBusinessRule))
	assert.False(t, Is(nil, KindBusinessRule))
}
