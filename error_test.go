package noveltrans_test

import (
	"errors"
	"testing"

	"github.com/mwielbut/noveltrans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := noveltrans.Errorf(noveltrans.ENOTFOUND, "rule set %q not found", "test")

	assert.Equal(t, noveltrans.ENOTFOUND, noveltrans.ErrorCode(err))
	assert.Equal(t, "rule set \"test\" not found", noveltrans.ErrorMessage(err))
}

func TestWrapErrorf(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := noveltrans.WrapErrorf(cause, noveltrans.EEXHAUSTED, "max retries exceeded")

	assert.Equal(t, noveltrans.EEXHAUSTED, noveltrans.ErrorCode(err))
	assert.Equal(t, "max retries exceeded", noveltrans.ErrorMessage(err))
	require.ErrorIs(t, err, cause)
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, noveltrans.ErrorCode(nil))
}

func TestErrorCode_UnclassifiedError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, noveltrans.EINTERNAL, noveltrans.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, noveltrans.ErrorMessage(nil))
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	retryable := []string{noveltrans.ERATELIMITED, noveltrans.EUNAVAILABLE, noveltrans.EINTERNAL}
	for _, code := range retryable {
		assert.True(t, noveltrans.IsRetryable(noveltrans.Errorf(code, "x")), "code %s", code)
	}

	terminal := []string{
		noveltrans.EINVALID,
		noveltrans.ENOTFOUND,
		noveltrans.EUNAUTHORIZED,
		noveltrans.EBLOCKED,
		noveltrans.ETRUNCATED,
		noveltrans.EINSUFFICIENT,
		noveltrans.EEXHAUSTED,
	}
	for _, code := range terminal {
		assert.False(t, noveltrans.IsRetryable(noveltrans.Errorf(code, "x")), "code %s", code)
	}
}

func TestIsRetryable_UnclassifiedErrorIsRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, noveltrans.IsRetryable(errors.New("something broke upstream")))
}
