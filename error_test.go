package tokcount_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/tokcount"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := tokcount.Errorf(tokcount.ENOTFOUND, "cache entry %q not found", "a.go")

	assert.Equal(t, tokcount.ENOTFOUND, tokcount.ErrorCode(err))
	assert.Equal(t, "cache entry \"a.go\" not found", tokcount.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("count file: %w", tokcount.Errorf(tokcount.EINVALID, "bad"))

	assert.Equal(t, tokcount.EINVALID, tokcount.ErrorCode(err))
	assert.Equal(t, "bad", tokcount.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, tokcount.EINTERNAL, tokcount.ErrorCode(err))
	assert.Equal(t, "Internal error", tokcount.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tokcount.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tokcount.ErrorMessage(nil))
}
