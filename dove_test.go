package dove_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/dove"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := dove.Errorf(dove.ENOTFOUND, "template %q not found", "index.html")

	assert.Equal(t, dove.ENOTFOUND, dove.ErrorCode(err))
	assert.Equal(t, "template \"index.html\" not found", dove.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load config: %w", dove.Errorf(dove.EINVALID, "site title required"))

	assert.Equal(t, dove.EINVALID, dove.ErrorCode(err))
	assert.Equal(t, "site title required", dove.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, dove.EINTERNAL, dove.ErrorCode(err))
	assert.Equal(t, "Internal error.", dove.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, dove.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, dove.ErrorMessage(nil))
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("failed to load templates: %w", dove.Errorf(dove.ENOTFOUND, "themes/x is not a directory"))

	assert.Equal(t, "failed to load templates: themes/x is not a directory", err.Error())
}
