package describe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	ok := ResultOf("label", nil)
	assert.True(t, ok.Ok())
	assert.Equal(t, "label", ok.OrElse("fallback"))

	failed := ResultOf("ignored", errors.New("boom"))
	assert.False(t, failed.Ok())
	assert.Equal(t, "", failed.Value)
	assert.Equal(t, "fallback", failed.OrElse("fallback"))

	v, err := failed.Unwrap()
	assert.Empty(t, v)
	assert.EqualError(t, err, "boom")
}
