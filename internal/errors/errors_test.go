package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestIs_ThroughWrap(t *testing.T) {
	wrapped := Wrap(errSecond, "loading planet")

	assert.True(t, Is(wrapped, errSecond))
	assert.False(t, Is(wrapped, errFirst))
}

func TestWrap_KeepsCauseAndStack(t *testing.T) {
	err := Wrapf(errFirst, "planet %d", 7)

	assert.True(t, Is(err, errFirst))
	assert.Equal(t, "planet 7: first", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsCauseAndStack")
}
