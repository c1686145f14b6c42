package elastic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid parameter", InvalidParameterError{}.Error())
	assert.Equal(t, "capacity must be at least 1", InvalidParameterError{msg: "capacity must be at least 1"}.Error())

	assert.Equal(t, "table full", TableFullError{}.Error())
	assert.Equal(t, "capacity ceiling reached", TableFullError{msg: "capacity ceiling reached"}.Error())
}

func TestErrorsAsRoundTrip(t *testing.T) {
	_, err := New[int, string](0, 0.1)
	var invalid InvalidParameterError
	assert.True(t, errors.As(err, &invalid))

	tbl, _ := New[int, string](2, 0.5)
	_ = tbl.Insert(1, "a")
	err = tbl.Insert(2, "b")
	var full TableFullError
	assert.True(t, errors.As(err, &full))
}
