package elastic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	assert.Equal(t, byte(0xab), fingerprint(0xab00000000000000))
	assert.Equal(t, byte(0x00), fingerprint(0x00ffffffffffffff))
}

func TestSlotZeroValueIsEmpty(t *testing.T) {
	var s slot[int, string]
	assert.Equal(t, emptyState, s.state)
}
