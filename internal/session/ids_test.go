package session

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var idRe = regexp.MustCompile(`^r_[0-9a-z]{10}$`)

func TestNewIDFormat(t *testing.T) {
	for range 100 {
		id := NewID()
		assert.Regexp(t, idRe, id)
		assert.Len(t, id, 12)
	}
}

func TestNewIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		id := NewID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewClientActivityID(t *testing.T) {
	id := NewClientActivityID()
	assert.Len(t, id, 10)
	assert.Regexp(t, `^[0-9a-z]{10}$`, id)
}
