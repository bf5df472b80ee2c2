package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/uuid"
)

func TestGoogleUUIDGenerator_Unique(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()
	a, b := gen.New(), gen.New()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestSequence(t *testing.T) {
	seq := &uuid.Sequence{Prefix: "cond"}
	assert.Equal(t, "cond-1", seq.New())
	assert.Equal(t, "cond-2", seq.New())
}
