package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID_Shape(t *testing.T) {
	id := GenerateRequestID()

	assert.Len(t, id, 36)
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id)
}

func TestGenerateRequestID_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}
