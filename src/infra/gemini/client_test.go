package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"inkpress/src/infra/config"
	"inkpress/src/infra/logger"
)

func TestNewRequiresKey(t *testing.T) {
	_, err := New(context.Background(), config.AIConfig{Model: "gemini-1.5-pro"}, logger.Nop())

	assert.ErrorContains(t, err, "api key is required")
}
