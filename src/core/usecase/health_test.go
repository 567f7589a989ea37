package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"inkpress/src/core/ports"
)

func TestHealthCheck(t *testing.T) {
	ok := healthFunc(func(context.Context) error { return nil })
	down := healthFunc(func(context.Context) error { return errors.New("refused") })

	t.Run("all healthy", func(t *testing.T) {
		svc := NewHealthService(nopLogger(), map[string]ports.ExternalService{"database": ok})

		status := svc.Check(context.Background())

		assert.Equal(t, "ok", status.Status)
		assert.Equal(t, "healthy", status.Components["database"].Status)
	})

	t.Run("one failure degrades", func(t *testing.T) {
		svc := NewHealthService(nopLogger(), map[string]ports.ExternalService{"database": ok, "ai": down})

		status := svc.Check(context.Background())

		assert.Equal(t, "degraded", status.Status)
		assert.Equal(t, "unhealthy", status.Components["ai"].Status)
		assert.Equal(t, "healthy", status.Components["database"].Status)
	})
}
