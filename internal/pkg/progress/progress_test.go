package progress

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotSpinner(t *testing.T) {
	t.Parallel()

	spinA := DotSpinner()
	spinB := DotSpinner()

	assert.NotEmpty(t, spinA.Frames)
	assert.Greater(t, spinA.FPS, time.Duration(0))

	spinA.Frames[0] = "x"
	assert.NotEqual(t, spinA.Frames[0], spinB.Frames[0])
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("draws message and returns the result", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		got, err := Run(buf, "searching", func() (int, error) {
			time.Sleep(2 * DotSpinner().FPS)
			return 12, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 12, got)
		assert.Contains(t, buf.String(), "searching")
	})

	t.Run("propagates the error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("boom")
		_, err := Run(&bytes.Buffer{}, "searching", func() (string, error) {
			return "", wantErr
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, wantErr)
	})
}
