package errors_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/percona-lab/l99/errors"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil cause", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, errors.Wrap(nil, "step"))
		assert.NoError(t, errors.Wrapf(nil, "step %d", 1))
	})

	t.Run("message", func(t *testing.T) {
		t.Parallel()

		err := errors.Wrapf(errors.Wrap(io.EOF, "read"), "element %d", 2)
		assert.EqualError(t, err, "element 2: read: EOF")
	})

	t.Run("unwrap", func(t *testing.T) {
		t.Parallel()

		err := errors.Wrap(io.ErrUnexpectedEOF, "parse")
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
		assert.False(t, errors.Is(err, io.EOF))
	})
}
