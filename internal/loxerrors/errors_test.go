package loxerrors_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poxlang/pox/internal/loxerrors"
)

func TestScanErrorFormat(t *testing.T) {
	t.Parallel()

	err := loxerrors.NewScanError(3, loxerrors.ErrScanUnexpectedCharacter, "'@'")
	assert.EqualError(t, err, "[line 3] Error: Unexpected character. '@'")
	assert.ErrorIs(t, err, loxerrors.ErrScanUnexpectedCharacter)

	err = loxerrors.NewScanError(7, loxerrors.ErrScanUnterminatedString, "")
	assert.EqualError(t, err, "[line 7] Error: Unterminated string.")
	assert.ErrorIs(t, err, loxerrors.ErrScanUnterminatedString)
}

func TestErrReporterWritesToSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	reporter := loxerrors.NewErrReporter(&buf)

	reporter.ReportError(errors.New("boom"))
	reporter.ReportPanic(errors.New("kaboom"))

	assert.Equal(t, "ERROR boom\nFATAL kaboom\n", buf.String())
}
