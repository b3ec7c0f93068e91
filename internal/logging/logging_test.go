package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/binpack/internal/logging"
)

func TestNew(t *testing.T) {
	logger, err := logging.New()
	require.NoError(t, err)
	require.NotNil(t, logger)

	// The logger must be usable straight away; Sync on stderr may legally
	// return EINVAL, so its error is not asserted.
	logger.Info("logger constructed")
	_ = logger.Sync()
}
