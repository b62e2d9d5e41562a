package testutil

import (
	"testing"

	"github.com/Ritsch1/devops-capstone-project/internal/pkg/config"
	"github.com/Ritsch1/devops-capstone-project/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
// Only critical records are emitted so test output stays readable.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelCritical,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
