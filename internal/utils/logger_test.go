package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewApplicationLoggerLevels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		options      LoggerOptions
		debugEnabled bool
	}{
		{name: "quiet", options: LoggerOptions{}, debugEnabled: false},
		{name: "verbose", options: LoggerOptions{Verbose: true}, debugEnabled: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			logger, loggerError := NewApplicationLogger(testCase.options)
			require.NoError(t, loggerError)
			assert.Equal(t, testCase.debugEnabled, logger.Core().Enabled(zapcore.DebugLevel))
			assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
		})
	}
}
