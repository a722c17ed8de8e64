package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_SetVerbosity(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	cases := []struct {
		flags int
		level log.Level
		name  string
	}{
		{0, log.WarnLevel, "WARN"},
		{1, log.InfoLevel, "INFO"},
		{2, log.DebugLevel, "DEBUG"},
		{3, log.TraceLevel, "TRACE"},
		{9, log.TraceLevel, "TRACE"},
	}

	for _, tc := range cases {
		SetVerbosity(make([]bool, tc.flags))
		require.Equal(t, tc.level, log.GetLevel(), "%d verbose flags", tc.flags)
		require.Equal(t, tc.name, VerbosityName())
	}
}

func Test_ContextHook(t *testing.T) {
	logger := log.New()
	logger.AddHook(&ContextHook{})
	logger.SetLevel(log.InfoLevel)

	fields := log.Fields{}
	logger.AddHook(&captureHook{entries: func(e *log.Entry) {
		for k, v := range e.Data {
			fields[k] = v
		}
	}})
	logger.Info("hello")

	require.Equal(t, "verbosity_test.go", fields["file"])
	require.Contains(t, fields["func"], "Test_ContextHook")
}

type captureHook struct {
	entries func(e *log.Entry)
}

func (c *captureHook) Levels() []log.Level {
	return log.AllLevels
}

func (c *captureHook) Fire(entry *log.Entry) error {
	c.entries(entry)
	return nil
}
