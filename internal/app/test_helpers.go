package app

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/vk/rainflow/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing. The app reads
// input from the given string; results and debug logs are captured.
func SetupAppTest(t *testing.T, appConfig *Config, input string) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	outBuffer := &bytes.Buffer{}
	logBuffer := &testutil.SafeBuffer{}
	appConfig.LogLevel = "debug"
	if appConfig.LogFormat == "" {
		appConfig.LogFormat = "text"
	}
	testApp := NewApp(strings.NewReader(input), outBuffer, logBuffer, appConfig)

	t.Cleanup(func() {
		if os.Getenv("RAINFLOW_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
