package compliance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSuitePasses(t *testing.T) {
	report := Run(DefaultSuite())

	for _, r := range report.Results {
		require.Truef(t, r.Passed, "%s (%s) failed: got=%s err=%v", r.Vector.ID, r.Vector.Description, r.Got, r.Err)
	}
	require.True(t, report.Compliant())
	require.Equal(t, 0, report.Failed)
	require.Greater(t, report.Passed, 0)
}

func TestRunEmptySuiteIsNotCompliant(t *testing.T) {
	report := Run(nil)
	require.False(t, report.Compliant())
}
