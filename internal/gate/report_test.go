package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func passCheck(name string) Checker {
	return func() CheckResult { return CheckResult{Name: name, Pass: true} }
}

func failCheck(name, reason string) Checker {
	return func() CheckResult { return CheckResult{Name: name, Pass: false, Reason: reason} }
}

func TestRun_AllPass(t *testing.T) {
	report := Run(passCheck("a"), passCheck("b"), passCheck("c"))
	assert.True(t, report.Pass)
	assert.Empty(t, report.Reason)
	assert.Equal(t, 0, report.ExitCode())
	assert.Len(t, report.Checks, 3)
}

func TestRun_OneFailureFailsTheWholeReport(t *testing.T) {
	report := Run(passCheck("a"), failCheck("b", "something broke"), passCheck("c"))
	assert.False(t, report.Pass)
	assert.Contains(t, report.Reason, "b")
	assert.Contains(t, report.Reason, "something broke")
	assert.Equal(t, 1, report.ExitCode())
}

func TestRun_Empty(t *testing.T) {
	report := Run()
	assert.True(t, report.Pass)
	assert.Empty(t, report.Checks)
}
