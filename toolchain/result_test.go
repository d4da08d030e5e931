package toolchain

import "testing"

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeFound, "found"},
		{OutcomeNotFound, "not-found"},
		{OutcomeInvalid, "invalid"},
		{Outcome(42), "not-found"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}

func TestResultOk(t *testing.T) {
	if !Found("/some/path").Ok() {
		t.Error("Found(...).Ok() = false, want true")
	}
	if NotFound.Ok() {
		t.Error("NotFound.Ok() = true, want false")
	}
	if Invalid.Ok() {
		t.Error("Invalid.Ok() = true, want false")
	}
	if got := Found("/some/path").Path; got != "/some/path" {
		t.Errorf("Found(...).Path = %q, want %q", got, "/some/path")
	}
}

func TestMetricsToggle(t *testing.T) {
	// Recording must be a no-op by default and safe when enabled.
	recordResolution("arm-gcc", "managed", OutcomeFound)

	EnableMetrics(true)
	defer EnableMetrics(false)
	recordResolution("arm-gcc", "managed", OutcomeNotFound)
	observeVersionScan("arm-gcc", 0)
}
