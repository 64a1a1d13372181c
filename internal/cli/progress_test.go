package cli

import (
	"testing"
)

func TestStartSpinnerDisabledReturnsNoop(t *testing.T) {
	t.Parallel()

	stop := startSpinner(false, "Transcribing")
	stop()
	stop()
}

func TestStartSpinnerStopIsIdempotent(t *testing.T) {
	t.Parallel()

	stop := startSpinner(true, "Transcribing")
	stop()
	stop()
}
