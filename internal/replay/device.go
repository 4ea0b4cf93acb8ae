// Package replay provides a capacity-bounded trailing frame buffer and an
// animated GIF encoder for sharing the last seconds of a run.
package replay

import "os"

// DeviceProfile describes capture-relevant device capabilities.
// It is evaluated once at recorder construction; capture is never
// re-negotiated mid-run.
type DeviceProfile struct {
	// LowMemory halves the frame capacity.
	LowMemory bool

	// CaptureDisabled turns capture off entirely.
	CaptureDisabled bool
}

// DetectProfile inspects the environment for capture policy overrides.
// ORBIT_LOW_MEMORY=1 marks the device memory-constrained and
// ORBIT_NO_REPLAY=1 disables capture.
func DetectProfile() DeviceProfile {
	return DeviceProfile{
		LowMemory:       os.Getenv("ORBIT_LOW_MEMORY") == "1",
		CaptureDisabled: os.Getenv("ORBIT_NO_REPLAY") == "1",
	}
}
