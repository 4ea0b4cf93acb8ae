package replay

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/orbit-rush/internal/config"
)

func testReplayConfig() config.ReplayConfig {
	return config.ReplayConfig{
		Enabled:  true,
		Capacity: 8,
		Interval: 0.25,
		Window:   2.0,
		Size:     16,
	}
}

var testPalette = color.Palette{color.Black, color.White}

func testFrame() *image.Paletted {
	return image.NewPaletted(image.Rect(0, 0, 16, 16), testPalette)
}

func TestRecorderCapacityBound(t *testing.T) {
	cfg := testReplayConfig()
	cfg.Window = 0 // Disable the time purge to test the ring alone.
	r := NewRecorder(cfg, DeviceProfile{})

	for i := 0; i < 30; i++ {
		r.Capture(testFrame(), float64(i)) // 1s apart, all accepted
	}
	if got := r.Len(); got != cfg.Capacity {
		t.Errorf("Len = %d after overflow, want capacity %d", got, cfg.Capacity)
	}
}

func TestRecorderIntervalGating(t *testing.T) {
	r := NewRecorder(testReplayConfig(), DeviceProfile{})

	if !r.Capture(testFrame(), 0) {
		t.Fatal("first capture rejected")
	}
	if r.Capture(testFrame(), 0.1) {
		t.Error("capture inside the interval accepted")
	}
	if !r.Due(0.25) {
		t.Error("capture at the interval boundary should be due")
	}
	if !r.Capture(testFrame(), 0.25) {
		t.Error("capture at the interval boundary rejected")
	}
	if got := r.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
}

func TestRecorderWindowPurge(t *testing.T) {
	r := NewRecorder(testReplayConfig(), DeviceProfile{})

	// Frames at t=0 and t=0.5 fall out of the 2s window once a frame
	// at t=5 arrives.
	r.Capture(testFrame(), 0)
	r.Capture(testFrame(), 0.5)
	r.Capture(testFrame(), 5)

	if got := r.Len(); got != 1 {
		t.Errorf("Len = %d after purge, want 1", got)
	}
}

func TestRecorderFinalizeEmptyIsNil(t *testing.T) {
	r := NewRecorder(testReplayConfig(), DeviceProfile{})
	if got := r.Finalize(); got != nil {
		t.Errorf("Finalize on empty buffer = %d bytes, want nil", len(got))
	}
}

func TestRecorderFinalizeEncodesGIF(t *testing.T) {
	r := NewRecorder(testReplayConfig(), DeviceProfile{})
	for i := 0; i < 4; i++ {
		r.Capture(testFrame(), float64(i)*0.25)
	}

	data := r.Finalize()
	if len(data) == 0 {
		t.Fatal("Finalize returned no bytes")
	}
	if !bytes.HasPrefix(data, []byte("GIF8")) {
		t.Error("encoded replay is not a GIF stream")
	}
}

func TestRecorderDisabledProfile(t *testing.T) {
	r := NewRecorder(testReplayConfig(), DeviceProfile{CaptureDisabled: true})

	if r.Enabled() {
		t.Fatal("recorder enabled despite a disabled profile")
	}
	if r.Capture(testFrame(), 0) {
		t.Error("disabled recorder accepted a capture")
	}
	if r.Finalize() != nil {
		t.Error("disabled recorder produced replay bytes")
	}
}

func TestRecorderLowMemoryHalvesCapacity(t *testing.T) {
	cfg := testReplayConfig()
	cfg.Window = 0
	r := NewRecorder(cfg, DeviceProfile{LowMemory: true})

	for i := 0; i < 30; i++ {
		r.Capture(testFrame(), float64(i))
	}
	if got := r.Len(); got != cfg.Capacity/2 {
		t.Errorf("Len = %d on a low-memory device, want %d", got, cfg.Capacity/2)
	}
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder(testReplayConfig(), DeviceProfile{})
	r.Capture(testFrame(), 0)
	r.Reset()

	if r.Len() != 0 {
		t.Error("frames survived Reset")
	}
	if !r.Capture(testFrame(), 0) {
		t.Error("capture rejected immediately after Reset")
	}
}
