package replay

import (
	"bytes"
	"image"
	"image/gif"
	"sort"

	"github.com/vovakirdan/orbit-rush/internal/config"
)

// Frame is one captured, downsampled image with its capture timestamp.
type Frame struct {
	Image      *image.Paletted
	CapturedAt float64 // Seconds on the run's monotonic clock
}

// Recorder is a fixed-capacity ring buffer of trailing replay frames.
// Capture is rate-limited to one frame per interval and old frames are
// evicted either by ring overwrite or by the trailing-window purge.
// It is not safe for concurrent use; the simulation tick is the single
// writer.
type Recorder struct {
	frames   []Frame
	head     int // Next write position
	count    int
	capacity int
	interval float64
	window   float64
	enabled  bool

	lastCapture float64
	hasCaptured bool
}

// NewRecorder creates a recorder from config and a device profile.
// The profile is applied once here: low-memory devices get half the
// configured capacity, and a disabled profile yields a recorder whose
// Capture and Finalize are cheap no-ops.
func NewRecorder(cfg config.ReplayConfig, profile DeviceProfile) *Recorder {
	capacity := cfg.Capacity
	if profile.LowMemory {
		capacity /= 2
	}

	enabled := cfg.Enabled && !profile.CaptureDisabled && capacity > 0
	r := &Recorder{
		capacity: capacity,
		interval: cfg.Interval,
		window:   cfg.Window,
		enabled:  enabled,
	}
	if enabled {
		r.frames = make([]Frame, capacity)
	}
	return r
}

// Enabled reports whether this recorder captures frames at all.
func (r *Recorder) Enabled() bool {
	return r.enabled
}

// Due reports whether a capture at the given time would be stored.
// Callers use it to skip rasterizing frames the interval gate would drop.
func (r *Recorder) Due(now float64) bool {
	if !r.enabled {
		return false
	}
	return !r.hasCaptured || now-r.lastCapture >= r.interval
}

// Capture stores a frame if at least one capture interval has elapsed
// since the previous write. Returns true if the frame was stored.
func (r *Recorder) Capture(img *image.Paletted, now float64) bool {
	if !r.enabled || img == nil {
		return false
	}
	if r.hasCaptured && now-r.lastCapture < r.interval {
		return false
	}

	r.frames[r.head] = Frame{Image: img, CapturedAt: now}
	r.head = (r.head + 1) % r.capacity
	if r.count < r.capacity {
		r.count++
	}
	r.lastCapture = now
	r.hasCaptured = true

	r.purge(now)
	return true
}

// purge drops frames older than the trailing window relative to the
// newest capture. Eviction compacts the ring in place.
func (r *Recorder) purge(newest float64) {
	if r.count == 0 || r.window <= 0 {
		return
	}

	cutoff := newest - r.window
	kept := r.surviving(cutoff)
	if len(kept) == r.count {
		return
	}

	for i, f := range kept {
		r.frames[i] = f
	}
	r.count = len(kept)
	r.head = r.count % r.capacity
}

// surviving returns frames at or after the cutoff, ordered by timestamp.
func (r *Recorder) surviving(cutoff float64) []Frame {
	out := make([]Frame, 0, r.count)
	start := r.head - r.count
	if start < 0 {
		start += r.capacity
	}
	for i := 0; i < r.count; i++ {
		f := r.frames[(start+i)%r.capacity]
		if f.CapturedAt >= cutoff {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CapturedAt < out[j].CapturedAt
	})
	return out
}

// Len returns the number of frames currently held.
func (r *Recorder) Len() int {
	return r.count
}

// Reset discards all captured frames (run restart).
func (r *Recorder) Reset() {
	r.head = 0
	r.count = 0
	r.hasCaptured = false
	r.lastCapture = 0
}

// Finalize encodes the surviving frames into an animated GIF with a
// uniform per-frame delay and returns the encoded bytes. An empty or
// disabled buffer yields nil, never an error; encode failures also yield
// nil because a missing share artifact must not abort run-end processing.
func (r *Recorder) Finalize() []byte {
	if !r.enabled || r.count == 0 {
		return nil
	}

	cutoff := -1.0
	if r.window > 0 {
		newest := 0.0
		start := r.head - r.count
		if start < 0 {
			start += r.capacity
		}
		for i := 0; i < r.count; i++ {
			f := r.frames[(start+i)%r.capacity]
			if f.CapturedAt > newest {
				newest = f.CapturedAt
			}
		}
		cutoff = newest - r.window
	}

	frames := r.surviving(cutoff)
	if len(frames) == 0 {
		return nil
	}

	delay := int(r.interval * 100) // GIF delay is in centiseconds
	if delay < 2 {
		delay = 2
	}

	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, len(frames)),
		Delay: make([]int, 0, len(frames)),
	}
	for _, f := range frames {
		anim.Image = append(anim.Image, f.Image)
		anim.Delay = append(anim.Delay, delay)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil
	}
	return buf.Bytes()
}
