package notify

import (
	"context"
	"sync"
)

// recordingThrottler counts hook invocations and records their position
// relative to other recorded events, so tests can assert the
// throttle-before-I/O ordering contract.
type recordingThrottler struct {
	mu     sync.Mutex
	events *[]string
	calls  int
}

func newRecordingThrottler(events *[]string) *recordingThrottler {
	return &recordingThrottler{events: events}
}

func (r *recordingThrottler) Throttle(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.events != nil {
		*r.events = append(*r.events, "throttle")
	}
}

func (r *recordingThrottler) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// fakeBackend is a scriptable desktop facility.
type fakeBackend struct {
	events *[]string

	initErr error
	iconErr error
	showErr error

	initCalls int
	iconCalls int
	showCalls int

	lastNote *DesktopNote
}

func (f *fakeBackend) record(event string) {
	if f.events != nil {
		*f.events = append(*f.events, event)
	}
}

func (f *fakeBackend) Init(appID string) error {
	f.initCalls++
	f.record("init")
	return f.initErr
}

func (f *fakeBackend) LoadIcon(path string) (*DesktopIcon, error) {
	f.iconCalls++
	f.record("icon")
	if f.iconErr != nil {
		return nil, f.iconErr
	}
	return &DesktopIcon{Path: path}, nil
}

func (f *fakeBackend) Show(note *DesktopNote) error {
	f.showCalls++
	f.record("show")
	f.lastNote = note
	return f.showErr
}

// fakeAssets always resolves the same path, or nothing at all.
type fakeAssets struct {
	path string
}

func (f *fakeAssets) Path(Type, ImageSize, string) (string, bool) {
	if f.path == "" {
		return "", false
	}
	return f.path, true
}
