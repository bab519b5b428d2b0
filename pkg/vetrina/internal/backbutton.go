package internal

import (
	"strings"
	"sync"
	"time"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina/constants"
	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// BackButtonConfig describes the hardware back key some handhelds carry
// outside the game controller. The key lives on a gpio-keys evdev device
// SDL never sees, so the shell watches it directly.
type BackButtonConfig struct {
	DevicePath string        // evdev device; empty means discover a gpio-keys device
	ButtonCode evdev.EvCode  // key code to watch, e.g. evdev.KEY_BACK
	CoolDown   time.Duration // minimum gap between reported presses
}

var (
	backEventOnce sync.Once
	backEventType uint32

	backMonitor *backButtonMonitor
)

// BackButtonEventType returns the SDL user event type the monitor pushes
// for each back press. Registered lazily, stable for the process.
func BackButtonEventType() uint32 {
	backEventOnce.Do(func() {
		backEventType = sdl.RegisterEvents(1)
	})
	return backEventType
}

// backButtonMonitor watches one evdev device from its own goroutine, the
// only goroutine in the shell. It never touches navigation state: presses
// are marshaled onto the UI loop as SDL user events, which SDL allows from
// any thread.
type backButtonMonitor struct {
	device    *evdev.InputDevice
	code      evdev.EvCode
	coolDown  time.Duration
	running   *atomic.Bool
	lastPress *atomic.Int64 // unix milliseconds of the last reported press
	wg        sync.WaitGroup
}

// StartBackButtonMonitor opens the configured device and starts watching.
// Failures are logged and swallowed: a missing back key just means the
// shell only sees B-button back-navigation.
func StartBackButtonMonitor(config BackButtonConfig) {
	path := config.DevicePath
	if path == "" {
		path = discoverBackDevice()
	}
	if path == "" {
		GetInternalLogger().Debug("No back-button device found; monitor disabled")
		return
	}

	device, err := evdev.Open(path)
	if err != nil {
		GetInternalLogger().Warn("Failed to open back-button device", "path", path, "error", err)
		return
	}

	coolDown := config.CoolDown
	if coolDown <= 0 {
		coolDown = constants.DefaultBackCoolDown
	}

	backMonitor = &backButtonMonitor{
		device:    device,
		code:      config.ButtonCode,
		coolDown:  coolDown,
		running:   atomic.NewBool(true),
		lastPress: atomic.NewInt64(0),
	}

	GetInternalLogger().Debug("Back-button monitor started", "path", path, "code", config.ButtonCode)

	backMonitor.wg.Add(1)
	go backMonitor.watch()
}

// StopBackButtonMonitor stops the watcher and waits for its goroutine.
// Safe to call when no monitor was started.
func StopBackButtonMonitor() {
	if backMonitor == nil {
		return
	}
	backMonitor.running.Store(false)
	// Closing the device unblocks the pending ReadOne.
	backMonitor.device.Close()
	backMonitor.wg.Wait()
	backMonitor = nil
}

func (m *backButtonMonitor) watch() {
	defer m.wg.Done()

	for m.running.Load() {
		event, err := m.device.ReadOne()
		if err != nil {
			if m.running.Load() {
				GetInternalLogger().Warn("Back-button device read failed", "error", err)
			}
			return
		}

		if event.Type != evdev.EV_KEY || event.Code != m.code || event.Value != 1 {
			continue
		}

		now := time.Now().UnixMilli()
		if now-m.lastPress.Load() < m.coolDown.Milliseconds() {
			continue
		}
		m.lastPress.Store(now)

		if _, err := sdl.PushEvent(&sdl.UserEvent{Type: BackButtonEventType()}); err != nil {
			GetInternalLogger().Warn("Failed to push back-button event", "error", err)
		}
	}
}

// discoverBackDevice looks for the gpio-keys device handhelds expose their
// front-panel keys on.
func discoverBackDevice() string {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return ""
	}
	for _, candidate := range paths {
		if strings.Contains(strings.ToLower(candidate.Name), "gpio-keys") {
			return candidate.Path
		}
	}
	return ""
}
