package vetrina

import (
	"log/slog"
	"os"
	"strings"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina/constants"
	"github.com/BrandonKowalski/vetrina/pkg/vetrina/internal"
	"github.com/BrandonKowalski/vetrina/pkg/vetrina/platform/cannoli"
	"github.com/BrandonKowalski/vetrina/pkg/vetrina/platform/nextui"
	"github.com/holoplot/go-evdev"
)

// Options configures vetrina initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color (ignored on NextUI which uses system theme)
	IsCannoli            bool                   // Enable Cannoli CFW theming and the link navigation model
	IsNextUI             bool                   // Enable NextUI CFW theming, the stack model, and back key handling
	LogPath              string                 // Full path for log file including filename (creates parent directories)

	// BackButtonDevice overrides the evdev device watched for the hardware
	// back key. Empty uses the platform default (NextUI) or no monitor.
	BackButtonDevice string

	// DisableBackButtonMonitor turns off the hardware back key watcher even
	// when the platform has one.
	DisableBackButtonMonitor bool
}

// Init initializes the SDL subsystems, theming, the navigation model, and
// input handling. Must be called before any other vetrina functions.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.TraceEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	bbc := internal.BackButtonConfig{}

	if options.IsNextUI {
		internal.SetTheme(nextui.InitNextUITheme())
		SetNavModel(StackModel)

		// Detect the back key input device path based on platform.
		// TG5050 uses /dev/input/event2, all others use /dev/input/event1.
		backDevicePath := "/dev/input/event1"
		platformEnv := strings.ToUpper(os.Getenv("PLATFORM"))
		if strings.Contains(platformEnv, "TG5050") {
			backDevicePath = "/dev/input/event2"
		}

		bbc = internal.BackButtonConfig{
			DevicePath: backDevicePath,
			ButtonCode: evdev.KEY_BACK,
			CoolDown:   constants.DefaultBackCoolDown,
		}
	} else if options.IsCannoli {
		internal.SetTheme(cannoli.InitCannoliTheme(cannoli.DefaultThemePath, cannoli.DefaultFontPath))
		SetNavModel(LinkModel)
	} else {
		// No CFW flagged: desktop run with Cannoli defaults and the
		// stack model.
		internal.SetTheme(cannoli.InitCannoliTheme(cannoli.DefaultThemePath, cannoli.DefaultFontPath))
		SetNavModel(StackModel)
	}

	if options.BackButtonDevice != "" {
		bbc.DevicePath = options.BackButtonDevice
		if bbc.ButtonCode == 0 {
			bbc.ButtonCode = evdev.KEY_BACK
		}
	}
	if options.DisableBackButtonMonitor {
		bbc = internal.BackButtonConfig{}
	}

	if options.PrimaryThemeColorHex != 0 && !options.IsNextUI {
		theme := internal.GetTheme()
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	if err := internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions, bbc); err != nil {
		return NewInfrastructureError("init_shell", err)
	}
	return nil
}

// Close releases all SDL resources and shuts down the presentation layer.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	internal.GetWindow().Window.Hide()
}

// ShowWindow shows the application window.
func ShowWindow() {
	internal.GetWindow().Window.Show()
}
