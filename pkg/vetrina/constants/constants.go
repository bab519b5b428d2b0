// Package constants defines shared constants, types, and configuration values
// used throughout the vetrina presentation layer.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names recognized by the presentation layer.
const (
	// BackgroundPathEnvVar overrides the theme background image path.
	BackgroundPathEnvVar = "BACKGROUND_PATH"

	// WindowWidthEnvVar and WindowHeightEnvVar override the window size in
	// development mode.
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"

	// LocaleEnvVar overrides the chrome language (e.g. "it"). When unset,
	// LANG is consulted before falling back to English.
	LocaleEnvVar = "VETRINA_LOCALE"

	// LogPathEnvVar overrides the log file path.
	LogPathEnvVar = "VETRINA_LOG"

	// TraceEnvVar enables internal debug logging when set to any value.
	TraceEnvVar = "VETRINA_TRACE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical
// hardware. The abstraction lets vetrina drive navigation from keyboards,
// controllers, and device keys with one vocabulary.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonBack
)

// String returns the display name of the button.
func (vb VirtualButton) String() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay          = 20 * time.Millisecond  // Debounce delay between input events
	DefaultBackCoolDown        = 250 * time.Millisecond // Minimum gap between hardware back presses
	DefaultTitleSpacing  int32 = 5                      // Vertical spacing below container titles
	DefaultChromeHeight  int32 = 48                     // Height of the navigation chrome bar
	DefaultSheetInset    int32 = 64                     // Top inset of sheet presentations
	DefaultOverlayDimA   uint8 = 160                    // Alpha of the dim layer behind overlays
)
