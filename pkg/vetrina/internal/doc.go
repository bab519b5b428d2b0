// Package internal contains the shell infrastructure for the vetrina
// presentation layer. This includes SDL initialization, the window and
// renderer, theming, fonts, text and icon rendering, input mapping, the
// hardware back-button monitor, logging, and the chrome string catalog.
// Types and functions in this package are not part of the public API.
package internal
