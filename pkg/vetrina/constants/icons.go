package constants

// Chrome icon sources. Each is a complete SVG document rasterized at load
// time by the shell; stroke and fill colors are remapped to the active theme.
const (
	// IconClose is the overlay close glyph (X).
	IconClose = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path d="M6 6 L18 18 M18 6 L6 18" stroke="#000000" stroke-width="2.5" stroke-linecap="round" fill="none"/>
</svg>`

	// IconBack is the navigation back chevron.
	IconBack = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path d="M15 5 L8 12 L15 19" stroke="#000000" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round" fill="none"/>
</svg>`

	// IconUnsupported marks the placeholder shown for unrecognized content.
	IconUnsupported = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<rect x="4" y="4" width="16" height="16" rx="2" stroke="#000000" stroke-width="2" fill="none"/>
<path d="M8 8 L16 16 M16 8 L8 16" stroke="#000000" stroke-width="2" stroke-linecap="round" fill="none"/>
</svg>`
)
