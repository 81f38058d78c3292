// Package wordsize resolves the byte width of a native machine word.
//
// Most targets fix the pointer width at build time and Constant carries
// it. Targets without a build-time entry report Indeterminate, and Native
// measures the width once at first use. Widths other than 4 or 8 bytes are
// rejected with ErrUnsupportedPlatform.
package wordsize
