// Package conv provides checked integer conversions for element indices
// and file sizes.
package conv
