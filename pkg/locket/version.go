// Package locket exposes project-level metadata.
package locket

// Version is the current Locket release.
const Version = "0.1.0"
