//go:build unix

package grrs

const mmapSupported = true
