//go:build !unix

package grrs

const mmapSupported = false
