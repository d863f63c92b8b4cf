//go:build !unix

package grrs

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
)

func mapFile(_ *os.File, _ int64) ([]byte, error) {
	return nil, errors.Errorf("memory mapping not supported on %s", runtime.GOOS)
}

func unmapFile(_ []byte) error { return nil }
