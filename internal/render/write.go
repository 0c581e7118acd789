// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package render

import (
	"os"

	"github.com/bramblevc/pitch-engine/pkg/types"
)

// WriteFile writes rendered output to path. Failures surface as
// *types.OutputError.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &types.OutputError{Path: path, Err: err}
	}
	return nil
}
