// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bramblevc/pitch-engine/pkg/types"
)

// jsonDoc is the JSON output shape: the research record alongside the pitch.
type jsonDoc struct {
	Research types.ResearchResult `json:"research"`
	Pitch    *types.Pitch         `json:"pitch"`
}

// JSON renders the pitch and its research as an indented JSON document.
func JSON(p *types.Pitch) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonDoc{Research: p.Research, Pitch: p}); err != nil {
		return nil, fmt.Errorf("encoding pitch JSON: %w", err)
	}
	return buf.Bytes(), nil
}
