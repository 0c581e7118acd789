// Copyright Bramble Ventures Ltd., 2026. All rights reserved.

// Package fund loads the fund's own pitch material that generation
// personalises per LP.
package fund

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/bramblevc/pitch-engine/pkg/types"
)

// DefaultProfilePath is where LoadProfile looks when no path is configured.
const DefaultProfilePath = "fund.yaml"

// placeholderProfile is used when no profile file exists, so the tool stays
// runnable before the fund's real pitch content is configured.
var placeholderProfile = types.FundProfile{
	Name:    "Your Fund",
	Tagline: "Add your fund's pitch content to fund.yaml",
	CorePitch: strings.TrimSpace(`
YOUR FUND NAME - CORE PITCH CONTENT

Add your fund's pitch content to fund.yaml under the core_pitch key.

Include sections for:
- Fund Overview (size, stage, check size, geography, etc.)
- Investment Thesis
- Market Tailwinds
- Portfolio Companies
- Team
- Value-Add
`),
}

// LoadProfile reads the fund profile from path. A missing file returns the
// placeholder profile; a malformed file is an error.
func LoadProfile(path string) (types.FundProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return placeholderProfile, nil
		}
		return types.FundProfile{}, fmt.Errorf("reading fund profile: %w", err)
	}

	var profile types.FundProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return types.FundProfile{}, fmt.Errorf("parsing fund profile: %w", err)
	}
	if profile.Name == "" {
		return types.FundProfile{}, fmt.Errorf("fund profile %s: name is required", path)
	}
	if strings.TrimSpace(profile.CorePitch) == "" {
		return types.FundProfile{}, fmt.Errorf("fund profile %s: core_pitch is required", path)
	}
	return profile, nil
}

// PitchText returns the prose handed to the generation prompt: the core
// pitch, prefixed with the theme list when one is configured.
func PitchText(p types.FundProfile) string {
	var b strings.Builder
	if len(p.Themes) > 0 {
		fmt.Fprintf(&b, "Investment themes: %s\n\n", strings.Join(p.Themes, ", "))
	}
	b.WriteString(strings.TrimSpace(p.CorePitch))
	return b.String()
}
