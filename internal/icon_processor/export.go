package icon_processor

import (
	"path"
	"sort"
)

const (
	RoleForeground = "foreground"
	RoleLegacy     = "legacy"
	RoleRound      = "round"
	RolePadded     = "padded"
)

// Android adaptive icon canvas is 108dp, so the adaptive tiers scale
// from a 108px mdpi base.
var DefaultDensities = map[string]int{
	"mdpi":    108,
	"hdpi":    162,
	"xhdpi":   216,
	"xxhdpi":  324,
	"xxxhdpi": 432,
}

var roleFilenames = map[string]string{
	RoleForeground: "ic_launcher_foreground.png",
	RoleLegacy:     "ic_launcher.png",
	RoleRound:      "ic_launcher_round.png",
}

type ExportTarget struct {
	Role      string
	Tier      string
	Directory string
	Filename  string
	Size      int
}

// PlanAndroidMipmaps maps the processed variant roles onto the mipmap
// directory tree: one target per (density tier, role) pair, fixed
// launcher filenames under mipmap-<tier>/. Tiers are walked in sorted
// order so plans are deterministic.
func PlanAndroidMipmaps(roles []string, densities map[string]int, baseDir string) []ExportTarget {
	tiers := make([]string, 0, len(densities))
	for tier := range densities {
		tiers = append(tiers, tier)
	}
	sort.Strings(tiers)

	targets := make([]ExportTarget, 0, len(tiers)*len(roles))

	for _, tier := range tiers {
		dir := path.Join(baseDir, "mipmap-"+tier)

		for _, role := range roles {
			filename, ok := roleFilenames[role]
			if !ok {
				continue
			}

			targets = append(targets, ExportTarget{
				Role:      role,
				Tier:      tier,
				Directory: dir,
				Filename:  filename,
				Size:      densities[tier],
			})
		}
	}

	return targets
}
