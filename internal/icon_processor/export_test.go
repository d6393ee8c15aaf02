package icon_processor

import (
	"testing"

	"github.com/ostia/icon-processor/go/internal/testutil"
)

func TestPlanAndroidMipmaps(t *testing.T) {
	t.Parallel()

	roles := []string{RoleForeground, RoleLegacy, RoleRound}

	targets := PlanAndroidMipmaps(roles, DefaultDensities, "res")

	// 5 tiers x 3 roles
	testutil.Assert(t, 15, len(targets), "target count")

	seen := map[string]bool{}
	for _, target := range targets {
		key := target.Directory + "/" + target.Filename
		if seen[key] {
			t.Fatalf("duplicate target %s", key)
		}
		seen[key] = true

		testutil.Assert(t, DefaultDensities[target.Tier], target.Size, "tier size")
	}

	// sorted tier order keeps plans deterministic
	testutil.Assert(t, "res/mipmap-hdpi", targets[0].Directory, "first tier")
	testutil.Assert(t, "ic_launcher_foreground.png", targets[0].Filename, "first role filename")
	testutil.Assert(t, "res/mipmap-xxxhdpi", targets[14].Directory, "last tier")
}

func TestPlanAndroidMipmapsUnknownRole(t *testing.T) {
	t.Parallel()

	targets := PlanAndroidMipmaps([]string{RolePadded, "banner"}, DefaultDensities, "res")
	testutil.Assert(t, 0, len(targets), "unknown roles are skipped")
}

func TestPlanAndroidMipmapsCustomTable(t *testing.T) {
	t.Parallel()

	targets := PlanAndroidMipmaps([]string{RoleLegacy}, map[string]int{"mdpi": 48, "hdpi": 72}, "out")
	testutil.Assert(t, 2, len(targets), "target count")
	testutil.Assert(t, "out/mipmap-hdpi", targets[0].Directory, "directory")
	testutil.Assert(t, 72, targets[0].Size, "size")
	testutil.Assert(t, "ic_launcher.png", targets[0].Filename, "filename")
}
