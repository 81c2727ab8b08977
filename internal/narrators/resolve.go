package narrators

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/oleksii-nakhod/iconicall/internal/models"
)

// Resolve maps a model-suggested name to a registry profile. Matching order
// is exact (case-insensitive), then requested-contains-registry-name, then
// registry-name-contains-requested, then the default persona. It never
// fails; an unknown name costs a fallback, not a turn.
func Resolve(requested string) models.NarratorProfile {
	want := strings.ToLower(strings.TrimSpace(requested))
	ordered := sortedProfiles()

	for _, p := range ordered {
		if strings.ToLower(p.Name) == want {
			return p
		}
	}

	if want != "" {
		for _, p := range ordered {
			if strings.Contains(want, strings.ToLower(p.Name)) {
				log.Info("narrator resolved by substring", "requested", requested, "matched", p.Name)
				return p
			}
		}
		for _, p := range ordered {
			if strings.Contains(strings.ToLower(p.Name), want) {
				log.Info("narrator resolved by substring", "requested", requested, "matched", p.Name)
				return p
			}
		}
	}

	fallback := Default()
	log.Warn("narrator not found, using fallback", "requested", requested, "matched", fallback.Name)
	return fallback
}

// ResolveAll resolves each name independently, preserving order. Position in
// the returned slice is the speaker channel index.
func ResolveAll(requested []string) []models.NarratorProfile {
	out := make([]models.NarratorProfile, len(requested))
	for i, name := range requested {
		out[i] = Resolve(name)
	}
	return out
}

// Names projects profiles onto their display names, keeping order.
func Names(profiles []models.NarratorProfile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.Name
	}
	return out
}

// sortedProfiles returns the registry in display-name order so substring
// resolution is deterministic even if two names ever overlap.
func sortedProfiles() []models.NarratorProfile {
	out := All()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
