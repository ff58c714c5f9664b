package names

import (
	"slices"
	"strings"
)

// Identity is one canonical member plus the alternate spellings observed
// for them.
type Identity struct {
	Canonical string
	Aliases   []string
}

// Roster is an immutable snapshot of the known member identities.
// Lookups never mutate it; Learn and Merge return new snapshots, so
// concurrent readers always observe a consistent alias set.
type Roster struct {
	identities []Identity
	byKey      map[string]string
}

// NewRoster builds a snapshot from the supplied identities. Entries with
// empty canonical names are dropped; identities are held sorted by
// canonical name so downstream iteration is deterministic.
func NewRoster(identities []Identity) *Roster {
	cleaned := make([]Identity, 0, len(identities))
	seen := make(map[string]int, len(identities))
	for _, identity := range identities {
		canonical := Normalize(identity.Canonical)
		if canonical == Unknown {
			continue
		}
		key := MatchKey(canonical)
		if idx, ok := seen[key]; ok {
			cleaned[idx].Aliases = append(cleaned[idx].Aliases, identity.Aliases...)
			continue
		}
		seen[key] = len(cleaned)
		cleaned = append(cleaned, Identity{
			Canonical: canonical,
			Aliases:   slices.Clone(identity.Aliases),
		})
	}
	slices.SortFunc(cleaned, func(a, b Identity) int {
		return strings.Compare(a.Canonical, b.Canonical)
	})

	byKey := make(map[string]string, len(cleaned)*2)
	// Canonical keys win over alias keys on collision.
	for _, identity := range cleaned {
		for _, alias := range identity.Aliases {
			if key := MatchKey(alias); key != "" {
				byKey[key] = identity.Canonical
			}
		}
	}
	for _, identity := range cleaned {
		byKey[MatchKey(identity.Canonical)] = identity.Canonical
	}

	return &Roster{identities: cleaned, byKey: byKey}
}

// Lookup resolves a comparison key to its canonical identity.
func (r *Roster) Lookup(key string) (string, bool) {
	if r == nil || key == "" {
		return "", false
	}
	canonical, ok := r.byKey[key]
	return canonical, ok
}

// Identities returns the snapshot's members in canonical order.
func (r *Roster) Identities() []Identity {
	if r == nil {
		return nil
	}
	return slices.Clone(r.identities)
}

// Len returns the number of identities in the snapshot.
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.identities)
}

// Learn returns a snapshot that additionally maps alias to canonical.
// The receiver is returned unchanged when the alias already resolves or
// the canonical identity is unknown.
func (r *Roster) Learn(canonical, alias string) *Roster {
	if r == nil {
		return NewRoster([]Identity{{Canonical: canonical, Aliases: []string{alias}}})
	}
	aliasKey := MatchKey(alias)
	if aliasKey == "" {
		return r
	}
	if _, ok := r.byKey[aliasKey]; ok {
		return r
	}
	canonicalKey := MatchKey(canonical)
	target, ok := r.byKey[canonicalKey]
	if !ok {
		return r
	}

	identities := slices.Clone(r.identities)
	for i := range identities {
		if identities[i].Canonical == target {
			identities[i].Aliases = append(slices.Clone(identities[i].Aliases), alias)
			break
		}
	}
	return NewRoster(identities)
}

// Merge returns a snapshot extended with any identities not yet present.
// Existing identities are untouched; the receiver is returned when
// nothing new was supplied.
func (r *Roster) Merge(additional []Identity) *Roster {
	if len(additional) == 0 {
		return r
	}
	if r == nil || len(r.identities) == 0 {
		return NewRoster(additional)
	}
	fresh := make([]Identity, 0, len(additional))
	for _, identity := range additional {
		key := MatchKey(identity.Canonical)
		if key == "" {
			continue
		}
		if _, ok := r.byKey[key]; ok {
			continue
		}
		fresh = append(fresh, identity)
	}
	if len(fresh) == 0 {
		return r
	}
	return NewRoster(append(slices.Clone(r.identities), fresh...))
}
