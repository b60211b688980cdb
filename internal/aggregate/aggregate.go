package aggregate

import (
	"context"
	"fmt"
	"sort"

	"github.com/oplcutils/gluegen/internal/config"
	"github.com/oplcutils/gluegen/internal/ctxlog"
	"github.com/oplcutils/gluegen/internal/iec"
)

// SlotCount is the fixed number of bit variables packed into one boolean
// group.
const SlotCount = 8

// Group packs up to eight bit-addressed variables sharing a direction and
// major index. Slot i holds the name of the variable at minor index i, or
// "" if that minor index is unassigned.
type Group struct {
	Direction iec.Direction
	Major     uint16
	Slots     [SlotCount]string
}

// Name returns the group's symbol without the leading underscores, e.g.
// IG0 for the input group at major index 0.
func (g Group) Name() string {
	return fmt.Sprintf("%cG%d", g.Direction.Flag(), g.Major)
}

// Symbol returns the synthetic variable name that replaces the group's
// first member in the declaration list, e.g. __IG0.
func (g Group) Symbol() string {
	return "__" + g.Name()
}

// Options control how addressing anomalies are treated during aggregation.
type Options struct {
	OnSlotCollision config.Policy
	OnMinorOverflow config.Policy
}

// Apply partitions the bit-addressed declarations of decls into boolean
// groups keyed by (direction, major index), leaving all other declarations
// untouched. It returns a fresh survivor list in first-occurrence order,
// where each group appears exactly once as a synthetic declaration, plus
// the populated groups ordered IN, OUT, MEM with ascending major indices.
//
// The input slice is not mutated; survivors are built in a second
// collection instead.
func Apply(ctx context.Context, decls []iec.Declaration, opts Options) ([]iec.Declaration, []Group, error) {
	logger := ctxlog.FromContext(ctx)

	survivors := make([]iec.Declaration, 0, len(decls))
	byDirection := make(map[iec.Direction]map[uint16]*Group)

	for _, d := range decls {
		if d.Size != iec.SizeBit {
			survivors = append(survivors, d)
			continue
		}

		if d.Minor >= SlotCount {
			logger.Warn("Minor index out of range; variable not grouped.",
				"name", d.Name, "minor", d.Minor)
			if opts.OnMinorOverflow == config.PolicyError {
				return nil, nil, fmt.Errorf("located variable %s has minor index %d, want < %d", d.Name, d.Minor, SlotCount)
			}
			survivors = append(survivors, d)
			continue
		}

		groups := byDirection[d.Direction]
		if groups == nil {
			groups = make(map[uint16]*Group)
			byDirection[d.Direction] = groups
		}

		g := groups[d.Major]
		if g == nil {
			g = &Group{Direction: d.Direction, Major: d.Major}
			groups[d.Major] = g

			// The first member stays in the list as the group's
			// representative, under the synthetic symbol.
			rep := d
			rep.Name = g.Symbol()
			rep.Minor = 0
			survivors = append(survivors, rep)
		}

		if prev := g.Slots[d.Minor]; prev != "" {
			logger.Warn("Boolean group slot collision; later variable wins.",
				"group", g.Symbol(), "minor", d.Minor, "previous", prev, "name", d.Name)
			if opts.OnSlotCollision == config.PolicyError {
				return nil, nil, fmt.Errorf("located variables %s and %s share slot %d of group %s", prev, d.Name, d.Minor, g.Symbol())
			}
		}
		g.Slots[d.Minor] = d.Name
	}

	var out []Group
	for _, dir := range []iec.Direction{iec.DirIn, iec.DirOut, iec.DirMem} {
		groups := byDirection[dir]
		majors := make([]uint16, 0, len(groups))
		for major := range groups {
			majors = append(majors, major)
		}
		sort.Slice(majors, func(i, j int) bool { return majors[i] < majors[j] })
		for _, major := range majors {
			out = append(out, *groups[major])
		}
	}

	logger.Debug("Boolean aggregation complete.",
		"declarations", len(decls), "survivors", len(survivors), "groups", len(out))
	return survivors, out, nil
}
