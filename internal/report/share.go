// internal/report/share.go
package report

import (
	"context"
	"math"
	"strconv"
	"strings"

	"pangfa-core/gfa"
	"pangfa/internal/writers"
)

// ShareOptions selects the traversals a node must (include) and must not
// (exclude) be crossed by.
type ShareOptions struct {
	Include     []string
	Exclude     []string
	Sensitivity float64 // fraction of Include required; 1-Sensitivity of Exclude tolerated
}

// Share writes, per segment in file order, whether it is shared by the
// included traversals and avoided by the excluded ones. A ratio over an
// empty list is NaN and never fails the test.
func Share(ctx context.Context, src gfa.Source, opt ShareOptions, t writers.Table) error {
	segs, err := loadSegments(ctx, src)
	if err != nil {
		return err
	}
	names := append(append([]string(nil), opt.Include...), opt.Exclude...)
	cols := make(map[string][]int, len(names))
	for i, n := range names {
		cols[n] = append(cols[n], i)
	}
	crossed := make(map[gfa.NodeID][]bool)

	err = eachTraversal(ctx, src, func(name string, steps []gfa.Step) error {
		idx, wanted := cols[name]
		if !wanted {
			return nil
		}
		for _, st := range steps {
			if _, err := segs.length(st.ID); err != nil {
				return err
			}
			v := crossed[st.ID]
			if v == nil {
				v = make([]bool, len(names))
				crossed[st.ID] = v
			}
			for _, i := range idx {
				v[i] = true
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := t.Header("NodeName", "Status", "IncludeRatio", "ExcludeRatio", "["+strings.Join(names, ", ")+"]"); err != nil {
		return err
	}
	return segs.each(func(id gfa.NodeID, _ int) error {
		v := crossed[id]
		if v == nil {
			v = make([]bool, len(names))
		}
		inc := ratio(v[:len(opt.Include)])
		exc := ratio(v[len(opt.Include):])
		shared := (math.IsNaN(inc) || inc >= opt.Sensitivity) &&
			(math.IsNaN(exc) || exc <= 1-opt.Sensitivity)
		status := 0
		if shared {
			status = 1
		}
		return t.Row(id, status, formatRatio(inc), formatRatio(exc), bits(v))
	})
}

func ratio(v []bool) float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	n := 0
	for _, b := range v {
		if b {
			n++
		}
	}
	return float64(n) / float64(len(v))
}

func formatRatio(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func bits(v []bool) string {
	parts := make([]string, len(v))
	for i, b := range v {
		parts[i] = "0"
		if b {
			parts[i] = "1"
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
