// internal/writers/report.go
package writers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"pangfa-core/contract"
	"pangfa-core/gfa"
	"pangfa/internal/pipeline"
	"pangfa/pkg/api"
)

// ContractionReport converts a pipeline result to its v1 wire form.
func ContractionReport(input string, dryRun bool, res *pipeline.Result) api.ContractionReportV1 {
	rep := api.ContractionReportV1{
		Input:      input,
		Records:    res.Records,
		DryRun:     dryRun,
		Rounds:     res.Plan.Rounds,
		Candidates: []api.CandidateV1{},
		Merges:     []api.MergeV1{},
	}
	for _, c := range res.Plan.Candidates {
		rep.Candidates = append(rep.Candidates, candidateV1(c))
	}
	for _, m := range res.Plan.Merges {
		rep.Merges = append(rep.Merges, api.MergeV1{
			CandidateV1: candidateV1(m.Candidate),
			Survivor:    uint64(m.Survivor),
			Absorbed:    uint64(m.Absorbed),
		})
	}
	for _, s := range res.Plan.Skipped {
		rep.Skipped = append(rep.Skipped, api.SkipV1{CandidateV1: candidateV1(s.Candidate), Reason: s.Reason})
	}
	if !dryRun {
		st := res.Stats
		rep.Rewrite = &api.RewriteV1{
			Segments:         st.Segments,
			MergedSegments:   st.MergedSegments,
			AbsorbedSegments: st.AbsorbedSegments,
			Links:            st.Links,
			SelfLinks:        st.SelfLinks,
			CircularLinks:    st.CircularLinks,
			DuplicateLinks:   st.DuplicateLinks,
			Traversals:       st.Traversals,
			DroppedSteps:     st.DroppedSteps,
			EmptyTraversals:  st.EmptyTraversals,
		}
	}
	return rep
}

func candidateV1(c contract.Candidate) api.CandidateV1 {
	return api.CandidateV1{First: uint64(c.First), Second: uint64(c.Second), Strand: c.Strand.String()}
}

// WriteReportFile writes v to path as YAML (.yaml/.yml) or indented JSON.
func WriteReportFile(path string, v any) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return &gfa.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = &gfa.IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(fh)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrapf(err, "encode %s", path)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(fh)
		enc.SetIndent("", "  ")
		return errors.Wrapf(enc.Encode(v), "encode %s", path)
	}
}
