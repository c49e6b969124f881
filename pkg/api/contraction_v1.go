// pkg/api/contraction_v1.go
package api

// ContractionReportV1 is the stable JSON/YAML schema written by
// `pangfa spurious --report`. Keep fields, names, and types stable. Add
// new fields only with ",omitempty".
type ContractionReportV1 struct {
	Input      string        `json:"input" yaml:"input"`
	Records    int           `json:"records" yaml:"records"`
	DryRun     bool          `json:"dry_run" yaml:"dry_run"`
	Rounds     int           `json:"rounds,omitempty" yaml:"rounds,omitempty"`
	Candidates []CandidateV1 `json:"candidates" yaml:"candidates"`
	Merges     []MergeV1     `json:"merges" yaml:"merges"`
	Skipped    []SkipV1      `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Rewrite    *RewriteV1    `json:"rewrite,omitempty" yaml:"rewrite,omitempty"`
}

// CandidateV1 is a contraction pair in forward-strand order.
type CandidateV1 struct {
	First  uint64 `json:"first" yaml:"first"`
	Second uint64 `json:"second" yaml:"second"`
	Strand string `json:"strand" yaml:"strand"` // "+" | "-"
}

type MergeV1 struct {
	CandidateV1 `yaml:",inline"`
	Survivor    uint64 `json:"survivor" yaml:"survivor"`
	Absorbed    uint64 `json:"absorbed" yaml:"absorbed"`
}

type SkipV1 struct {
	CandidateV1 `yaml:",inline"`
	Reason      string `json:"reason" yaml:"reason"`
}

// RewriteV1 mirrors the second-pass counters.
type RewriteV1 struct {
	Segments         int      `json:"segments" yaml:"segments"`
	MergedSegments   int      `json:"merged_segments" yaml:"merged_segments"`
	AbsorbedSegments int      `json:"absorbed_segments" yaml:"absorbed_segments"`
	Links            int      `json:"links" yaml:"links"`
	SelfLinks        int      `json:"self_links" yaml:"self_links"`
	CircularLinks    int      `json:"circular_links,omitempty" yaml:"circular_links,omitempty"`
	DuplicateLinks   int      `json:"duplicate_links" yaml:"duplicate_links"`
	Traversals       int      `json:"traversals" yaml:"traversals"`
	DroppedSteps     int      `json:"dropped_steps" yaml:"dropped_steps"`
	EmptyTraversals  []string `json:"empty_traversals,omitempty" yaml:"empty_traversals,omitempty"`
}
