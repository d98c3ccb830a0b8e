// Package roadmap describes the staged delivery plan of the framework.
//
// Stage 0 is the scaffold that ships today. Later stages are listed so the
// CLI can report them and so placeholder tests can be skipped until the stage
// they cover is done:
//
//	func TestMCPMessageValidation(t *testing.T) {
//		roadmap.SkipUntil(t, roadmap.StageMCP)
//		...
//	}
package roadmap

import "fmt"

// Stage identifies a roadmap stage.
type Stage int

const (
	// StageFoundation is the project scaffold.
	StageFoundation Stage = iota
	// StageGuardian is the core Guardian security evaluation.
	StageGuardian
	// StageMCP is the Model Context Protocol security layer.
	StageMCP
	// StageRAG is retrieval-augmented policy sourcing.
	StageRAG
	// StageMultiAgent is multi-agent security.
	StageMultiAgent
)

// String returns the stage label, e.g. "Stage 2".
func (s Stage) String() string {
	return fmt.Sprintf("Stage %d", int(s))
}

// Status is the delivery status of a stage.
type Status string

const (
	// StatusDone marks a delivered stage.
	StatusDone Status = "done"
	// StatusPlanned marks a stage that has not been built.
	StatusPlanned Status = "planned"
)

// Milestone describes one stage of the roadmap.
type Milestone struct {
	Stage    Stage    `json:"stage" yaml:"stage"`
	Title    string   `json:"title" yaml:"title"`
	Summary  string   `json:"summary" yaml:"summary"`
	Features []string `json:"features" yaml:"features"`
	Status   Status   `json:"status" yaml:"status"`
}

// Implemented reports whether the milestone has been delivered.
func (m Milestone) Implemented() bool {
	return m.Status == StatusDone
}

var milestones = []Milestone{
	{
		Stage:   StageFoundation,
		Title:   "Foundation",
		Summary: "Project scaffold: packaging, CLI entry point, configuration and logging.",
		Features: []string{
			"version metadata",
			"zero-trust command",
			"YAML and .env configuration",
			"structured logging with PII redaction",
		},
		Status: StatusDone,
	},
	{
		Stage:   StageGuardian,
		Title:   "Guardian core",
		Summary: "Security evaluation of agent interactions.",
		Features: []string{
			"guardian initialization",
			"prompt injection detection",
		},
		Status: StatusPlanned,
	},
	{
		Stage:   StageMCP,
		Title:   "MCP security",
		Summary: "Validation of Model Context Protocol messages between agents.",
		Features: []string{
			"MCP message validation",
		},
		Status: StatusPlanned,
	},
	{
		Stage:   StageRAG,
		Title:   "RAG integration",
		Summary: "Security policies retrieved from a knowledge base.",
		Features: []string{
			"policy retrieval",
		},
		Status: StatusPlanned,
	},
	{
		Stage:   StageMultiAgent,
		Title:   "Multi-agent security",
		Summary: "Security across cooperating agents.",
		Features: []string{
			"agent behavior profiling",
		},
		Status: StatusPlanned,
	},
}

// Milestones returns every stage in order.
func Milestones() []Milestone {
	out := make([]Milestone, len(milestones))
	for i, m := range milestones {
		m.Features = append([]string(nil), m.Features...)
		out[i] = m
	}
	return out
}

// Lookup returns the milestone for a stage.
func Lookup(stage Stage) (Milestone, bool) {
	for _, m := range Milestones() {
		if m.Stage == stage {
			return m, true
		}
	}
	return Milestone{}, false
}

// Current returns the most advanced delivered milestone.
func Current() Milestone {
	ms := Milestones()
	current := ms[0]
	for _, m := range ms {
		if m.Implemented() {
			current = m
		}
	}
	return current
}

// Implemented reports whether a stage has been delivered. Unknown stages are
// never implemented.
func Implemented(stage Stage) bool {
	m, ok := Lookup(stage)
	return ok && m.Implemented()
}

// Skipper is the part of testing.TB used by SkipUntil.
type Skipper interface {
	Helper()
	Skipf(format string, args ...any)
}

// SkipUntil skips the calling test unless stage has been delivered.
func SkipUntil(t Skipper, stage Stage) {
	t.Helper()
	if !Implemented(stage) {
		t.Skipf("Not implemented yet - %s", stage)
	}
}
