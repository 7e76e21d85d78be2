// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package draft reads and writes research drafts as YAML files. JSON drafts
// load too, since JSON is valid YAML.
package draft

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-design/pkg/types"
)

// Catalog answers whether a method ID exists.
type Catalog interface {
	Has(id string) bool
}

// Load reads a draft file and normalizes its lists. Method IDs are not
// checked; call Normalize with a catalog for that.
func Load(path string) (*types.ResearchDraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading draft: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return d, nil
}

// Parse decodes a draft. Missing fields take the blank-draft values.
func Parse(data []byte) (*types.ResearchDraft, error) {
	d := types.NewDraft()
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parsing draft: %w", err)
	}
	Normalize(d, nil)
	return d, nil
}

// Save writes d as YAML, creating parent directories as needed.
func Save(path string, d *types.ResearchDraft) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating draft directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}
	return nil
}

// Normalize restores the draft invariants in place: the questions and
// hypotheses lists hold at least one entry and the selected methods are
// unique. With a non-nil catalog, unknown method IDs are removed too. It
// returns the IDs it removed, in their original order.
func Normalize(d *types.ResearchDraft, c Catalog) []string {
	if d == nil {
		return nil
	}
	if len(d.Questions) == 0 {
		d.Questions = []string{""}
	}
	if len(d.Hypotheses) == 0 {
		d.Hypotheses = []string{""}
	}

	kept := []string{}
	var dropped []string
	seen := make(map[string]bool, len(d.SelectedMethods))
	for _, id := range d.SelectedMethods {
		id = strings.TrimSpace(id)
		if seen[id] || id == "" || (c != nil && !c.Has(id)) {
			dropped = append(dropped, id)
			continue
		}
		seen[id] = true
		kept = append(kept, id)
	}
	d.SelectedMethods = kept
	return dropped
}

// Template returns a commented starter draft listing the allowed values of
// every choice field.
func Template() []byte {
	var b strings.Builder
	b.WriteString("# Research design draft. Fill in the fields, then run\n")
	b.WriteString("#   research-design check <file>   to see what each stage still needs\n")
	b.WriteString("#   research-design render <file>  to produce the document\n\n")

	b.WriteString("# Project context\n")
	b.WriteString("project_name: \"\"\n")
	fmt.Fprintf(&b, "project_type: \"\"  # %s\n", joinValues(types.ProjectTypes))
	fmt.Fprintf(&b, "current_phase: \"\"  # %s\n", joinValues(types.Phases))
	b.WriteString("stakeholders: \"\"\n\n")

	b.WriteString("# Problem definition\n")
	b.WriteString("business_problem: \"\"\n")
	b.WriteString("user_problem: \"\"\n")
	b.WriteString("research_purpose: \"\"\n")
	b.WriteString("success_metrics: \"\"\n")
	b.WriteString("research_questions:\n  - \"\"\n")
	b.WriteString("hypotheses:\n  - \"\"\n\n")

	b.WriteString("# Target audience\n")
	b.WriteString("target_user: \"\"\n")
	b.WriteString("user_segments: \"\"\n")
	b.WriteString("recruitment_criteria: \"\"\n\n")

	b.WriteString("# Constraints\n")
	fmt.Fprintf(&b, "timeline: \"\"  # %s\n", joinValues(types.Timelines))
	fmt.Fprintf(&b, "budget: \"\"  # %s\n", joinValues(types.Budgets))
	fmt.Fprintf(&b, "resources: \"\"  # %s\n", joinValues(types.ResourceOptions))
	b.WriteString("limitations: \"\"\n\n")

	b.WriteString("# Research design (see: research-design methods)\n")
	b.WriteString("selected_methods: []\n")
	b.WriteString("method_rationale: \"\"\n\n")

	b.WriteString("# Execution plan\n")
	b.WriteString("execution:\n")
	b.WriteString("  participants: \"\"\n")
	fmt.Fprintf(&b, "  recruitment_method: \"\"  # %s\n", joinValues(types.RecruitmentMethods))
	b.WriteString("  duration: \"\"\n")
	b.WriteString("  schedule: \"\"\n")
	b.WriteString("  tools: \"\"\n")
	fmt.Fprintf(&b, "  location: \"\"  # %s\n", joinValues(types.Locations))
	b.WriteString("  data_collection: \"\"\n")
	b.WriteString("  analysis_method: \"\"\n")
	b.WriteString("  deliverables: \"\"\n")
	b.WriteString("  risks: \"\"\n")
	return []byte(b.String())
}

func joinValues[T ~string](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = string(v)
	}
	return strings.Join(parts, " | ")
}
