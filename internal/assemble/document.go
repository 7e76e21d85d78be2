// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble renders a research draft into the final Markdown design
// document. Rendering never fails: blank fields render as empty values and
// unknown method IDs are skipped.
package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/research-design/pkg/types"
)

// Catalog looks up method details by ID.
type Catalog interface {
	Find(id string) (types.ResearchMethod, bool)
}

// Section headings, in document order. Each appears exactly once as an H2.
const (
	SectionOverview     = "Project Overview"
	SectionPurpose      = "Purpose & Background"
	SectionQuestions    = "Research Questions"
	SectionHypotheses   = "Hypotheses"
	SectionAudience     = "Target Audience"
	SectionMethodology  = "Methodology"
	SectionExecution    = "Execution Plan"
	SectionDeliverables = "Deliverables & Reporting"
	SectionConstraints  = "Constraints & Risks"
	SectionFollowUp     = "Follow-up Checklist"
)

// Sections lists the H2 headings in document order.
var Sections = []string{
	SectionOverview, SectionPurpose, SectionQuestions, SectionHypotheses,
	SectionAudience, SectionMethodology, SectionExecution, SectionDeliverables,
	SectionConstraints, SectionFollowUp,
}

// Title is the document's H1 heading.
const Title = "UX Research Design Document"

var reportingPlan = []string{
	"Interim report: progress and early findings",
	"Final report: detailed analysis and recommendations",
	"Action guide: concrete improvement plan",
}

var followUpChecklist = []string{
	"Stakeholder review and approval",
	"Ethics/IRB approval (if needed)",
	"Start participant recruitment",
	"Prepare research tools and guides",
	"Run a pilot session",
	"Conduct the main study",
	"Analyze data and write the report",
	"Share results and plan follow-up actions",
}

// Assembler renders drafts with a fixed catalog and document settings.
type Assembler struct {
	catalog Catalog
	cfg     types.DocumentConfig
	now     func() time.Time
}

// New returns an assembler. Empty fields of cfg take the defaults from
// types.DefaultConfig.
func New(c Catalog, cfg types.DocumentConfig) *Assembler {
	def := types.DefaultConfig().Document
	if cfg.Version == "" {
		cfg.Version = def.Version
	}
	if cfg.Author == "" {
		cfg.Author = def.Author
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = def.DateLayout
	}
	return &Assembler{catalog: c, cfg: cfg, now: time.Now}
}

// Render renders d dated with the current time.
func (a *Assembler) Render(d *types.ResearchDraft) string {
	return a.RenderAt(d, a.now())
}

// RenderAt renders d dated with t. The same draft and time always produce
// the same bytes.
func (a *Assembler) RenderAt(d *types.ResearchDraft, t time.Time) string {
	if d == nil {
		d = types.NewDraft()
	}
	date := t.Format(a.cfg.DateLayout)
	e := d.Execution

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", Title)

	heading(&b, SectionOverview)
	field(&b, "Project name", d.ProjectName)
	field(&b, "Project type", string(d.ProjectType))
	field(&b, "Current phase", string(d.CurrentPhase))
	field(&b, "Created", date)
	field(&b, "Key stakeholders", d.Stakeholders)
	rule(&b)

	heading(&b, SectionPurpose)
	subsection(&b, "Business Problem", d.BusinessProblem)
	subsection(&b, "User Problem", d.UserProblem)
	subsection(&b, "Research Purpose", d.ResearchPurpose)
	subsection(&b, "Success Metrics", d.SuccessMetrics)
	rule(&b)

	heading(&b, SectionQuestions)
	writeLines(&b, Numbered(d.Questions))
	b.WriteString("\n")
	heading(&b, SectionHypotheses)
	writeLines(&b, Numbered(d.Hypotheses))
	rule(&b)

	heading(&b, SectionAudience)
	subsection(&b, "Primary Target", d.TargetUser)
	subsection(&b, "User Segments", d.UserSegments)
	subsection(&b, "Recruitment Criteria", d.RecruitmentCriteria)
	rule(&b)

	heading(&b, SectionMethodology)
	b.WriteString("### Selected Methods\n\n")
	for _, id := range d.SelectedMethods {
		m, ok := a.catalog.Find(id)
		if !ok {
			continue
		}
		writeMethod(&b, m)
	}
	subsection(&b, "Method Rationale", d.MethodRationale)
	rule(&b)

	heading(&b, SectionExecution)
	b.WriteString("### Schedule\n\n")
	field(&b, "Overall schedule", e.Schedule)
	field(&b, "Session duration", e.Duration)
	b.WriteString("\n### Recruitment\n\n")
	field(&b, "Recruitment method", string(e.RecruitmentMethod))
	field(&b, "Participants", e.Participants)
	b.WriteString("\n### Environment\n\n")
	field(&b, "Location", string(e.Location))
	field(&b, "Tools", e.Tools)
	b.WriteString("\n### Data Collection & Analysis\n\n")
	field(&b, "Data collection", e.DataCollection)
	field(&b, "Analysis method", e.AnalysisMethod)
	rule(&b)

	heading(&b, SectionDeliverables)
	subsection(&b, "Expected Deliverables", e.Deliverables)
	b.WriteString("### Reporting Plan\n\n")
	for _, item := range reportingPlan {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	rule(&b)

	heading(&b, SectionConstraints)
	b.WriteString("### Project Constraints\n\n")
	field(&b, "Timeline", string(d.Timeline))
	field(&b, "Budget", string(d.Budget))
	field(&b, "Resources", string(d.Resources))
	field(&b, "Other limitations", d.Limitations)
	b.WriteString("\n")
	subsection(&b, "Risks & Mitigation", e.Risks)
	rule(&b)

	heading(&b, SectionFollowUp)
	for _, item := range followUpChecklist {
		fmt.Fprintf(&b, "- [ ] %s\n", item)
	}
	rule(&b)

	fmt.Fprintf(&b, "**Document version**: %s\n", a.cfg.Version)
	fmt.Fprintf(&b, "**Last updated**: %s\n", date)
	fmt.Fprintf(&b, "**Author**: %s\n\n", a.cfg.Author)
	b.WriteString("*This document will be updated as the project progresses.*\n")
	return b.String()
}

// Numbered returns the non-blank items numbered from 1. Blank entries are
// placeholders left by the form and are dropped.
func Numbered(items []string) []string {
	var out []string
	for _, it := range items {
		if strings.TrimSpace(it) == "" {
			continue
		}
		out = append(out, fmt.Sprintf("%d. %s", len(out)+1, it))
	}
	return out
}

func writeMethod(b *strings.Builder, m types.ResearchMethod) {
	fmt.Fprintf(b, "#### %s\n\n", m.Name)
	field(b, "Purpose", m.Description)
	field(b, "Best for", strings.Join(m.BestFor, ", "))
	field(b, "Timeframe", m.Timeframe)
	field(b, "Participants", m.Participants)
	field(b, "Estimated cost", string(m.Cost))
	field(b, "Required skills", strings.Join(m.Skills, ", "))
	field(b, "Deliverables", strings.Join(m.Deliverables, ", "))
	b.WriteString("\n")
}

func heading(b *strings.Builder, title string) {
	fmt.Fprintf(b, "## %s\n\n", title)
}

func subsection(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "### %s\n\n%s\n\n", title, body)
}

func field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "- **%s**: %s\n", label, value)
}

func writeLines(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
}

func rule(b *strings.Builder) {
	b.WriteString("\n---\n\n")
}
