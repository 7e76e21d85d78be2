// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProjectType classifies the product work the research supports.
type ProjectType string

const (
	ProjectNewProduct          ProjectType = "new-product"
	ProjectFeatureImprovement  ProjectType = "feature-improvement"
	ProjectUserResearch        ProjectType = "user-research"
	ProjectMarketResearch      ProjectType = "market-research"
	ProjectCompetitiveAnalysis ProjectType = "competitive-analysis"
)

// ProjectTypes lists the selectable project types in display order.
var ProjectTypes = []ProjectType{
	ProjectNewProduct, ProjectFeatureImprovement, ProjectUserResearch,
	ProjectMarketResearch, ProjectCompetitiveAnalysis,
}

// Phase is the product phase the project is currently in.
type Phase string

const (
	PhaseConcept      Phase = "concept"
	PhaseDesign       Phase = "design"
	PhaseDevelopment  Phase = "development"
	PhaseValidation   Phase = "validation"
	PhaseOptimization Phase = "optimization"
)

// Phases lists the selectable phases in display order.
var Phases = []Phase{PhaseConcept, PhaseDesign, PhaseDevelopment, PhaseValidation, PhaseOptimization}

// Timeline is the schedule pressure on the research.
type Timeline string

const (
	TimelineUrgent   Timeline = "urgent"
	TimelineNormal   Timeline = "normal"
	TimelineFlexible Timeline = "flexible"
)

// Timelines lists the selectable timelines in display order.
var Timelines = []Timeline{TimelineUrgent, TimelineNormal, TimelineFlexible}

// Budget is the money available for the research.
type Budget string

const (
	BudgetLimited    Budget = "limited"
	BudgetModerate   Budget = "moderate"
	BudgetSufficient Budget = "sufficient"
)

// Budgets lists the selectable budgets in display order.
var Budgets = []Budget{BudgetLimited, BudgetModerate, BudgetSufficient}

// Resources describes who is available to run the research.
type Resources string

const (
	ResourcesSolo          Resources = "solo"
	ResourcesSmallTeam     Resources = "small-team"
	ResourcesDedicatedTeam Resources = "dedicated-team"
)

// ResourceOptions lists the selectable resource levels in display order.
var ResourceOptions = []Resources{ResourcesSolo, ResourcesSmallTeam, ResourcesDedicatedTeam}

// RecruitmentMethod is how participants are found.
type RecruitmentMethod string

const (
	RecruitInternalDB  RecruitmentMethod = "internal-db"
	RecruitExternal    RecruitmentMethod = "external-panel"
	RecruitSocialMedia RecruitmentMethod = "social-media"
	RecruitReferral    RecruitmentMethod = "referral"
	RecruitStreet      RecruitmentMethod = "street-recruitment"
)

// RecruitmentMethods lists the selectable recruitment methods in display order.
var RecruitmentMethods = []RecruitmentMethod{
	RecruitInternalDB, RecruitExternal, RecruitSocialMedia, RecruitReferral, RecruitStreet,
}

// Location is where sessions take place.
type Location string

const (
	LocationOnline       Location = "online"
	LocationOffice       Location = "office"
	LocationUserSite     Location = "user-location"
	LocationNeutralSpace Location = "neutral-space"
	LocationLab          Location = "lab"
)

// Locations lists the selectable locations in display order.
var Locations = []Location{LocationOnline, LocationOffice, LocationUserSite, LocationNeutralSpace, LocationLab}

// ExecutionDetails holds the concrete plan for running the research.
type ExecutionDetails struct {
	// Participants is the planned participant count or description.
	Participants string `json:"participants" yaml:"participants"`

	// RecruitmentMethod is how participants are found.
	RecruitmentMethod RecruitmentMethod `json:"recruitment_method" yaml:"recruitment_method"`

	// Duration is the expected length of each session or of the study.
	Duration string `json:"duration" yaml:"duration"`

	// Schedule is the overall timeline.
	Schedule string `json:"schedule" yaml:"schedule"`

	// Tools lists the software and materials used.
	Tools string `json:"tools" yaml:"tools"`

	// Location is where sessions take place.
	Location Location `json:"location" yaml:"location"`

	// DataCollection describes how data is captured.
	DataCollection string `json:"data_collection" yaml:"data_collection"`

	// AnalysisMethod describes how data is analyzed.
	AnalysisMethod string `json:"analysis_method" yaml:"analysis_method"`

	// Deliverables lists the expected outputs.
	Deliverables string `json:"deliverables" yaml:"deliverables"`

	// Risks lists expected risks and mitigations.
	Risks string `json:"risks" yaml:"risks"`
}

// ResearchDraft is the working record of one research-design session. It has
// no identity of its own; it is created blank, edited, and discarded whole.
//
// Questions and Hypotheses always hold at least one element (possibly blank).
// SelectedMethods holds unique catalog IDs in selection order.
type ResearchDraft struct {
	ProjectName  string      `json:"project_name" yaml:"project_name"`
	ProjectType  ProjectType `json:"project_type" yaml:"project_type"`
	CurrentPhase Phase       `json:"current_phase" yaml:"current_phase"`
	Stakeholders string      `json:"stakeholders" yaml:"stakeholders"`

	BusinessProblem string `json:"business_problem" yaml:"business_problem"`
	UserProblem     string `json:"user_problem" yaml:"user_problem"`
	ResearchPurpose string `json:"research_purpose" yaml:"research_purpose"`
	SuccessMetrics  string `json:"success_metrics" yaml:"success_metrics"`

	Questions  []string `json:"research_questions" yaml:"research_questions"`
	Hypotheses []string `json:"hypotheses" yaml:"hypotheses"`

	TargetUser          string `json:"target_user" yaml:"target_user"`
	UserSegments        string `json:"user_segments" yaml:"user_segments"`
	RecruitmentCriteria string `json:"recruitment_criteria" yaml:"recruitment_criteria"`

	Timeline    Timeline  `json:"timeline" yaml:"timeline"`
	Budget      Budget    `json:"budget" yaml:"budget"`
	Resources   Resources `json:"resources" yaml:"resources"`
	Limitations string    `json:"limitations" yaml:"limitations"`

	SelectedMethods []string `json:"selected_methods" yaml:"selected_methods"`
	MethodRationale string   `json:"method_rationale" yaml:"method_rationale"`

	Execution ExecutionDetails `json:"execution" yaml:"execution"`
}

// NewDraft returns a blank draft with one placeholder question and hypothesis.
func NewDraft() *ResearchDraft {
	return &ResearchDraft{
		Questions:       []string{""},
		Hypotheses:      []string{""},
		SelectedMethods: []string{},
	}
}

// Clone returns a deep copy of d.
func (d *ResearchDraft) Clone() *ResearchDraft {
	c := *d
	c.Questions = cloneStrings(d.Questions)
	c.Hypotheses = cloneStrings(d.Hypotheses)
	c.SelectedMethods = cloneStrings(d.SelectedMethods)
	return &c
}

func cloneStrings(vs []string) []string {
	if vs == nil {
		return nil
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

// IsSelected reports whether the method ID is among the selected methods.
func (d *ResearchDraft) IsSelected(id string) bool {
	for _, s := range d.SelectedMethods {
		if s == id {
			return true
		}
	}
	return false
}
