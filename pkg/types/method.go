// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CostTier is the relative cost of running a research method.
type CostTier string

const (
	CostLow    CostTier = "low"
	CostMedium CostTier = "medium"
	CostHigh   CostTier = "high"
)

// ResearchMethod is one entry of the method catalog. Entries are reference
// data and never change at runtime.
type ResearchMethod struct {
	// ID is the stable catalog key (e.g. "user-interview").
	ID string `json:"id" yaml:"id"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Description summarizes what the method does.
	Description string `json:"description" yaml:"description"`

	// BestFor lists situations the method suits.
	BestFor []string `json:"best_for" yaml:"best_for"`

	// NotGoodFor lists situations the method does not suit.
	NotGoodFor []string `json:"not_good_for" yaml:"not_good_for"`

	// Timeframe is the expected duration range (e.g. "2-4 weeks").
	Timeframe string `json:"timeframe" yaml:"timeframe"`

	// Participants is the expected participant-count range.
	Participants string `json:"participants" yaml:"participants"`

	// Cost is the relative cost tier.
	Cost CostTier `json:"cost" yaml:"cost"`

	// Skills lists the skills needed to run the method.
	Skills []string `json:"skills" yaml:"skills"`

	// Deliverables lists typical outputs.
	Deliverables []string `json:"deliverables" yaml:"deliverables"`
}
