// Package status derives per-section completion and the wizard resume step from
// stored responses plus the static catalog. It is pure compute: callers fetch
// the rows (degrading to empty collections when the store is unavailable) and
// this package never touches the database.
package status

import (
	"time"

	"github.com/abarros/arc-assessment/internal/catalog"
)

// Resume step identifiers, in wizard order.
const (
	StepLGPD         = "lgpd"
	StepCoreLikert   = "core_likert"
	StepCoreEvidence = "core_evidence"
	StepBigFive      = "bigfive"
	StepIkigai       = "ikigai"
	StepReview       = "review"
	StepSubmitted    = "submitted"
)

// Assessment status values stored on the user choice row.
const (
	AssessmentInProgress = "in_progress"
	AssessmentCompleted  = "completed"
)

// LikertAnswer is the minimal view of a stored Likert row the engine needs.
type LikertAnswer struct {
	ItemID string
}

// IkigaiEntry is the minimal view of a stored IKIGAI item.
type IkigaiEntry struct {
	Circle string
}

// Choice mirrors the single per-user choice row.
type Choice struct {
	ChosenZone       string
	AssessmentStatus string
}

// Input carries everything the engine reads. Zero values mean "nothing stored".
type Input struct {
	Likert    []LikertAnswer
	PromptIDs []string // evidence prompt IDs answered
	Ikigai    []IkigaiEntry
	Choice    *Choice
	ConsentAt *time.Time
}

// SectionCount is a countable section's progress.
type SectionCount struct {
	Answered int  `json:"answered"`
	Total    int  `json:"total"`
	Complete bool `json:"complete"`
}

// CircleCount is one IKIGAI circle's progress.
type CircleCount struct {
	Circle   string `json:"circle"`
	Count    int    `json:"count"`
	Complete bool   `json:"complete"`
}

// Sections holds per-section completion.
type Sections struct {
	LGPD struct {
		Complete bool `json:"complete"`
	} `json:"lgpd"`
	CoreLikert   SectionCount `json:"core_likert"`
	CoreEvidence SectionCount `json:"core_evidence"`
	BigFive      SectionCount `json:"bigfive"`
	Ikigai       struct {
		Circles  []CircleCount `json:"circles"`
		Complete bool          `json:"complete"`
	} `json:"ikigai"`
	Zone struct {
		Chosen   string `json:"chosen,omitempty"`
		Complete bool   `json:"complete"`
	} `json:"zone"`
}

// Status is the full answer to "where is this user in the wizard".
type Status struct {
	Sections         Sections `json:"sections"`
	ResumeStep       string   `json:"resumeStep"`
	AssessmentStatus string   `json:"assessmentStatus"`
	AllComplete      bool     `json:"allComplete"`
}

// Compute derives the status from stored rows. Likert rows are partitioned into
// core and bigfive by catalog ID-set membership; the dimension tag stored on
// the row is never trusted for this split.
func Compute(in Input) Status {
	var st Status

	coreAnswered := make(map[string]bool)
	bigFiveAnswered := make(map[string]bool)
	for _, a := range in.Likert {
		switch {
		case catalog.IsCoreItemID(a.ItemID):
			coreAnswered[a.ItemID] = true
		case catalog.IsBigFiveItemID(a.ItemID):
			bigFiveAnswered[a.ItemID] = true
		}
	}

	st.Sections.CoreLikert = sectionCount(len(coreAnswered), len(catalog.CoreLikertItems))
	st.Sections.BigFive = sectionCount(len(bigFiveAnswered), len(catalog.BigFiveItems))

	promptAnswered := make(map[string]bool)
	for _, id := range in.PromptIDs {
		if catalog.IsEvidencePromptID(id) {
			promptAnswered[id] = true
		}
	}
	st.Sections.CoreEvidence = sectionCount(len(promptAnswered), len(catalog.CoreEvidencePrompts))

	perCircle := make(map[string]int)
	for _, item := range in.Ikigai {
		perCircle[item.Circle]++
	}
	ikigaiComplete := true
	for _, circle := range catalog.IkigaiCircles {
		n := perCircle[circle.Key]
		complete := n >= catalog.MinIkigaiItemsPerCircle
		if !complete {
			ikigaiComplete = false
		}
		st.Sections.Ikigai.Circles = append(st.Sections.Ikigai.Circles, CircleCount{
			Circle:   circle.Key,
			Count:    n,
			Complete: complete,
		})
	}
	st.Sections.Ikigai.Complete = ikigaiComplete

	if in.Choice != nil && in.Choice.ChosenZone != "" {
		st.Sections.Zone.Chosen = in.Choice.ChosenZone
		st.Sections.Zone.Complete = true
	}

	st.Sections.LGPD.Complete = in.ConsentAt != nil

	// lgpd and plan90d gate entry/exit but deliberately do not count toward
	// allComplete.
	st.AllComplete = st.Sections.CoreLikert.Complete &&
		st.Sections.CoreEvidence.Complete &&
		st.Sections.BigFive.Complete &&
		st.Sections.Ikigai.Complete &&
		st.Sections.Zone.Complete

	st.AssessmentStatus = AssessmentInProgress
	if in.Choice != nil && in.Choice.AssessmentStatus != "" {
		st.AssessmentStatus = in.Choice.AssessmentStatus
	}

	st.ResumeStep = resumeStep(st)
	return st
}

func sectionCount(answered, total int) SectionCount {
	return SectionCount{
		Answered: answered,
		Total:    total,
		Complete: answered >= total,
	}
}

// resumeStep walks the fixed priority chain; the first unmet requirement wins.
// A completed assessment is terminal regardless of section state.
func resumeStep(st Status) string {
	if st.AssessmentStatus == AssessmentCompleted {
		return StepSubmitted
	}
	switch {
	case !st.Sections.LGPD.Complete:
		return StepLGPD
	case !st.Sections.CoreLikert.Complete:
		return StepCoreLikert
	case !st.Sections.CoreEvidence.Complete:
		return StepCoreEvidence
	case !st.Sections.BigFive.Complete:
		return StepBigFive
	case !st.Sections.Ikigai.Complete || !st.Sections.Zone.Complete:
		return StepIkigai
	default:
		return StepReview
	}
}
