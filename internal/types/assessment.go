package types

import (
	"github.com/go-playground/validator/v10"
)

// ConsentRequest records LGPD consent for the authenticated user.
type ConsentRequest struct {
	Version string `json:"version" validate:"required,min=1"`
}

// LikertItemInput is one 1-5 answer inside a section save.
type LikertItemInput struct {
	ItemID string `json:"item_id" validate:"required"`
	Value  int    `json:"value" validate:"required,min=1,max=5"`
}

// SaveLikertRequest saves one questionnaire section. Section scopes which
// stored rows are replaced.
type SaveLikertRequest struct {
	Section string            `json:"section" validate:"required,oneof=core bigfive"`
	Items   []LikertItemInput `json:"items" validate:"required,min=1,dive"`
}

// EvidenceItemInput is one free-text answer inside an evidence save.
type EvidenceItemInput struct {
	PromptID string `json:"prompt_id" validate:"required"`
	Answer   string `json:"answer" validate:"required,min=1"`
}

// SaveEvidenceRequest replaces the user's evidence answers.
type SaveEvidenceRequest struct {
	Items []EvidenceItemInput `json:"items" validate:"required,min=1,dive"`
}

// IkigaiItemInput is one worksheet entry inside an IKIGAI save.
type IkigaiItemInput struct {
	Circle string `json:"circle" validate:"required,oneof=love good_at world_needs paid_for"`
	Text   string `json:"text" validate:"required,min=1"`
	Rank   int    `json:"rank" validate:"required,min=1,max=5"`
}

// SaveIkigaiRequest replaces the user's worksheet.
type SaveIkigaiRequest struct {
	Items []IkigaiItemInput `json:"items" validate:"required,min=1,dive"`
}

// SaveChoicesRequest records the chosen IKIGAI zone and the free-text focus
// within it. Nil fields are a valid partial save that leaves stored values
// untouched.
type SaveChoicesRequest struct {
	ChosenZone  *string `json:"chosen_zone" validate:"omitempty,oneof=passion profession mission vocation"`
	ChosenFocus *string `json:"chosen_focus" validate:"omitempty,min=1"`
}

// SavePlan90DRequest merges plan fields. Nil fields leave stored values
// untouched; selection lists are capped per block (70/20/10).
type SavePlan90DRequest struct {
	CycleObjective  *string  `json:"cycle_objective" validate:"omitempty,min=1"`
	Checkpoint1Date *string  `json:"checkpoint1_date" validate:"omitempty,datetime=2006-01-02"`
	Checkpoint2Date *string  `json:"checkpoint2_date" validate:"omitempty,datetime=2006-01-02"`
	Checkpoint3Date *string  `json:"checkpoint3_date" validate:"omitempty,datetime=2006-01-02"`
	Selected70      []string `json:"selected_70" validate:"omitempty,max=2,dive,min=1"`
	Selected20      []string `json:"selected_20" validate:"omitempty,max=2,dive,min=1"`
	Selected10      []string `json:"selected_10" validate:"omitempty,max=1,dive,min=1"`
}

// GenerateReportResponse carries the rendered PDF inline.
type GenerateReportResponse struct {
	Success   bool   `json:"success"`
	PDFBase64 string `json:"pdf_base64"`
	Filename  string `json:"filename"`
}

// ErasureResponse confirms a completed data erasure.
type ErasureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Validate validates the ConsentRequest using the validator.
func (r *ConsentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SaveLikertRequest using the validator.
func (r *SaveLikertRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SaveEvidenceRequest using the validator.
func (r *SaveEvidenceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SaveIkigaiRequest using the validator.
func (r *SaveIkigaiRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SaveChoicesRequest using the validator.
func (r *SaveChoicesRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SavePlan90DRequest using the validator.
func (r *SavePlan90DRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
