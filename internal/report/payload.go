// Package report assembles the fixed-shape payload consumed by the external
// PDF renderer: per-dimension and per-trait scores, the archetype record, the
// ordered IKIGAI lists and the mapped 90-day plan.
package report

// Payload matches the renderer's /render contract. JSON keys are part of the
// external interface and must not change.
type Payload struct {
	UserName             string      `json:"user_name"`
	Archetype            string      `json:"archetype"`
	ArchetypeStrengths   []string    `json:"archetype_strengths"`
	ArchetypeTensions    []string    `json:"archetype_tensions"`
	ProvocativeQuestions []string    `json:"provocative_questions"`
	Agilidades           Agilidades  `json:"agilidades"`
	BigFive              BigFive     `json:"big_five"`
	Ikigai               IkigaiLists `json:"ikigai"`
	SelectedZone         string      `json:"selected_zone"`
	Plan                 Plan90Days  `json:"plan"`
}

// Agilidades carries the five competency scores, 0-5 scale, one decimal.
type Agilidades struct {
	Mental     float64 `json:"mental"`
	Resultados float64 `json:"resultados"`
	Pessoas    float64 `json:"pessoas"`
	Mudancas   float64 `json:"mudancas"`
	Autogestao float64 `json:"autogestao"`
}

// BigFive carries the five trait scores, 0-5 scale, one decimal.
type BigFive struct {
	Abertura          float64 `json:"abertura"`
	Conscienciosidade float64 `json:"conscienciosidade"`
	Extroversao       float64 `json:"extroversao"`
	Amabilidade       float64 `json:"amabilidade"`
	Neuroticismo      float64 `json:"neuroticismo"`
}

// IkigaiLists holds the ordered item texts per circle. Rank establishes the
// order and is then discarded.
type IkigaiLists struct {
	Amo          []string `json:"amo"`
	SouBom       []string `json:"sou_bom"`
	MundoPrecisa []string `json:"mundo_precisa"`
	PossoSerPago []string `json:"posso_ser_pago"`
}

// Experience is a dated 70%-block entry.
type Experience struct {
	Title  string `json:"title"`
	Week   int    `json:"week"`
	Metric string `json:"metric"`
}

// Person is a support-network entry (currently always empty, kept for the
// renderer schema).
type Person struct {
	Profile       string `json:"profile"`
	Justification string `json:"justification"`
}

// Education is a 20%/10%-block entry tagged by kind.
type Education struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

// Checkpoint is a synthesized cycle review question.
type Checkpoint struct {
	Week     int    `json:"week"`
	Question string `json:"question"`
}

// Plan90Days is the renderer's plan sub-object.
type Plan90Days struct {
	ChosenHypothesis string       `json:"chosen_hypothesis"`
	Experiencias     []Experience `json:"experiencias"`
	Pessoas          []Person     `json:"pessoas"`
	Educacao         []Education  `json:"educacao"`
	Checkpoints      []Checkpoint `json:"checkpoints"`
}
