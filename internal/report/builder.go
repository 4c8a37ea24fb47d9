package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/abarros/arc-assessment/internal/catalog"
)

// LikertRow is the stored answer view the builder consumes.
type LikertRow struct {
	ItemID  string
	Value   int
	Reverse bool
}

// IkigaiRow is a stored worksheet item with its in-circle rank.
type IkigaiRow struct {
	Circle string
	Text   string
	Rank   int
}

// PlanSelections mirrors the stored 90-day plan row.
type PlanSelections struct {
	CycleObjective  string
	Checkpoint1Date string
	Checkpoint2Date string
	Checkpoint3Date string
	Selected70      []string
	Selected20      []string
	Selected10      []string
}

// Assessment carries everything stored for one user that the report needs.
// Nil/empty collections are fine: missing sections render as zeros or empty
// lists, never as an error.
type Assessment struct {
	Likert     []LikertRow
	Ikigai     []IkigaiRow
	ChosenZone string
	Plan       *PlanSelections
}

// experienceMetric is the fixed metric text attached to every 70%-block entry.
const experienceMetric = "Avalie o impacto no trabalho principal ao final do ciclo"

// Build assembles the renderer payload. It never fails: partial data yields
// partial (zeroed) sections.
func Build(userName string, a Assessment) Payload {
	if userName == "" {
		userName = "Participante"
	}

	agilidades := Agilidades{
		Autogestao: Score(a.Likert, catalog.DimensionItemIDs("self_management")),
		Mental:     Score(a.Likert, catalog.DimensionItemIDs("mental_agility")),
		Pessoas:    Score(a.Likert, catalog.DimensionItemIDs("people_agility")),
		Mudancas:   Score(a.Likert, catalog.DimensionItemIDs("change_agility")),
		Resultados: Score(a.Likert, catalog.DimensionItemIDs("results_agility")),
	}

	bigFive := BigFive{
		Extroversao:       Score(a.Likert, catalog.TraitItemIDs("extraversion")),
		Amabilidade:       Score(a.Likert, catalog.TraitItemIDs("agreeableness")),
		Conscienciosidade: Score(a.Likert, catalog.TraitItemIDs("conscientiousness")),
		Neuroticismo:      Score(a.Likert, catalog.TraitItemIDs("neuroticism")),
		Abertura:          Score(a.Likert, catalog.TraitItemIDs("intellect")),
	}

	archetype := ArchetypeFor(TopDimension(a.Likert))

	return Payload{
		UserName:             userName,
		Archetype:            archetype.Name,
		ArchetypeStrengths:   archetype.Strengths,
		ArchetypeTensions:    archetype.Tensions,
		ProvocativeQuestions: archetype.Questions,
		Agilidades:           agilidades,
		BigFive:              bigFive,
		Ikigai:               ikigaiLists(a.Ikigai),
		SelectedZone:         a.ChosenZone,
		Plan:                 mapPlan(a.Plan),
	}
}

// Score averages the answers whose item ID is in the target set, applying
// reverse scoring (6 - value) to reverse-flagged rows, rounded to one decimal.
// An empty selection scores exactly 0, not NaN.
func Score(rows []LikertRow, targetIDs map[string]bool) float64 {
	sum, n := 0, 0
	for _, r := range rows {
		if !targetIDs[r.ItemID] {
			continue
		}
		v := r.Value
		if r.Reverse {
			v = 6 - v
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(n)*10) / 10
}

// TopDimension returns the dimension key with the highest score. The reduce
// walks catalog.Dimensions in canonical order and replaces only on strict
// greater-than, so the first-seen dimension wins ties.
func TopDimension(rows []LikertRow) string {
	top := ""
	best := math.Inf(-1)
	for _, dim := range catalog.Dimensions {
		score := Score(rows, catalog.DimensionItemIDs(dim.Key))
		if score > best {
			best = score
			top = dim.Key
		}
	}
	return top
}

// ikigaiLists groups items by circle ordered by ascending rank. Only the order
// survives into the payload; the rank number itself is dropped.
func ikigaiLists(items []IkigaiRow) IkigaiLists {
	sorted := make([]IkigaiRow, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })

	// Slices start non-nil so the payload always carries JSON arrays, never null.
	lists := IkigaiLists{
		Amo:          []string{},
		SouBom:       []string{},
		MundoPrecisa: []string{},
		PossoSerPago: []string{},
	}
	for _, item := range sorted {
		switch item.Circle {
		case "love":
			lists.Amo = append(lists.Amo, item.Text)
		case "good_at":
			lists.SouBom = append(lists.SouBom, item.Text)
		case "world_needs":
			lists.MundoPrecisa = append(lists.MundoPrecisa, item.Text)
		case "paid_for":
			lists.PossoSerPago = append(lists.PossoSerPago, item.Text)
		}
	}
	return lists
}

// mapPlan fans the stored 70/20/10 selections into the renderer's plan schema:
// 70% entries become experiences on a 3-week cadence, 20% and 10% entries fold
// into a single education list tagged by kind, and the three checkpoints are
// synthesized from the stored dates with a dateless fallback.
func mapPlan(p *PlanSelections) Plan90Days {
	plan := Plan90Days{
		Experiencias: []Experience{},
		Pessoas:      []Person{},
		Educacao:     []Education{},
		Checkpoints:  []Checkpoint{},
	}
	if p == nil {
		return plan
	}

	plan.ChosenHypothesis = p.CycleObjective
	if plan.ChosenHypothesis == "" {
		plan.ChosenHypothesis = "Ciclo de desenvolvimento Arc"
	}

	for i, title := range p.Selected70 {
		plan.Experiencias = append(plan.Experiencias, Experience{
			Title:  title,
			Week:   (i + 1) * 3,
			Metric: experienceMetric,
		})
	}
	for _, title := range p.Selected20 {
		plan.Educacao = append(plan.Educacao, Education{Kind: "desenvolvimento", Title: title})
	}
	for _, title := range p.Selected10 {
		plan.Educacao = append(plan.Educacao, Education{Kind: "exploração", Title: title})
	}

	plan.Checkpoints = []Checkpoint{
		checkpoint(4, 1, p.Checkpoint1Date, "O que mudou desde o início do ciclo?"),
		checkpoint(8, 2, p.Checkpoint2Date, "O que precisa ser ajustado?"),
		checkpoint(12, 3, p.Checkpoint3Date, "O que ficou para o próximo ciclo?"),
	}
	return plan
}

func checkpoint(week, number int, date, question string) Checkpoint {
	if date != "" {
		return Checkpoint{Week: week, Question: fmt.Sprintf("Checkpoint %d (%s): %s", number, date, question)}
	}
	return Checkpoint{Week: week, Question: fmt.Sprintf("Checkpoint %d: %s", number, question)}
}
