// Package catalog holds the static question bank: competency dimensions, Likert
// items, evidence prompts, the Mini-IPIP Big Five inventory, the IKIGAI worksheet
// definitions and the 90-day plan template library. All completeness and scoring
// decisions are made against the ID sets exposed here, never against tags stored
// alongside responses.
package catalog

// LikertItem is a single 1-5 agreement statement. Reverse-keyed items score as
// (6 - value).
type LikertItem struct {
	ID        string `json:"id"`
	Dimension string `json:"dimension"`
	Text      string `json:"text"`
	Reverse   bool   `json:"reverse"`
}

// EvidencePrompt asks for a free-text example backing up a dimension.
type EvidencePrompt struct {
	ID        string `json:"id"`
	Dimension string `json:"dimension"`
	Text      string `json:"text"`
}

// BigFiveItem is a Mini-IPIP statement keyed to one of the five traits.
type BigFiveItem struct {
	ID      string `json:"id"`
	Trait   string `json:"trait"`
	Text    string `json:"text"`
	Reverse bool   `json:"reverse"`
}

// Dimension is one of the five competency dimensions ("agilidades").
type Dimension struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Trait is one of the Big Five personality traits.
type Trait struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Dimensions lists the competency dimensions in their canonical order. This
// order is load-bearing: the archetype reduce iterates it left to right and
// first-seen wins on ties.
var Dimensions = []Dimension{
	{Key: "self_management", Label: "Autoconhecimento / Autogestão"},
	{Key: "mental_agility", Label: "Agilidade Mental"},
	{Key: "people_agility", Label: "Agilidade com Pessoas"},
	{Key: "change_agility", Label: "Agilidade com Mudanças"},
	{Key: "results_agility", Label: "Agilidade com Resultados"},
}

// LikertScaleLabels maps scale values 1..5 to their display labels.
var LikertScaleLabels = map[int]string{
	1: "Discordo totalmente",
	2: "Discordo",
	3: "Neutro",
	4: "Concordo",
	5: "Concordo totalmente",
}

// CoreLikertItems: 6 direct + 2 reverse items per dimension, 40 total.
var CoreLikertItems = []LikertItem{
	// A) Autoconhecimento / Autogestão
	{ID: "sm_1", Dimension: "self_management", Text: "Eu consigo descrever com clareza meus pontos fortes e fracos no trabalho.", Reverse: false},
	{ID: "sm_2", Dimension: "self_management", Text: "Eu costumo refletir sobre como minhas ações impactam outras pessoas.", Reverse: false},
	{ID: "sm_3", Dimension: "self_management", Text: "Eu cumpro combinados mesmo quando ninguém está cobrando.", Reverse: false},
	{ID: "sm_4", Dimension: "self_management", Text: "Eu reconheço cedo quando estou reagindo emocionalmente e ajusto a forma de agir.", Reverse: false},
	{ID: "sm_5", Dimension: "self_management", Text: "Eu consigo manter consistência mesmo com queda de motivação.", Reverse: false},
	{ID: "sm_6", Dimension: "self_management", Text: "Eu tenho um método para me organizar e priorizar.", Reverse: false},
	{ID: "sm_7", Dimension: "self_management", Text: "Eu geralmente \"vou no feeling\" e só depois percebo que errei na forma de agir.", Reverse: true},
	{ID: "sm_8", Dimension: "self_management", Text: "Eu frequentemente deixo coisas importantes para resolver em cima da hora.", Reverse: true},

	// B) Agilidade Mental
	{ID: "ma_1", Dimension: "mental_agility", Text: "Eu consigo simplificar problemas complexos em partes claras.", Reverse: false},
	{ID: "ma_2", Dimension: "mental_agility", Text: "Eu faço perguntas para entender causas, não só sintomas.", Reverse: false},
	{ID: "ma_3", Dimension: "mental_agility", Text: "Eu conecto diferentes áreas/variáveis antes de decidir.", Reverse: false},
	{ID: "ma_4", Dimension: "mental_agility", Text: "Eu aprendo rápido quando o tema tem aplicação prática.", Reverse: false},
	{ID: "ma_5", Dimension: "mental_agility", Text: "Eu busco melhorar processos sem precisar \"reinventar a roda\".", Reverse: false},
	{ID: "ma_6", Dimension: "mental_agility", Text: "Eu consigo gerar alternativas quando o plano original falha.", Reverse: false},
	{ID: "ma_7", Dimension: "mental_agility", Text: "Eu prefiro executar sem questionar para evitar complexidade.", Reverse: true},
	{ID: "ma_8", Dimension: "mental_agility", Text: "Eu só consigo decidir quando tenho 100% das informações.", Reverse: true},

	// C) Agilidade com Pessoas
	{ID: "pa_1", Dimension: "people_agility", Text: "Eu adapto minha comunicação ao perfil da pessoa (técnico vs executivo).", Reverse: false},
	{ID: "pa_2", Dimension: "people_agility", Text: "Eu consigo discordar sem gerar atrito desnecessário.", Reverse: false},
	{ID: "pa_3", Dimension: "people_agility", Text: "Eu peço e ofereço feedback de forma objetiva.", Reverse: false},
	{ID: "pa_4", Dimension: "people_agility", Text: "Eu consigo conduzir conversas difíceis quando necessário.", Reverse: false},
	{ID: "pa_5", Dimension: "people_agility", Text: "Eu facilito colaboração entre pessoas com visões diferentes.", Reverse: false},
	{ID: "pa_6", Dimension: "people_agility", Text: "Eu consigo escutar de verdade antes de responder.", Reverse: false},
	{ID: "pa_7", Dimension: "people_agility", Text: "Eu evito conversas difíceis mesmo quando sei que são necessárias.", Reverse: true},
	{ID: "pa_8", Dimension: "people_agility", Text: "Eu frequentemente me frustro por achar que as pessoas \"não entendem o óbvio\".", Reverse: true},

	// D) Agilidade com Mudanças
	{ID: "ca_1", Dimension: "change_agility", Text: "Eu me adapto rápido quando prioridades mudam.", Reverse: false},
	{ID: "ca_2", Dimension: "change_agility", Text: "Eu consigo separar \"não gosto\" de \"não vou aceitar\".", Reverse: false},
	{ID: "ca_3", Dimension: "change_agility", Text: "Eu encontro o que está no meu controle mesmo em cenários ruins.", Reverse: false},
	{ID: "ca_4", Dimension: "change_agility", Text: "Eu consigo liderar pequenas mudanças no meu entorno.", Reverse: false},
	{ID: "ca_5", Dimension: "change_agility", Text: "Eu consigo manter performance em ambientes instáveis.", Reverse: false},
	{ID: "ca_6", Dimension: "change_agility", Text: "Eu busco aprender com mudanças inesperadas.", Reverse: false},
	{ID: "ca_7", Dimension: "change_agility", Text: "Mudanças fora do meu controle costumam me travar por muito tempo.", Reverse: true},
	{ID: "ca_8", Dimension: "change_agility", Text: "Eu me apego ao plano original mesmo quando fica claro que não faz mais sentido.", Reverse: true},

	// E) Agilidade com Resultados
	{ID: "ra_1", Dimension: "results_agility", Text: "Eu priorizo com clareza o que gera mais impacto.", Reverse: false},
	{ID: "ra_2", Dimension: "results_agility", Text: "Eu transformo objetivos em entregas e prazos.", Reverse: false},
	{ID: "ra_3", Dimension: "results_agility", Text: "Eu tomo decisões mesmo com incerteza moderada.", Reverse: false},
	{ID: "ra_4", Dimension: "results_agility", Text: "Eu acompanho progresso com métricas simples.", Reverse: false},
	{ID: "ra_5", Dimension: "results_agility", Text: "Eu gosto de resolver problemas com entregas concretas.", Reverse: false},
	{ID: "ra_6", Dimension: "results_agility", Text: "Eu consigo dizer \"não\" para proteger o que é prioridade.", Reverse: false},
	{ID: "ra_7", Dimension: "results_agility", Text: "Eu começo muitas coisas e termino poucas.", Reverse: true},
	{ID: "ra_8", Dimension: "results_agility", Text: "Eu confundo \"estar ocupado\" com \"gerar resultado\".", Reverse: true},
}

// CoreEvidencePrompts: 2 open-text prompts per dimension, 10 total.
var CoreEvidencePrompts = []EvidencePrompt{
	{ID: "sm_ev1", Dimension: "self_management", Text: "Conte 1 situação recente em que você mudou de ideia após refletir (o que te fez mudar?)."},
	{ID: "sm_ev2", Dimension: "self_management", Text: "Cite 2 combinados que você cumpre bem e 1 que você tem falhado (e por quê)."},
	{ID: "ma_ev1", Dimension: "mental_agility", Text: "Dê um exemplo de um problema que você resolveu fazendo boas perguntas."},
	{ID: "ma_ev2", Dimension: "mental_agility", Text: "Cite um processo que você melhorou e qual foi o ganho concreto."},
	{ID: "pa_ev1", Dimension: "people_agility", Text: "Conte 1 feedback difícil que você deu/recebeu e o que mudou depois."},
	{ID: "pa_ev2", Dimension: "people_agility", Text: "Cite 1 conflito que você ajudou a resolver (como você agiu?)."},
	{ID: "ca_ev1", Dimension: "change_agility", Text: "Conte uma mudança recente que te afetou e como você se reajustou."},
	{ID: "ca_ev2", Dimension: "change_agility", Text: "O que mais te irrita em mudanças? (e o que você faz com isso?)"},
	{ID: "ra_ev1", Dimension: "results_agility", Text: "Cite 2 entregas repetidas que você faz bem e 1 que você evita."},
	{ID: "ra_ev2", Dimension: "results_agility", Text: "Conte um caso em que você teve que priorizar e o que cortou."},
}

// BigFiveTraits lists the Mini-IPIP traits in canonical order.
// Source: Donnellan, M. B., et al. (2006). Mini-IPIP scales (public domain).
var BigFiveTraits = []Trait{
	{Key: "extraversion", Label: "Extroversão"},
	{Key: "agreeableness", Label: "Amabilidade"},
	{Key: "conscientiousness", Label: "Conscienciosidade"},
	{Key: "neuroticism", Label: "Neuroticismo"},
	{Key: "intellect", Label: "Intelecto / Imaginação"},
}

// BigFiveItems: 4 items per trait, 20 total. Positively keyed items score the
// raw value; negatively keyed items score (6 - value).
var BigFiveItems = []BigFiveItem{
	{ID: "bf_e1", Trait: "extraversion", Text: "Sou a alma da festa.", Reverse: false},
	{ID: "bf_e2", Trait: "extraversion", Text: "Converso com muitas pessoas diferentes em festas.", Reverse: false},
	{ID: "bf_e3", Trait: "extraversion", Text: "Não falo muito.", Reverse: true},
	{ID: "bf_e4", Trait: "extraversion", Text: "Fico em segundo plano.", Reverse: true},

	{ID: "bf_a1", Trait: "agreeableness", Text: "Simpatizo com os sentimentos dos outros.", Reverse: false},
	{ID: "bf_a2", Trait: "agreeableness", Text: "Sinto as emoções das outras pessoas.", Reverse: false},
	{ID: "bf_a3", Trait: "agreeableness", Text: "Não me interesso muito pelos outros.", Reverse: true},
	{ID: "bf_a4", Trait: "agreeableness", Text: "Não me interesso pelos problemas das outras pessoas.", Reverse: true},

	{ID: "bf_c1", Trait: "conscientiousness", Text: "Faço minhas tarefas imediatamente.", Reverse: false},
	{ID: "bf_c2", Trait: "conscientiousness", Text: "Gosto de ordem.", Reverse: false},
	{ID: "bf_c3", Trait: "conscientiousness", Text: "Frequentemente esqueço de colocar as coisas no lugar.", Reverse: true},
	{ID: "bf_c4", Trait: "conscientiousness", Text: "Faço bagunça com as coisas.", Reverse: true},

	{ID: "bf_n1", Trait: "neuroticism", Text: "Tenho mudanças frequentes de humor.", Reverse: false},
	{ID: "bf_n2", Trait: "neuroticism", Text: "Fico chateado(a) facilmente.", Reverse: false},
	{ID: "bf_n3", Trait: "neuroticism", Text: "Estou relaxado(a) a maior parte do tempo.", Reverse: true},
	{ID: "bf_n4", Trait: "neuroticism", Text: "Raramente me sinto triste.", Reverse: true},

	{ID: "bf_i1", Trait: "intellect", Text: "Tenho uma imaginação vívida.", Reverse: false},
	{ID: "bf_i2", Trait: "intellect", Text: "Tenho dificuldade em entender ideias abstratas.", Reverse: true},
	{ID: "bf_i3", Trait: "intellect", Text: "Não me interesso por ideias abstratas.", Reverse: true},
	{ID: "bf_i4", Trait: "intellect", Text: "Não tenho uma boa imaginação.", Reverse: true},
}

// IkigaiCircle is one of the four worksheet circles.
type IkigaiCircle struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Prompts []string `json:"prompts"`
}

// IkigaiCircles in canonical order. Completion requires at least
// MinIkigaiItemsPerCircle stored items in every circle.
var IkigaiCircles = []IkigaiCircle{
	{
		Key:   "love",
		Label: "O que eu amo",
		Prompts: []string{
			"Quais 5 atividades você faz e perde a noção do tempo?",
			"Quais temas você consome espontaneamente toda semana?",
		},
	},
	{
		Key:   "good_at",
		Label: "No que sou bom",
		Prompts: []string{
			"Quais 5 problemas as pessoas te procuram para resolver?",
			"Quais entregas você já repetiu com consistência (2–3 exemplos)?",
		},
	},
	{
		Key:   "world_needs",
		Label: "O que o mundo precisa",
		Prompts: []string{
			"Qual problema humano/social/organizacional mais te indigna?",
			"Que tipo de melhoria você gostaria de ver no seu contexto?",
		},
	},
	{
		Key:   "paid_for",
		Label: "Pelo que posso ser pago",
		Prompts: []string{
			"Quais 3 tipos de trabalho pagariam por isso hoje?",
			"Qual nível de estabilidade/remuneração você busca no próximo ciclo?",
		},
	},
}

// MinIkigaiItemsPerCircle is the per-circle minimum for the worksheet to count
// as complete.
const MinIkigaiItemsPerCircle = 3

// IkigaiZone is an intersection of two circles the user can choose as focus.
type IkigaiZone struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Circles     []string `json:"circles"`
}

// IkigaiZones lists the four choosable intersections.
var IkigaiZones = []IkigaiZone{
	{Key: "passion", Label: "Paixão", Description: "O que você ama + No que é bom", Circles: []string{"love", "good_at"}},
	{Key: "profession", Label: "Profissão", Description: "No que é bom + Pelo que pode ser pago", Circles: []string{"good_at", "paid_for"}},
	{Key: "mission", Label: "Missão", Description: "O que você ama + O que o mundo precisa", Circles: []string{"love", "world_needs"}},
	{Key: "vocation", Label: "Vocação", Description: "O que o mundo precisa + Pelo que pode ser pago", Circles: []string{"world_needs", "paid_for"}},
}

var (
	coreItemIDs    map[string]bool
	bigFiveItemIDs map[string]bool
	reverseItemIDs map[string]bool
	promptIDs      map[string]bool
	circleKeys     map[string]bool
	zoneKeys       map[string]bool
)

func init() {
	coreItemIDs = make(map[string]bool, len(CoreLikertItems))
	reverseItemIDs = make(map[string]bool)
	for _, it := range CoreLikertItems {
		coreItemIDs[it.ID] = true
		if it.Reverse {
			reverseItemIDs[it.ID] = true
		}
	}
	bigFiveItemIDs = make(map[string]bool, len(BigFiveItems))
	for _, it := range BigFiveItems {
		bigFiveItemIDs[it.ID] = true
		if it.Reverse {
			reverseItemIDs[it.ID] = true
		}
	}
	promptIDs = make(map[string]bool, len(CoreEvidencePrompts))
	for _, p := range CoreEvidencePrompts {
		promptIDs[p.ID] = true
	}
	circleKeys = make(map[string]bool, len(IkigaiCircles))
	for _, c := range IkigaiCircles {
		circleKeys[c.Key] = true
	}
	zoneKeys = make(map[string]bool, len(IkigaiZones))
	for _, z := range IkigaiZones {
		zoneKeys[z.Key] = true
	}
}

// IsCoreItemID reports whether id belongs to the core competency item bank.
func IsCoreItemID(id string) bool { return coreItemIDs[id] }

// IsBigFiveItemID reports whether id belongs to the Mini-IPIP item bank.
func IsBigFiveItemID(id string) bool { return bigFiveItemIDs[id] }

// IsReverseItemID reports whether id is reverse-keyed, in either item bank.
func IsReverseItemID(id string) bool { return reverseItemIDs[id] }

// IsEvidencePromptID reports whether id is a known evidence prompt.
func IsEvidencePromptID(id string) bool { return promptIDs[id] }

// IsCircleKey reports whether key is a valid IKIGAI circle.
func IsCircleKey(key string) bool { return circleKeys[key] }

// IsZoneKey reports whether key is a valid IKIGAI zone.
func IsZoneKey(key string) bool { return zoneKeys[key] }

// CoreItemIDs returns the ID set of all 40 core Likert items.
func CoreItemIDs() []string {
	ids := make([]string, 0, len(CoreLikertItems))
	for _, it := range CoreLikertItems {
		ids = append(ids, it.ID)
	}
	return ids
}

// BigFiveItemIDs returns the ID set of all 20 Big Five items.
func BigFiveItemIDs() []string {
	ids := make([]string, 0, len(BigFiveItems))
	for _, it := range BigFiveItems {
		ids = append(ids, it.ID)
	}
	return ids
}

// DimensionItemIDs returns the IDs of the core items belonging to dimensionKey.
func DimensionItemIDs(dimensionKey string) map[string]bool {
	ids := make(map[string]bool, 8)
	for _, it := range CoreLikertItems {
		if it.Dimension == dimensionKey {
			ids[it.ID] = true
		}
	}
	return ids
}

// TraitItemIDs returns the IDs of the Big Five items belonging to traitKey.
func TraitItemIDs(traitKey string) map[string]bool {
	ids := make(map[string]bool, 4)
	for _, it := range BigFiveItems {
		if it.Trait == traitKey {
			ids[it.ID] = true
		}
	}
	return ids
}
