package report

// Archetype is a static record mapped from the highest-scoring dimension.
type Archetype struct {
	Name      string
	Strengths []string
	Tensions  []string
	Questions []string
}

// archetypes is keyed by dimension key. Lookup happens through TopDimension,
// which iterates catalog.Dimensions in canonical order.
var archetypes = map[string]Archetype{
	"self_management": {
		Name:      "O Arquiteto de Si",
		Strengths: []string{"Alta consciência de si mesmo", "Consistência e confiabilidade", "Capacidade de autorregulação"},
		Tensions:  []string{"Pode ser excessivamente autocrítico", "Dificuldade em delegar"},
		Questions: []string{"Quando foi a última vez que você mudou de opinião sobre si mesmo?", "O que você tolera em si que não toleraria nos outros?"},
	},
	"mental_agility": {
		Name:      "O Pensador Sistêmico",
		Strengths: []string{"Visão analítica e estruturada", "Capacidade de síntese", "Aprendizado rápido"},
		Tensions:  []string{"Pode paralisar por excesso de análise", "Dificuldade com ambiguidade"},
		Questions: []string{"Qual problema você ainda não conseguiu simplificar?", "Quando a análise virou desculpa para não agir?"},
	},
	"people_agility": {
		Name:      "O Conector",
		Strengths: []string{"Inteligência relacional elevada", "Comunicação adaptativa", "Capacidade de influência"},
		Tensions:  []string{"Pode evitar conflitos necessários", "Dependência de aprovação"},
		Questions: []string{"Qual conversa difícil você está adiando?", "Onde sua empatia virou obstáculo?"},
	},
	"change_agility": {
		Name:      "O Navegador",
		Strengths: []string{"Alta adaptabilidade", "Resiliência em cenários instáveis", "Visão de oportunidade em crises"},
		Tensions:  []string{"Pode se perder sem estrutura", "Dificuldade com rotina"},
		Questions: []string{"O que você ainda não aprendeu com a última mudança?", "Onde a adaptabilidade virou falta de posição?"},
	},
	"results_agility": {
		Name:      "O Executor",
		Strengths: []string{"Foco em entrega", "Alta capacidade de priorização", "Orientação a impacto"},
		Tensions:  []string{"Pode sacrificar qualidade por velocidade", "Dificuldade em pausar para reflexão"},
		Questions: []string{"Qual resultado você perseguiu que não deveria?", "O que você entrega que ninguém pediu?"},
	},
}

// ArchetypeFor returns the archetype record for a dimension key, falling back
// to the self-management archetype for unknown keys.
func ArchetypeFor(dimensionKey string) Archetype {
	if a, ok := archetypes[dimensionKey]; ok {
		return a
	}
	return archetypes["self_management"]
}
