package catalog

// PlanOption is one selectable action in a 70/20/10 block.
type PlanOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// PlanBlock groups the options of one slice of the 70/20/10 split.
type PlanBlock struct {
	Key           string       `json:"key"`
	Title         string       `json:"title"`
	Subtitle      string       `json:"subtitle"`
	MaxSelections int          `json:"max_selections"`
	Options       []PlanOption `json:"options"`
}

var options70 = []PlanOption{
	{
		ID:          "70_deepen_core",
		Label:       "Aprofundar competência central",
		Description: "Dedicar tempo deliberado à dimensão de maior impacto no seu trabalho atual — com prática intencional, não apenas execução.",
	},
	{
		ID:          "70_deliver_project",
		Label:       "Entregar projeto estratégico",
		Description: "Identificar o projeto de maior visibilidade e impacto no ciclo e garantir entrega com qualidade acima do esperado.",
	},
	{
		ID:          "70_build_routine",
		Label:       "Construir rotina de alta performance",
		Description: "Estruturar blocos de trabalho focado (deep work), reduzir interrupções e criar rituais de início/encerramento de dia.",
	},
	{
		ID:          "70_improve_process",
		Label:       "Melhorar processo crítico",
		Description: "Mapear o processo que mais drena energia ou gera retrabalho e redesenhá-lo com pelo menos 20% de ganho de eficiência.",
	},
	{
		ID:          "70_stakeholder",
		Label:       "Fortalecer relação com stakeholders-chave",
		Description: "Identificar 2-3 pessoas que mais influenciam seu trabalho e investir em alinhamento proativo e visibilidade de resultados.",
	},
}

var options20 = []PlanOption{
	{
		ID:          "20_learn_adjacent",
		Label:       "Aprender habilidade adjacente",
		Description: "Escolher uma habilidade que complementa sua competência central e dedicar 2-3 horas semanais a aprendizado estruturado.",
	},
	{
		ID:          "20_seek_feedback",
		Label:       "Buscar feedback estruturado",
		Description: "Solicitar feedback específico de 2-3 pessoas sobre uma dimensão de desenvolvimento — com perguntas concretas, não genéricas.",
	},
	{
		ID:          "20_mentor_mentee",
		Label:       "Ativar relação de mentoria",
		Description: "Identificar alguém mais experiente na sua área de desenvolvimento e propor encontros quinzenais com pauta preparada.",
	},
	{
		ID:          "20_experiment",
		Label:       "Conduzir experimento de carreira",
		Description: "Testar uma hipótese sobre seu desenvolvimento (ex: liderar uma iniciativa nova, assumir responsabilidade diferente) com prazo definido.",
	},
	{
		ID:          "20_document_learning",
		Label:       "Documentar aprendizados",
		Description: "Criar o hábito de registrar 1 aprendizado por semana — o que funcionou, o que não funcionou e o que mudaria.",
	},
}

var options10 = []PlanOption{
	{
		ID:          "10_explore_ikigai",
		Label:       "Explorar interseção do IKIGAI",
		Description: "Dedicar tempo a uma atividade que cruza pelo menos dois círculos do seu IKIGAI — sem pressão de resultado imediato.",
	},
	{
		ID:          "10_network_new",
		Label:       "Expandir rede para área de interesse",
		Description: "Conectar-se com 2-3 pessoas que atuam na direção que você quer explorar — para aprender, não para pedir favores.",
	},
	{
		ID:          "10_side_project",
		Label:       "Iniciar projeto paralelo pequeno",
		Description: "Lançar um projeto de baixo custo e baixo risco que testa uma hipótese de carreira ou produto — com entrega em 30 dias.",
	},
	{
		ID:          "10_read_research",
		Label:       "Pesquisar tendências do setor",
		Description: "Ler 2-3 referências relevantes sobre o futuro da sua área e identificar onde você quer estar posicionado em 2-3 anos.",
	},
	{
		ID:          "10_reflect_values",
		Label:       "Revisitar valores e critérios de decisão",
		Description: "Reservar tempo para revisar o que importa para você agora — e verificar se suas escolhas atuais estão alinhadas com isso.",
	},
}

// Plan90DBlocks is the 70/20/10 template library the wizard selects from.
var Plan90DBlocks = []PlanBlock{
	{
		Key:           "70",
		Title:         "70% — Trabalho principal",
		Subtitle:      "O que você vai entregar e aprofundar no seu trabalho atual",
		MaxSelections: 2,
		Options:       options70,
	},
	{
		Key:           "20",
		Title:         "20% — Desenvolvimento",
		Subtitle:      "O que você vai aprender e como vai crescer neste ciclo",
		MaxSelections: 2,
		Options:       options20,
	},
	{
		Key:           "10",
		Title:         "10% — Exploração",
		Subtitle:      "O que você vai testar e explorar para o longo prazo",
		MaxSelections: 1,
		Options:       options10,
	},
}
