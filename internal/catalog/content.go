package catalog

import "portfolio-cli/internal/model"

func strPtr(s string) *string { return &s }

func defaultProjects() []model.Project {
	return []model.Project{
		{
			ID:              "dashboard-redes",
			Title:           "Dashboard de Monitoramento de Rede",
			Category:        model.CategoryFullStack,
			Description:     "Aplicação que consome APIs de equipamentos para exibir status em tempo real.",
			Problem:         "A equipe de redes precisava de uma forma rápida e centralizada para visualizar a saúde dos principais ativos da rede.",
			Solution:        "Desenvolvi um dashboard com Chart.js para criar gráficos dinâmicos de latência e uso de banda, com um sistema de alertas visuais.",
			LongDescription: "Este projeto foi um mergulho profundo na integração de infraestrutura com desenvolvimento front-end. O maior desafio foi normalizar os dados de diferentes fornecedores.",
			Technologies:    []string{"Next.js", "TypeScript", "Tailwind CSS", "Chart.js", "API REST"},
			RepoURL:         "https://github.com/klayver2001/exemplo-dashboard",
			LiveURL:         strPtr(model.LiveURLPlaceholder),
			GifURL:          "https://placehold.co/600x400/0ea5e9/e0f2fe?text=Projeto+1+GIF",
		},
		{
			ID:              "sistema-inventario",
			Title:           "Sistema de Inventário de Ativos",
			Category:        model.CategoryFullStack,
			Description:     "Plataforma para gerenciamento de ativos de TI, com controle de alocação e histórico.",
			Problem:         "O controle de inventário era feito em planilhas, gerando inconsistências e dificuldades no rastreamento.",
			Solution:        "Criei uma aplicação full-stack que permite o cadastro de ativos via QR code, associa a um usuário e registra todo o histórico em um banco de dados PostgreSQL.",
			LongDescription: "O foco foi a modelagem do banco de dados e a criação de uma API RESTful segura. A implementação do histórico foi crucial para fornecer uma visão clara do ciclo de vida de cada equipamento.",
			Technologies:    []string{"React", "Node.js", "Express", "PostgreSQL", "JWT"},
			RepoURL:         "https://github.com/klayver2001/exemplo-inventario",
			GifURL:          "https://placehold.co/600x400/0ea5e9/e0f2fe?text=Projeto+2+GIF",
		},
		{
			ID:              "automacao-backup",
			Title:           "Automação de Backup de Switches",
			Category:        model.CategoryAutomation,
			Description:     "Script para automatizar o backup de configurações de centenas de switches de rede.",
			Problem:         "O processo de backup era manual, demorado e sujeito a erros humanos, colocando em risco a recuperação de desastres.",
			Solution:        "Utilizando a biblioteca Netmiko, o script se conecta via SSH a uma lista de switches, executa os comandos de backup e armazena os arquivos de configuração de forma organizada.",
			LongDescription: "Este projeto foi meu primeiro passo para unir redes e programação de forma prática. O maior aprendizado foi o tratamento de exceções para diferentes versões de firmware dos equipamentos.",
			Technologies:    []string{"Python", "Netmiko", "Redes"},
			RepoURL:         "https://github.com/klayver2001/exemplo-automacao",
			GifURL:          "https://placehold.co/600x400/0ea5e9/e0f2fe?text=Projeto+3+GIF",
		},
	}
}

// Profile is the portfolio owner shown in the hero, whoami and contact blocks.
func Profile() model.Profile {
	return model.Profile{
		Name:     "Klayver Alencar",
		Initials: "KA",
		Role:     "Analista Híbrido (Redes + Desenvolvimento)",
		Headline: "Analista Híbrido: Conectando Código e Infraestrutura",
		Tagline:  "Desenvolvedor & Profissional de Redes",
		Bio: []string{
			"Construo soluções digitais robustas, seguras e performáticas, unindo a infraestrutura que sustenta a web com a experiência que encanta o usuário.",
		},
		Email:    "klayver.alencar@hotmail.com",
		LinkedIn: "https://www.linkedin.com/in/klayveralencar/",
		GitHub:   "https://github.com/klayver2001",
	}
}

func Timeline() []model.TimelineEvent {
	return []model.TimelineEvent{
		{Date: "2019", Title: "Início em Redes", Description: "Comecei minha jornada garantindo a performance e segurança de redes corporativas, gerenciando firewalls e switches."},
		{Date: "2021", Title: "Primeira Linha de Código", Description: "A paixão por otimizar me levou a automatizar tarefas de rede com Python, descobrindo o poder do desenvolvimento."},
		{Date: "2023", Title: "Mergulho no Full-Stack", Description: "Decidi unir as duas áreas, iniciando estudos aprofundados em React, Node.js e o ecossistema JavaScript moderno."},
		{Date: "Hoje", Title: "Construindo Soluções Híbridas", Description: "Aplico minha visão única para criar aplicações robustas, resilientes e seguras, da infraestrutura à interface."},
	}
}

func SkillGroups() []model.SkillGroup {
	return []model.SkillGroup{
		{
			Title: "Redes e Infraestrutura",
			Skills: []model.Skill{
				{Name: "TCP/IP", Description: "Análise e troubleshooting de pacotes com Wireshark."},
				{Name: "Roteadores & Switches", Description: "Configuração de VLANs, rotas estáticas e OSPF."},
				{Name: "Firewall (PFSense)", Description: "Implementação de regras de segurança e VPNs."},
				{Name: "Monitoramento", Description: "Criação de dashboards e alertas com Zabbix e Grafana."},
				{Name: "Linux Server", Description: "Administração de serviços (Apache, Nginx) e segurança."},
			},
		},
		{
			Title: "Desenvolvimento Web",
			Skills: []model.Skill{
				{Name: "TypeScript", Description: "Tipagem estática para projetos robustos em front e back-end."},
				{Name: "React / Next.js", Description: "Criação de UIs reativas e SSR."},
				{Name: "Node.js", Description: "Desenvolvimento de APIs RESTful com Express."},
				{Name: "Python", Description: "Automação de tarefas e scripting com Flask/Django."},
				{Name: "Bancos de Dados", Description: "Modelagem e queries em PostgreSQL e MongoDB."},
			},
		},
	}
}
