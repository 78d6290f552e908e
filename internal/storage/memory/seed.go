package memory

import "github.com/anovainvest/allocations/internal/domain"

// SeedClients возвращает демонстрационный справочник клиентов.
// Суммы в сентаво.
func SeedClients() []domain.Client {
	return []domain.Client{
		{
			Account: "8574921", Name: "Marcelo Vitor Goncalves", Assessor: "Maria Oliveira",
			Status: domain.OnboardingCompleted, Progress: 4, TotalSteps: 4,
			BalanceCentavos: 15_000_000, PatrimonyCentavos: 17_500_000,
			RegistrationDate: "21/10/2025", RiskProfile: "Moderado",
			PortfolioStartDate: "15/01/2023", AllocatedPortfolio: "Carteira Moderada Plus",
			AdminFee: "1.0% a.a.", PerformanceFee: "15% do que exceder o CDI",
		},
		{
			Account: "10984572", Name: "Ana Paula Costa", Assessor: "Carlos Mendes",
			Status: domain.OnboardingCompleted, Progress: 4, TotalSteps: 4,
			BalanceCentavos: 2_500_000, PatrimonyCentavos: 4_500_000,
			RegistrationDate: "20/10/2025", RiskProfile: "Conservador",
			PortfolioStartDate: "02/03/2024", AllocatedPortfolio: "Carteira Conservadora RF",
			AdminFee: "0.8% a.a.", PerformanceFee: "N/A",
		},
		{
			Account: "33450912", Name: "Pedro Henrique Lima", Assessor: "Juliana Ferreira",
			Status: domain.OnboardingInProgress, Progress: 1, TotalSteps: 4,
			BalanceCentavos: 0, PatrimonyCentavos: 0,
			RegistrationDate: "19/10/2025", RiskProfile: "Moderado",
			PortfolioStartDate: "20/05/2024", AllocatedPortfolio: "Carteira de Crescimento",
			AdminFee: "1.2% a.a.", PerformanceFee: "20% do que exceder o IBOV",
		},
		{
			Account: "72103465", Name: "Mariana Souza Alves", Assessor: "Roberto Santos",
			Status: domain.OnboardingCompleted, Progress: 4, TotalSteps: 4,
			BalanceCentavos: 5_000_000, PatrimonyCentavos: 12_000_000,
			RegistrationDate: "16/10/2025", RiskProfile: "Arrojado",
			PortfolioStartDate: "10/11/2022", AllocatedPortfolio: "Carteira Arrojada Global",
			AdminFee: "1.5% a.a.", PerformanceFee: "20% do que exceder o S&P 500",
		},
		{
			Account: "50672198", Name: "Lucas Rodrigues Martins", Assessor: "Fernanda Dias",
			Status: domain.OnboardingCompleted, Progress: 4, TotalSteps: 4,
			BalanceCentavos: 10_000_000, PatrimonyCentavos: 25_000_000,
			RegistrationDate: "12/10/2025", RiskProfile: "Conservador",
			PortfolioStartDate: "05/06/2023", AllocatedPortfolio: "Carteira Conservadora Plus",
			AdminFee: "0.9% a.a.", PerformanceFee: "10% do que exceder o CDI",
		},
		{
			Account: "98765432", Name: "Beatriz Carvalho Nunes", Assessor: "Ricardo Gomes",
			Status: domain.OnboardingInProgress, Progress: 3, TotalSteps: 4,
			BalanceCentavos: 0, PatrimonyCentavos: 1_500_000,
			RegistrationDate: "11/10/2025", RiskProfile: "Moderado",
			PortfolioStartDate: "01/02/2024", AllocatedPortfolio: "Carteira Moderada Equilibrada",
			AdminFee: "1.1% a.a.", PerformanceFee: "15% do que exceder o CDI",
		},
	}
}

// SeedAssets возвращает демонстрационную витрину активов.
func SeedAssets() []domain.Asset {
	return []domain.Asset{
		{ID: "CDB001", Name: "CDB Pré-fixado Banco Master 15% a.a.", Type: "CDB", Issuer: "Banco Master", Rate: "15% a.a.", Category: "Pública", Risk: "Baixo", MinAmountCentavos: 100_000, Expiry: "20/10/2028"},
		{ID: "LCI001", Name: "LCI IPCA+ 6.5% Banco Inter", Type: "LCI", Issuer: "Banco Inter", Rate: "IPCA+6.5%", Category: "Pública", Risk: "Baixo", MinAmountCentavos: 500_000, Expiry: "15/05/2026"},
		{ID: "PETR4", Name: "Petrobras PN", Type: "Ação", Issuer: "Petrobras", Rate: "N/A", Category: "Pública", Risk: "Alto", MinAmountCentavos: 10_000},
		{ID: "VALE3", Name: "Vale ON", Type: "Ação", Issuer: "Vale", Rate: "N/A", Category: "Pública", Risk: "Alto", MinAmountCentavos: 10_000},
		{ID: "FUNDO01", Name: "BTG Pactual Ações USA FIM", Type: "Fundo", Issuer: "BTG Pactual", Rate: "N/A", Category: "Pública", Risk: "Médio", MinAmountCentavos: 100_000},
		{ID: "CRA001", Name: "CRA Agrícola Sol Forte", Type: "CDB", Issuer: "Sol Forte Securitizadora", Rate: "IPCA+8.5%", Category: "Privada", Risk: "Médio", MinAmountCentavos: 2_500_000, Expiry: "10/01/2030"},
		{ID: "DEB001", Name: "Debênture Incentivada Energia Limpa", Type: "Fundo", Issuer: "Omega Energia", Rate: "IPCA+7.2%", Category: "Privada", Risk: "Médio", MinAmountCentavos: 1_000_000, Expiry: "01/03/2032"},
	}
}

// SeedOrders возвращает демонстрационный список ордеров. Порядок —
// от новых к старым, как его поддерживает хранилище.
func SeedOrders() []domain.Order {
	return []domain.Order{
		{
			ID: "ORD-001", Account: "8574921", ClientName: "Marcelo Vitor Goncalves", Assessor: "Maria Oliveira",
			Hub: "Matriz", Subject: "Renda Fixa", Kind: "Aplicação",
			Status: domain.OrderStatusExecuted, TotalCentavos: 2_500_000, IsFavorite: true,
			CreatedDate: "22/10/2025 10:30",
			Assets: []domain.AssetAllocation{
				{AssetID: "CDB001", AmountCentavos: 1_500_000},
				{AssetID: "FUNDO01", AmountCentavos: 1_000_000},
			},
			Timeline: []domain.TimelineEvent{
				{Seq: 1, Kind: domain.EventKindLog, Author: "Sistema", Timestamp: "22/10/2025 10:00", Content: "Ordem criada por Maria Oliveira."},
				{Seq: 2, Kind: domain.EventKindLog, Author: "Sistema", Timestamp: "22/10/2025 10:05", Content: "Status alterado para Em Tratamento."},
				{Seq: 3, Kind: domain.EventKindComment, Author: "Maria Oliveira", Timestamp: "22/10/2025 10:15", Content: "Cliente confirmou a alocação por telefone."},
				{Seq: 4, Kind: domain.EventKindLog, Author: "Sistema", Timestamp: "22/10/2025 10:30", Content: "Status alterado para Executada."},
			},
		},
		{
			ID: "ORD-002", Account: "10984572", ClientName: "Ana Paula Costa", Assessor: "Carlos Mendes",
			Hub: "Filial SP", Subject: "Renda Variável", Kind: "Resgate",
			Status: domain.OrderStatusOpen, TotalCentavos: 1_000_000, IsFavorite: false,
			CreatedDate: "22/10/2025 09:15",
			Assets: []domain.AssetAllocation{
				{AssetID: "LCI001", AmountCentavos: 1_000_000},
			},
			Timeline: []domain.TimelineEvent{
				{Seq: 1, Kind: domain.EventKindLog, Author: "Sistema", Timestamp: "22/10/2025 09:15", Content: "Ordem criada por Carlos Mendes."},
			},
		},
		{
			ID: "ORD-003", Account: "33450912", ClientName: "Pedro Henrique Lima", Assessor: "Roberto Santos",
			Hub: "Matriz", Subject: "Renda Fixa", Kind: "Aplicação",
			Status: domain.OrderStatusInTreatment, TotalCentavos: 5_000_000, IsFavorite: false,
			CreatedDate: "21/10/2025 15:00",
			Assets: []domain.AssetAllocation{
				{AssetID: "PETR4", AmountCentavos: 2_500_000},
				{AssetID: "VALE3", AmountCentavos: 2_500_000},
			},
			Timeline: []domain.TimelineEvent{
				{Seq: 1, Kind: domain.EventKindLog, Author: "Sistema", Timestamp: "21/10/2025 14:30", Content: "Ordem criada por Roberto Santos."},
				{Seq: 2, Kind: domain.EventKindLog, Author: "Sistema", Timestamp: "21/10/2025 15:00", Content: "Status alterado para Em Tratamento."},
			},
		},
		{
			ID: "ORD-004", Account: "72103465", ClientName: "Mariana Souza Alves", Assessor: "Roberto Santos",
			Hub: "Filial RJ", Subject: "Fundos", Kind: "Aplicação",
			Status: domain.OrderStatusClosed, TotalCentavos: 500_000, IsFavorite: false,
			CreatedDate: "20/10/2025 11:45",
			Assets: []domain.AssetAllocation{
				{AssetID: "FUNDO01", AmountCentavos: 500_000},
			},
			Timeline: []domain.TimelineEvent{
				{Seq: 1, Kind: domain.EventKindLog, Author: "Sistema", Timestamp: "20/10/2025 11:00", Content: "Ordem criada por Roberto Santos."},
				{Seq: 2, Kind: domain.EventKindLog, Author: "Sistema", Timestamp: "20/10/2025 11:45", Content: "Status alterado para Fechada."},
			},
		},
		{
			ID: "ORD-005", Account: "50672198", ClientName: "Lucas Rodrigues Martins", Assessor: "Fernanda Dias",
			Hub: "Matriz", Subject: "Renda Fixa", Kind: "Resgate",
			Status: domain.OrderStatusRejected, TotalCentavos: 10_000_000, IsFavorite: false,
			CreatedDate: "19/10/2025 16:20",
			Assets: []domain.AssetAllocation{
				{AssetID: "CDB001", AmountCentavos: 10_000_000},
			},
			Timeline: []domain.TimelineEvent{
				{Seq: 1, Kind: domain.EventKindLog, Author: "Sistema", Timestamp: "19/10/2025 16:20", Content: "Status alterado para Rejeitada."},
			},
		},
		{
			ID: "ORD-006", Account: "98765432", ClientName: "Beatriz Carvalho Nunes", Assessor: "Ricardo Gomes",
			Hub: "Filial SP", Subject: "Renda Variável", Kind: "Aplicação",
			Status: domain.OrderStatusPending, TotalCentavos: 7_500_000, IsFavorite: false,
			CreatedDate: "18/10/2025 14:10",
			Assets: []domain.AssetAllocation{
				{AssetID: "PETR4", AmountCentavos: 7_500_000},
			},
			Timeline: []domain.TimelineEvent{
				{Seq: 1, Kind: domain.EventKindLog, Author: "Sistema", Timestamp: "18/10/2025 14:10", Content: "Status alterado para Com Pendência."},
			},
		},
	}
}
