package domain

// OnboardingStatus — этап онбординга клиента.
type OnboardingStatus string

const (
	OnboardingInProgress OnboardingStatus = "Em Andamento"
	OnboardingCompleted  OnboardingStatus = "Concluído"
)

// Client — справочная запись о клиенте. Ядро читает только Account, Name
// и Assessor; остальные поля нужны витринам онбординга и портфеля.
type Client struct {
	Account            string
	Name               string
	Assessor           string
	Status             OnboardingStatus
	Progress           int
	TotalSteps         int
	BalanceCentavos    int64
	PatrimonyCentavos  int64
	RegistrationDate   string
	RiskProfile        string
	PortfolioStartDate string
	AllocatedPortfolio string
	AdminFee           string
	PerformanceFee     string
}

// Asset — справочная запись об активе.
type Asset struct {
	ID                string
	Name              string
	Type              string
	Issuer            string
	Rate              string
	Category          string
	Risk              string
	MinAmountCentavos int64
	Expiry            string
}
