package business

// Role selects which dataset and display name the assistant works with.
type Role string

const (
	RoleCafeOwner Role = "cafe-owner"
	RoleITFounder Role = "it-founder"
)

type Industry string

const (
	IndustryCafe       Industry = "cafe"
	IndustryRestaurant Industry = "restaurant"
	IndustryRetail     Industry = "retail"
	IndustryService    Industry = "service"
)

type Location struct {
	City         string
	District     string
	AddressLine1 string
}

type Owner struct {
	Name            string
	ContactEmail    string
	AccountingTools []string
	TaxPlatform     string
}

// Profile is the identity block of one business.
type Profile struct {
	ID          string
	Name        string
	Brand       string
	Industry    Industry
	FoundedAt   string
	Location    Location
	Owner       Owner
	Description string
}

type FootTraffic struct {
	WeekdayAvg int
	WeekendAvg int
}

// FinancialSnapshot holds one calendar month of figures. Snapshots are
// kept in chronological order; the last element is the latest month.
// All money amounts are whole KRW.
type FinancialSnapshot struct {
	Month            string
	GrossRevenue     int64
	NetRevenue       int64
	COGCost          int64
	OperatingExpense int64
	PayrollExpense   int64
	MarketingSpend   int64
	AvgOrderValue    int64
	FootTraffic      FootTraffic
	Notes            string
}

type CostCategory string

const (
	CostRent      CostCategory = "rent"
	CostUtilities CostCategory = "utilities"
	CostInsurance CostCategory = "insurance"
	CostSoftware  CostCategory = "software"
	CostLoan      CostCategory = "loan"
	CostOther     CostCategory = "other"
)

type BillingCycle string

const (
	CycleMonthly   BillingCycle = "monthly"
	CycleQuarterly BillingCycle = "quarterly"
	CycleYearly    BillingCycle = "yearly"
)

type FixedCost struct {
	Category     CostCategory
	Description  string
	Amount       int64
	BillingCycle BillingCycle
	AutoDebit    bool
}

type EmployeeType string

const (
	EmployeeFullTime EmployeeType = "full-time"
	EmployeePartTime EmployeeType = "part-time"
)

// Label maps the internal type to the human label shown in prompts.
func (t EmployeeType) Label() string {
	if t == EmployeeFullTime {
		return "정직원"
	}
	return "알바"
}

type Weekday string

const (
	Mon Weekday = "월"
	Tue Weekday = "화"
	Wed Weekday = "수"
	Thu Weekday = "목"
	Fri Weekday = "금"
	Sat Weekday = "토"
	Sun Weekday = "일"
)

type ScheduleSlot struct {
	Day        Weekday
	StartTime  string
	EndTime    string
	TotalHours float64
}

// Employee has exactly one pay mode: HourlyRate for part-timers,
// MonthlySalary for full-timers. The unused field stays zero.
type Employee struct {
	ID            string
	Name          string
	Role          string
	Type          EmployeeType
	HourlyRate    int64
	MonthlySalary int64
	HireDate      string
	Benefits      []string
	Deductions    []string
	Notes         string
	Schedule      []ScheduleSlot
}

type TaxAuthority string

const (
	AuthorityNTS      TaxAuthority = "국세청"
	AuthorityLocalTax TaxAuthority = "지방세청"
	AuthorityPension  TaxAuthority = "국민연금"
	AuthorityEmpIns   TaxAuthority = "고용보험"
)

type TaxType string

const (
	TaxVAT         TaxType = "부가세"
	TaxWithholding TaxType = "원천세"
	TaxSocialIns   TaxType = "4대보험"
	TaxLocal       TaxType = "지방세"
	TaxEtc         TaxType = "기타"
)

type TaxStatus string

const (
	TaxUpcoming    TaxStatus = "예정"
	TaxDone        TaxStatus = "완료"
	TaxNeedsReview TaxStatus = "확인필요"
)

type TaxObligation struct {
	ID           string
	Name         string
	Authority    TaxAuthority
	Type         TaxType
	Period       string
	Amount       int64
	DueDate      string
	Status       TaxStatus
	ReferenceDoc string
}

type ProductCategory string

const (
	CategorySignature ProductCategory = "signature"
	CategoryBeverage  ProductCategory = "beverage"
	CategoryDessert   ProductCategory = "dessert"
	CategoryMerch     ProductCategory = "merch"
	CategoryService   ProductCategory = "service"
)

type Product struct {
	SKU             string
	Name            string
	Category        ProductCategory
	AvgMonthlySales int
	GrossMargin     float64 // 0..1 fraction
	Price           int64
	BestSeller      bool
	Notes           string
}

// Dataset is the full fact bundle for one role. Instances are
// package-level fixtures built once at startup and never mutated, so
// they are safe for concurrent reads.
type Dataset struct {
	Profile        Profile
	Financials     []FinancialSnapshot
	FixedCosts     []FixedCost
	Employees      []Employee
	TaxObligations []TaxObligation
	Products       []Product
	RAGFacts       []string
}
