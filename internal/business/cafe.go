package business

var cafeDataset = Dataset{
	Profile: Profile{
		ID:        "biz-cafe-001",
		Name:      "카페 김비서랩",
		Brand:     "Kim Biseo Lab",
		Industry:  IndustryCafe,
		FoundedAt: "2021-03-15",
		Location: Location{
			City:         "서울",
			District:     "마포구",
			AddressLine1: "양화로12길 34 1층",
		},
		Owner: Owner{
			Name:            "김민지",
			ContactEmail:    "owner@kimbiseolab.kr",
			AccountingTools: []string{"더존 Smart A", "토스 사장님"},
			TaxPlatform:     "홈택스",
		},
		Description: "연트럴파크 인근의 스페셜티 커피 전문점. 직장인 테이크아웃과 주말 디저트 수요가 매출의 양대 축.",
	},
	Financials: []FinancialSnapshot{
		{
			Month:            "2024-11",
			GrossRevenue:     26_800_000,
			NetRevenue:       24_360_000,
			COGCost:          8_040_000,
			OperatingExpense: 5_900_000,
			PayrollExpense:   6_420_000,
			MarketingSpend:   450_000,
			AvgOrderValue:    9_800,
			FootTraffic:      FootTraffic{WeekdayAvg: 96, WeekendAvg: 168},
		},
		{
			Month:            "2024-12",
			GrossRevenue:     31_200_000,
			NetRevenue:       28_360_000,
			COGCost:          9_360_000,
			OperatingExpense: 6_150_000,
			PayrollExpense:   6_980_000,
			MarketingSpend:   820_000,
			AvgOrderValue:    11_200,
			FootTraffic:      FootTraffic{WeekdayAvg: 104, WeekendAvg: 195},
			Notes:            "연말 시즌 한정 메뉴 효과로 주말 매출 급증",
		},
		{
			Month:            "2025-01",
			GrossRevenue:     24_900_000,
			NetRevenue:       22_640_000,
			COGCost:          7_470_000,
			OperatingExpense: 5_820_000,
			PayrollExpense:   6_420_000,
			MarketingSpend:   300_000,
			AvgOrderValue:    9_400,
			FootTraffic:      FootTraffic{WeekdayAvg: 88, WeekendAvg: 142},
			Notes:            "연초 비수기",
		},
		{
			Month:            "2025-02",
			GrossRevenue:     25_600_000,
			NetRevenue:       23_270_000,
			COGCost:          7_680_000,
			OperatingExpense: 5_760_000,
			PayrollExpense:   6_420_000,
			MarketingSpend:   380_000,
			AvgOrderValue:    9_600,
			FootTraffic:      FootTraffic{WeekdayAvg: 91, WeekendAvg: 150},
		},
		{
			Month:            "2025-03",
			GrossRevenue:     27_400_000,
			NetRevenue:       24_910_000,
			COGCost:          8_220_000,
			OperatingExpense: 5_980_000,
			PayrollExpense:   6_650_000,
			MarketingSpend:   520_000,
			AvgOrderValue:    9_900,
			FootTraffic:      FootTraffic{WeekdayAvg: 97, WeekendAvg: 161},
		},
		{
			Month:            "2025-04",
			GrossRevenue:     28_400_000,
			NetRevenue:       25_820_000,
			COGCost:          8_520_000,
			OperatingExpense: 6_040_000,
			PayrollExpense:   6_650_000,
			MarketingSpend:   610_000,
			AvgOrderValue:    10_100,
			FootTraffic:      FootTraffic{WeekdayAvg: 101, WeekendAvg: 172},
			Notes:            "벚꽃 시즌 신메뉴 출시",
		},
	},
	FixedCosts: []FixedCost{
		{Category: CostRent, Description: "매장 월세", Amount: 3_300_000, BillingCycle: CycleMonthly, AutoDebit: true},
		{Category: CostUtilities, Description: "전기·수도 요금", Amount: 480_000, BillingCycle: CycleMonthly, AutoDebit: false},
		{Category: CostSoftware, Description: "POS·키오스크 구독료", Amount: 165_000, BillingCycle: CycleMonthly, AutoDebit: true},
		{Category: CostInsurance, Description: "화재보험", Amount: 720_000, BillingCycle: CycleYearly, AutoDebit: true},
		{Category: CostLoan, Description: "시설자금 대출 상환", Amount: 1_100_000, BillingCycle: CycleMonthly, AutoDebit: true},
	},
	Employees: []Employee{
		{
			ID:            "emp-cafe-01",
			Name:          "박서준",
			Role:          "매니저",
			Type:          EmployeeFullTime,
			MonthlySalary: 2_900_000,
			HireDate:      "2021-04-01",
			Benefits:      []string{"4대보험", "식대 지원"},
			Deductions:    []string{"국민연금", "건강보험", "고용보험", "소득세"},
			Schedule: []ScheduleSlot{
				{Day: Mon, StartTime: "08:00", EndTime: "17:00", TotalHours: 8},
				{Day: Tue, StartTime: "08:00", EndTime: "17:00", TotalHours: 8},
				{Day: Wed, StartTime: "08:00", EndTime: "17:00", TotalHours: 8},
				{Day: Thu, StartTime: "08:00", EndTime: "17:00", TotalHours: 8},
				{Day: Fri, StartTime: "08:00", EndTime: "17:00", TotalHours: 8},
			},
		},
		{
			ID:         "emp-cafe-02",
			Name:       "이하늘",
			Role:       "바리스타",
			Type:       EmployeePartTime,
			HourlyRate: 11_000,
			HireDate:   "2023-09-18",
			Benefits:   []string{"주휴수당"},
			Deductions: []string{"고용보험"},
			Schedule: []ScheduleSlot{
				{Day: Sat, StartTime: "09:00", EndTime: "15:00", TotalHours: 6},
				{Day: Sun, StartTime: "09:00", EndTime: "15:00", TotalHours: 6},
			},
		},
		{
			ID:         "emp-cafe-03",
			Name:       "정유진",
			Role:       "바리스타",
			Type:       EmployeePartTime,
			HourlyRate: 10_500,
			HireDate:   "2024-06-03",
			Deductions: []string{"고용보험"},
			Notes:      "마감 담당",
			Schedule: []ScheduleSlot{
				{Day: Mon, StartTime: "17:00", EndTime: "21:30", TotalHours: 4.5},
				{Day: Wed, StartTime: "17:00", EndTime: "21:30", TotalHours: 4.5},
				{Day: Fri, StartTime: "17:00", EndTime: "21:30", TotalHours: 4.5},
			},
		},
	},
	TaxObligations: []TaxObligation{
		{
			ID:           "tax-cafe-01",
			Name:         "부가가치세 예정신고",
			Authority:    AuthorityNTS,
			Type:         TaxVAT,
			Period:       "2025년 1기 예정",
			Amount:       3_120_000,
			DueDate:      "2025-04-25",
			Status:       TaxUpcoming,
			ReferenceDoc: "hometax-vat-2025-1q.pdf",
		},
		{
			ID:           "tax-cafe-02",
			Name:         "원천세 신고·납부",
			Authority:    AuthorityNTS,
			Type:         TaxWithholding,
			Period:       "2025년 3월분",
			Amount:       284_000,
			DueDate:      "2025-04-10",
			Status:       TaxDone,
			ReferenceDoc: "hometax-wht-2025-03.pdf",
		},
		{
			ID:           "tax-cafe-03",
			Name:         "4대보험료 납부",
			Authority:    AuthorityPension,
			Type:         TaxSocialIns,
			Period:       "2025년 4월분",
			Amount:       612_000,
			DueDate:      "2025-05-10",
			Status:       TaxUpcoming,
			ReferenceDoc: "nps-2025-04.pdf",
		},
		{
			ID:           "tax-cafe-04",
			Name:         "지방소득세 특별징수",
			Authority:    AuthorityLocalTax,
			Type:         TaxLocal,
			Period:       "2025년 3월분",
			Amount:       28_400,
			DueDate:      "2025-04-10",
			Status:       TaxNeedsReview,
			ReferenceDoc: "wetax-2025-03.pdf",
		},
	},
	Products: []Product{
		{SKU: "CAF-001", Name: "시그니처 김비서 라떼", Category: CategorySignature, AvgMonthlySales: 1240, GrossMargin: 0.72, Price: 6_500, BestSeller: true},
		{SKU: "CAF-002", Name: "아메리카노", Category: CategoryBeverage, AvgMonthlySales: 2180, GrossMargin: 0.81, Price: 4_500, BestSeller: true},
		{SKU: "CAF-003", Name: "바스크 치즈케이크", Category: CategoryDessert, AvgMonthlySales: 460, GrossMargin: 0.58, Price: 7_000, BestSeller: false},
		{SKU: "CAF-004", Name: "드립백 선물세트", Category: CategoryMerch, AvgMonthlySales: 85, GrossMargin: 0.45, Price: 18_000, BestSeller: false, Notes: "명절 시즌 판매량 3배"},
	},
	RAGFacts: []string{
		"매주 월요일 오전은 원두 납품 및 재고 정리로 11시에 오픈한다.",
		"원두는 강릉 로스터리에서 주 1회 납품받고 결제는 월말 일괄 정산한다.",
		"포인트 적립 고객이 전체 매출의 약 40%를 차지한다.",
		"여름 시즌(6~8월)에는 빙수 메뉴를 한정 판매하며 평균 객단가가 15% 오른다.",
		"배달 플랫폼 수수료율은 주문 금액의 12%다.",
	},
}
