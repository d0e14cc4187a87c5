package business

var startupDataset = Dataset{
	Profile: Profile{
		ID:        "biz-startup-001",
		Name:      "서울체인랩스",
		Brand:     "Seoul Chain Labs",
		Industry:  IndustryService,
		FoundedAt: "2022-07-01",
		Location: Location{
			City:         "서울",
			District:     "강남구",
			AddressLine1: "테헤란로 427 위워크타워 8층",
		},
		Owner: Owner{
			Name:            "최도윤",
			ContactEmail:    "doyoon@seoulchainlabs.io",
			AccountingTools: []string{"자비스", "QuickBooks"},
			TaxPlatform:     "홈택스",
		},
		Description: "B2B 공급망 추적 SaaS 스타트업. 구독 매출 중심이며 엔터프라이즈 온보딩 프로젝트가 분기별로 발생.",
	},
	Financials: []FinancialSnapshot{
		{
			Month:            "2024-11",
			GrossRevenue:     68_500_000,
			NetRevenue:       62_270_000,
			COGCost:          6_850_000,
			OperatingExpense: 21_400_000,
			PayrollExpense:   32_800_000,
			MarketingSpend:   4_200_000,
			AvgOrderValue:    980_000,
			FootTraffic:      FootTraffic{},
		},
		{
			Month:            "2024-12",
			GrossRevenue:     74_200_000,
			NetRevenue:       67_450_000,
			COGCost:          7_420_000,
			OperatingExpense: 22_100_000,
			PayrollExpense:   32_800_000,
			MarketingSpend:   5_100_000,
			AvgOrderValue:    1_010_000,
			FootTraffic:      FootTraffic{},
			Notes:            "엔터프라이즈 2개사 온보딩 완료",
		},
		{
			Month:            "2025-01",
			GrossRevenue:     71_800_000,
			NetRevenue:       65_270_000,
			COGCost:          7_180_000,
			OperatingExpense: 21_900_000,
			PayrollExpense:   34_600_000,
			MarketingSpend:   3_800_000,
			AvgOrderValue:    995_000,
			FootTraffic:      FootTraffic{},
		},
		{
			Month:            "2025-02",
			GrossRevenue:     76_400_000,
			NetRevenue:       69_450_000,
			COGCost:          7_640_000,
			OperatingExpense: 22_300_000,
			PayrollExpense:   34_600_000,
			MarketingSpend:   4_500_000,
			AvgOrderValue:    1_020_000,
			FootTraffic:      FootTraffic{},
		},
		{
			Month:            "2025-03",
			GrossRevenue:     81_900_000,
			NetRevenue:       74_450_000,
			COGCost:          8_190_000,
			OperatingExpense: 23_100_000,
			PayrollExpense:   36_200_000,
			MarketingSpend:   5_600_000,
			AvgOrderValue:    1_040_000,
			FootTraffic:      FootTraffic{},
			Notes:            "API 종량제 매출 전월 대비 18% 증가",
		},
		{
			Month:            "2025-04",
			GrossRevenue:     85_300_000,
			NetRevenue:       77_540_000,
			COGCost:          8_530_000,
			OperatingExpense: 23_400_000,
			PayrollExpense:   36_200_000,
			MarketingSpend:   6_100_000,
			AvgOrderValue:    1_060_000,
			FootTraffic:      FootTraffic{},
		},
	},
	FixedCosts: []FixedCost{
		{Category: CostRent, Description: "공유오피스 임대료", Amount: 4_800_000, BillingCycle: CycleMonthly, AutoDebit: true},
		{Category: CostSoftware, Description: "AWS·SaaS 구독료", Amount: 2_600_000, BillingCycle: CycleMonthly, AutoDebit: true},
		{Category: CostInsurance, Description: "단체 상해보험", Amount: 1_560_000, BillingCycle: CycleYearly, AutoDebit: true},
		{Category: CostOther, Description: "법률 자문료", Amount: 900_000, BillingCycle: CycleQuarterly, AutoDebit: false},
	},
	Employees: []Employee{
		{
			ID:            "emp-scl-01",
			Name:          "강지우",
			Role:          "CTO",
			Type:          EmployeeFullTime,
			MonthlySalary: 6_500_000,
			HireDate:      "2022-07-01",
			Benefits:      []string{"4대보험", "스톡옵션", "복지포인트"},
			Deductions:    []string{"국민연금", "건강보험", "고용보험", "소득세"},
			Schedule: []ScheduleSlot{
				{Day: Mon, StartTime: "10:00", EndTime: "19:00", TotalHours: 8},
				{Day: Tue, StartTime: "10:00", EndTime: "19:00", TotalHours: 8},
				{Day: Wed, StartTime: "10:00", EndTime: "19:00", TotalHours: 8},
				{Day: Thu, StartTime: "10:00", EndTime: "19:00", TotalHours: 8},
				{Day: Fri, StartTime: "10:00", EndTime: "19:00", TotalHours: 8},
			},
		},
		{
			ID:            "emp-scl-02",
			Name:          "한세린",
			Role:          "백엔드 개발자",
			Type:          EmployeeFullTime,
			MonthlySalary: 4_800_000,
			HireDate:      "2023-02-13",
			Benefits:      []string{"4대보험", "스톡옵션"},
			Deductions:    []string{"국민연금", "건강보험", "고용보험", "소득세"},
			Schedule: []ScheduleSlot{
				{Day: Mon, StartTime: "10:00", EndTime: "19:00", TotalHours: 8},
				{Day: Tue, StartTime: "10:00", EndTime: "19:00", TotalHours: 8},
				{Day: Wed, StartTime: "10:00", EndTime: "19:00", TotalHours: 8},
				{Day: Thu, StartTime: "10:00", EndTime: "19:00", TotalHours: 8},
				{Day: Fri, StartTime: "10:00", EndTime: "19:00", TotalHours: 8},
			},
		},
		{
			ID:         "emp-scl-03",
			Name:       "오나래",
			Role:       "콘텐츠 마케터",
			Type:       EmployeePartTime,
			HourlyRate: 15_000,
			HireDate:   "2024-11-04",
			Deductions: []string{"고용보험"},
			Notes:      "재택 근무",
			Schedule: []ScheduleSlot{
				{Day: Tue, StartTime: "13:00", EndTime: "18:00", TotalHours: 5},
				{Day: Thu, StartTime: "13:00", EndTime: "18:00", TotalHours: 5},
			},
		},
	},
	TaxObligations: []TaxObligation{
		{
			ID:           "tax-scl-01",
			Name:         "부가가치세 예정신고",
			Authority:    AuthorityNTS,
			Type:         TaxVAT,
			Period:       "2025년 1기 예정",
			Amount:       12_400_000,
			DueDate:      "2025-04-25",
			Status:       TaxUpcoming,
			ReferenceDoc: "hometax-vat-2025-1q.pdf",
		},
		{
			ID:           "tax-scl-02",
			Name:         "원천세 신고·납부",
			Authority:    AuthorityNTS,
			Type:         TaxWithholding,
			Period:       "2025년 3월분",
			Amount:       2_860_000,
			DueDate:      "2025-04-10",
			Status:       TaxDone,
			ReferenceDoc: "hometax-wht-2025-03.pdf",
		},
		{
			ID:           "tax-scl-03",
			Name:         "4대보험료 납부",
			Authority:    AuthorityEmpIns,
			Type:         TaxSocialIns,
			Period:       "2025년 4월분",
			Amount:       3_940_000,
			DueDate:      "2025-05-10",
			Status:       TaxUpcoming,
			ReferenceDoc: "ei-2025-04.pdf",
		},
		{
			ID:           "tax-scl-04",
			Name:         "법인 지방소득세",
			Authority:    AuthorityLocalTax,
			Type:         TaxLocal,
			Period:       "2024 사업연도",
			Amount:       1_720_000,
			DueDate:      "2025-04-30",
			Status:       TaxNeedsReview,
			ReferenceDoc: "wetax-corp-2024.pdf",
		},
	},
	Products: []Product{
		{SKU: "SCL-PRO", Name: "체인트래커 Pro 구독", Category: CategoryService, AvgMonthlySales: 62, GrossMargin: 0.78, Price: 990_000, BestSeller: true},
		{SKU: "SCL-ENT", Name: "엔터프라이즈 온보딩 패키지", Category: CategoryService, AvgMonthlySales: 3, GrossMargin: 0.65, Price: 8_500_000, BestSeller: false, Notes: "분기 단위 계약"},
		{SKU: "SCL-API", Name: "API 종량 요금제", Category: CategoryService, AvgMonthlySales: 140, GrossMargin: 0.84, Price: 120_000, BestSeller: false},
	},
	RAGFacts: []string{
		"2025년 하반기 시리즈 A 투자 유치를 목표로 하고 있다.",
		"엔터프라이즈 고객 2개사가 전체 매출의 35%를 차지한다.",
		"개발 인력 채용 1명이 5월 입사 예정이라 인건비가 늘어난다.",
		"청년창업 세액감면 대상 여부를 세무사와 확인 중이다.",
		"AWS 비용은 스타트업 크레딧이 7월에 소진되면 월 180만원가량 늘어난다.",
	},
}
