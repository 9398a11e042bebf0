package domain

// Sub-category labels for MonthlyTrend.
const (
	CategoryDevelopers      = "developers"
	CategoryDesigners       = "designers"
	CategoryDataAnalysts    = "data_analysts"
	CategoryProductManagers = "product_managers"
	CategoryQAEngineers     = "qa_engineers"
	CategoryOthers          = "others"
)

// MonthlyTrend is one month of applicant volume.
type MonthlyTrend struct {
	Month           string // YYYY-MM
	TotalApplicants int

	Developers      int
	Designers       int
	DataAnalysts    int
	ProductManagers int
	QAEngineers     int
	Others          int

	AvgQualityScore     float64
	AvgResponseTimeDays float64
}

// CategoryCount is a named sub-category count.
type CategoryCount struct {
	Name  string
	Count int
}

// Categories returns the sub-category split in a fixed order.
func (m MonthlyTrend) Categories() []CategoryCount {
	return []CategoryCount{
		{Name: CategoryDevelopers, Count: m.Developers},
		{Name: CategoryDesigners, Count: m.Designers},
		{Name: CategoryDataAnalysts, Count: m.DataAnalysts},
		{Name: CategoryProductManagers, Count: m.ProductManagers},
		{Name: CategoryQAEngineers, Count: m.QAEngineers},
		{Name: CategoryOthers, Count: m.Others},
	}
}

// CategorySum adds up all sub-category counts.
func (m MonthlyTrend) CategorySum() int {
	sum := 0
	for _, c := range m.Categories() {
		sum += c.Count
	}
	return sum
}
