package types

// Stats are the dashboard headline totals.
type Stats struct {
	Jobs         int
	Applicants   int
	Applications int
}

// TrendPoint is one month of application volume.
type TrendPoint struct {
	Month string // YYYY-MM
	Count int
}

// CompanyCount is one company's share of the job listings.
type CompanyCount struct {
	Company string
	Count   int
}
