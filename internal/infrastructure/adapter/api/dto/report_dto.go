package dto

// ReportResponse represents the API response for the admin report
type ReportResponse struct {
	PerCategoryTotal map[string]string   `json:"perCategoryTotal"`
	GrandTotal       string              `json:"grandTotal"`
	DonorCount       int                 `json:"donorCount"`
	DonorRanking     []DonorRankResponse `json:"donorRanking"`
}

// DonorRankResponse represents one donor in the ranking
type DonorRankResponse struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	TotalDonated string `json:"totalDonated"`
}
