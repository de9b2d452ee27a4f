package dto

// DonationRequest represents the API request for recording a donation
type DonationRequest struct {
	Amount   string `json:"amount" binding:"required"`
	Category string `json:"category" binding:"required"`
	Method   string `json:"method" binding:"required,oneof=GCash Maya"`
}

// DonationResponse represents the API response for a recorded donation
type DonationResponse struct {
	EventID      string `json:"eventId"`
	DonorID      string `json:"donorId"`
	Amount       string `json:"amount"`
	Category     string `json:"category"`
	Method       string `json:"method"`
	Status       string `json:"status"`
	ResultTotal  string `json:"resultTotal,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// DonationHistoryResponse represents the API response for a donor's history
type DonationHistoryResponse struct {
	DonorID   string             `json:"donorId"`
	Donations []DonationResponse `json:"donations"`
}
