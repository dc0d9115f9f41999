package dtos

type UploadReportResponse struct {
	Message              string `json:"message" example:"Report processed successfully"`
	VulnerabilitiesCount int    `json:"vulnerabilities_count" example:"2"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Missing required columns"`
}
