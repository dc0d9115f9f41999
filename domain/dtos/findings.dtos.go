package dtos

import "github.com/init-pkg/vapt-ingest/domain/entities"

const DefaultFindingsLimit = 50

type ListFindingsRequest struct {
	Limit    int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=500"`
	Offset   int    `query:"offset" json:"offset" validate:"min=0"`
	Severity string `query:"severity" json:"severity" validate:"omitempty,max=50"`
}

type FindingDto struct {
	ID              uint64 `json:"id" jsonschema_description:"System-assigned identifier, ascending in upload row order"`
	Name            string `json:"name" jsonschema:"maxLength=200" jsonschema_description:"Vulnerability name"`
	RiskDescription string `json:"risk_description" jsonschema_description:"Description of the risk"`
	Severity        string `json:"severity" jsonschema:"maxLength=50" jsonschema_description:"Severity as written in the report, not normalised"`
	AffectedURLs    string `json:"affected_urls" jsonschema_description:"Affected URLs exactly as they appeared in the report cell"`
}

type ListFindingsResponse struct {
	Items  []FindingDto `json:"items"`
	Total  int64        `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

func NewFindingDto(f *entities.Finding) FindingDto {
	return FindingDto{
		ID:              f.ID,
		Name:            f.Name,
		RiskDescription: f.RiskDescription,
		Severity:        f.Severity,
		AffectedURLs:    f.AffectedURLs,
	}
}
