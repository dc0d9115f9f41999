package entities

const (
	MaxNameLength     = 200
	MaxSeverityLength = 50
)

// Finding is one vulnerability row of an ingested VAPT report.
type Finding struct {
	ID              uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"column:name;type:varchar(200);not null" json:"name"`
	RiskDescription string `gorm:"column:risk_description;type:text;not null" json:"risk_description"`
	Severity        string `gorm:"column:severity;type:varchar(50);not null" json:"severity"`
	AffectedURLs    string `gorm:"column:affected_urls;type:text;not null" json:"affected_urls"`
}

func (Finding) TableName() string {
	return "vulnerabilities"
}
