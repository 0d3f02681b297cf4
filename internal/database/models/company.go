package models

// Defaults applied when a company is auto-provisioned during signup.
const (
	DefaultCompanyCountryCode = "US"
	DefaultCompanyCurrency    = "USD"
)

// Company represents a billable entity a user can administer or belong to.
type Company struct {
	BaseModel
	Email           string `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	CountryCode     string `json:"country_code" gorm:"not null;size:2" validate:"required,len=2"`
	DefaultCurrency string `json:"default_currency" gorm:"not null;size:3" validate:"required,len=3"`

	// Relationships
	Administrators []CompanyAdministrator `json:"administrators,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	InviteLinks    []CompanyInviteLink    `json:"invite_links,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
