package domain

import (
	"time"
)

// InvestInquiry is an investment-abroad inquiry.
type InvestInquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      *string   `gorm:"type:varchar(100)" json:"name"`
	Email     *string   `gorm:"type:varchar(100)" json:"email"`
	Country   *string   `gorm:"type:varchar(100)" json:"country"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for InvestInquiry
func (InvestInquiry) TableName() string {
	return "invest"
}

func (i *InvestInquiry) Bind(s Submission) {
	i.Name = s.String("name")
	i.Email = s.String("email")
	i.Country = s.String("country")
}

var InvestFields = []Field{
	{Key: "name"},
	{Key: "email"},
	{Key: "country"},
}
