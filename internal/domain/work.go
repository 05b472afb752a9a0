package domain

import (
	"time"
)

// WorkInquiry is a work-abroad profile submission.
type WorkInquiry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Occupation *string   `gorm:"type:varchar(100)" json:"occupation"`
	Education  *string   `gorm:"type:varchar(100)" json:"education"`
	Experience *string   `gorm:"type:varchar(100)" json:"experience"`
	Name       *string   `gorm:"type:varchar(100)" json:"name"`
	Email      *string   `gorm:"type:varchar(100)" json:"email"`
	Phone      *string   `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for WorkInquiry
func (WorkInquiry) TableName() string {
	return "work_profiles"
}

func (i *WorkInquiry) Bind(s Submission) {
	i.Occupation = s.String("occupation")
	i.Education = s.String("education")
	i.Experience = s.String("experience")
	i.Name = s.String("name")
	i.Email = s.String("email")
	i.Phone = s.String("phone")
}

var WorkFields = []Field{
	{Key: "occupation"},
	{Key: "education"},
	{Key: "experience"},
	{Key: "name"},
	{Key: "email"},
	{Key: "phone"},
}
