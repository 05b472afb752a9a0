package domain

import (
	"time"
)

// StudyInquiry is a study-abroad form submission.
type StudyInquiry struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Country        *string   `gorm:"type:varchar(100)" json:"country"`
	Qualification  *string   `gorm:"type:varchar(50)" json:"qualification"`
	Age            *string   `gorm:"type:varchar(20)" json:"age"`
	EducationTopic *string   `gorm:"type:varchar(100)" json:"education_topic"`
	CGPA           *string   `gorm:"column:cgpa;type:varchar(20)" json:"cgpa"`
	Budget         *string   `gorm:"type:varchar(50)" json:"budget"`
	NeedsLoan      *bool     `json:"needs_loan"`
	Name           *string   `gorm:"type:varchar(100)" json:"name"`
	Email          *string   `gorm:"type:varchar(100)" json:"email"`
	Phone          *string   `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for StudyInquiry
func (StudyInquiry) TableName() string {
	return "study"
}

// Bind copies the submitted values onto the record.
func (i *StudyInquiry) Bind(s Submission) {
	i.Country = s.String("country")
	i.Qualification = s.String("qualification")
	i.Age = s.String("age")
	i.EducationTopic = s.String("educationTopic")
	i.CGPA = s.String("cgpa")
	i.Budget = s.String("budget")
	i.NeedsLoan = s.Bool("needsLoan")
	i.Name = s.String("name")
	i.Email = s.String("email")
	i.Phone = s.String("phone")
}

// StudyFields are the keys accepted by the study form. The aliases are the
// names older versions of the web client post.
var StudyFields = []Field{
	{Key: "country", Aliases: []string{"selectedCountry"}},
	{Key: "qualification", Aliases: []string{"selectedQualification"}},
	{Key: "age", Aliases: []string{"selectedAge"}},
	{Key: "educationTopic", Aliases: []string{"selectedEducationTopic"}},
	{Key: "cgpa", Aliases: []string{"currentCgpa"}},
	{Key: "budget", Aliases: []string{"selectedBudget"}},
	{Key: "needsLoan", Kind: BoolField},
	{Key: "name"},
	{Key: "email"},
	{Key: "phone"},
}
