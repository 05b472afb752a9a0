package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIgnoresUnknownKeys(t *testing.T) {
	sub := InvestForm.Extract(map[string]any{
		"name":    "Alice",
		"email":   "a@x.com",
		"country": "Canada",
		"isAdmin": true,
	})

	var inq InvestInquiry
	inq.Bind(sub)

	require.NotNil(t, inq.Name)
	assert.Equal(t, "Alice", *inq.Name)
	assert.Equal(t, "a@x.com", *inq.Email)
	assert.Equal(t, "Canada", *inq.Country)
	assert.Equal(t, []Entry{
		{Key: "name", Value: "Alice"},
		{Key: "email", Value: "a@x.com"},
		{Key: "country", Value: "Canada"},
	}, sub.Entries())
}

func TestExtractMissingKeysStayNil(t *testing.T) {
	var inq WorkInquiry
	inq.Bind(WorkForm.Extract(map[string]any{"name": "Bo"}))

	require.NotNil(t, inq.Name)
	assert.Equal(t, "Bo", *inq.Name)
	assert.Nil(t, inq.Occupation)
	assert.Nil(t, inq.Education)
	assert.Nil(t, inq.Experience)
	assert.Nil(t, inq.Email)
	assert.Nil(t, inq.Phone)
}

func TestExtractCoercesScalars(t *testing.T) {
	var inq StudyInquiry
	inq.Bind(StudyForm.Extract(map[string]any{
		"age":       float64(24),
		"cgpa":      3.5,
		"needsLoan": "true",
		"phone":     map[string]any{"cc": "+1"},
	}))

	require.NotNil(t, inq.Age)
	assert.Equal(t, "24", *inq.Age)
	assert.Equal(t, "3.5", *inq.CGPA)
	require.NotNil(t, inq.NeedsLoan)
	assert.True(t, *inq.NeedsLoan)
	assert.Nil(t, inq.Phone, "objects are not coerced to text")
}

func TestExtractStudyAliases(t *testing.T) {
	sub := StudyForm.Extract(map[string]any{
		"selectedCountry":        "Germany",
		"selectedQualification":  "Bachelors",
		"selectedAge":            "22",
		"selectedEducationTopic": "Engineering",
		"currentCgpa":            "3.2",
		"selectedBudget":         "20k",
		"needsLoan":              false,
		"country":                "Canada",
	})

	var inq StudyInquiry
	inq.Bind(sub)

	assert.Equal(t, "Canada", *inq.Country, "canonical key wins over alias")
	assert.Equal(t, "Bachelors", *inq.Qualification)
	assert.Equal(t, "Engineering", *inq.EducationTopic)
	assert.Equal(t, "3.2", *inq.CGPA)
	assert.Equal(t, "20k", *inq.Budget)
	require.NotNil(t, inq.NeedsLoan)
	assert.False(t, *inq.NeedsLoan)

	keys := make([]string, 0, len(sub.Entries()))
	for _, e := range sub.Entries() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"country", "selectedQualification", "selectedAge", "selectedEducationTopic", "currentCgpa", "selectedBudget", "needsLoan"}, keys)
}

func TestExtractNullValue(t *testing.T) {
	sub := InvestForm.Extract(map[string]any{"name": nil})

	assert.Nil(t, sub.String("name"))
	assert.Equal(t, []Entry{{Key: "name", Value: nil}}, sub.Entries())
}

func TestModelsTables(t *testing.T) {
	var tables []string
	for _, m := range Models() {
		tables = append(tables, m.TableName())
	}
	assert.Equal(t, []string{"study", "work_profiles", "invest"}, tables)
}
