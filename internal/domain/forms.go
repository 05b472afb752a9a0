package domain

var (
	StudyForm = &Form{
		Kind:    "study",
		Message: "Form submitted successfully",
		Subject: "Study Abroad Inquiry",
		Intro:   "For Study: This person wants to study abroad. Their details are:",
		Fields:  StudyFields,
		New:     func() Inquiry { return &StudyInquiry{} },
	}

	WorkForm = &Form{
		Kind:    "work",
		Message: "Work profile saved successfully",
		Subject: "Work Abroad Inquiry",
		Intro:   "For Work: This person wants to work abroad. Their details are:",
		Fields:  WorkFields,
		New:     func() Inquiry { return &WorkInquiry{} },
	}

	InvestForm = &Form{
		Kind:    "invest",
		Message: "Investment inquiry submitted successfully",
		Subject: "Investment Abroad Inquiry",
		Intro:   "For Investment: This person wants to invest abroad. Their details are:",
		Fields:  InvestFields,
		New:     func() Inquiry { return &InvestInquiry{} },
	}
)

// Models lists every inquiry table for schema creation.
func Models() []Inquiry {
	return []Inquiry{&StudyInquiry{}, &WorkInquiry{}, &InvestInquiry{}}
}
