package resume

// Contact holds the contact details pulled out of a resume. Fields are empty
// strings when nothing matched.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Record is the structured result of parsing one resume. Skills and Education
// have set semantics (deduplicated, order not meaningful); Experience is an
// ordered list of text snippets.
type Record struct {
	RawText    string   `json:"raw_text"`
	Skills     []string `json:"skills"`
	Education  []string `json:"education"`
	Experience []string `json:"experience"`
	Contact    Contact  `json:"contact_info"`
}
