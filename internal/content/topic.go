package content

// KeyTerm is a term/definition pair inside a topic's "Key Terms to Know" section.
type KeyTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Topic is a unit of study content. Topics are immutable once loaded and are
// owned by the Provider for the process lifetime.
type Topic struct {
	ID               string    `json:"id"`
	Subject          string    `json:"subject"`
	Title            string    `json:"title"`
	WhatIsIt         string    `json:"whatIsIt"`
	HowItWorks       string    `json:"howItWorks"`
	RealWorldExample string    `json:"realWorldExample"`
	KeyTerms         []KeyTerm `json:"keyTerms"`
	NSBTraps         []string  `json:"nsbTraps"`
	DidYouKnow       []string  `json:"didYouKnow"`

	// RelatedTopics holds topic ids. Entries are not guaranteed to resolve
	// against the loaded topic set; callers must skip unresolvable ids.
	RelatedTopics []string `json:"relatedTopics"`
}
