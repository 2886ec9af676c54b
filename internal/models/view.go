package models

// ListingView is the flat, pre-resolved card content for one posting in the
// active language. It carries no markup or styling concerns.
type ListingView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ContractType string    `json:"contract_type"`
	Location     string    `json:"location"`
	WorkMode     string    `json:"work_mode"`
	Compensation string    `json:"compensation"`
	StartDate    string    `json:"start_date"`
	PostedDate   string    `json:"posted_date"`
	Deadline     string    `json:"deadline"`
	Tags         []string  `json:"tags"`
	Status       JobStatus `json:"status"`
	Nationality  bool      `json:"nationality_required"`
}

// DetailView is the full pre-resolved detail page content for one posting.
type DetailView struct {
	ListingView
	Description     string `json:"description"`
	Requirements    string `json:"requirements"`
	Benefits        string `json:"benefits"`
	ApplicationOpen bool   `json:"application_open"`
	DaysRemaining   int    `json:"days_remaining"`
	DeadlineSoon    bool   `json:"deadline_soon"`
}

// FilterOptions is the selectable vocabulary per filter dimension in the
// active language. "all" is implicit and never part of these sets.
type FilterOptions struct {
	ContractTypes []string    `json:"contract_types"`
	Locations     []string    `json:"locations"`
	WorkModes     []string    `json:"work_modes"`
	Statuses      []JobStatus `json:"statuses"`
}

// ShareContent is the pre-formatted text block handed to the share/clipboard
// collaborator. The engine builds the text; the intent URLs are not its
// concern.
type ShareContent struct {
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	URL      string   `json:"url"`
	Hashtags []string `json:"hashtags"`
}
