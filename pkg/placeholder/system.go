package placeholder

// systemPlaceholders is the fixed context vocabulary available to every form
// regardless of its components. Keys are literal, pre-assigned, and never
// renormalized.
var systemPlaceholders = []Placeholder{
	{Key: "submission_id", Label: "Submission ID", Category: CategoryBasic},
	{Key: "submission_date", Label: "Submission date", Category: CategoryBasic},
	{Key: "submission_time", Label: "Submission time", Category: CategoryBasic},

	{Key: "submitter_name", Label: "Submitter name", Category: CategorySubmitter},
	{Key: "submitter_email", Label: "Submitter email", Category: CategorySubmitter},
	{Key: "submitter_ip", Label: "Submitter IP address", Category: CategorySubmitter},
	{Key: "submitter_company", Label: "Submitter company", Category: CategorySubmitter},

	{Key: "site_title", Label: "Site title", Category: CategorySystem},
	{Key: "site_url", Label: "Site URL", Category: CategorySystem},
}

// SystemPlaceholders returns a copy of the fixed system/context tokens.
func SystemPlaceholders() []Placeholder {
	out := make([]Placeholder, len(systemPlaceholders))
	copy(out, systemPlaceholders)
	return out
}
