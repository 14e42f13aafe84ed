package dto

// ImportRowError describes a single rejected spreadsheet row. Row numbers are
// 1-based as shown in spreadsheet programs, so the first data row is row 2.
type ImportRowError struct {
	Row     int    `json:"row" example:"2"`
	Message string `json:"message" example:"Nama Lengkap is required"`
}

// ImportValidationResult is the outcome of validating an uploaded file without
// committing anything. Errors holds at most the first five problems found;
// TotalErrors carries the full count.
type ImportValidationResult struct {
	Valid       bool             `json:"valid"`
	Candidates  int              `json:"candidates"`
	Errors      []ImportRowError `json:"errors,omitempty"`
	TotalErrors int              `json:"totalErrors"`
}

// ImportCommitResponse reports a committed import batch
type ImportCommitResponse struct {
	Imported int `json:"imported" example:"37"`
}
