package dto

// ProgressUpdate sets a module's completion percentage.
type ProgressUpdate struct {
	Progress *int `json:"progress" binding:"required,min=0,max=100"`
}
