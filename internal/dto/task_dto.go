package dto

type TaskInput struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Duration    string `json:"duration"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

type RecordCompletedRequest struct {
	Sub   string      `json:"sub"`
	Date  string      `json:"date"`
	Day   string      `json:"day"`
	Tasks []TaskInput `json:"tasks"`
}

type UpdateTaskRequest struct {
	From        *string `json:"from"`
	To          *string `json:"to"`
	Duration    *string `json:"duration"`
	Topic       *string `json:"topic"`
	Description *string `json:"description"`
}
