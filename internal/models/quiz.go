package models

type SubmitAnswerRequest struct {
	Topic         string `json:"topic"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

type SubmitAnswerResponse struct {
	Correct        bool   `json:"correct"`
	CorrectAnswer  string `json:"correct_answer"`
	NewProficiency int    `json:"new_proficiency"`
}
