package models

import (
	"time"

	"github.com/Utiqano/football/engine"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type SessionResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type WeekResponse struct {
	WeekDate string `json:"week_date"`
	Label    string `json:"label"`
}

type AnswerResponse struct {
	WeekDate string `json:"week_date"`
	Answer   string `json:"answer"`
}

type SubmitAnswerRequest struct {
	Participating *bool `json:"participating"`
}

type SubmitAnswerResponse struct {
	WeekDate    string `json:"week_date"`
	Answer      string `json:"answer"`
	Celebrating bool   `json:"celebrating"`
}

type ParticipantsResponse struct {
	WeekDate     string               `json:"week_date"`
	Count        int                  `json:"count"`
	Participants []engine.Participant `json:"participants"`
}

type MyVoteResponse struct {
	WeekDate string `json:"week_date"`
	MvpEmail string `json:"mvp_email,omitempty"`
}

type CastVoteRequest struct {
	MvpEmail string `json:"mvp_email"`
}

type TallyResponse struct {
	WeekDate string              `json:"week_date"`
	Results  []engine.TallyEntry `json:"results"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
