package storage

import "time"

// Participation is one user's attendance answer for one match week.
// Partition key is the week so the participant list for a week is a
// single Query; the sort key makes (week, user) the upsert key.
type Participation struct {
	WeekDate      string    `dynamodbav:"PK"`
	UserID        string    `dynamodbav:"SK"`
	Email         string    `dynamodbav:"Email"`
	Participating bool      `dynamodbav:"Participating"`
	AnsweredAt    time.Time `dynamodbav:"AnsweredAt"`
}

// MvpVote is one voter's MVP pick for one match week. The candidate is
// identified by email, not user id, because the tally is presented by
// email local part. Keyed (week, voter) so casting again overwrites.
type MvpVote struct {
	MatchWeek string    `dynamodbav:"PK"`
	VoterID   string    `dynamodbav:"SK"`
	MvpEmail  string    `dynamodbav:"MvpEmail"`
	CastAt    time.Time `dynamodbav:"CastAt"`
}

type User struct {
	Email        string    `dynamodbav:"PK"`
	UserID       string    `dynamodbav:"UserID"`
	PasswordHash string    `dynamodbav:"PasswordHash"`
	CreatedAt    time.Time `dynamodbav:"CreatedAt"`
}

// Session is a server-issued bearer token record.
type Session struct {
	Token     string    `dynamodbav:"PK"`
	UserID    string    `dynamodbav:"UserID"`
	Email     string    `dynamodbav:"Email"`
	CreatedAt time.Time `dynamodbav:"CreatedAt"`
	ExpiresAt time.Time `dynamodbav:"ExpiresAt"`
}
