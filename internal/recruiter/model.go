package recruiter

import "time"

type Recruiter struct {
	ID                 string
	Email              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CreatedAtHumanised string
}
