package models

// TeamProfile is descriptive metadata attached to a user. It is
// externally managed; this service only reads it to fill receipt
// headers.
type TeamProfile struct {
	TeamName   string `firestore:"teamName" json:"teamName"`
	TeamNumber string `firestore:"teamNumber" json:"teamNumber"`
	CoachName  string `firestore:"coachName" json:"coachName"`
	Email      string `firestore:"email" json:"email"`
}
