package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/SolarGUY14/EasyCeipt/internal/errs"
	"github.com/SolarGUY14/EasyCeipt/internal/models"
)

type teamStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewTeamStore(client *firestore.Client) *teamStore {
	return &teamStore{
		Client:     client,
		Collection: client.Collection("teams"),
	}
}

// GetProfile returns the team profile keyed by the owner's email. A
// missing profile is not an error; the receipt renders placeholders.
func (ts *teamStore) GetProfile(ctx context.Context, email string) (*models.TeamProfile, error) {
	doc, err := ts.Collection.Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &models.TeamProfile{Email: email}, nil
		}
		return nil, errs.NewDatabaseError("read", "failed to get team profile", err)
	}

	var profile models.TeamProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse team profile", err)
	}
	return &profile, nil
}
