package bootstrap

import (
	"context"

	"cloud.google.com/go/firestore"
)

// InitFirestore connects to the project holding the purchases and
// teams collections. projectID comes from config, not ambient state.
func InitFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	return firestore.NewClient(ctx, projectID)
}
