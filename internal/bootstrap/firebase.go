package bootstrap

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

// InitFirebase builds the auth client used to verify bearer tokens on
// every purchase and receipt route. Credentials come from application
// default credentials; nothing service-specific is configured here.
func InitFirebase(ctx context.Context) (*auth.Client, error) {
	app, err := firebase.NewApp(ctx, nil)
	if err != nil {
		return nil, err
	}
	return app.Auth(ctx)
}
