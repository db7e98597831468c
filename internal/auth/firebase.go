package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/favourop/portfolio-backend/config"
)

// InitializeFirebase initializes the Firebase Admin SDK and returns an Auth client
func InitializeFirebase(cfg *config.FirebaseConfig) (*fbauth.Client, error) {
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	return authClient, nil
}

// FirebaseAuthorizer validates Firebase ID tokens. It is the hosted-SDK
// variant of the authorization gate.
type FirebaseAuthorizer struct {
	client *fbauth.Client
}

var _ Authorizer = (*FirebaseAuthorizer)(nil)

func NewFirebaseAuthorizer(client *fbauth.Client) *FirebaseAuthorizer {
	return &FirebaseAuthorizer{client: client}
}

func (a *FirebaseAuthorizer) Authenticate(ctx context.Context, token string) (*Principal, error) {
	decoded, err := a.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	p := &Principal{ID: decoded.UID, Role: "admin"}
	if email, ok := decoded.Claims["email"].(string); ok {
		p.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		p.Name = name
	}
	return p, nil
}
