package worksheet

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"

	creator "github.com/xml-creator/xml-creator"
)

// Authorize returns an HTTP client authorised with the service account key in the credentials file.
func Authorize(ctx context.Context, credentials string, scopes []string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read credentials file (%v)", creator.ErrAuthentication, err)
	}

	config, err := google.JWTConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service account credentials %v (%v)", creator.ErrAuthentication, credentials, err)
	}

	return config.Client(ctx), nil
}
