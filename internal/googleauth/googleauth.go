// Package googleauth resolves Google API client options for the roster
// sheet and content docs: a local service-account credentials file when
// one exists, application-default credentials otherwise.
package googleauth

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// ClientOptions returns the options to pass when constructing a Google
// API service for the given scopes.
func ClientOptions(ctx context.Context, credentialsFile string, scopes ...string) ([]option.ClientOption, error) {
	if credentialsFile != "" {
		if _, err := os.Stat(credentialsFile); err == nil {
			return []option.ClientOption{
				option.WithCredentialsFile(credentialsFile),
				option.WithScopes(scopes...),
			}, nil
		}
	}

	creds, err := google.FindDefaultCredentials(ctx, scopes...)
	if err != nil {
		return nil, fmt.Errorf("resolving google credentials: %w", err)
	}
	return []option.ClientOption{option.WithCredentials(creds)}, nil
}
