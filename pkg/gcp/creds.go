package gcp

import (
	"os"
	"strings"

	"google.golang.org/api/option"
)

// ClientOptions builds the credential options for Google API clients. An
// explicit credentials file wins; otherwise GOOGLE_APPLICATION_CREDENTIALS_JSON
// and then GOOGLE_APPLICATION_CREDENTIALS are read. Nil means application
// default credentials.
func ClientOptions(credentialsFile string) []option.ClientOption {
	creds := strings.TrimSpace(credentialsFile)
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	}
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}
