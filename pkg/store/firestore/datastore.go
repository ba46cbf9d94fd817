package firestore

import (
	"context"
	"fmt"

	"casemonitor/pkg/config"

	gcfirestore "cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// Datastore wraps the Firestore client
type Datastore struct {
	client      *gcfirestore.Client
	collections config.CollectionsConfig
}

// NewDatastore creates a Firestore client. Credentials come from the raw JSON
// key, then the key file, then application default credentials.
func NewDatastore(ctx context.Context, cfg config.FirestoreConfig) (*Datastore, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := gcfirestore.NewClient(ctx, projectID(cfg), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &Datastore{client: client, collections: cfg.Collections}, nil
}

// projectID falls back to the project named in the credentials
func projectID(cfg config.FirestoreConfig) string {
	if cfg.ProjectID == "" {
		return gcfirestore.DetectProjectID
	}
	return cfg.ProjectID
}

// Client returns the underlying Firestore client
func (ds *Datastore) Client() *gcfirestore.Client {
	return ds.client
}

// Close closes the Firestore client
func (ds *Datastore) Close() error {
	if err := ds.client.Close(); err != nil {
		return fmt.Errorf("failed to close Firestore client: %w", err)
	}
	return nil
}
