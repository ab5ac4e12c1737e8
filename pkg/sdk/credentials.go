package sdk

// Credentials is the persisted session credential. The token is the only
// piece of session state that survives restarts; the Principal is always
// re-derived from the backend.
type Credentials struct {
	Token string `json:"token"`
}

// CredentialStore abstracts durable storage of session credentials. The CLI
// supplies a file-backed implementation; tests use an in-memory one.
type CredentialStore interface {
	SaveCredentials(credentials *Credentials) error
	LoadCredentials() (*Credentials, error)
	DeleteCredentials() error
}
