package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStoreAt(t.TempDir())
	require.NoError(t, err)

	_, err = store.LoadCredentials()
	assert.EqualError(t, err, "not logged in")

	require.NoError(t, store.SaveCredentials(&sdk.Credentials{Token: "tok-abc"}))

	creds, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", creds.Token)

	require.NoError(t, store.DeleteCredentials())
	_, err = store.LoadCredentials()
	assert.Error(t, err)

	// Deleting twice is fine.
	require.NoError(t, store.DeleteCredentials())
}
