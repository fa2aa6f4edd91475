package pagination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techhype/cardlink_backend/internal/utils/pagination"
)

func TestTokenRoundtrip(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 10, 30, 0, 123456789, time.UTC)

	token := pagination.EncodeToken(createdAt)
	decoded, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, createdAt.Equal(decoded))
}

func TestDecodeToken_NotBase64(t *testing.T) {
	_, err := pagination.DecodeToken("%%%not-base64%%%")
	assert.Error(t, err)
}

func TestDecodeToken_NotATimestamp(t *testing.T) {
	_, err := pagination.DecodeToken("bm90LWEtdGltZXN0YW1w") // "not-a-timestamp"
	assert.Error(t, err)
}
