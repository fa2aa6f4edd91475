package utils_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techhype/cardlink_backend/internal/utils"
)

func TestHashPassword_Deterministic(t *testing.T) {
	ctx := context.Background()
	salt := []byte("0123456789abcdef")

	first, err := utils.HashPassword(ctx, "CorrectHorse1!", salt)
	require.NoError(t, err)
	second, err := utils.HashPassword(ctx, "CorrectHorse1!", salt)
	require.NoError(t, err)

	assert.Len(t, first, utils.HashKeyLength)
	assert.Equal(t, first, second)
}

func TestHashPassword_DifferentSaltsDifferentHashes(t *testing.T) {
	ctx := context.Background()

	saltA, err := utils.GenerateSecureRandomBytes(utils.MinSaltLength)
	require.NoError(t, err)
	saltB, err := utils.GenerateSecureRandomBytes(utils.MinSaltLength)
	require.NoError(t, err)

	hashA, err := utils.HashPassword(ctx, "CorrectHorse1!", saltA)
	require.NoError(t, err)
	hashB, err := utils.HashPassword(ctx, "CorrectHorse1!", saltB)
	require.NoError(t, err)

	assert.NotEqual(t, hashA, hashB)
}

func TestHashPassword_ShortSaltRejected(t *testing.T) {
	_, err := utils.HashPassword(context.Background(), "CorrectHorse1!", []byte("too-short"))
	assert.Error(t, err)
}

func TestHashPassword_EmptyPasswordAllowed(t *testing.T) {
	// Policy enforcement belongs to the service layer; the hasher accepts
	// anything with a valid salt.
	hash, err := utils.HashPassword(context.Background(), "", []byte("0123456789abcdef"))
	require.NoError(t, err)
	assert.Len(t, hash, utils.HashKeyLength)
}

func TestHashPassword_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A cancelled context may still win the semaphore select, so run enough
	// derivations that at least one observes the cancellation path or all
	// succeed trivially. Either outcome is acceptable; what must not happen
	// is a hang.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = utils.HashPassword(ctx, "CorrectHorse1!", []byte("0123456789abcdef"))
		}()
	}
	wg.Wait()
}

func TestVerifyPassword_Roundtrip(t *testing.T) {
	ctx := context.Background()
	salt, err := utils.GenerateSecureRandomBytes(utils.MinSaltLength)
	require.NoError(t, err)

	hash, err := utils.HashPassword(ctx, "CorrectHorse1!", salt)
	require.NoError(t, err)

	ok, err := utils.VerifyPassword(ctx, "CorrectHorse1!", salt, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = utils.VerifyPassword(ctx, "WrongHorse1!", salt, hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_BitFlip(t *testing.T) {
	ctx := context.Background()
	salt, err := utils.GenerateSecureRandomBytes(utils.MinSaltLength)
	require.NoError(t, err)

	hash, err := utils.HashPassword(ctx, "CorrectHorse1!", salt)
	require.NoError(t, err)

	corrupted := make([]byte, len(hash))
	copy(corrupted, hash)
	corrupted[0] ^= 0x01

	ok, err := utils.VerifyPassword(ctx, "CorrectHorse1!", salt, corrupted)
	require.NoError(t, err)
	assert.False(t, ok)
}
