package oauth

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGoogle(t *testing.T) {
	t.Parallel()

	profile, err := normalizeGoogle(map[string]any{
		"sub":     "108973412345",
		"email":   "kim@example.com",
		"name":    "Kim",
		"picture": "https://lh3.example.com/p.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "108973412345", profile.ProviderID)
	assert.Equal(t, "kim@example.com", profile.Email)
	assert.Equal(t, "Kim", profile.Name)
	assert.Equal(t, "https://lh3.example.com/p.jpg", profile.Picture)

	_, err = normalizeGoogle(map[string]any{"email": "kim@example.com"})
	assert.ErrorIs(t, err, ErrExchangeFailed)
}

func TestNormalizeKakao(t *testing.T) {
	t.Parallel()

	// Kakao sends the id as a JSON number and nests the profile
	profile, err := normalizeKakao(map[string]any{
		"id": float64(2847561923),
		"kakao_account": map[string]any{
			"email": "lee@example.com",
			"profile": map[string]any{
				"nickname":          "Lee",
				"profile_image_url": "https://k.example.com/p.jpg",
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2847561923", profile.ProviderID)
	assert.Equal(t, "lee@example.com", profile.Email)
	assert.Equal(t, "Lee", profile.Name)

	// account section is optional
	bare, err := normalizeKakao(map[string]any{"id": float64(1)})
	require.NoError(t, err)
	assert.Equal(t, "1", bare.ProviderID)
	assert.Empty(t, bare.Email)

	_, err = normalizeKakao(map[string]any{})
	assert.ErrorIs(t, err, ErrExchangeFailed)
}

func TestNormalizeNaver(t *testing.T) {
	t.Parallel()

	profile, err := normalizeNaver(map[string]any{
		"resultcode": "00",
		"response": map[string]any{
			"id":            "naver-abc-123",
			"email":         "park@example.com",
			"name":          "Park",
			"profile_image": "https://n.example.com/p.jpg",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "naver-abc-123", profile.ProviderID)
	assert.Equal(t, "park@example.com", profile.Email)
	assert.Equal(t, "Park", profile.Name)

	_, err = normalizeNaver(map[string]any{"resultcode": "00"})
	assert.ErrorIs(t, err, ErrExchangeFailed)

	_, err = normalizeNaver(map[string]any{"response": map[string]any{}})
	assert.ErrorIs(t, err, ErrExchangeFailed)
}

func TestStr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", str("abc"))
	assert.Equal(t, "42", str(float64(42)))
	assert.Equal(t, "9007199254740993", str(json.Number("9007199254740993")))
	assert.Empty(t, str(nil))
	assert.Empty(t, str(true))
}
