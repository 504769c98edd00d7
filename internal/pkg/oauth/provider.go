package oauth

import (
	"PedGuard/internal/api/config"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

var ErrExchangeFailed = errors.New("oauth exchange failed")

// Profile is the provider-neutral identity extracted from a userinfo
// response. Email may be empty for Kakao accounts without email consent.
type Profile struct {
	ProviderID string
	Email      string
	Name       string
	Picture    string
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Error       string `json:"error"`
}

type Client struct {
	http *resty.Client
}

func NewClient() *Client {
	return &Client{
		http: resty.New().SetTimeout(10 * time.Second),
	}
}

// Exchange trades an authorization code for the provider's profile: code →
// access token → userinfo, then normalization into Profile.
func (c *Client) Exchange(ctx context.Context, provider string, cfg config.OAuthProviderConfig, code string) (*Profile, error) {
	token, err := c.fetchToken(ctx, cfg, code)
	if err != nil {
		return nil, err
	}

	attrs, err := c.fetchUserInfo(ctx, cfg.UserInfoURL, token)
	if err != nil {
		return nil, err
	}

	switch provider {
	case "GOOGLE":
		return normalizeGoogle(attrs)
	case "KAKAO":
		return normalizeKakao(attrs)
	case "NAVER":
		return normalizeNaver(attrs)
	default:
		return nil, fmt.Errorf("%w: unknown provider %s", ErrExchangeFailed, provider)
	}
}

func (c *Client) fetchToken(ctx context.Context, cfg config.OAuthProviderConfig, code string) (string, error) {
	var token tokenResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "authorization_code",
			"client_id":     cfg.ClientID,
			"client_secret": cfg.ClientSecret,
			"redirect_uri":  cfg.RedirectURL,
			"code":          code,
		}).
		SetResult(&token).
		Post(cfg.TokenURL)
	if err != nil {
		return "", err
	}
	if res.IsError() || token.AccessToken == "" {
		return "", fmt.Errorf("%w: token endpoint status %d", ErrExchangeFailed, res.StatusCode())
	}
	return token.AccessToken, nil
}

func (c *Client) fetchUserInfo(ctx context.Context, url, token string) (map[string]any, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(url)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: userinfo status %d", ErrExchangeFailed, res.StatusCode())
	}
	var attrs map[string]any
	if err = json.Unmarshal(res.Body(), &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

func normalizeGoogle(attrs map[string]any) (*Profile, error) {
	id := str(attrs["sub"])
	if id == "" {
		return nil, fmt.Errorf("%w: missing sub", ErrExchangeFailed)
	}
	return &Profile{
		ProviderID: id,
		Email:      str(attrs["email"]),
		Name:       str(attrs["name"]),
		Picture:    str(attrs["picture"]),
	}, nil
}

// normalizeKakao unwraps the kakao_account.profile nesting.
func normalizeKakao(attrs map[string]any) (*Profile, error) {
	id := str(attrs["id"])
	if id == "" {
		return nil, fmt.Errorf("%w: missing id", ErrExchangeFailed)
	}
	p := &Profile{ProviderID: id}
	if account, ok := attrs["kakao_account"].(map[string]any); ok {
		p.Email = str(account["email"])
		if profile, ok := account["profile"].(map[string]any); ok {
			p.Name = str(profile["nickname"])
			p.Picture = str(profile["profile_image_url"])
		}
	}
	return p, nil
}

// normalizeNaver unwraps the response envelope Naver puts around the profile.
func normalizeNaver(attrs map[string]any) (*Profile, error) {
	res, ok := attrs["response"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing response object", ErrExchangeFailed)
	}
	id := str(res["id"])
	if id == "" {
		return nil, fmt.Errorf("%w: missing id", ErrExchangeFailed)
	}
	return &Profile{
		ProviderID: id,
		Email:      str(res["email"]),
		Name:       str(res["name"]),
		Picture:    str(res["profile_image"]),
	}, nil
}

// str renders the identifier types providers actually send; Kakao ids arrive
// as JSON numbers.
func str(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
