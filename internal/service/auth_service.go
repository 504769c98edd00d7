package service

import (
	"PedGuard/internal/api/config"
	"PedGuard/internal/api/dto"
	"PedGuard/internal/model"
	"PedGuard/internal/pkg/consts"
	"PedGuard/internal/pkg/oauth"
	"PedGuard/internal/pkg/redis"
	"PedGuard/internal/pkg/security"
	"PedGuard/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.TokenPairDTO, error)
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.TokenPairDTO, error)
	OAuthLogin(ctx context.Context, req *dto.OAuthLoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
	Logout(ctx context.Context, accessToken string) error
}

type authServiceImpl struct {
	userRepo    repository.UserRepo
	oauthClient *oauth.Client
}

func NewAuthService(userRepo repository.UserRepo, oauthClient *oauth.Client) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		oauthClient: oauthClient,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.TokenPairDTO, error) {
	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    &req.Email,
		Password: &hashed,
		Name:     req.Name,
		Role:     consts.RoleUser,
		Provider: consts.ProviderLocal,
	}
	if err = s.userRepo.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrEmailExist
		}
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Password == nil || security.CheckPasswordHash(req.Password, *user.Password) != nil {
		return nil, ErrPasswordIncorrect
	}
	return s.issueTokens(user)
}

// OAuthLogin trades the provider code for a profile and signs in, creating
// the account on first contact.
func (s *authServiceImpl) OAuthLogin(ctx context.Context, req *dto.OAuthLoginDTO) (*dto.TokenPairDTO, error) {
	providerCfg, ok := providerConfig(req.Provider)
	if !ok {
		return nil, ErrParamInvalid
	}

	profile, err := s.oauthClient.Exchange(ctx, req.Provider, providerCfg, req.Code)
	if err != nil {
		log.WarnContext(ctx, "oauth exchange error", "provider", req.Provider, "err", err)
		return nil, ErrOAuthExchange
	}

	user, err := s.userRepo.GetByProvider(ctx, req.Provider, profile.ProviderID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user, err = s.createOAuthUser(ctx, req.Provider, profile)
		if err != nil {
			return nil, err
		}
	}
	return s.issueTokens(user)
}

func (s *authServiceImpl) createOAuthUser(ctx context.Context, provider string, profile *oauth.Profile) (*model.User, error) {
	name := profile.Name
	if name == "" {
		name = "User_" + profile.ProviderID
	}
	user := &model.User{
		Name:       name,
		Picture:    profile.Picture,
		Role:       consts.RoleUser,
		Provider:   provider,
		ProviderID: profile.ProviderID,
	}
	if profile.Email != "" {
		user.Email = &profile.Email
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a first-login race, the winner's row is the account
		if repository.IsDuplicateKey(err) {
			return s.userRepo.GetByProvider(ctx, provider, profile.ProviderID)
		}
		return nil, err
	}
	return user, nil
}

func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := security.ValidateToken(refreshToken)
	if err != nil || !claims.Refresh {
		return nil, ErrTokenInvalid
	}
	if s.isDenied(ctx, refreshToken) {
		return nil, ErrTokenInvalid
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// one use per refresh token
	s.deny(ctx, refreshToken, claims)
	return s.issueTokens(user)
}

// Logout denylists the token signature until its natural expiry.
func (s *authServiceImpl) Logout(ctx context.Context, accessToken string) error {
	claims, err := security.ValidateToken(accessToken)
	if err != nil {
		return ErrTokenInvalid
	}
	s.deny(ctx, accessToken, claims)
	return nil
}

func (s *authServiceImpl) issueTokens(user *model.User) (*dto.TokenPairDTO, error) {
	access, err := security.GenerateToken(user.ID, user.Roles())
	if err != nil {
		return nil, err
	}
	refresh, err := security.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *authServiceImpl) deny(ctx context.Context, token string, claims *security.UserClaims) {
	sig, err := security.ExtractSignature(token)
	if err != nil {
		return
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return
	}
	if err = redis.SetWithExpiration(ctx, consts.TokenDenyKey+sig, "1", ttl); err != nil {
		log.WarnContext(ctx, "denylist token error", "err", err)
	}
}

func (s *authServiceImpl) isDenied(ctx context.Context, token string) bool {
	sig, err := security.ExtractSignature(token)
	if err != nil {
		return true
	}
	v, err := redis.GetValue(ctx, consts.TokenDenyKey+sig)
	return err == nil && v != ""
}

func providerConfig(provider string) (config.OAuthProviderConfig, bool) {
	switch provider {
	case consts.ProviderGoogle:
		return config.Cfg.OAuth.Google, true
	case consts.ProviderKakao:
		return config.Cfg.OAuth.Kakao, true
	case consts.ProviderNaver:
		return config.Cfg.OAuth.Naver, true
	default:
		return config.OAuthProviderConfig{}, false
	}
}
