package service

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserService interface {
	GetMe(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	UpdateMe(ctx context.Context, userID uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) GetMe(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	result := &dto.UserDTO{
		ID:       user.ID,
		Name:     user.Name,
		Picture:  user.Picture,
		Role:     user.Role,
		Provider: user.Provider,
	}
	if user.Email != nil {
		result.Email = *user.Email
	}
	return result, nil
}

func (s *userServiceImpl) UpdateMe(ctx context.Context, userID uint64, req *dto.UpdateProfileDTO) (*dto.UserDTO, error) {
	if err := s.userRepo.UpdateProfile(ctx, userID, req.Name, req.Picture); err != nil {
		return nil, err
	}
	return s.GetMe(ctx, userID)
}
