package usecase

import (
	"context"
	"net/http"
	"strings"

	repo "app/internal/repository"
)

type ProfileUsecase struct {
	users repo.UserRepository
}

func NewProfileUsecase(users repo.UserRepository) *ProfileUsecase {
	return &ProfileUsecase{users: users}
}

type ProfileResponse struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

type UpdateProfileInput struct {
	FullName   string
	Phone      string
	Address    string
	City       string
	Country    string
	PostalCode string
}

func (u *ProfileUsecase) GetProfile(ctx context.Context, userID int64) (ProfileResponse, error) {
	if userID <= 0 {
		return ProfileResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return ProfileResponse{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return ProfileResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProfileResponse{
		ID:         user.ID,
		FullName:   user.FullName,
		Email:      user.Email,
		Phone:      user.Phone,
		Address:    user.Address,
		City:       user.City,
		Country:    user.Country,
		PostalCode: user.PostalCode,
	}, nil
}

// emailは変更不可。配送系の項目だけ更新する。
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.FullName) == "" {
		return NewHTTPError(http.StatusBadRequest, "full name is required")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user.FullName = strings.TrimSpace(in.FullName)
	user.Phone = in.Phone
	user.Address = in.Address
	user.City = in.City
	user.Country = in.Country
	user.PostalCode = in.PostalCode

	if err := u.users.Update(ctx, user); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "user not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
