package dto

import (
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/policy"
)

type Portal struct {
	View policy.LandingView `json:"view"`
	User *entity.User       `json:"user"`
	Club *entity.Club       `json:"club"`
}
