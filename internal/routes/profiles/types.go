package profiles

import (
	"time"

	"philcali.me/shopping/internal/data"
)

type Profile struct {
	Id         string    `json:"accountId"`
	Name       *string   `json:"name,omitempty"`
	Email      string    `json:"email"`
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
}

type ProfileInput struct {
	Name *string `json:"name,omitempty"`
}

func NewProfile(profile data.ProfileDTO) Profile {
	return Profile{
		Id:         profile.SK,
		Name:       profile.Name,
		Email:      profile.Email,
		CreateTime: profile.CreateTime,
		UpdateTime: profile.UpdateTime,
	}
}
