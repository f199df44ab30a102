package data

import "time"

// Site wide profile records
const GLOBAL_ACCOUNT = "Global"

type ProfileDTO struct {
	PK         string    `dynamodbav:"PK"`
	SK         string    `dynamodbav:"SK"`
	FirstIndex string    `dynamodbav:"GS1-PK"`
	Name       *string   `dynamodbav:"name,omitempty"`
	Email      string    `dynamodbav:"email"`
	CreateTime time.Time `dynamodbav:"createTime"`
	UpdateTime time.Time `dynamodbav:"updateTime"`
}

type ProfileInputDTO struct {
	Name  *string `dynamodbav:"name"`
	Email *string `dynamodbav:"email"`
}

type ProfileRepository interface {
	Repository[ProfileDTO, ProfileInputDTO]
}
