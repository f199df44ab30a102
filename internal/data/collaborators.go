package data

import "time"

type CollaboratorDTO struct {
	PK         string    `dynamodbav:"PK"`
	SK         string    `dynamodbav:"SK"`
	FirstIndex string    `dynamodbav:"GS1-PK"`
	ListId     string    `dynamodbav:"listId"`
	Owner      string    `dynamodbav:"owner"`
	CreateTime time.Time `dynamodbav:"createTime"`
	UpdateTime time.Time `dynamodbav:"updateTime"`
}

type CollaboratorInputDTO struct {
	ListId *string `dynamodbav:"listId"`
	Owner  *string `dynamodbav:"owner"`
}

type CollaboratorRepository interface {
	Repository[CollaboratorDTO, CollaboratorInputDTO]
}
