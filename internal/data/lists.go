package data

import "time"

type ListColor string

const (
	BLUE   ListColor = "blue"
	GREEN  ListColor = "green"
	PURPLE ListColor = "purple"
	ORANGE ListColor = "orange"
)

func (c ListColor) Valid() bool {
	switch c {
	case BLUE, GREEN, PURPLE, ORANGE:
		return true
	}
	return false
}

type ShoppingListDTO struct {
	PK          string    `dynamodbav:"PK"`
	SK          string    `dynamodbav:"SK"`
	Name        string    `dynamodbav:"name"`
	Description string    `dynamodbav:"description"`
	Color       ListColor `dynamodbav:"color"`
	Owner       string    `dynamodbav:"owner"`
	CreateTime  time.Time `dynamodbav:"createTime"`
	UpdateTime  time.Time `dynamodbav:"updateTime"`
}

type ShoppingListInputDTO struct {
	Name        *string    `dynamodbav:"name"`
	Description *string    `dynamodbav:"description"`
	Color       *ListColor `dynamodbav:"color"`
	Owner       *string    `dynamodbav:"owner"`
}

type ShoppingListRepository interface {
	Repository[ShoppingListDTO, ShoppingListInputDTO]
}
