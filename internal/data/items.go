package data

import "time"

type ItemCategory string

const (
	FRUITS     ItemCategory = "fruits"
	VEGETABLES ItemCategory = "vegetables"
	MEAT       ItemCategory = "meat"
	DAIRY      ItemCategory = "dairy"
	BAKERY     ItemCategory = "bakery"
	BEVERAGES  ItemCategory = "beverages"
	CLEANING   ItemCategory = "cleaning"
	HYGIENE    ItemCategory = "hygiene"
	OTHER      ItemCategory = "other"
)

func (c ItemCategory) Valid() bool {
	switch c {
	case FRUITS, VEGETABLES, MEAT, DAIRY, BAKERY, BEVERAGES, CLEANING, HYGIENE, OTHER:
		return true
	}
	return false
}

type ListItemDTO struct {
	PK          string       `dynamodbav:"PK"`
	SK          string       `dynamodbav:"SK"`
	Name        string       `dynamodbav:"name"`
	Category    ItemCategory `dynamodbav:"category"`
	Quantity    int          `dynamodbav:"quantity"`
	Completed   bool         `dynamodbav:"completed"`
	CompletedBy *string      `dynamodbav:"completedBy,omitempty"`
	CompletedAt *time.Time   `dynamodbav:"completedAt,omitempty"`
	CreateTime  time.Time    `dynamodbav:"createTime"`
	UpdateTime  time.Time    `dynamodbav:"updateTime"`
}

type ListItemInputDTO struct {
	Name        *string       `dynamodbav:"name"`
	Category    *ItemCategory `dynamodbav:"category"`
	Quantity    *int          `dynamodbav:"quantity"`
	Completed   *bool         `dynamodbav:"completed"`
	CompletedBy *string       `dynamodbav:"completedBy"`
	CompletedAt *time.Time    `dynamodbav:"completedAt"`
}

type ListItemRepository interface {
	Repository[ListItemDTO, ListItemInputDTO]
}
