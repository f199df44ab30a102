package lists

import (
	"time"

	"philcali.me/shopping/internal/data"
)

type ShoppingList struct {
	Id          string         `json:"listId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Color       data.ListColor `json:"color"`
	Owner       string         `json:"owner"`
	CreateTime  time.Time      `json:"createTime"`
	UpdateTime  time.Time      `json:"updateTime"`
}

type ShoppingListInput struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Color       *data.ListColor `json:"color,omitempty"`
}

func (l *ShoppingListInput) ToData(owner string) data.ShoppingListInputDTO {
	return data.ShoppingListInputDTO{
		Name:        l.Name,
		Description: l.Description,
		Color:       l.Color,
		Owner:       &owner,
	}
}

func NewShoppingList(list data.ShoppingListDTO) ShoppingList {
	return ShoppingList{
		Id:          list.SK,
		Name:        list.Name,
		Description: list.Description,
		Color:       list.Color,
		Owner:       list.Owner,
		CreateTime:  list.CreateTime,
		UpdateTime:  list.UpdateTime,
	}
}
