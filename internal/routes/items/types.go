package items

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"philcali.me/shopping/internal/data"
)

// Quantity tolerates sloppy client input: JSON numbers, numeric
// strings, or garbage. Anything that does not parse to a positive
// integer becomes 1.
type Quantity int

func (q *Quantity) UnmarshalJSON(b []byte) error {
	var number int
	if err := json.Unmarshal(b, &number); err == nil {
		if number < 1 {
			number = 1
		}
		*q = Quantity(number)
		return nil
	}
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && parsed >= 1 {
			*q = Quantity(parsed)
			return nil
		}
	}
	*q = 1
	return nil
}

type ListItem struct {
	Id          string            `json:"itemId"`
	Name        string            `json:"name"`
	Category    data.ItemCategory `json:"category"`
	Quantity    int               `json:"quantity"`
	Completed   bool              `json:"completed"`
	CompletedBy *string           `json:"completedBy,omitempty"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
	CreateTime  time.Time         `json:"createTime"`
	UpdateTime  time.Time         `json:"updateTime"`
}

type ListItemInput struct {
	Name      *string            `json:"name,omitempty"`
	Category  *data.ItemCategory `json:"category,omitempty"`
	Quantity  *Quantity          `json:"quantity,omitempty"`
	Completed *bool              `json:"completed,omitempty"`
}

func (i *ListItemInput) ToData(completer string, now time.Time) data.ListItemInputDTO {
	input := data.ListItemInputDTO{
		Name:      i.Name,
		Category:  i.Category,
		Completed: i.Completed,
	}
	if i.Quantity != nil {
		input.Quantity = aws.Int(int(*i.Quantity))
	}
	if i.Completed != nil && *i.Completed {
		input.CompletedBy = &completer
		input.CompletedAt = &now
	}
	return input
}

func NewListItem(item data.ListItemDTO) ListItem {
	return ListItem{
		Id:          item.SK,
		Name:        item.Name,
		Category:    item.Category,
		Quantity:    item.Quantity,
		Completed:   item.Completed,
		CompletedBy: item.CompletedBy,
		CompletedAt: item.CompletedAt,
		CreateTime:  item.CreateTime,
		UpdateTime:  item.UpdateTime,
	}
}
