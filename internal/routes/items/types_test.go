package items

import (
	"encoding/json"
	"testing"
)

func TestQuantityUnmarshal(t *testing.T) {
	cases := map[string]struct {
		payload  string
		expected int
	}{
		"number":         {`{"quantity": 3}`, 3},
		"zero":           {`{"quantity": 0}`, 1},
		"negative":       {`{"quantity": -2}`, 1},
		"numeric string": {`{"quantity": "12"}`, 12},
		"padded string":  {`{"quantity": " 4 "}`, 4},
		"garbage string": {`{"quantity": "dozen"}`, 1},
		"wrong type":     {`{"quantity": {"value": 2}}`, 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var input ListItemInput
			if err := json.Unmarshal([]byte(tc.payload), &input); err != nil {
				t.Fatalf("Unexpected parse failure: %v", err)
			}
			if input.Quantity == nil {
				t.Fatal("Expected a quantity to be set")
			}
			if int(*input.Quantity) != tc.expected {
				t.Fatalf("Expected %d, got %d", tc.expected, int(*input.Quantity))
			}
		})
	}

	t.Run("absent stays nil", func(t *testing.T) {
		var input ListItemInput
		if err := json.Unmarshal([]byte(`{"name": "Milk"}`), &input); err != nil {
			t.Fatalf("Unexpected parse failure: %v", err)
		}
		if input.Quantity != nil {
			t.Fatalf("Expected nil quantity, got %d", int(*input.Quantity))
		}
	})
}
