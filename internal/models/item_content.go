package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ItemContent is the type-tagged payload of a board item.
// To satisfy postgres jsonb data type.
type ItemContent map[string]interface{}

func (c *ItemContent) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, c)
}

func (c ItemContent) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c ItemContent) String(key string) (string, bool) {
	v, ok := c[key].(string)
	return v, ok
}

func (c ItemContent) Float(key string) (float64, bool) {
	v, ok := c[key].(float64)
	return v, ok
}
