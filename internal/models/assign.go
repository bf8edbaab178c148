package models

import (
	"encoding/json"
	"fmt"
)

// Assign copies normalized field values onto entity. Fields absent from the map keep their
// current values.
func Assign(entity Entity, fields map[string]interface{}) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode %s fields: %w", entity.EntityName(), err)
	}
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to assign %s fields: %w", entity.EntityName(), err)
	}
	return nil
}
