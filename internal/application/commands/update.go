package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"folio/internal/application"
	"folio/internal/ports"
)

// UpdateRecordResult contains the result of a record update
type UpdateRecordResult struct {
	Record  map[string]any
	Message string
}

// UpdateRecordCommand merges field updates into a stored record,
// preserving fields it does not set
type UpdateRecordCommand struct {
	store   ports.MetadataStore
	Path    string
	Updates map[string]any
}

// NewUpdateRecordCommand creates a new UpdateRecordCommand
func NewUpdateRecordCommand(store ports.MetadataStore, path string, updates map[string]any) *UpdateRecordCommand {
	return &UpdateRecordCommand{
		store:   store,
		Path:    path,
		Updates: updates,
	}
}

// Validate checks if the update operation is valid
func (c *UpdateRecordCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}

	if len(c.Updates) == 0 {
		return &application.ValidationError{
			Field:   "updates",
			Message: "at least one field update is required",
		}
	}

	return nil
}

// Execute runs the update record command
func (c *UpdateRecordCommand) Execute(ctx context.Context) (*UpdateRecordResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, err := c.store.UpdateRecord(c.Path, c.Updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	return &UpdateRecordResult{
		Record:  rec,
		Message: fmt.Sprintf("Updated record for %s", c.Path),
	}, nil
}

// ParseAssignments converts key=value arguments into an update map.
// Values that parse as JSON keep their typed form, so tags=["a","b"]
// stores an array and size=10 stores a number; anything else is taken
// as a plain string.
func ParseAssignments(args []string) (map[string]any, error) {
	updates := make(map[string]any, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, &application.ValidationError{
				Field:   "set",
				Message: fmt.Sprintf("expected key=value, got: %s", arg),
			}
		}

		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		updates[key] = value
	}
	return updates, nil
}
