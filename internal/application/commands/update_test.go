package commands

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"folio/internal/adapters/filesystem"
	"folio/internal/ports"
)

func TestUpdateRecordCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		updates map[string]any
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid update",
			path:    "/tmp/library",
			updates: map[string]any{"status": "archived"},
			wantErr: false,
		},
		{
			name:    "empty path",
			path:    "",
			updates: map[string]any{"status": "archived"},
			wantErr: true,
			errMsg:  "path is required",
		},
		{
			name:    "no updates",
			path:    "/tmp/library",
			updates: map[string]any{},
			wantErr: true,
			errMsg:  "at least one field update",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &UpdateRecordCommand{Path: tt.path, Updates: tt.updates}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateRecordCommand_Execute(t *testing.T) {
	root := t.TempDir()
	store := filesystem.NewStore()
	if _, err := store.InitFolderRecord(root, ports.FolderInit{Name: "Library"}); err != nil {
		t.Fatal(err)
	}

	cmd := NewUpdateRecordCommand(store, root, map[string]any{
		"status": "archived",
		"tags":   []any{"books"},
	})
	res, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Record["status"] != "archived" {
		t.Errorf("expected status archived, got %v", res.Record["status"])
	}
	if res.Record["name"] != "Library" {
		t.Errorf("unset field lost: %v", res.Record["name"])
	}
	if !strings.Contains(res.Message, "Updated record") {
		t.Errorf("unexpected message: %q", res.Message)
	}
}

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    map[string]any
		wantErr bool
	}{
		{
			name: "plain string",
			args: []string{"status=archived"},
			want: map[string]any{"status": "archived"},
		},
		{
			name: "typed values",
			args: []string{"size=10", "pinned=true", `tags=["a","b"]`},
			want: map[string]any{
				"size":   float64(10),
				"pinned": true,
				"tags":   []any{"a", "b"},
			},
		},
		{
			name: "value containing equals",
			args: []string{"description=a=b"},
			want: map[string]any{"description": "a=b"},
		},
		{
			name:    "missing equals",
			args:    []string{"status"},
			wantErr: true,
		},
		{
			name:    "empty key",
			args:    []string{"=archived"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssignments(tt.args)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
