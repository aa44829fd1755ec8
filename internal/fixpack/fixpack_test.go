package fixpack

import (
	"strings"
	"testing"

	"github.com/onlook-dev/fixpack-pipeline/models"
)

func TestFromJSON(t *testing.T) {
	data := []byte(`[
		{
			"id": "fp-1",
			"auditId": "audit-1",
			"userId": "user-1",
			"type": "token",
			"title": "Use brand tokens",
			"patchPreview": {
				"diffs": [
					{"file": "src/tokens.css", "before": "color: red;", "after": "color: blue;"},
					{"file": "src/tokens.css", "before": "margin: 0;", "after": "margin: 4px;", "description": "Spacing"}
				]
			},
			"issuesFixed": [{"title": "Off-brand color", "severity": "high"}]
		},
		{
			"id": "fp-2",
			"auditId": "audit-1",
			"userId": "user-1",
			"type": "layout",
			"title": "Fix grid gaps",
			"patchPreview": {"diffs": [{"file": "src/grid.css", "before": "gap: 1px;", "after": "gap: 8px;"}]},
			"filesAffected": ["src/grid.css", "src/layout.tsx"]
		}
	]`)

	packs, err := FromJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(packs) != 2 {
		t.Fatalf("expected 2 fix packs, got %d", len(packs))
	}

	tests := []struct {
		name      string
		wantID    string
		wantType  models.FixPackType
		wantDiffs int
		wantFiles []string
	}{
		{
			name:      "files derived from diffs",
			wantID:    "fp-1",
			wantType:  models.FixPackTypeToken,
			wantDiffs: 2,
			wantFiles: []string{"src/tokens.css"},
		},
		{
			name:      "explicit files kept",
			wantID:    "fp-2",
			wantType:  models.FixPackTypeLayout,
			wantDiffs: 1,
			wantFiles: []string{"src/grid.css", "src/layout.tsx"},
		},
	}

	for index, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := packs[index]

			if fp.ID != tt.wantID {
				t.Errorf("ID: expected %q, got %q", tt.wantID, fp.ID)
			}
			if fp.Type != tt.wantType {
				t.Errorf("Type: expected %q, got %q", tt.wantType, fp.Type)
			}
			if len(fp.PatchPreview.Diffs) != tt.wantDiffs {
				t.Errorf("Diffs: expected %d, got %d", tt.wantDiffs, len(fp.PatchPreview.Diffs))
			}
			if strings.Join(fp.FilesAffected, ",") != strings.Join(tt.wantFiles, ",") {
				t.Errorf("FilesAffected: expected %v, got %v", tt.wantFiles, fp.FilesAffected)
			}
		})
	}

	if got := packs[0].PatchPreview.Diffs[1].Description; got != "Spacing" {
		t.Errorf("Description: expected %q, got %q", "Spacing", got)
	}
}

func TestFromJSON_SingleObject(t *testing.T) {
	data := []byte(`  {"id": "fp-1", "auditId": "a", "userId": "u", "type": "motion",
		"patchPreview": {"diffs": [{"file": "a.css", "before": "x", "after": "y"}]}}`)

	packs, err := FromJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packs) != 1 || packs[0].Type != models.FixPackTypeMotion {
		t.Fatalf("unexpected result: %+v", packs)
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "empty", data: "  ", wantErr: "empty fix pack document"},
		{name: "malformed", data: `[{"id": }]`, wantErr: "invalid character"},
		{name: "null entry", data: `[null]`, wantErr: "null fix pack"},
		{name: "missing ids", data: `{"type": "token"}`, wantErr: "id, auditId and userId are required"},
		{name: "unknown type", data: `{"id": "fp", "auditId": "a", "userId": "u", "type": "color"}`, wantErr: `unknown type "color"`},
		{name: "no diffs", data: `{"id": "fp", "auditId": "a", "userId": "u", "type": "token"}`, wantErr: "has no diffs"},
		{
			name:    "empty before",
			data:    `{"id": "fp", "auditId": "a", "userId": "u", "type": "token", "patchPreview": {"diffs": [{"file": "a.css", "before": ""}]}}`,
			wantErr: "empty before",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJSON([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err)
			}
		})
	}
}
