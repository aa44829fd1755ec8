// Package fixpack loads generated fix packs from their JSON export.
package fixpack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/onlook-dev/fixpack-pipeline/models"
)

// FromJSON decodes a single fix pack object or an array of them.
func FromJSON(data []byte) ([]*models.FixPack, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty fix pack document")
	}

	var packs []*models.FixPack
	if data[0] == '[' {
		if err := json.Unmarshal(data, &packs); err != nil {
			return nil, err
		}
	} else {
		var fp models.FixPack
		if err := json.Unmarshal(data, &fp); err != nil {
			return nil, err
		}
		packs = []*models.FixPack{&fp}
	}

	for i, fp := range packs {
		if err := Validate(fp); err != nil {
			return nil, fmt.Errorf("fix pack %d: %w", i, err)
		}
		if len(fp.FilesAffected) == 0 {
			fp.FilesAffected = files(fp.PatchPreview.Diffs)
		}
	}
	return packs, nil
}

func Validate(fp *models.FixPack) error {
	if fp == nil {
		return errors.New("null fix pack")
	}
	if fp.ID == "" || fp.AuditID == "" || fp.UserID == "" {
		return errors.New("id, auditId and userId are required")
	}
	if !fp.Type.Valid() {
		return fmt.Errorf("%s: unknown type %q", fp.ID, fp.Type)
	}
	if len(fp.PatchPreview.Diffs) == 0 {
		return fmt.Errorf("%s: patchPreview has no diffs", fp.ID)
	}
	for i, d := range fp.PatchPreview.Diffs {
		if d.File == "" {
			return fmt.Errorf("%s: diff %d has no file", fp.ID, i)
		}
		if d.Before == "" {
			return fmt.Errorf("%s: diff %d (%s) has an empty before", fp.ID, i, d.File)
		}
	}
	return nil
}

func files(diffs []models.FileDiff) []string {
	seen := make(map[string]struct{}, len(diffs))
	var out []string
	for _, d := range diffs {
		if _, ok := seen[d.File]; ok {
			continue
		}
		seen[d.File] = struct{}{}
		out = append(out, d.File)
	}
	return out
}
