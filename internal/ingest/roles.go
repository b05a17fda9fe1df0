package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"

	"stv-ingest/internal/diagnostic"
	"stv-ingest/internal/election"
)

// LoadRoles reads the roles document at path and replaces ds.Roles with it.
func (l *Loader) LoadRoles(ds *election.Dataset, path string) error {
	l.logger.Info("loading roles", "path", path)

	if err := requireFile(path); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	roles, err := ParseRoles(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	seen := make(map[string]int, len(roles))
	for i, r := range roles {
		if j, ok := seen[r.Name]; ok {
			l.diags.AddWarning(diagnostic.CodeRoleDuplicate,
				fmt.Sprintf("role %q at index %d repeats index %d", r.Name, i, j), path)

			continue
		}

		seen[r.Name] = i
	}

	ds.Roles = roles

	l.logger.Info("loaded roles", "path", path, "total", len(roles))

	return nil
}

// ParseRoles decodes a roles document: an array of role objects, or a
// single role object. Comments and trailing commas are allowed. Every object
// must fit election.Role exactly; unknown keys, mistyped values and missing
// names fail with ErrMalformedRole.
func ParseRoles(data []byte) ([]election.Role, error) {
	doc := bytes.TrimSpace(jsonc.ToJSON(data))

	if len(doc) == 0 {
		return nil, errors.New("failed to parse roles JSON: empty document")
	}

	if !json.Valid(doc) {
		var v any
		err := json.Unmarshal(doc, &v)

		return nil, fmt.Errorf("failed to parse roles JSON: %w", err)
	}

	switch doc[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(doc, &items); err != nil {
			return nil, fmt.Errorf("failed to parse roles JSON: %w", err)
		}

		roles := make([]election.Role, 0, len(items))

		for i, item := range items {
			role, err := decodeRole(item)
			if err != nil {
				return nil, fmt.Errorf("%w: element %d: %w", ErrMalformedRole, i, err)
			}

			roles = append(roles, role)
		}

		return roles, nil

	case '{':
		role, err := decodeRole(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRole, err)
		}

		return []election.Role{role}, nil

	default:
		return nil, fmt.Errorf("%w: top-level value must be an array of role objects", ErrMalformedRole)
	}
}

// roleDoc is the on-disk form of a role. Seats is a pointer so an omitted
// value can be told apart from an explicit zero.
type roleDoc struct {
	Name        string `json:"name"`
	Seats       *int   `json:"seats"`
	Description string `json:"description"`
}

func decodeRole(data []byte) (election.Role, error) {
	var doc roleDoc

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&doc); err != nil {
		return election.Role{}, err
	}

	role := election.Role{
		Name:        doc.Name,
		Seats:       election.DefaultSeats,
		Description: doc.Description,
	}
	if doc.Seats != nil {
		role.Seats = *doc.Seats
	}

	if err := role.Validate(); err != nil {
		return election.Role{}, err
	}

	return role, nil
}
