// Package validate checks JSON request payloads against embedded JSON
// schemas before they are decoded, so malformed bodies are rejected with a
// caller-fixable 400 and never reach storage.
package validate

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/qri-io/jsonschema"

	"github.com/tbourn/go-news-api/internal/apperr"
)

// Payload names a request body shape.
type Payload string

const (
	Topic   Payload = "topic"
	User    Payload = "user"
	Article Payload = "article"
	Comment Payload = "comment"
	Votes   Payload = "votes"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// fieldMessages overrides the type-mismatch message for specific properties.
var fieldMessages = map[string]string{
	"inc_votes": "inc_votes must be numeric",
}

var (
	loadOnce sync.Once
	loadErr  error
	schemas  map[Payload]*jsonschema.Schema
	fields   map[Payload]map[string]bool
)

func load() error {
	loadOnce.Do(func() {
		out := make(map[Payload]*jsonschema.Schema)
		known := make(map[Payload]map[string]bool)
		for _, p := range []Payload{Topic, User, Article, Comment, Votes} {
			b, err := schemaFS.ReadFile("schemas/" + string(p) + ".json")
			if err != nil {
				loadErr = fmt.Errorf("read schema %s: %w", p, err)
				return
			}
			rs := &jsonschema.Schema{}
			if err := json.Unmarshal(b, rs); err != nil {
				loadErr = fmt.Errorf("compile schema %s: %w", p, err)
				return
			}
			var doc struct {
				Properties map[string]json.RawMessage `json:"properties"`
			}
			if err := json.Unmarshal(b, &doc); err != nil {
				loadErr = fmt.Errorf("read properties of %s: %w", p, err)
				return
			}
			known[p] = make(map[string]bool, len(doc.Properties))
			for name := range doc.Properties {
				known[p][name] = true
			}
			out[p] = rs
		}
		schemas, fields = out, known
	})
	return loadErr
}

// Check validates body against the schema for p. Rejections are
// apperr.BadRequest values whose message names the first offending field.
func Check(ctx context.Context, p Payload, body []byte) error {
	if err := load(); err != nil {
		return apperr.Internal(err)
	}
	rs, ok := schemas[p]
	if !ok {
		return apperr.Internal(fmt.Errorf("validate: unknown payload %q", p))
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		return apperr.BadRequest("Invalid Request. body must be valid JSON")
	}

	keyErrs, err := rs.ValidateBytes(ctx, body)
	if err != nil {
		return apperr.BadRequest("Invalid Request. body must be a JSON object")
	}
	if len(keyErrs) == 0 {
		return nil
	}

	sort.SliceStable(keyErrs, func(i, j int) bool { return keyErrs[i].PropertyPath < keyErrs[j].PropertyPath })
	return apperr.BadRequest("Invalid Request. " + message(p, keyErrs[0], body))
}

// Decode runs Check and then unmarshals body into dst.
func Decode(ctx context.Context, p Payload, body []byte, dst any) error {
	if err := Check(ctx, p, body); err != nil {
		return err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperr.BadRequest("Invalid Request. body does not match the expected shape")
	}
	return nil
}

// message rewrites a schema error as "<field> <problem>". Errors at the
// document root carry the field in the text (required) or not at all
// (additionalProperties), so those are resolved here.
func message(p Payload, ke jsonschema.KeyError, body []byte) string {
	field := strings.TrimPrefix(ke.PropertyPath, "/")
	msg := ke.Message
	switch {
	case strings.HasSuffix(msg, "value is required"):
		if name, ok := quoted(msg); ok {
			return name + " is required"
		}
	case strings.HasPrefix(msg, "additional properties"):
		if name := unknownField(p, body); name != "" {
			return name + " is not allowed"
		}
		return "body has unexpected fields"
	case strings.HasPrefix(msg, "type should be "):
		if m, ok := fieldMessages[field]; ok {
			return m
		}
		want := strings.TrimPrefix(msg, "type should be ")
		if i := strings.LastIndex(want, ", got "); i >= 0 {
			want = want[:i]
		}
		if rest, ok := strings.CutPrefix(want, "one of: "); ok {
			want = strings.ReplaceAll(rest, ",", " or ")
		}
		if field == "" {
			return "body must be a JSON " + want
		}
		return field + " must be a " + want
	case strings.HasPrefix(msg, "min length"), strings.HasPrefix(msg, "regexp pattern"):
		return subject(field) + " must not be empty"
	case strings.HasPrefix(msg, "max length"):
		return subject(field) + " is too long"
	case strings.Contains(msg, "less than"), strings.Contains(msg, "greater than"):
		return subject(field) + " is out of range"
	}
	return subject(field) + " is invalid"
}

func subject(field string) string {
	if field == "" {
		return "body"
	}
	return field
}

// quoted returns the first double-quoted word in s.
func quoted(s string) (string, bool) {
	_, rest, ok := strings.Cut(s, `"`)
	if !ok {
		return "", false
	}
	name, _, ok := strings.Cut(rest, `"`)
	return name, ok && name != ""
}

// unknownField returns the alphabetically first top-level key of body that
// the schema for p does not declare.
func unknownField(p Payload, body []byte) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return ""
	}
	var extra []string
	for k := range obj {
		if !fields[p][k] {
			extra = append(extra, k)
		}
	}
	if len(extra) == 0 {
		return ""
	}
	sort.Strings(extra)
	return extra[0]
}
