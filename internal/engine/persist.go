package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"routine/internal/storage"
)

// LoadList reads the list stored under key. Missing, unreadable or malformed
// data yields a fresh copy of defaults; the reason is logged, never returned.
func LoadList(ctx context.Context, kv storage.KV, key string, defaults []Task, logger *slog.Logger) []Task {
	if logger == nil {
		logger = discardLogger()
	}
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("load failed, using defaults", "key", key, "error", err)
		}
		return cloneTasks(defaults)
	}
	tasks, err := Reconcile(raw, defaults)
	if err != nil {
		logger.Warn("stored tasks malformed, using defaults", "key", key, "error", err)
		return cloneTasks(defaults)
	}
	return tasks
}

// Reconcile parses a stored list and merges each record over the default with
// the same id: the default supplies fields the record lacks, every field the
// record has wins, and the ledger is always the record's own (empty if absent).
func Reconcile(raw []byte, defaults []Task) ([]Task, error) {
	var records []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	if records == nil {
		return nil, errors.New("decode tasks: not a list")
	}

	templates := make(map[int64]map[string]json.RawMessage, len(defaults))
	for _, d := range defaults {
		fields, err := taskFields(d)
		if err != nil {
			return nil, err
		}
		templates[d.ID] = fields
	}

	out := make([]Task, 0, len(records))
	seen := make(map[int64]bool, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("record %d: not an object", i)
		}
		var id int64
		idRaw, ok := rec["id"]
		if !ok {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if err := json.Unmarshal(idRaw, &id); err != nil {
			return nil, fmt.Errorf("record %d: id: %w", i, err)
		}
		if seen[id] {
			return nil, fmt.Errorf("record %d: duplicate id %d", i, id)
		}
		seen[id] = true

		merged := map[string]json.RawMessage{}
		if tmpl, ok := templates[id]; ok {
			maps.Copy(merged, tmpl)
		}
		maps.Copy(merged, rec)
		merged["completed"] = json.RawMessage("{}")
		if c, ok := rec["completed"]; ok && !isJSONNull(c) {
			merged["completed"] = c
		}

		t, err := decodeTask(merged)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func decodeTask(fields map[string]json.RawMessage) (Task, error) {
	buf, err := json.Marshal(fields)
	if err != nil {
		return Task{}, err
	}
	var t Task
	if err := json.Unmarshal(buf, &t); err != nil {
		return Task{}, err
	}
	name, err := normalizeName(t.Name)
	if err != nil {
		return Task{}, err
	}
	t.Name = name
	t.Alternatives = normalizeAlternatives(name, t.Alternatives)
	if t.Completed == nil {
		t.Completed = Ledger{}
	}
	if t.Streak != nil && *t.Streak < 0 {
		*t.Streak = 0
	}
	return t, nil
}

func taskFields(t Task) (map[string]json.RawMessage, error) {
	buf, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode default task %d: %w", t.ID, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(buf, &fields); err != nil {
		return nil, fmt.Errorf("encode default task %d: %w", t.ID, err)
	}
	return fields, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// SaveList overwrites the slot under key with tasks.
func SaveList(ctx context.Context, kv storage.KV, key string, tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	buf, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Put(ctx, key, buf); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
