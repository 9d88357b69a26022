package production

import (
	"context"
	"encoding/json"
	"fmt"

	"construlog/internal/platform/kv"
)

const collectionKey = "construlog_production"

// Store persists the whole production collection through the key-value
// gateway.
type Store struct {
	KV *kv.Store
}

func NewStore(kvStore *kv.Store) *Store {
	return &Store{KV: kvStore}
}

func (s *Store) LoadAll(ctx context.Context) ([]Entry, error) {
	data, err := s.KV.Load(ctx, collectionKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []Entry{}, nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("production.LoadAll: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func (s *Store) SaveAll(ctx context.Context, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("production.SaveAll: %w", err)
	}
	return s.KV.Save(ctx, collectionKey, data)
}
