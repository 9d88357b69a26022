package payroll

import (
	"context"
	"encoding/json"
	"fmt"

	"construlog/internal/platform/kv"
)

const collectionKey = "construlog_advances"

// Store persists the whole advance table through the key-value gateway.
type Store struct {
	KV *kv.Store
}

func NewStore(kvStore *kv.Store) *Store {
	return &Store{KV: kvStore}
}

func (s *Store) LoadAdvances(ctx context.Context) (Advances, error) {
	data, err := s.KV.Load(ctx, collectionKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return Advances{}, nil
	}
	var advances Advances
	if err := json.Unmarshal(data, &advances); err != nil {
		return nil, fmt.Errorf("payroll.LoadAdvances: %w", err)
	}
	if advances == nil {
		advances = Advances{}
	}
	return advances, nil
}

func (s *Store) SaveAdvances(ctx context.Context, advances Advances) error {
	if advances == nil {
		advances = Advances{}
	}
	data, err := json.Marshal(advances)
	if err != nil {
		return fmt.Errorf("payroll.SaveAdvances: %w", err)
	}
	return s.KV.Save(ctx, collectionKey, data)
}
