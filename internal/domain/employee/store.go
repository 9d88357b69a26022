package employee

import (
	"context"
	"encoding/json"
	"fmt"

	"construlog/internal/platform/kv"
)

const collectionKey = "construlog_employees"

// Store persists the whole employee collection through the key-value gateway.
type Store struct {
	KV *kv.Store
}

func NewStore(kvStore *kv.Store) *Store {
	return &Store{KV: kvStore}
}

func (s *Store) LoadAll(ctx context.Context) ([]Employee, error) {
	data, err := s.KV.Load(ctx, collectionKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []Employee{}, nil
	}
	var employees []Employee
	if err := json.Unmarshal(data, &employees); err != nil {
		return nil, fmt.Errorf("employee.LoadAll: %w", err)
	}
	if employees == nil {
		employees = []Employee{}
	}
	return employees, nil
}

func (s *Store) SaveAll(ctx context.Context, employees []Employee) error {
	if employees == nil {
		employees = []Employee{}
	}
	data, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("employee.SaveAll: %w", err)
	}
	return s.KV.Save(ctx, collectionKey, data)
}
