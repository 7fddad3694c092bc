package vault

import "sync"

// MemoryVault keeps secrets in process memory. Nothing survives the process.
type MemoryVault struct {
	mu      sync.Mutex
	secrets map[string]string
}

func NewMemoryVault() *MemoryVault {
	return &MemoryVault{secrets: make(map[string]string)}
}

func (v *MemoryVault) Get(key string) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	value, ok := v.secrets[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (v *MemoryVault) Set(key, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.secrets[key] = value
	return nil
}

func (v *MemoryVault) Delete(key string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.secrets[key]; !ok {
		return ErrNotFound
	}
	delete(v.secrets, key)
	return nil
}
