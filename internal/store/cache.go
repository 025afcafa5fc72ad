package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
)

// CacheKey is a Merkle-style chain of instruction descriptors: each key
// is derived from the previous key plus the current instruction's
// descriptor, so any change to an earlier instruction invalidates every
// key downstream of it.
type CacheKey = string

// RootCacheKey is the chain's starting value, used as the "previous
// key" for a build's first instruction.
const RootCacheKey CacheKey = "cache:root"

// DeriveKey chains prevKey with descriptor to produce the next key in
// the cache sequence: new_key = sha256(prev_key || descriptor).
func DeriveKey(prevKey CacheKey, descriptor string) CacheKey {
	h := sha256.New()
	h.Write([]byte(prevKey))
	h.Write([]byte(descriptor))
	return "cache:" + hex.EncodeToString(h.Sum(nil))
}

// CacheIndex maps a CacheKey to the LayerDigest it previously produced.
type CacheIndex struct {
	Entries map[CacheKey]LayerDigest `json:"entries"`
}

// LoadCacheIndex reads the persisted cache index. A missing or
// malformed file is not an error — it yields an empty index, per §4.5's
// "a corrupt cache index degrades to a full rebuild, not a failure."
func (s *ImageStore) LoadCacheIndex() *CacheIndex {
	idx := &CacheIndex{Entries: make(map[CacheKey]LayerDigest)}

	data, err := os.ReadFile(s.cacheIndexPath())
	if err != nil {
		return idx
	}
	if err := json.Unmarshal(data, idx); err != nil || idx.Entries == nil {
		return &CacheIndex{Entries: make(map[CacheKey]LayerDigest)}
	}
	return idx
}

// SaveCacheIndex persists idx as JSON.
func (s *ImageStore) SaveCacheIndex(idx *CacheIndex) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.cacheIndexPath(), data, 0o644)
}

// GetCachedLayer returns the layer digest cached under key, if any, and
// whether that layer still exists in the store. A hit whose backing
// layer has been evicted is reported as a miss.
func (idx *CacheIndex) GetCachedLayer(s *ImageStore, key CacheKey) (LayerDigest, bool) {
	digest, ok := idx.Entries[key]
	if !ok || !s.LayerExists(digest) {
		return "", false
	}
	return digest, true
}

// CacheLayer records that key produced digest.
func (idx *CacheIndex) CacheLayer(key CacheKey, digest LayerDigest) {
	if idx.Entries == nil {
		idx.Entries = make(map[CacheKey]LayerDigest)
	}
	idx.Entries[key] = digest
}
