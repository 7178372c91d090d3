package db

import (
	"log"
	"strconv"
	"sync"

	"fintrack-server/src/models"

	"github.com/dgraph-io/ristretto"
)

// Cached transaction records keyed per owner. The key registry mirrors
// what sits in ristretto so every record entry can be dropped at once.
var (
	Cache           *ristretto.Cache
	RecordCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func recordCacheKey(ownerID int64) string {
	return "txrecord:" + strconv.FormatInt(ownerID, 10)
}

func GetRecordCache(ownerID int64) (*models.TransactionRecord, bool) {
	if Cache == nil {
		return nil, false
	}
	value, ok := Cache.Get(recordCacheKey(ownerID))
	if !ok {
		return nil, false
	}
	record, ok := value.(*models.TransactionRecord)
	return record, ok
}

func SetRecordCache(ownerID int64, record *models.TransactionRecord) {
	if Cache == nil {
		return
	}
	key := recordCacheKey(ownerID)
	RecordCacheKeys.Lock()
	RecordCacheKeys.m[key] = struct{}{}
	RecordCacheKeys.Unlock()
	Cache.Set(key, record, 1)
}

func DelRecordCache(ownerID int64) {
	if Cache == nil {
		return
	}
	key := recordCacheKey(ownerID)
	RecordCacheKeys.Lock()
	delete(RecordCacheKeys.m, key)
	RecordCacheKeys.Unlock()
	Cache.Del(key)
}

func ClearAllRecordCaches() {
	if Cache == nil {
		return
	}
	RecordCacheKeys.Lock()
	for key := range RecordCacheKeys.m {
		Cache.Del(key)
	}
	RecordCacheKeys.m = make(map[string]struct{})
	RecordCacheKeys.Unlock()
}
