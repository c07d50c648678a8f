package memory

import (
	"bytes"
	"sync"
	"time"
)

// This function is needed for being cross-platform
func CeilTimeUpToMicroseconds(timeToCeil time.Time) time.Time {
	if timeToCeil.Nanosecond()%1000 != 0 {
		timeToCeil = timeToCeil.Add(time.Microsecond)
		timeToCeil = timeToCeil.Add(-time.Duration(timeToCeil.Nanosecond() % 1000))
	}
	return timeToCeil
}

type TimeStampedData struct {
	Data      []byte
	Timestamp time.Time
	Size      int
}

func TimeStampData(data []byte, timeNow func() time.Time) TimeStampedData {
	return TimeStampedData{data, CeilTimeUpToMicroseconds(timeNow()), len(data)}
}

// KVS is supposed to be used for tests. It doesn't guarantee data safety!
type KVS struct {
	underlying *sync.Map
	timeNow    func() time.Time
}

func NewKVS(opts ...func(*KVS)) *KVS {
	s := &KVS{underlying: &sync.Map{}, timeNow: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func WithCustomTime(timeNow func() time.Time) func(*KVS) {
	return func(s *KVS) {
		s.timeNow = timeNow
	}
}

func (kvs *KVS) Load(key string) (value TimeStampedData, exists bool) {
	valueInterface, ok := kvs.underlying.Load(key)
	if !ok {
		return TimeStampedData{}, ok
	}
	return valueInterface.(TimeStampedData), ok
}

func (kvs *KVS) Store(key string, value []byte) {
	kvs.underlying.Store(key, TimeStampData(value, kvs.timeNow))
}

func (kvs *KVS) Range(callback func(key string, value TimeStampedData) bool) {
	kvs.underlying.Range(func(iKey, iValue interface{}) bool {
		return callback(iKey.(string), iValue.(TimeStampedData))
	})
}

// reader returns a fresh reader over stored data so that an object can be read several times.
func (value TimeStampedData) reader() *bytes.Reader {
	return bytes.NewReader(value.Data)
}
