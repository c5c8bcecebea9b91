package producer

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// Header 訊息標頭, 放事件類型與店家id
type Header struct {
	Key   string
	Value []byte
}

// Message 一筆訂單事件
// Key 固定為訂單id, 同一張訂單的事件會落在同一個 partition
type Message struct {
	Key     []byte
	Value   []byte
	Headers []Header
	Time    time.Time
}

func (m *Message) ToKafkaMessage() kafka.Message {
	headers := make([]kafka.Header, len(m.Headers))
	for i, h := range m.Headers {
		headers[i] = kafka.Header{
			Key:   h.Key,
			Value: h.Value,
		}
	}

	return kafka.Message{
		Key:     m.Key,
		Value:   m.Value,
		Headers: headers,
		Time:    m.Time,
	}
}

// HeaderValue 找不到時回傳空字串
func (m *Message) HeaderValue(key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
