package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeDeserializeDigestCreated(t *testing.T) {
	evt := DigestCreatedEvent{
		BaseEvent:         NewBaseEvent(DigestCreated, "api"),
		DigestID:          42,
		ArticleID:         "68a1f00000000000000000aa",
		URL:               "https://blog.example.com/post",
		Title:             "A post",
		SummarySource:     "gemini",
		TranslationSource: "dictionary",
	}

	data, eventType, err := SerializeEvent(evt)
	assert.NoError(t, err)
	assert.Equal(t, DigestCreated, eventType)
	assert.NotEmpty(t, evt.ID)

	decoded, err := DeserializeEvent(eventType, data)
	assert.NoError(t, err)
	out, ok := decoded.(*DigestCreatedEvent)
	assert.True(t, ok)
	assert.Equal(t, evt.DigestID, out.DigestID)
	assert.Equal(t, evt.ArticleID, out.ArticleID)
	assert.Equal(t, evt.ID, out.ID)
}

func TestSerializeUnknownEventType(t *testing.T) {
	_, _, err := SerializeEvent(struct{}{})
	assert.Error(t, err)
}

func TestDeserializeUnknownEventType(t *testing.T) {
	_, err := DeserializeEvent("digest.unknown", []byte(`{}`))
	assert.Error(t, err)
}
