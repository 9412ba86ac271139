package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_NoticesNewestFirst(t *testing.T) {
	c := NewCollector()
	assert.True(t, c.Empty())

	c.Notify("primeira", false)
	c.Notify("segunda", true)

	notices := c.Notices()
	require.Len(t, notices, 2)
	assert.Equal(t, "segunda", notices[0].Message)
	assert.True(t, notices[0].IsError())
	assert.Equal(t, "message error", notices[0].Class())
	assert.Equal(t, "message success", notices[1].Class())
	assert.NotEqual(t, notices[0].ID, notices[1].ID)
}

func TestCollector_TriggerHeaderIsASCII(t *testing.T) {
	c := NewCollector()
	c.Notify("Tạo PO thành công!", false)

	header, err := c.TriggerHeader()
	require.NoError(t, err)

	for _, b := range []byte(header) {
		assert.Less(t, b, byte(0x80))
	}

	var decoded map[string]triggerPayload
	require.NoError(t, json.Unmarshal([]byte(header), &decoded))

	payload := decoded[TriggerEvent]
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "Tạo PO thành công!", payload.Items[0].Message)
	assert.Equal(t, LevelSuccess, payload.Items[0].Level)
	assert.Equal(t, int64(5000), payload.DismissAfter)
	assert.Equal(t, int64(300), payload.FadeOut)
}

func TestAsciiJSON_SurrogatePairs(t *testing.T) {
	assert.Equal(t, `"\ud83d\ude00"`, asciiJSON([]byte(`"😀"`)))
	assert.Equal(t, `"C\u00f4ng"`, asciiJSON([]byte(`"Công"`)))
}
