package cloudinary

import (
	"crypto/sha1"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequiresCredentials(t *testing.T) {
	assert.Nil(t, New("", "", "", "edutrack"))
	assert.Nil(t, New("demo", "key", "", "edutrack"))
	assert.NotNil(t, New("demo", "key", "secret", "edutrack"))
}

func TestSign(t *testing.T) {
	c := New("demo", "key", "secret", "edutrack")

	t.Run("SortedAndExcluded", func(t *testing.T) {
		got := c.sign(map[string]string{
			"timestamp": "1700000000",
			"folder":    "edutrack",
			"api_key":   "key", // ต้องไม่ถูกรวมใน signature
			"file":      "ignored",
		})

		h := sha1.New()
		h.Write([]byte("folder=edutrack&timestamp=1700000000secret"))
		want := fmt.Sprintf("%x", h.Sum(nil))
		assert.Equal(t, want, got)
	})

	t.Run("EmptyValuesSkipped", func(t *testing.T) {
		withEmpty := c.sign(map[string]string{"timestamp": "1700000000", "folder": ""})
		without := c.sign(map[string]string{"timestamp": "1700000000"})
		assert.Equal(t, without, withEmpty)
	})
}
