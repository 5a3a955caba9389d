package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldNotify(t *testing.T) {
	withTargets := Details{NotificationTargets: []string{"#ops"}}
	noTargets := Details{}

	for _, kind := range []Kind{
		KindCardCreate, KindCardUpdate, KindCardEdit, KindCardMove,
		KindCardArchive, KindCardRestore, KindCommentCreate, KindCommentUpdate,
		KindTaskCreate, KindTaskUpdate, KindTaskDelete,
	} {
		assert.True(t, ShouldNotify(kind, withTargets), "kind %s", kind)
		assert.False(t, ShouldNotify(kind, noTargets), "kind %s", kind)
	}

	assert.False(t, ShouldNotify(Kind("boardRename"), withTargets))
	assert.False(t, ShouldNotify(Kind(""), withTargets))
}

func TestPickTarget(t *testing.T) {
	assert.Equal(t, "&general", PickTarget([]string{"@john", "&general", "#ops"}))
	assert.Equal(t, "#ops", PickTarget([]string{"#ops", "&general"}))
	assert.Equal(t, "", PickTarget([]string{"@john", "@jane"}))
	assert.Equal(t, "", PickTarget(nil))
}
