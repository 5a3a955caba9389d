package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindCategory(t *testing.T) {
	tests := []struct {
		kind Kind
		want Category
	}{
		{KindCardCreate, CategoryCard},
		{KindCardMove, CategoryCard},
		{KindCardArchive, CategoryCard},
		{KindCommentCreate, CategoryComment},
		{KindCommentUpdate, CategoryComment},
		{KindTaskCreate, CategoryTask},
		{KindTaskDelete, CategoryTask},
		{Kind("boardRename"), CategoryCard},
		{Kind("cardCommentPin"), CategoryComment},
		{Kind("TASKMOVE"), CategoryTask},
		{Kind(""), CategoryCard},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.Category(), "kind %q", tt.kind)
	}
}
