package download_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avasse/grabby/pkg/download"
)

func TestItemState(t *testing.T) {
	cases := []struct {
		name string
		item download.Item
		want string
	}{
		{"pending", download.Item{}, "pending"},
		{"in progress", download.Item{IsInProgress: true}, "in progress"},
		{"complete", download.Item{IsComplete: true}, "complete"},
		{"cancelled", download.Item{IsCancelled: true}, "cancelled"},
		{"cancelled wins over complete", download.Item{IsComplete: true, IsCancelled: true}, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.item.State())
		})
	}
}
