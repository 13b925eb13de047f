package sh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/motion.go/pkg/l1"
)

func TestFormatInfo(t *testing.T) {
	cases := []struct {
		info l1.ControllerInfo
		text string
	}{
		{l1.ControllerInfo{Ref: l1.ControllerRef{Type: "motion", ID: "a"}}, "motion/a"},
		{
			l1.ControllerInfo{
				Ref:  l1.ControllerRef{Type: "motion", ID: "a"},
				Meta: l1.ControllerMeta{Description: "bench", Nodes: []byte{1, 2}},
			},
			"motion/a: bench nodes=[1 2]",
		},
	}
	for _, c := range cases {
		require.Equal(t, c.text, FormatInfo(c.info))
	}
}

func TestFilterByType(t *testing.T) {
	infos := []l1.ControllerInfo{
		{Ref: l1.ControllerRef{Type: "motion", ID: "a"}},
		{Ref: l1.ControllerRef{Type: "other", ID: "b"}},
	}
	require.Len(t, FilterByType(infos, ""), 2)
	require.Equal(t, infos[1:], FilterByType(infos, "other"))
	require.Empty(t, FilterByType(infos, "none"))
}
