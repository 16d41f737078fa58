package prescan

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type corpusEntry struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Fallback bool   `yaml:"fallback"`
	Reason   int    `yaml:"reason"`
	Booleans []struct {
		Index   int  `yaml:"index"`
		Boolean bool `yaml:"boolean"`
	} `yaml:"booleans"`
}

func TestCorpus(t *testing.T) {
	data, err := os.ReadFile("testdata/corpus.yaml")
	require.NoError(t, err)

	var entries []corpusEntry
	require.NoError(t, yaml.Unmarshal(data, &entries))
	require.NotEmpty(t, entries)

	for _, e := range entries {
		t.Run(e.Name, func(t *testing.T) {
			fallback, reason, hints := ShouldFallbackCollect([]byte(e.Input), nil)
			assert.Equal(t, e.Fallback, fallback)
			assert.Equal(t, Reason(e.Reason), reason)

			var want []BooleanHint
			for _, b := range e.Booleans {
				want = append(want, BooleanHint{Index: b.Index, Boolean: b.Boolean})
			}
			assert.Empty(t, cmp.Diff(want, hints))
		})
	}
}
