package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/fight-tracker/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	g := idgen.NewSequential("row")
	assert.Equal(t, "row_1", g.Generate())
	assert.Equal(t, "row_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestSequentialIsUniqueUnderConcurrency(t *testing.T) {
	g := idgen.NewSequential("")
	seen := sync.Map{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, dup := seen.LoadOrStore(g.Generate(), struct{}{})
			assert.False(t, dup)
		}()
	}
	wg.Wait()
}

func TestUUID(t *testing.T) {
	id := idgen.NewUUID("").Generate()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	prefixed := idgen.NewUUID("fight").Generate()
	require.True(t, strings.HasPrefix(prefixed, "fight_"))
	_, err = uuid.Parse(strings.TrimPrefix(prefixed, "fight_"))
	require.NoError(t, err)
}
