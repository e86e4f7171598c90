package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSessionsAreIndependent(t *testing.T) {
	st := NewStore()
	shawarma := product("Chicken Shawarma", 55)

	st.Dispatch("session-a", Action{Kind: AddItem, Product: shawarma})
	st.Dispatch("session-a", Action{Kind: AddItem, Product: shawarma})
	st.Dispatch("session-b", Action{Kind: AddItem, Product: shawarma})

	a := st.Get("session-a")
	b := st.Get("session-b")
	require.Len(t, a.Items, 1)
	require.Len(t, b.Items, 1)
	assert.Equal(t, 2, a.Items[0].Quantity)
	assert.Equal(t, 1, b.Items[0].Quantity)
}

func TestStoreUnknownSessionIsEmpty(t *testing.T) {
	st := NewStore()
	assert.Empty(t, st.Get("never-seen").Items)
}

func TestStoreClear(t *testing.T) {
	st := NewStore()
	st.Dispatch("s", Action{Kind: AddItem, Product: product("Falafel Wrap", 40)})

	st.Clear("s")
	assert.Empty(t, st.Get("s").Items)
}

func TestStoreConcurrentDispatch(t *testing.T) {
	st := NewStore()
	shawarma := product("Chicken Shawarma", 55)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Dispatch("s", Action{Kind: AddItem, Product: shawarma})
		}()
	}
	wg.Wait()

	state := st.Get("s")
	require.Len(t, state.Items, 1)
	assert.Equal(t, 50, state.Items[0].Quantity)
}
