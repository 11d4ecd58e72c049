package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New[string, int]()
	assert.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
}

func TestAdd(t *testing.T) {
	r := New[string, int]()

	assert.True(t, r.Add("one", 1))
	assert.False(t, r.Add("one", 100), "second add of same key must be rejected")

	v, ok := r.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 1, v, "rejected add must not overwrite")
	assert.Equal(t, 1, r.Len())
}

func TestRegisterOverwriteKeepsPosition(t *testing.T) {
	r := New[string, string]()

	r.Register("a", "old")
	r.Register("b", "b")
	r.Register("a", "new")

	v, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
	assert.Equal(t, []string{"a", "b"}, r.Keys())
}

func TestHas(t *testing.T) {
	r := New[string, int]()
	r.Add("key", 42)

	assert.True(t, r.Has("key"))
	assert.False(t, r.Has("nonexistent"))
}

func TestDelete(t *testing.T) {
	r := New[string, int]()
	r.Add("a", 1)
	r.Add("b", 2)
	r.Add("c", 3)

	assert.True(t, r.Delete("b"))
	assert.False(t, r.Has("b"))
	assert.Equal(t, []string{"a", "c"}, r.Keys())
}

func TestDeleteNonexistent(t *testing.T) {
	r := New[string, int]()
	r.Add("key", 42)

	assert.False(t, r.Delete("nonexistent"))
	assert.Equal(t, 1, r.Len())
}

func TestClear(t *testing.T) {
	r := New[string, int]()
	r.Add("a", 1)
	r.Add("b", 2)

	r.Clear()

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Keys())
	assert.True(t, r.Add("a", 1), "registry must be usable after Clear")
}

func TestKeysAndValuesOrdered(t *testing.T) {
	r := New[string, int]()
	r.Add("three", 3)
	r.Add("one", 1)
	r.Add("two", 2)

	assert.Equal(t, []string{"three", "one", "two"}, r.Keys())
	assert.Equal(t, []int{3, 1, 2}, r.Values())
}

func TestKeysEmpty(t *testing.T) {
	r := New[string, int]()
	assert.Empty(t, r.Keys())
	assert.Empty(t, r.Values())
}

func TestValuesIsSnapshot(t *testing.T) {
	r := New[string, int]()
	r.Add("one", 1)

	values := r.Values()
	r.Add("two", 2)
	r.Delete("one")

	assert.Equal(t, []int{1}, values)
}

func TestRange(t *testing.T) {
	r := New[string, int]()
	r.Add("one", 1)
	r.Add("two", 2)
	r.Add("three", 3)

	var keys []string
	r.Range(func(k string, v int) bool {
		keys = append(keys, k)
		return true
	})

	assert.Equal(t, []string{"one", "two", "three"}, keys)
}

func TestRangeEarlyStop(t *testing.T) {
	r := New[string, int]()
	r.Add("one", 1)
	r.Add("two", 2)

	count := 0
	r.Range(func(k string, v int) bool {
		count++
		return false
	})

	assert.Equal(t, 1, count)
}

func TestRangeAllowsMutation(t *testing.T) {
	r := New[string, int]()
	r.Add("one", 1)
	r.Add("two", 2)

	visited := 0
	r.Range(func(k string, v int) bool {
		visited++
		r.Delete(k)
		r.Add("new-"+k, v*10)
		return true
	})

	assert.Equal(t, 2, visited)
	assert.Equal(t, []string{"new-one", "new-two"}, r.Keys())
}

func TestStructKeys(t *testing.T) {
	type Key struct {
		Namespace string
		Name      string
	}

	r := New[Key, int]()
	k1 := Key{Namespace: "ns1", Name: "name1"}
	k2 := Key{Namespace: "ns2", Name: "name2"}

	r.Add(k1, 1)
	r.Add(k2, 2)

	v, ok := r.Get(k2)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestInterfaceKeys(t *testing.T) {
	type a struct{ n int }
	type b struct{ n int }

	r := New[any, string]()
	r.Add(a{1}, "a")
	r.Add(b{1}, "b")

	assert.Equal(t, 2, r.Len(), "equal fields with distinct dynamic types are distinct keys")
}

// Thread-safety tests

func TestConcurrentAdd(t *testing.T) {
	r := New[int, int]()
	var wg sync.WaitGroup
	n := 1000

	for i := range n {
		wg.Add(1)
		go func(val int) {
			defer wg.Done()
			r.Add(val, val*2)
			r.Add(val, -1)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, n, r.Len())
	assert.Len(t, r.Keys(), n)
	for i := range n {
		v, ok := r.Get(i)
		assert.True(t, ok)
		assert.Equal(t, i*2, v)
	}
}

func TestConcurrentMixedOperations(t *testing.T) {
	r := New[int, int]()
	var wg sync.WaitGroup

	for i := range 100 {
		wg.Add(3)
		go func(val int) {
			defer wg.Done()
			r.Add(val, val)
		}(i)
		go func(val int) {
			defer wg.Done()
			r.Delete(val)
		}(i)
		go func() {
			defer wg.Done()
			r.Range(func(int, int) bool { return true })
		}()
	}

	wg.Wait()

	assert.Equal(t, r.Len(), len(r.Keys()))
}
