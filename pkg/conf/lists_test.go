package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListOps(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		cfg := Wrap(map[string]any{"players": []string{"alice"}})
		cfg.AddToStringList("players", "bob", "carol")
		assert.Equal(t, []string{"alice", "bob", "carol"}, cfg.StringList("players"))
	})

	t.Run("add to missing key creates the list", func(t *testing.T) {
		cfg := Wrap(map[string]any{})
		cfg.AddToStringList("players", "alice")
		assert.Equal(t, []string{"alice"}, cfg.StringList("players"))
	})

	t.Run("remove drops every occurrence", func(t *testing.T) {
		cfg := Wrap(map[string]any{"players": []string{"alice", "bob", "alice", "carol"}})
		cfg.RemoveFromStringList("players", "alice", "dave")
		assert.Equal(t, []string{"bob", "carol"}, cfg.StringList("players"))
	})
}

func TestDistinctStringList(t *testing.T) {
	cfg := Wrap(map[string]any{"ranks": []string{"admin", "mod", "admin", "vip", "mod"}})

	// First occurrence order is preserved and the config is untouched.
	assert.Equal(t, []string{"admin", "mod", "vip"}, cfg.DistinctStringList("ranks"))
	assert.Equal(t, []string{"admin", "mod", "admin", "vip", "mod"}, cfg.StringList("ranks"))

	cfg.MakeStringListDistinct("ranks")
	assert.Equal(t, []string{"admin", "mod", "vip"}, cfg.StringList("ranks"))
}

func TestIntListOps(t *testing.T) {
	cfg := Wrap(map[string]any{"levels": []int{1, 2, 2, 3}})

	cfg.AddToIntList("levels", 4)
	assert.Equal(t, []int{1, 2, 2, 3, 4}, cfg.IntList("levels"))

	cfg.RemoveFromIntList("levels", 2)
	assert.Equal(t, []int{1, 3, 4}, cfg.IntList("levels"))
}

func TestFloatListOps(t *testing.T) {
	cfg := Wrap(map[string]any{"scores": []float64{1.5, 2.5}})

	cfg.AddToFloatList("scores", 3.5)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, cfg.FloatList("scores"))

	cfg.RemoveFromFloatList("scores", 2.5)
	assert.Equal(t, []float64{1.5, 3.5}, cfg.FloatList("scores"))
}

func TestMakeListDistinct(t *testing.T) {
	t.Run("mixed element types", func(t *testing.T) {
		cfg := Wrap(map[string]any{"mixed": []any{1, "one", 1, 2.5, "one"}})
		cfg.MakeListDistinct("mixed")
		assert.Equal(t, []any{1, "one", 2.5}, cfg.Get("mixed"))
	})

	t.Run("missing key is a no-op", func(t *testing.T) {
		cfg := Wrap(map[string]any{})
		cfg.MakeListDistinct("missing")
		assert.Nil(t, cfg.Get("missing"))
	})

	t.Run("non-list value is untouched", func(t *testing.T) {
		cfg := Wrap(map[string]any{"name": "lobby"})
		cfg.MakeListDistinct("name")
		assert.Equal(t, "lobby", cfg.Get("name"))
	})
}

func TestListKeys(t *testing.T) {
	cfg := Wrap(map[string]any{
		"players": []string{"a"},
		"scores":  []any{1, 2},
		"name":    "lobby",
		"nested":  map[string]any{"list": []int{1}},
	})

	assert.Equal(t, []string{"nested.list", "players", "scores"}, cfg.ListKeys())
}
