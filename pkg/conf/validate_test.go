package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `
server?: {
	name?: string
	port?: int & >0 & <65536
}
messages?: [string]: string
`

func TestNewValidator(t *testing.T) {
	t.Run("compiles valid schema", func(t *testing.T) {
		v, err := NewValidator([]byte(testSchema))
		require.NoError(t, err)
		assert.NotNil(t, v)
	})

	t.Run("rejects broken schema", func(t *testing.T) {
		_, err := NewValidator([]byte("server: {{"))
		assert.Error(t, err)
	})
}

func TestValidatorValidate(t *testing.T) {
	v, err := NewValidator([]byte(testSchema))
	require.NoError(t, err)

	t.Run("conforming config passes", func(t *testing.T) {
		cfg := Wrap(map[string]any{
			"server": map[string]any{"name": "lobby", "port": 25565},
			"messages": map[string]any{
				"hi": "hello",
			},
		})
		assert.NoError(t, v.Validate(cfg))
	})

	t.Run("violations are reported per field", func(t *testing.T) {
		cfg := Wrap(map[string]any{
			"server": map[string]any{"port": -1},
		})

		err := v.Validate(cfg)
		require.Error(t, err)

		var errs ValidationErrors
		require.ErrorAs(t, err, &errs)
		require.NotEmpty(t, errs)
		assert.Contains(t, errs.Error(), "port")
	})

	t.Run("wrong type is a violation", func(t *testing.T) {
		cfg := Wrap(map[string]any{
			"server": map[string]any{"name": 42},
		})
		assert.Error(t, v.Validate(cfg))
	})
}
