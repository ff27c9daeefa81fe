package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/gantt/internal/app"
	"github.com/runoshun/gantt/internal/infra/memstore"
)

func TestListCommand(t *testing.T) {
	stdout, _, err := execute(t, newTestContainer(t), "list")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "ROW  NAME  START       END         DAYS", lines[0])
	assert.Equal(t, "0    T1    2023-04-01  2023-04-10  9", lines[1])
	assert.Equal(t, "1    T2    2023-04-05  2023-04-15  10", lines[2])
	assert.Empty(t, lines[3])
	assert.Equal(t, "Range: 2023-04-01 .. 2023-04-15", lines[4])
}

func TestListCommand_Empty(t *testing.T) {
	c := app.NewWithDeps(nil, memstore.New(), nil)

	stdout, _, err := execute(t, c, "list")

	require.NoError(t, err)
	assert.Equal(t, "ROW  NAME  START  END  DAYS\n", stdout)
}

func TestListCommand_JSON(t *testing.T) {
	c := newTestContainer(t)

	stdout, _, err := execute(t, c, "list", "--json")

	require.NoError(t, err)
	var items []taskJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &items))
	require.Len(t, items, 2)
	assert.Equal(t, taskJSON{
		ID:    c.Tasks.List()[0].ID,
		Name:  "T1",
		Start: "2023-04-01",
		End:   "2023-04-10",
		Days:  9,
	}, items[0])
	assert.Equal(t, 10, items[1].Days)
}
