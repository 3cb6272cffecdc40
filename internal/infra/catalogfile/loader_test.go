package catalogfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalogTOML = `
[[religions]]
id = "hindu"
name = "Hindu"
description = "Hindu last rites"
icon = "om"

[[religions]]
id = "muslim"
name = "Muslim"
description = "Muslim last rites"
icon = "crescent"

[[kits]]
religion_id = "hindu"

  [[kits.items]]
  id = "shroud"
  name = "Shroud"
  description = "Cotton shroud"
  price = 500
  required = true

  [[kits.items]]
  id = "ghee"
  name = "Ghee"
  price = 300

[[services]]
id = "pandit"
name = "Pandit Service"
price = 2500
duration = "3-4 hours"
religions = ["hindu"]

[[services]]
id = "hearse"
name = "Hearse Van"
price = 2000
religions = ["hindu", "muslim"]
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	catalog, err := Load(writeCatalog(t, validCatalogTOML))
	require.NoError(t, err)

	require.Len(t, catalog.Religions, 2)
	assert.Equal(t, "hindu", catalog.Religions[0].ID)
	assert.Equal(t, "om", catalog.Religions[0].Icon)

	kit, ok := catalog.KitFor("hindu")
	require.True(t, ok)
	require.Len(t, kit.Items, 2)
	assert.True(t, kit.Items[0].Required)
	assert.Equal(t, 500, kit.Items[0].Price)
	assert.False(t, kit.Items[1].Required)

	svc, ok := catalog.ServiceByID("pandit")
	require.True(t, ok)
	assert.Equal(t, "3-4 hours", svc.Duration)
	assert.Equal(t, []string{"hindu"}, svc.Religions)

	assert.Len(t, catalog.ServicesFor("muslim"), 1)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrReadFile)
}

func TestLoad_NotTOML(t *testing.T) {
	_, err := Load(writeCatalog(t, "{ this is not toml ]"))
	assert.ErrorIs(t, err, ErrReadFile)
}

func TestLoad_InvalidDataset(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "kit references unknown religion",
			content: `
[[religions]]
id = "hindu"
name = "Hindu"

[[kits]]
religion_id = "unknown"

  [[kits.items]]
  id = "shroud"
  name = "Shroud"
  price = 500
`,
		},
		{
			name: "duplicate religion id",
			content: `
[[religions]]
id = "hindu"
name = "Hindu"

[[religions]]
id = "hindu"
name = "Hindu again"
`,
		},
		{
			name: "negative service price",
			content: `
[[religions]]
id = "hindu"
name = "Hindu"

[[services]]
id = "pandit"
name = "Pandit Service"
price = -1
religions = ["hindu"]
`,
		},
		{
			name: "service references unknown religion",
			content: `
[[religions]]
id = "hindu"
name = "Hindu"

[[services]]
id = "pandit"
name = "Pandit Service"
price = 2500
religions = ["unknown"]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}
