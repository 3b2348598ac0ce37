package scenario

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

func TestDefault_BuildsRomaniaAndHungary(t *testing.T) {
	w, err := Default().Build(7)
	require.NoError(t, err)

	nations := w.Nations()
	require.Len(t, nations, 2)

	romania := nations[0]
	assert.Equal(t, "Romania", romania.Name())
	assert.Equal(t, "Democratic", romania.Ideology())
	assert.Equal(t, 3, romania.ProvinceCount())
	assert.Equal(t, 7, romania.TotalCiv())
	assert.Equal(t, 100, romania.ResourceStockpile().Manpower())
	require.Len(t, romania.ProductionLines(), 1)
	assert.Equal(t, shared.EquipmentGun, romania.ProductionLines()[0].EquipmentType())

	hungary := nations[1]
	assert.Equal(t, "Authoritarian", hungary.Ideology())
	assert.Equal(t, 2, hungary.ProvinceCount())
	assert.Equal(t, 80, hungary.ResourceStockpile().Manpower())
	assert.Equal(t, shared.EquipmentArtillery, hungary.ProductionLines()[0].EquipmentType())
}

func TestParse_FullNation(t *testing.T) {
	raw := []byte(`
name: Test
nations:
  - name: Serbia
    ideology: Authoritarian
    provinces:
      - {name: Sumadija, civ: 2, mil: 2, infrastructure: 4, oil: 1}
    production_lines:
      - {equipment: anti-air, factories: 1, unit_cost: 25}
    construction:
      - {building: infra, province: 0, count: 1}
    focuses:
      - {name: Roads, days: 2, effect: ADD_INFRA}
    active_focus: 0
`)

	sc, err := Parse(raw)
	require.NoError(t, err)
	w, err := sc.Build(1)
	require.NoError(t, err)

	serbia, err := w.NationByName("serbia")
	require.NoError(t, err)
	assert.Equal(t, int64(40), serbia.ProductionLines()[0].DailyOutput())
	assert.Len(t, serbia.ConstructionQueue(), 1)
	assert.Equal(t, "Roads", serbia.FocusTree().ActiveFocusName())
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no nations", "name: Empty\nnations: []\n"},
		{"unknown key", "nations:\n  - name: X\n    colour: red\n"},
		{"bad equipment", "nations:\n  - name: X\n    production_lines:\n      - {equipment: tank, factories: 0}\n"},
		{"infra above ten", "nations:\n  - name: X\n    provinces:\n      - {name: P, infrastructure: 11}\n"},
		{"bad focus effect", "nations:\n  - name: X\n    focuses:\n      - {name: F, days: 3, effect: ADD_TANKS}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestBuild_SurfacesDomainErrors(t *testing.T) {
	sc, err := Parse([]byte(`
nations:
  - name: Tiny
    provinces:
      - {name: Hamlet, mil: 1}
    production_lines:
      - {equipment: GUN, factories: 3}
`))
	require.NoError(t, err)

	_, err = sc.Build(1)

	var overErr *shared.FactoryOvercommitError
	assert.ErrorAs(t, err, &overErr)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nations:\n  - name: Solo\n"), 0o600))

	sc, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Solo", sc.Nations[0].Name)
}

func TestGenerate_DeterministicAndValid(t *testing.T) {
	cfg := GenConfig{Seed: 99, Nations: 3, ProvincesPerNation: 4}

	first := Generate(cfg)
	second := Generate(cfg)

	assert.Equal(t, first, second)
	require.Len(t, first.Nations, 3)
	for _, n := range first.Nations {
		assert.Len(t, n.Provinces, 4)
	}

	var buf bytes.Buffer
	require.NoError(t, first.Encode(&buf))
	reparsed, err := Parse(buf.Bytes())
	require.NoError(t, err)
	_, err = reparsed.Build(1)
	assert.NoError(t, err)
}
