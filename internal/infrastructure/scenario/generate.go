package scenario

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/andrescamacho/nationsim-go/pkg/utils"
)

// GenConfig controls procedural scenario generation
type GenConfig struct {
	Seed               int64
	Nations            int
	ProvincesPerNation int
}

var nationNames = []string{
	"Arcadia", "Borealis", "Caledon", "Dalmatia", "Esteria", "Fennmark", "Galdria", "Hesperia",
}

var ideologies = []string{"Democratic", "Authoritarian", "Communist", "Non-Aligned"}

var regionSuffixes = []string{"Lowlands", "Highlands", "Coast", "Basin", "Marches", "Valley", "Plateau", "Delta"}

// Generate lays the provinces of every nation on a grid and shapes their
// yields and buildings with independent noise layers. The same seed always
// produces the same scenario.
func Generate(cfg GenConfig) *Scenario {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	if cfg.Nations <= 0 {
		cfg.Nations = 2
	}
	if cfg.ProvincesPerNation <= 0 {
		cfg.ProvincesPerNation = 3
	}

	industry := opensimplex.NewNormalized(seed)
	minerals := opensimplex.NewNormalized(seed + 1)
	petroleum := opensimplex.NewNormalized(seed + 2)
	people := opensimplex.NewNormalized(seed + 3)

	sc := &Scenario{Name: fmt.Sprintf("Generated %d", seed)}
	for n := 0; n < cfg.Nations; n++ {
		spec := NationSpec{
			Name:      nationName(n),
			Ideology:  ideologies[n%len(ideologies)],
			Stockpile: StockpileSpec{Manpower: 60 + 10*cfg.ProvincesPerNation},
		}

		totalMil := 0
		for p := 0; p < cfg.ProvincesPerNation; p++ {
			x, y := float64(n)*4, float64(p)
			prov := ProvinceSpec{
				Name:           fmt.Sprintf("%s %s", spec.Name, regionSuffixes[p%len(regionSuffixes)]),
				Population:     scaled(people, x, y, 800, 2000),
				Civ:            scaled(industry, x, y, 1, 4),
				Mil:            scaled(industry, x+0.5, y+0.5, 0, 3),
				Infrastructure: scaled(industry, x+1, y, 3, 8),
				Steel:          scaled(minerals, x, y, 0, 8),
				Tungsten:       scaled(minerals, x+0.3, y, 0, 5),
				Aluminum:       scaled(minerals, x, y+0.3, 0, 6),
				Chromium:       scaled(minerals, x+0.3, y+0.3, 0, 3),
				Oil:            scaled(petroleum, x, y, 0, 4),
			}
			if p > 0 && p == cfg.ProvincesPerNation-1 {
				prov.Dockyards = scaled(petroleum, x+2, y, 0, 2)
			}
			totalMil += prov.Mil
			spec.Provinces = append(spec.Provinces, prov)
		}

		if totalMil > 0 {
			spec.ProductionLines = []LineSpec{{Equipment: "GUN", Factories: min(2, totalMil)}}
		}
		sc.Nations = append(sc.Nations, spec)
	}
	return sc
}

func nationName(i int) string {
	name := nationNames[i%len(nationNames)]
	if round := i / len(nationNames); round > 0 {
		name = fmt.Sprintf("%s %d", name, round+1)
	}
	return name
}

// scaled samples noise at (x,y) and maps it onto [lo,hi]
func scaled(noise opensimplex.Noise, x, y float64, lo, hi int) int {
	v := octaveNoise(noise, x, y, 3, 0.35, 0.5)
	return utils.Clamp(lo+int(math.Round(v*float64(hi-lo))), lo, hi)
}

func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
