package nation

import "github.com/andrescamacho/nationsim-go/internal/domain/province"

func (n *Nation) sum(get func(*province.Province) int) int {
	total := 0
	for _, p := range n.provinces {
		total += get(p)
	}
	return total
}

func (n *Nation) TotalCiv() int      { return n.sum((*province.Province).Civ) }
func (n *Nation) TotalMil() int      { return n.sum((*province.Province).Mil) }
func (n *Nation) TotalOil() int      { return n.sum((*province.Province).Oil) }
func (n *Nation) TotalSteel() int    { return n.sum((*province.Province).Steel) }
func (n *Nation) TotalTungsten() int { return n.sum((*province.Province).Tungsten) }
func (n *Nation) TotalAluminum() int { return n.sum((*province.Province).Aluminum) }
func (n *Nation) TotalChromium() int { return n.sum((*province.Province).Chromium) }

// UsedMilFactories is the number of military factories assigned to production lines
func (n *Nation) UsedMilFactories() int {
	used := 0
	for _, l := range n.lines {
		used += l.Factories()
	}
	return used
}

// FreeMilFactories may be negative only if military factories were lost after assignment
func (n *Nation) FreeMilFactories() int {
	return n.TotalMil() - n.UsedMilFactories()
}
