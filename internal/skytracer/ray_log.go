package skytracer

import (
	"fmt"
	"sort"
	"sync"
)

type Category uint8

const (
	SkyUp    Category = iota // ray points above the horizon
	SkyDown                  // ray points below the horizon
	SkyLevel                 // ray is parallel to the horizon
)

func (c Category) String() string {
	switch c {
	case SkyUp:
		return "up"
	case SkyDown:
		return "down"
	case SkyLevel:
		return "level"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

func skyCategory(r Ray) Category {
	switch y := r.Direction().Y; {
	case y > 0:
		return SkyUp
	case y < 0:
		return SkyDown
	}
	return SkyLevel
}

type RayLog struct {
	Name     string
	Category Category
	Ray      Ray
	Color    Color
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[string][]RayLog // map of ray name to logs
}

var cache = &RayLogCache{
	rays: make(map[string][]RayLog),
}

func logRay(name string, category Category, r Ray, c Color) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.rays[name] = append(cache.rays[name], RayLog{
		Name:     name,
		Category: category,
		Ray:      r,
		Color:    c,
	})
}

// raysStats prints, per ray name, how many logged rays fell in each category.
func raysStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	names := make([]string, 0, len(cache.rays))
	for k := range cache.rays {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		var counts [3]int
		for _, l := range cache.rays[k] {
			if int(l.Category) < len(counts) {
				counts[l.Category]++
			}
		}
		fmt.Fprintf(Diag, "Ray type %s: %d logs (up=%d down=%d level=%d)\n",
			k, len(cache.rays[k]), counts[SkyUp], counts[SkyDown], counts[SkyLevel])
	}
}
