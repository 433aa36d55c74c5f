// Package geo derives region and province dictionaries from content records
package geo

import "sort"

// Pair is one observed (region, province) data point
type Pair struct {
	Region   string `json:"region"`
	Province string `json:"province"`
}

// Index is the combined geography dictionary across all domains
type Index struct {
	Regions   []string            `json:"regions"`
	Provinces []string            `json:"provinces"`
	ByRegion  map[string][]string `json:"by_region"`
}

// Build folds (region, province) pairs from any number of domains into a
// deduplicated dictionary
//
// Region and province are opaque strings compared by exact value; no case
// folding or unicode normalization is applied. All slices sort in byte
// order so output is identical across runs regardless of input order or
// map iteration. Empty values are excluded but each side of a pair counts
// on its own, so a region seen only alongside empty provinces still lands
// in Regions (and vice versa); only the region to province map requires
// both sides. A province observed under several regions is listed under
// each
func Build(domains ...[]Pair) Index {
	regions := make(map[string]struct{})
	provinces := make(map[string]struct{})
	byRegion := make(map[string]map[string]struct{})

	for _, pairs := range domains {
		for _, p := range pairs {
			if p.Region != "" {
				regions[p.Region] = struct{}{}
			}
			if p.Province != "" {
				provinces[p.Province] = struct{}{}
			}
			if p.Region == "" || p.Province == "" {
				continue
			}
			set, ok := byRegion[p.Region]
			if !ok {
				set = make(map[string]struct{})
				byRegion[p.Region] = set
			}
			set[p.Province] = struct{}{}
		}
	}

	idx := Index{
		Regions:   sortedKeys(regions),
		Provinces: sortedKeys(provinces),
		ByRegion:  make(map[string][]string, len(byRegion)),
	}
	for region, set := range byRegion {
		idx.ByRegion[region] = sortedKeys(set)
	}
	return idx
}

// DataPoints counts the distinct (region, province) pairs in the index
func (idx Index) DataPoints() int {
	n := 0
	for _, provinces := range idx.ByRegion {
		n += len(provinces)
	}
	return n
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
