package domain

// UnknownBucket labels facet values missing from a record.
const UnknownBucket = "unknown"

// Facets counts category, tag, file-type and author frequencies across
// the indexed file records in a single pass. Folder records never
// contribute. Each tag of a record counts separately.
func Facets(idx *Index) FacetCounts {
	fc := FacetCounts{
		Categories: map[string]int{},
		Tags:       map[string]int{},
		FileTypes:  map[string]int{},
		Authors:    map[string]int{},
	}
	if idx == nil {
		return fc
	}
	for _, f := range idx.Files {
		fc.Categories[orUnknown(f.Category)]++
		for _, t := range f.Tags {
			fc.Tags[t]++
		}
		fc.FileTypes[orUnknown(string(f.FileType))]++
		fc.Authors[orUnknown(f.Author)]++
	}
	return fc
}

func orUnknown(v string) string {
	if v == "" {
		return UnknownBucket
	}
	return v
}
