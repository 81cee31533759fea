package fasta

import "fmt"

// First returns the first region of the file.
func First(path string) (*Region, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	region, err := r.Next()
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, fmt.Errorf("no regions found in %s", path)
	}
	return region, nil
}

// Find returns the region with the given ID, scanning the file in order.
func Find(path, id string) (*Region, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for {
		region, err := r.Next()
		if err != nil {
			return nil, err
		}
		if region == nil {
			return nil, &RegionNotFoundError{ID: id}
		}
		if region.ID == id {
			return region, nil
		}
	}
}

// Filter returns the regions selected by the include/exclude lists.
// Exclusion wins over inclusion on conflict. When neither list is given, at
// most n regions are returned; a negative n means all.
func Filter(path string, include, exclude []string, n int) ([]*Region, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if len(include) > 0 || len(exclude) > 0 {
		n = -1
	}

	var regions []*Region
	for n != 0 {
		region, err := r.Next()
		if err != nil {
			return nil, err
		}
		if region == nil {
			break
		}
		if contains(exclude, region.ID) {
			continue
		}
		if len(include) > 0 && !contains(include, region.ID) {
			continue
		}
		regions = append(regions, region)
		n--
	}
	return regions, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
