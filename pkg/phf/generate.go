package phf

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

const (
	// lambda is the average number of strings per bucket.
	lambda = 5

	// keySeed starts the deterministic key sequence used by Generate.
	keySeed = 0x9e3779b97f4a7c15

	maxKeyAttempts = 64
)

// ErrGenerate is returned when no perfect hash could be found.
var ErrGenerate = errors.New("phf: unable to find a perfect hash")

type bucket struct {
	idx  int
	keys []int
}

// nextKey advances the key sequence. Keys only depend on the attempt number
// so a given input always produces the same table.
func nextKey(k uint64) uint64 {
	return mix64(k + keySeed)
}

// Generate builds a Set over atoms. Duplicates are dropped, the input is
// sorted and the empty string is always added, so equal inputs produce
// identical tables regardless of their order.
func Generate(atoms []string) (*Set, error) {
	uniq := make(map[string]struct{}, len(atoms)+1)
	uniq[""] = struct{}{}
	for _, a := range atoms {
		if !utf8.ValidString(a) {
			return nil, fmt.Errorf("phf: atom %q is not valid UTF-8", a)
		}
		uniq[a] = struct{}{}
	}
	sorted := make([]string, 0, len(uniq))
	for a := range uniq {
		sorted = append(sorted, a)
	}
	sort.Strings(sorted)

	key := nextKey(0)
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		if set, ok := tryGenerate(sorted, key); ok {
			return set, nil
		}
		key = nextKey(key)
	}
	return nil, fmt.Errorf("%w over %d atoms after %d keys", ErrGenerate, len(sorted), maxKeyAttempts)
}

// MustGenerate is Generate that panics on error. Used for tables built at init.
func MustGenerate(atoms []string) *Set {
	set, err := Generate(atoms)
	if err != nil {
		panic(err)
	}
	return set
}

func tryGenerate(atoms []string, key uint64) (*Set, bool) {
	hashes := make([]Hashes, len(atoms))
	for i, a := range atoms {
		hashes[i] = Hash(a, key)
	}

	bucketsLen := (len(atoms) + lambda - 1) / lambda
	buckets := make([]bucket, bucketsLen)
	for i := range buckets {
		buckets[i].idx = i
	}
	for i, h := range hashes {
		b := h.G % uint32(bucketsLen)
		buckets[b].keys = append(buckets[b].keys, i)
	}
	// Place the largest buckets first, they are the hardest to fit.
	sort.SliceStable(buckets, func(i, j int) bool {
		return len(buckets[i].keys) > len(buckets[j].keys)
	})

	tableLen := uint32(len(atoms))
	slots := make([]int, tableLen)
	for i := range slots {
		slots[i] = -1
	}
	disps := make([]Disp, bucketsLen)

	// tryMap marks slots claimed by the displacement currently being tried.
	tryMap := make([]uint64, tableLen)
	var generation uint64
	type placement struct {
		slot uint32
		key  int
	}
	toAdd := make([]placement, 0, lambda*2)

nextBucket:
	for _, b := range buckets {
		for d1 := uint32(0); d1 < tableLen; d1++ {
		nextDisp:
			for d2 := uint32(0); d2 < tableLen; d2++ {
				toAdd = toAdd[:0]
				generation++
				for _, k := range b.keys {
					h := hashes[k]
					slot := displace(h.F1, h.F2, d1, d2) % tableLen
					if slots[slot] != -1 || tryMap[slot] == generation {
						continue nextDisp
					}
					tryMap[slot] = generation
					toAdd = append(toAdd, placement{slot: slot, key: k})
				}
				disps[b.idx] = Disp{D1: d1, D2: d2}
				for _, p := range toAdd {
					slots[p.slot] = p.key
				}
				continue nextBucket
			}
		}
		return nil, false
	}

	set := &Set{
		Key:    key,
		Disps:  disps,
		Atoms:  make([]string, tableLen),
		Hashes: make([]uint64, tableLen),
	}
	for slot, k := range slots {
		set.Atoms[slot] = atoms[k]
		set.Hashes[slot] = hashes[k].Full
	}
	return set, true
}
