package neardup

import (
	"sort"

	"github.com/asynkron/dupscan/internal/model"
)

// Partition is one comparison bucket. Files are only compared with other
// members of the same partition.
type Partition struct {
	Key     string
	Members []int // indices into the analyzed file list, ascending
}

// PartitionFiles splits files by scope. Partitions come back in ascending
// key order.
func PartitionFiles(files []model.CandidateFile, scope model.Scope) []Partition {
	if scope == model.ScopeGlobal {
		members := make([]int, len(files))
		for i := range files {
			members[i] = i
		}
		return []Partition{{Key: string(model.ScopeGlobal), Members: members}}
	}

	buckets := make(map[string][]int)
	for i, f := range files {
		key := f.Module
		if scope == model.ScopeLang {
			key = f.Lang
		}
		buckets[key] = append(buckets[key], i)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	partitions := make([]Partition, len(keys))
	for i, k := range keys {
		partitions[i] = Partition{Key: k, Members: buckets[k]}
	}
	return partitions
}
