// pkg/api/slices_v1.go
package api

// SliceV1 is the stable JSON/JSONL schema for one sampled slice.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SliceV1 struct {
	Step   int        `json:"step"`            // 0-based Next/Get call that produced the slice
	Sample int        `json:"sample"`          // position within the batch of that call
	Index  *int       `json:"index,omitempty"` // logical index for random access
	Desc   string     `json:"desc,omitempty"`  // record description (sequential mode)
	Length int        `json:"length"`
	Seq    string     `json:"seq"` // decoded A/C/G/T, N for the zero vector
	OneHot [][4]uint8 `json:"onehot,omitempty"`
}
