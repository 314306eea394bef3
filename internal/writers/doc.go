// Package writers turns sampled slices into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, FASTA, JSON, JSONL).
//   - Samplers stay encoding-only; the app only drives them.
//   - JSON and JSONL go through pkg/api (v1) for a stable wire format.
package writers
